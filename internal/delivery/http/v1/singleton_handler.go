package v1

import (
	"net/http"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

// SingletonHandler exposes a one-record resource: public GET, protected
// POST upsert.
type SingletonHandler[T any] struct {
	uc domain.SingletonUsecase[T]
}

func NewSingletonHandler[T any](public, protected *gin.RouterGroup, path string, uc domain.SingletonUsecase[T]) {
	handler := &SingletonHandler[T]{uc: uc}

	public.GET(path, handler.Get)
	protected.POST(path, handler.Save)
}

func (h *SingletonHandler[T]) Get(c *gin.Context) {
	item, err := h.uc.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *SingletonHandler[T]) Save(c *gin.Context) {
	item := new(T)
	if !bindJSON(c, item) {
		return
	}
	if err := h.uc.Save(c.Request.Context(), item); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}
