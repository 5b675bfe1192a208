package v1

import (
	"net/http"
	"strconv"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ContentHandler exposes one listable resource: public reads, protected
// writes.
type ContentHandler[T any] struct {
	uc   domain.ContentUsecase[T]
	noun string
}

func NewContentHandler[T any](public, protected *gin.RouterGroup, path, noun string, uc domain.ContentUsecase[T]) *ContentHandler[T] {
	handler := &ContentHandler[T]{uc: uc, noun: noun}

	public.GET(path, handler.List)
	public.GET(path+"/:id", handler.Get)

	protected.POST(path, handler.Create)
	protected.PUT(path+"/:id", handler.Update)
	protected.DELETE(path+"/:id", handler.Delete)

	return handler
}

func (h *ContentHandler[T]) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *ContentHandler[T]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *ContentHandler[T]) Create(c *gin.Context) {
	item := new(T)
	if !bindJSON(c, item) {
		return
	}
	if err := h.uc.Create(c.Request.Context(), item); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, item)
}

func (h *ContentHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item := new(T)
	if !bindJSON(c, item) {
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, item); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *ContentHandler[T]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.noun+" deleted successfully", nil)
}

// pathID parses the :id parameter, reporting a 400 when it is malformed.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid ID"))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return false
	}
	return true
}
