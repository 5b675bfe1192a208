package v1

import (
	"net/http"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type KPIHandler struct {
	*ContentHandler[domain.KPI]
	kpiUC domain.KPIUsecase
}

// NewKPIHandler registers the KPI routes. Unlike other resources the
// public list only contains Public KPIs; admins read /kpis/all.
func NewKPIHandler(public, protected *gin.RouterGroup, uc domain.KPIUsecase) {
	handler := &KPIHandler{
		ContentHandler: &ContentHandler[domain.KPI]{uc: uc, noun: "KPI"},
		kpiUC:          uc,
	}

	public.GET("/kpis", handler.ListPublic)
	protected.GET("/kpis/all", handler.List)
	protected.POST("/kpis", handler.Create)
	protected.PUT("/kpis/:id", handler.Update)
	protected.DELETE("/kpis/:id", handler.Delete)
}

// ListPublic godoc
// @Summary      List public KPIs
// @Tags         kpis
// @Produce      json
// @Success      200  {array}   domain.KPI
// @Router       /kpis [get]
func (h *KPIHandler) ListPublic(c *gin.Context) {
	kpis, err := h.kpiUC.ListPublic(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, kpis)
}
