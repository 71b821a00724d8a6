package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jfrosalesgt/dicki-backend/internal/apierror"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/infra"
	"github.com/jfrosalesgt/dicki-backend/internal/service"
)

type ReportesHandler struct{ svc service.ReportesService }

func NewReportesHandler(svc service.ReportesService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Revision godoc
// @Summary Reporte de revisión de expedientes
// @Tags reportes
// @Security BearerAuth
// @Param fecha_inicio query string false "YYYY-MM-DD"
// @Param fecha_fin query string false "YYYY-MM-DD"
// @Param estado_revision query string false "EN_REGISTRO|PENDIENTE_REVISION|APROBADO|RECHAZADO"
// @Success 200 {array} dto.ReporteRevisionExpediente
// @Router /v1/reportes/revision [get]
func (h *ReportesHandler) Revision(c *gin.Context) {
	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}
	resp, err := h.svc.ReporteRevision(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevisionPDF GET /v1/reportes/revision/pdf
// Same filters as Revision, streams the rendered PDF as a download.
func (h *ReportesHandler) RevisionPDF(c *gin.Context) {
	filters, ok := h.bindFilters(c)
	if !ok {
		return
	}
	rows, err := h.svc.ReporteRevision(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	pdfBytes, err := infra.GenerateReporteRevisionPDF(rows, subtitleFor(filters))
	if err != nil {
		respondError(c, err)
		return
	}

	fileName := fmt.Sprintf("reporte_revision_%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// Estadisticas GET /v1/reportes/estadisticas
func (h *ReportesHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) bindFilters(c *gin.Context) (dto.ReporteRevisionFilters, bool) {
	var filters dto.ReporteRevisionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos: "+err.Error()))
		return filters, false
	}
	return filters, true
}

func subtitleFor(filters dto.ReporteRevisionFilters) string {
	parts := ""
	if filters.FechaInicio != nil {
		parts += "Desde " + filters.FechaInicio.Format("02/01/2006")
	}
	if filters.FechaFin != nil {
		if parts != "" {
			parts += " "
		}
		parts += "hasta " + filters.FechaFin.Format("02/01/2006")
	}
	if filters.EstadoRevision != "" {
		if parts != "" {
			parts += " | "
		}
		parts += "Estado: " + filters.EstadoRevision
	}
	return parts
}
