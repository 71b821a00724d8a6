package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfrosalesgt/dicki-backend/internal/apierror"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/middleware"
	"github.com/jfrosalesgt/dicki-backend/internal/service"
)

type IndiciosHandler struct{ svc service.IndicioService }

func NewIndiciosHandler(svc service.IndicioService) *IndiciosHandler {
	return &IndiciosHandler{svc: svc}
}

// Crear POST /v1/escenas/:id/indicios
// El usuario autenticado queda como recolector del indicio.
func (h *IndiciosHandler) Crear(c *gin.Context) {
	idEscena, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearIndicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), idEscena, req, claims.IDUsuario, claims.NombreUsuario)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPorEscena GET /v1/escenas/:id/indicios
func (h *IndiciosHandler) ListarPorEscena(c *gin.Context) {
	idEscena, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByEscena(c.Request.Context(), idEscena)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorInvestigacion GET /v1/investigaciones/:id/indicios
// Aplana los indicios de todas las escenas del expediente.
func (h *IndiciosHandler) ListarPorInvestigacion(c *gin.Context) {
	idInvestigacion, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByInvestigacion(c.Request.Context(), idInvestigacion)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar GET /v1/indicios con filtros opcionales
func (h *IndiciosHandler) Listar(c *gin.Context) {
	var filters dto.IndicioFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos: "+err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /v1/indicios/:id
func (h *IndiciosHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/indicios/:id
func (h *IndiciosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarIndicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Actualizar(c.Request.Context(), id, req, claims.NombreUsuario); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Eliminar DELETE /v1/indicios/:id (baja lógica)
func (h *IndiciosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Eliminar(c.Request.Context(), id, claims.NombreUsuario); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
