package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/middleware"
	"github.com/jfrosalesgt/dicki-backend/internal/service"
)

type EscenasHandler struct{ svc service.EscenaService }

func NewEscenasHandler(svc service.EscenaService) *EscenasHandler {
	return &EscenasHandler{svc: svc}
}

// Crear POST /v1/investigaciones/:id/escenas
func (h *EscenasHandler) Crear(c *gin.Context) {
	idInvestigacion, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearEscenaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), idInvestigacion, req, claims.NombreUsuario)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPorInvestigacion GET /v1/investigaciones/:id/escenas
func (h *EscenasHandler) ListarPorInvestigacion(c *gin.Context) {
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

// GetByID GET /v1/escenas/:id
func (h *EscenasHandler) GetByID(c *gin.Context) {
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

// Actualizar PUT /v1/escenas/:id
func (h *EscenasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEscenaRequest
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

// Eliminar DELETE /v1/escenas/:id (baja lógica)
func (h *EscenasHandler) Eliminar(c *gin.Context) {
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
