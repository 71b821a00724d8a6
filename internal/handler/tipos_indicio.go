package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/middleware"
	"github.com/jfrosalesgt/dicki-backend/internal/service"
)

type TiposIndicioHandler struct{ svc service.TipoIndicioService }

func NewTiposIndicioHandler(svc service.TipoIndicioService) *TiposIndicioHandler {
	return &TiposIndicioHandler{svc: svc}
}

// Listar GET /v1/tipos-indicio?activo=true
func (h *TiposIndicioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), parseActivoQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /v1/tipos-indicio/:id
func (h *TiposIndicioHandler) GetByID(c *gin.Context) {
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

// Crear POST /v1/tipos-indicio
func (h *TiposIndicioHandler) Crear(c *gin.Context) {
	var req dto.CrearTipoIndicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), req, claims.NombreUsuario)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/tipos-indicio/:id
func (h *TiposIndicioHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarTipoIndicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req, claims.NombreUsuario)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/tipos-indicio/:id (baja lógica)
func (h *TiposIndicioHandler) Eliminar(c *gin.Context) {
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
