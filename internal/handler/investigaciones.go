package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfrosalesgt/dicki-backend/internal/apierror"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/middleware"
	"github.com/jfrosalesgt/dicki-backend/internal/service"
)

type InvestigacionesHandler struct{ svc service.InvestigacionService }

func NewInvestigacionesHandler(svc service.InvestigacionService) *InvestigacionesHandler {
	return &InvestigacionesHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar un nuevo expediente
// @Tags investigaciones
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CrearInvestigacionRequest true "Expediente"
// @Success 201 {object} dto.InvestigacionResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/investigaciones [post]
func (h *InvestigacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearInvestigacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), req, claims.IDUsuario, claims.NombreUsuario)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/investigaciones
// Supports ?estado_revision=, ?id_usuario_registro=, ?id_fiscalia=, ?activo=
func (h *InvestigacionesHandler) Listar(c *gin.Context) {
	var filters dto.InvestigacionFilters
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

// GetByID GET /v1/investigaciones/:id
func (h *InvestigacionesHandler) GetByID(c *gin.Context) {
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

// Actualizar PUT /v1/investigaciones/:id
func (h *InvestigacionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarInvestigacionRequest
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

// Eliminar DELETE /v1/investigaciones/:id (baja lógica)
func (h *InvestigacionesHandler) Eliminar(c *gin.Context) {
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

// EnviarARevision godoc
// @Summary Enviar expediente a revisión de coordinación
// @Tags investigaciones
// @Security BearerAuth
// @Success 200 {object} dto.InvestigacionResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/investigaciones/{id}/enviar-revision [post]
func (h *InvestigacionesHandler) EnviarARevision(c *gin.Context) {
	h.transicion(c, func(c *gin.Context, id uint, claims *middleware.SessionClaims) error {
		return h.svc.EnviarARevision(c.Request.Context(), id, claims.NombreUsuario)
	})
}

// Aprobar godoc
// @Summary Aprobar expediente
// @Tags investigaciones
// @Security BearerAuth
// @Success 200 {object} dto.InvestigacionResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/investigaciones/{id}/aprobar [post]
func (h *InvestigacionesHandler) Aprobar(c *gin.Context) {
	h.transicion(c, func(c *gin.Context, id uint, claims *middleware.SessionClaims) error {
		return h.svc.Aprobar(c.Request.Context(), id, claims.IDUsuario, claims.NombreUsuario)
	})
}

// Rechazar godoc
// @Summary Rechazar expediente con justificación obligatoria
// @Tags investigaciones
// @Security BearerAuth
// @Param body body dto.RechazarInvestigacionRequest true "Justificación"
// @Success 200 {object} dto.InvestigacionResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/investigaciones/{id}/rechazar [post]
func (h *InvestigacionesHandler) Rechazar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.RechazarInvestigacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Rechazar(c.Request.Context(), id, claims.IDUsuario, req.Justificacion, claims.NombreUsuario); err != nil {
		respondError(c, err)
		return
	}
	h.respondActual(c, id)
}

// transicion factors the shared shape of the review transitions that carry no
// request body.
func (h *InvestigacionesHandler) transicion(c *gin.Context, fn func(*gin.Context, uint, *middleware.SessionClaims) error) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := fn(c, id, claims); err != nil {
		respondError(c, err)
		return
	}
	h.respondActual(c, id)
}

// respondActual re-reads the expediente so the client gets the post-transition
// state without a second request.
func (h *InvestigacionesHandler) respondActual(c *gin.Context, id uint) {
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
