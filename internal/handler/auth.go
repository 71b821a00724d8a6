package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/middleware"
	"github.com/jfrosalesgt/dicki-backend/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarClave godoc
// @Summary Cambio de contraseña del usuario autenticado
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param body body dto.CambiarClaveRequest true "Claves"
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/cambiar-clave [post]
func (h *AuthHandler) CambiarClave(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req dto.CambiarClaveRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.CambiarClave(c.Request.Context(), claims.IDUsuario, req, claims.NombreUsuario); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Me returns the session claims of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"id_usuario":     claims.IDUsuario,
		"nombre_usuario": claims.NombreUsuario,
		"email":          claims.Email,
		"perfiles":       claims.Perfiles,
		"roles":          claims.Roles,
		"modulos":        claims.Modulos,
	})
}
