package service

import (
	"context"
	"errors"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/config"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/middleware"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CambiarClave(ctx context.Context, idUsuario uint, req dto.CambiarClaveRequest, por string) error
	VerifyToken(tokenStr string) (*middleware.SessionClaims, error)
}

type authService struct {
	usuarios repository.UsuarioRepository
	perfiles repository.PerfilRepository
	roles    repository.RoleRepository
	modulos  repository.ModuloRepository
	cfg      *config.Config
}

func NewAuthService(
	usuarios repository.UsuarioRepository,
	perfiles repository.PerfilRepository,
	roles repository.RoleRepository,
	modulos repository.ModuloRepository,
	cfg *config.Config,
) AuthService {
	return &authService{usuarios: usuarios, perfiles: perfiles, roles: roles, modulos: modulos, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarios.FindByUsername(ctx, req.NombreUsuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password: no username enumeration.
			return nil, apperr.Unauthorized("Credenciales inválidas")
		}
		return nil, apperr.Internal(err)
	}

	if !usuario.Activo {
		return nil, apperr.Forbidden("Usuario inactivo. Contacte al administrador")
	}

	// Lockout is checked before the password compare so a locked account
	// never leaks whether the supplied password was correct.
	if usuario.Bloqueado() {
		return nil, apperr.Forbidden("Usuario bloqueado por múltiples intentos fallidos. Contacte al administrador.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ClaveHash), []byte(req.Clave)); err != nil {
		if err := s.usuarios.IncrementFailedAttempts(ctx, usuario.ID); err != nil {
			return nil, apperr.Internal(err)
		}
		return nil, apperr.Unauthorized("Credenciales inválidas")
	}

	if err := s.usuarios.ResetFailedAttempts(ctx, usuario.ID); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.usuarios.UpdateLastAccess(ctx, usuario.ID); err != nil {
		return nil, apperr.Internal(err)
	}

	perfiles, err := s.perfiles.FindByUsuario(ctx, usuario.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	roles, err := s.roles.FindByUsuario(ctx, usuario.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	modulos, err := s.modulos.FindByUsuario(ctx, usuario.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	token, err := s.generateToken(usuario, perfiles, roles, modulos)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	resp := &dto.LoginResponse{
		Token:    token,
		Usuario:  toUsuarioResponse(usuario),
		Perfiles: make([]dto.PerfilResponse, 0, len(perfiles)),
		Roles:    make([]dto.RoleResponse, 0, len(roles)),
		Modulos:  make([]dto.ModuloResponse, 0, len(modulos)),
	}
	for _, p := range perfiles {
		resp.Perfiles = append(resp.Perfiles, dto.PerfilResponse{
			IDPerfil: p.ID, NombrePerfil: p.NombrePerfil, Descripcion: p.Descripcion,
		})
	}
	for _, r := range roles {
		resp.Roles = append(resp.Roles, dto.RoleResponse{
			IDRole: r.ID, NombreRole: r.NombreRole, Descripcion: r.Descripcion,
		})
	}
	for _, m := range modulos {
		resp.Modulos = append(resp.Modulos, dto.ModuloResponse{
			IDModulo: m.ID, NombreModulo: m.NombreModulo, Ruta: m.Ruta,
			Icono: m.Icono, Orden: m.Orden, IDModuloPadre: m.IDModuloPadre,
		})
	}
	return resp, nil
}

func (s *authService) CambiarClave(ctx context.Context, idUsuario uint, req dto.CambiarClaveRequest, por string) error {
	usuario, err := s.usuarios.FindByID(ctx, idUsuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Usuario no encontrado")
		}
		return apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ClaveHash), []byte(req.ClaveActual)); err != nil {
		return apperr.BadRequest("La contraseña actual es incorrecta")
	}

	// Plaintext comparison on purpose: with a salted hash the digests of
	// equal passwords never match.
	if req.ClaveActual == req.ClaveNueva {
		return apperr.BadRequest("La nueva contraseña debe ser diferente a la actual")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.ClaveNueva), bcryptCost)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := s.usuarios.UpdatePassword(ctx, idUsuario, string(hash), por); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *authService) VerifyToken(tokenStr string) (*middleware.SessionClaims, error) {
	claims := &middleware.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("Token inválido o expirado")
	}
	return claims, nil
}

func (s *authService) generateToken(u *model.Usuario, perfiles []model.Perfil, roles []model.Role, modulos []model.Modulo) (string, error) {
	now := time.Now()
	claims := &middleware.SessionClaims{
		IDUsuario:     u.ID,
		NombreUsuario: u.NombreUsuario,
		Email:         u.Email,
		Perfiles:      make([]uint, 0, len(perfiles)),
		Roles:         make([]string, 0, len(roles)),
		Modulos:       make([]uint, 0, len(modulos)),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	for _, p := range perfiles {
		claims.Perfiles = append(claims.Perfiles, p.ID)
	}
	for _, r := range roles {
		claims.Roles = append(claims.Roles, r.NombreRole)
	}
	for _, m := range modulos {
		claims.Modulos = append(claims.Modulos, m.ID)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		IDUsuario:         u.ID,
		NombreUsuario:     u.NombreUsuario,
		Nombre:            u.Nombre,
		Apellido:          u.Apellido,
		Email:             u.Email,
		Activo:            u.Activo,
		CambiarClave:      u.CambiarClave,
		FechaUltimoAcceso: u.FechaUltimoAcceso,
	}
}
