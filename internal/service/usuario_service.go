package service

import (
	"context"
	"errors"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioService interface {
	GetByID(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	GetByUsername(ctx context.Context, nombreUsuario string) (*dto.UsuarioResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest, por string) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest, por string) error
	Listar(ctx context.Context, activo *bool) ([]dto.UsuarioResponse, error)
	Activar(ctx context.Context, id uint, por string) error
	Desactivar(ctx context.Context, id uint, por string) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) GetByID(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	usuario, err := s.findUsuario(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

func (s *usuarioService) GetByUsername(ctx context.Context, nombreUsuario string) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.FindByUsername(ctx, nombreUsuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Usuario no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest, por string) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, req.NombreUsuario); err == nil {
		return nil, apperr.Conflict("El nombre de usuario ya está en uso")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflict("El email ya está registrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Clave), bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	usuario := &model.Usuario{
		NombreUsuario:   req.NombreUsuario,
		ClaveHash:       string(hash),
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		Email:           req.Email,
		Activo:          true,
		CambiarClave:    true,
		UsuarioCreacion: por,
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("El nombre de usuario o email ya está en uso")
		}
		return nil, apperr.Internal(err)
	}
	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest, por string) error {
	usuario, err := s.findUsuario(ctx, id)
	if err != nil {
		return err
	}

	if req.Email != "" && req.Email != usuario.Email {
		if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
			return apperr.Conflict("El email ya está registrado")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Internal(err)
		}
		usuario.Email = req.Email
	}
	if req.Nombre != "" {
		usuario.Nombre = req.Nombre
	}
	if req.Apellido != "" {
		usuario.Apellido = req.Apellido
	}
	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}
	usuario.UsuarioActualizacion = &por
	if err := s.repo.Update(ctx, usuario); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *usuarioService) Listar(ctx context.Context, activo *bool) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.FindAll(ctx, activo)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i := range usuarios {
		resp[i] = toUsuarioResponse(&usuarios[i])
	}
	return resp, nil
}

func (s *usuarioService) Activar(ctx context.Context, id uint, por string) error {
	activo := true
	return s.Actualizar(ctx, id, dto.ActualizarUsuarioRequest{Activo: &activo}, por)
}

func (s *usuarioService) Desactivar(ctx context.Context, id uint, por string) error {
	activo := false
	return s.Actualizar(ctx, id, dto.ActualizarUsuarioRequest{Activo: &activo}, por)
}

func (s *usuarioService) findUsuario(ctx context.Context, id uint) (*model.Usuario, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Usuario no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return usuario, nil
}
