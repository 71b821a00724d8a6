package service

import (
	"context"
	"errors"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"

	"gorm.io/gorm"
)

type TipoIndicioService interface {
	GetByID(ctx context.Context, id uint) (*dto.TipoIndicioResponse, error)
	Listar(ctx context.Context, activo *bool) ([]dto.TipoIndicioResponse, error)
	Crear(ctx context.Context, req dto.CrearTipoIndicioRequest, por string) (*dto.TipoIndicioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarTipoIndicioRequest, por string) (*dto.TipoIndicioResponse, error)
	Eliminar(ctx context.Context, id uint, por string) error
}

type tipoIndicioService struct {
	repo repository.TipoIndicioRepository
}

func NewTipoIndicioService(repo repository.TipoIndicioRepository) TipoIndicioService {
	return &tipoIndicioService{repo: repo}
}

func (s *tipoIndicioService) GetByID(ctx context.Context, id uint) (*dto.TipoIndicioResponse, error) {
	t, err := s.findTipo(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTipoIndicioResponse(t)
	return &resp, nil
}

func (s *tipoIndicioService) Listar(ctx context.Context, activo *bool) ([]dto.TipoIndicioResponse, error) {
	tipos, err := s.repo.FindAll(ctx, activo)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := make([]dto.TipoIndicioResponse, len(tipos))
	for i := range tipos {
		resp[i] = toTipoIndicioResponse(&tipos[i])
	}
	return resp, nil
}

func (s *tipoIndicioService) Crear(ctx context.Context, req dto.CrearTipoIndicioRequest, por string) (*dto.TipoIndicioResponse, error) {
	t := &model.TipoIndicio{
		NombreTipo:      req.NombreTipo,
		Descripcion:     req.Descripcion,
		Activo:          true,
		UsuarioCreacion: por,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apperr.Internal(err)
	}
	resp := toTipoIndicioResponse(t)
	return &resp, nil
}

func (s *tipoIndicioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarTipoIndicioRequest, por string) (*dto.TipoIndicioResponse, error) {
	t, err := s.findTipo(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.NombreTipo != "" {
		t.NombreTipo = req.NombreTipo
	}
	if req.Descripcion != nil {
		t.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		t.Activo = *req.Activo
	}
	t.UsuarioActualizacion = &por
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, apperr.Internal(err)
	}
	resp := toTipoIndicioResponse(t)
	return &resp, nil
}

func (s *tipoIndicioService) Eliminar(ctx context.Context, id uint, por string) error {
	if _, err := s.findTipo(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id, por); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *tipoIndicioService) findTipo(ctx context.Context, id uint) (*model.TipoIndicio, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tipo de indicio no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return t, nil
}

func toTipoIndicioResponse(t *model.TipoIndicio) dto.TipoIndicioResponse {
	return dto.TipoIndicioResponse{
		IDTipoIndicio: t.ID,
		NombreTipo:    t.NombreTipo,
		Descripcion:   t.Descripcion,
		Activo:        t.Activo,
	}
}
