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

type FiscaliaService interface {
	GetByID(ctx context.Context, id uint) (*dto.FiscaliaResponse, error)
	Listar(ctx context.Context, activo *bool) ([]dto.FiscaliaResponse, error)
	Crear(ctx context.Context, req dto.CrearFiscaliaRequest, por string) (*dto.FiscaliaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarFiscaliaRequest, por string) (*dto.FiscaliaResponse, error)
	Eliminar(ctx context.Context, id uint, por string) error
}

type fiscaliaService struct {
	repo repository.FiscaliaRepository
}

func NewFiscaliaService(repo repository.FiscaliaRepository) FiscaliaService {
	return &fiscaliaService{repo: repo}
}

func (s *fiscaliaService) GetByID(ctx context.Context, id uint) (*dto.FiscaliaResponse, error) {
	f, err := s.findFiscalia(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toFiscaliaResponse(f)
	return &resp, nil
}

func (s *fiscaliaService) Listar(ctx context.Context, activo *bool) ([]dto.FiscaliaResponse, error) {
	fiscalias, err := s.repo.FindAll(ctx, activo)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := make([]dto.FiscaliaResponse, len(fiscalias))
	for i := range fiscalias {
		resp[i] = toFiscaliaResponse(&fiscalias[i])
	}
	return resp, nil
}

func (s *fiscaliaService) Crear(ctx context.Context, req dto.CrearFiscaliaRequest, por string) (*dto.FiscaliaResponse, error) {
	f := &model.Fiscalia{
		NombreFiscalia:  req.NombreFiscalia,
		Direccion:       req.Direccion,
		Telefono:        req.Telefono,
		Activo:          true,
		UsuarioCreacion: por,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, apperr.Internal(err)
	}
	resp := toFiscaliaResponse(f)
	return &resp, nil
}

func (s *fiscaliaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarFiscaliaRequest, por string) (*dto.FiscaliaResponse, error) {
	f, err := s.findFiscalia(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.NombreFiscalia != "" {
		f.NombreFiscalia = req.NombreFiscalia
	}
	if req.Direccion != nil {
		f.Direccion = req.Direccion
	}
	if req.Telefono != nil {
		f.Telefono = req.Telefono
	}
	if req.Activo != nil {
		f.Activo = *req.Activo
	}
	f.UsuarioActualizacion = &por
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, apperr.Internal(err)
	}
	resp := toFiscaliaResponse(f)
	return &resp, nil
}

func (s *fiscaliaService) Eliminar(ctx context.Context, id uint, por string) error {
	if _, err := s.findFiscalia(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id, por); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *fiscaliaService) findFiscalia(ctx context.Context, id uint) (*model.Fiscalia, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Fiscalía no encontrada")
		}
		return nil, apperr.Internal(err)
	}
	return f, nil
}

func toFiscaliaResponse(f *model.Fiscalia) dto.FiscaliaResponse {
	return dto.FiscaliaResponse{
		IDFiscalia:     f.ID,
		NombreFiscalia: f.NombreFiscalia,
		Direccion:      f.Direccion,
		Telefono:       f.Telefono,
		Activo:         f.Activo,
	}
}
