package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"

	"gorm.io/gorm"
)

type EscenaService interface {
	GetByID(ctx context.Context, id uint) (*dto.EscenaResponse, error)
	GetByInvestigacion(ctx context.Context, idInvestigacion uint) ([]dto.EscenaResponse, error)
	Crear(ctx context.Context, idInvestigacion uint, req dto.CrearEscenaRequest, por string) (*dto.EscenaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarEscenaRequest, por string) error
	Eliminar(ctx context.Context, id uint, por string) error
}

type escenaService struct {
	repo            repository.EscenaRepository
	investigaciones repository.InvestigacionRepository
}

func NewEscenaService(repo repository.EscenaRepository, investigaciones repository.InvestigacionRepository) EscenaService {
	return &escenaService{repo: repo, investigaciones: investigaciones}
}

func (s *escenaService) GetByID(ctx context.Context, id uint) (*dto.EscenaResponse, error) {
	escena, err := s.findEscena(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toEscenaResponse(escena)
	return &resp, nil
}

func (s *escenaService) GetByInvestigacion(ctx context.Context, idInvestigacion uint) ([]dto.EscenaResponse, error) {
	if _, err := s.findExpedientePadre(ctx, idInvestigacion); err != nil {
		return nil, err
	}
	escenas, err := s.repo.FindByInvestigacion(ctx, idInvestigacion)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := make([]dto.EscenaResponse, len(escenas))
	for i := range escenas {
		resp[i] = toEscenaResponse(&escenas[i])
	}
	return resp, nil
}

// Crear only blocks approved expedientes: scenes can still be added while
// the case file waits for review.
func (s *escenaService) Crear(ctx context.Context, idInvestigacion uint, req dto.CrearEscenaRequest, por string) (*dto.EscenaResponse, error) {
	inv, err := s.findExpedientePadre(ctx, idInvestigacion)
	if err != nil {
		return nil, err
	}
	if inv.EstadoRevisionDicri == model.EstadoAprobado {
		return nil, apperr.BadRequest("No se pueden agregar escenas a un expediente aprobado")
	}

	escena := &model.Escena{
		IDInvestigacion: idInvestigacion,
		NombreEscena:    req.NombreEscena,
		DireccionEscena: req.DireccionEscena,
		FechaHoraInicio: req.FechaHoraInicio,
		FechaHoraFin:    req.FechaHoraFin,
		Descripcion:     req.Descripcion,
		Activo:          true,
		UsuarioCreacion: por,
	}
	if err := s.repo.Create(ctx, escena); err != nil {
		return nil, apperr.Internal(err)
	}
	resp := toEscenaResponse(escena)
	return &resp, nil
}

func (s *escenaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEscenaRequest, por string) error {
	escena, err := s.findEscena(ctx, id)
	if err != nil {
		return err
	}
	if err := s.verificarMutable(ctx, escena.IDInvestigacion, "modificar"); err != nil {
		return err
	}

	if req.NombreEscena != "" {
		escena.NombreEscena = req.NombreEscena
	}
	if req.DireccionEscena != "" {
		escena.DireccionEscena = req.DireccionEscena
	}
	if req.FechaHoraInicio != nil {
		escena.FechaHoraInicio = *req.FechaHoraInicio
	}
	if req.FechaHoraFin != nil {
		escena.FechaHoraFin = req.FechaHoraFin
	}
	if req.Descripcion != nil {
		escena.Descripcion = req.Descripcion
	}
	escena.UsuarioActualizacion = &por
	if err := s.repo.Update(ctx, escena); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *escenaService) Eliminar(ctx context.Context, id uint, por string) error {
	escena, err := s.findEscena(ctx, id)
	if err != nil {
		return err
	}
	if err := s.verificarMutable(ctx, escena.IDInvestigacion, "eliminar"); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id, por); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// verificarMutable enforces the stricter rule for existing scenes: update and
// delete are only allowed while the expediente is in EN_REGISTRO or
// RECHAZADO. A pending expediente accepts new scenes but freezes the ones
// already attached.
func (s *escenaService) verificarMutable(ctx context.Context, idInvestigacion uint, accion string) error {
	inv, err := s.findExpedientePadre(ctx, idInvestigacion)
	if err != nil {
		return err
	}
	switch inv.EstadoRevisionDicri {
	case model.EstadoEnRegistro, model.EstadoRechazado:
		return nil
	}
	return apperr.BadRequest(fmt.Sprintf(
		"No se puede %s la escena: el expediente está en estado %s (permitido: %s, %s)",
		accion, inv.EstadoRevisionDicri, model.EstadoEnRegistro, model.EstadoRechazado))
}

func (s *escenaService) findEscena(ctx context.Context, id uint) (*model.Escena, error) {
	escena, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Escena no encontrada")
		}
		return nil, apperr.Internal(err)
	}
	return escena, nil
}

func (s *escenaService) findExpedientePadre(ctx context.Context, idInvestigacion uint) (*model.Investigacion, error) {
	inv, err := s.investigaciones.FindByID(ctx, idInvestigacion)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Expediente no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return inv, nil
}

func toEscenaResponse(e *model.Escena) dto.EscenaResponse {
	return dto.EscenaResponse{
		IDEscena:        e.ID,
		IDInvestigacion: e.IDInvestigacion,
		NombreEscena:    e.NombreEscena,
		DireccionEscena: e.DireccionEscena,
		FechaHoraInicio: e.FechaHoraInicio,
		FechaHoraFin:    e.FechaHoraFin,
		Descripcion:     e.Descripcion,
		Activo:          e.Activo,
	}
}
