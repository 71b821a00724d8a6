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

type IndicioService interface {
	GetByID(ctx context.Context, id uint) (*dto.IndicioResponse, error)
	Listar(ctx context.Context, filters dto.IndicioFilters) ([]dto.IndicioResponse, error)
	GetByEscena(ctx context.Context, idEscena uint) ([]dto.IndicioResponse, error)
	GetByInvestigacion(ctx context.Context, idInvestigacion uint) ([]dto.IndicioResponse, error)
	Crear(ctx context.Context, idEscena uint, req dto.CrearIndicioRequest, idRecolector uint, por string) (*dto.IndicioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarIndicioRequest, por string) error
	Eliminar(ctx context.Context, id uint, por string) error
}

type indicioService struct {
	repo            repository.IndicioRepository
	escenas         repository.EscenaRepository
	investigaciones repository.InvestigacionRepository
}

func NewIndicioService(
	repo repository.IndicioRepository,
	escenas repository.EscenaRepository,
	investigaciones repository.InvestigacionRepository,
) IndicioService {
	return &indicioService{repo: repo, escenas: escenas, investigaciones: investigaciones}
}

func (s *indicioService) GetByID(ctx context.Context, id uint) (*dto.IndicioResponse, error) {
	indicio, err := s.findIndicio(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toIndicioResponse(indicio)
	return &resp, nil
}

func (s *indicioService) Listar(ctx context.Context, filters dto.IndicioFilters) ([]dto.IndicioResponse, error) {
	if filters.EstadoActual != "" && !model.EstadoCustodiaValido(filters.EstadoActual) {
		return nil, apperr.BadRequest("Estado de custodia inválido")
	}
	indicios, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return toIndicioResponses(indicios), nil
}

func (s *indicioService) GetByEscena(ctx context.Context, idEscena uint) ([]dto.IndicioResponse, error) {
	if _, err := s.findEscenaPadre(ctx, idEscena); err != nil {
		return nil, err
	}
	indicios, err := s.repo.FindByEscena(ctx, idEscena)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return toIndicioResponses(indicios), nil
}

// GetByInvestigacion fans out across the expediente's escenas and flattens
// the results in scene order. No global re-sort.
func (s *indicioService) GetByInvestigacion(ctx context.Context, idInvestigacion uint) ([]dto.IndicioResponse, error) {
	if _, err := s.investigaciones.FindByID(ctx, idInvestigacion); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Expediente no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	escenas, err := s.escenas.FindByInvestigacion(ctx, idInvestigacion)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	var resp []dto.IndicioResponse
	for _, escena := range escenas {
		indicios, err := s.repo.FindByEscena(ctx, escena.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		resp = append(resp, toIndicioResponses(indicios)...)
	}
	if resp == nil {
		resp = []dto.IndicioResponse{}
	}
	return resp, nil
}

func (s *indicioService) Crear(ctx context.Context, idEscena uint, req dto.CrearIndicioRequest, idRecolector uint, por string) (*dto.IndicioResponse, error) {
	escena, err := s.findEscenaPadre(ctx, idEscena)
	if err != nil {
		return nil, err
	}
	if err := s.verificarNoAprobado(ctx, escena.IDInvestigacion, "agregar indicios a"); err != nil {
		return nil, err
	}

	indicio := &model.Indicio{
		CodigoIndicio:        req.CodigoIndicio,
		IDEscena:             idEscena,
		IDTipoIndicio:        req.IDTipoIndicio,
		DescripcionCorta:     req.DescripcionCorta,
		UbicacionEspecifica:  req.UbicacionEspecifica,
		FechaHoraRecoleccion: req.FechaHoraRecoleccion,
		IDUsuarioRecolector:  idRecolector,
		EstadoActual:         model.CustodiaRecolectado,
		Activo:               true,
		UsuarioCreacion:      por,
	}
	if err := s.repo.Create(ctx, indicio); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("El código de indicio ya está en uso")
		}
		return nil, apperr.Internal(err)
	}
	resp := toIndicioResponse(indicio)
	return &resp, nil
}

// Actualizar and Eliminar only block approved expedientes. Unlike escenas,
// indicios stay editable while the expediente is pending review.
func (s *indicioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarIndicioRequest, por string) error {
	indicio, err := s.findIndicio(ctx, id)
	if err != nil {
		return err
	}
	escena, err := s.findEscenaPadre(ctx, indicio.IDEscena)
	if err != nil {
		return err
	}
	if err := s.verificarNoAprobado(ctx, escena.IDInvestigacion, "modificar indicios de"); err != nil {
		return err
	}

	if req.DescripcionCorta != "" {
		indicio.DescripcionCorta = req.DescripcionCorta
	}
	if req.UbicacionEspecifica != nil {
		indicio.UbicacionEspecifica = req.UbicacionEspecifica
	}
	if req.FechaHoraRecoleccion != nil {
		indicio.FechaHoraRecoleccion = *req.FechaHoraRecoleccion
	}
	if req.IDTipoIndicio != nil {
		indicio.IDTipoIndicio = *req.IDTipoIndicio
	}
	if req.EstadoActual != "" {
		indicio.EstadoActual = req.EstadoActual
	}
	indicio.UsuarioActualizacion = &por
	if err := s.repo.Update(ctx, indicio); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *indicioService) Eliminar(ctx context.Context, id uint, por string) error {
	indicio, err := s.findIndicio(ctx, id)
	if err != nil {
		return err
	}
	escena, err := s.findEscenaPadre(ctx, indicio.IDEscena)
	if err != nil {
		return err
	}
	if err := s.verificarNoAprobado(ctx, escena.IDInvestigacion, "eliminar indicios de"); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id, por); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *indicioService) verificarNoAprobado(ctx context.Context, idInvestigacion uint, accion string) error {
	inv, err := s.investigaciones.FindByID(ctx, idInvestigacion)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Expediente no encontrado")
		}
		return apperr.Internal(err)
	}
	if inv.EstadoRevisionDicri == model.EstadoAprobado {
		return apperr.BadRequest(fmt.Sprintf("No se pueden %s un expediente aprobado", accion))
	}
	return nil
}

func (s *indicioService) findIndicio(ctx context.Context, id uint) (*model.Indicio, error) {
	indicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Indicio no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return indicio, nil
}

func (s *indicioService) findEscenaPadre(ctx context.Context, idEscena uint) (*model.Escena, error) {
	escena, err := s.escenas.FindByID(ctx, idEscena)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Escena no encontrada")
		}
		return nil, apperr.Internal(err)
	}
	return escena, nil
}

func toIndicioResponse(i *model.Indicio) dto.IndicioResponse {
	return dto.IndicioResponse{
		IDIndicio:            i.ID,
		CodigoIndicio:        i.CodigoIndicio,
		IDEscena:             i.IDEscena,
		NombreEscena:         i.NombreEscena,
		IDTipoIndicio:        i.IDTipoIndicio,
		NombreTipo:           i.NombreTipo,
		DescripcionCorta:     i.DescripcionCorta,
		UbicacionEspecifica:  i.UbicacionEspecifica,
		FechaHoraRecoleccion: i.FechaHoraRecoleccion,
		IDUsuarioRecolector:  i.IDUsuarioRecolector,
		NombreRecolector:     i.NombreRecolector,
		EstadoActual:         i.EstadoActual,
		Activo:               i.Activo,
	}
}

func toIndicioResponses(indicios []model.Indicio) []dto.IndicioResponse {
	resp := make([]dto.IndicioResponse, len(indicios))
	for i := range indicios {
		resp[i] = toIndicioResponse(&indicios[i])
	}
	return resp
}
