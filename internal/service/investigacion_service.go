package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/config"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"
	"github.com/jfrosalesgt/dicki-backend/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Notificador abstracts the async notification queue so the workflow engine
// can be tested without Redis.
type Notificador interface {
	EnqueueNotificacionRevision(ctx context.Context, p worker.NotificacionRevisionPayload) error
}

type InvestigacionService interface {
	GetByID(ctx context.Context, id uint) (*dto.InvestigacionResponse, error)
	Crear(ctx context.Context, req dto.CrearInvestigacionRequest, idUsuarioRegistro uint, por string) (*dto.InvestigacionResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarInvestigacionRequest, por string) error
	Eliminar(ctx context.Context, id uint, por string) error
	Listar(ctx context.Context, filters dto.InvestigacionFilters) ([]dto.InvestigacionResponse, error)
	EnviarARevision(ctx context.Context, id uint, por string) error
	Aprobar(ctx context.Context, id, idCoordinador uint, por string) error
	Rechazar(ctx context.Context, id, idCoordinador uint, justificacion, por string) error
}

type investigacionService struct {
	repo        repository.InvestigacionRepository
	usuarios    repository.UsuarioRepository
	notificador Notificador
	cfg         *config.Config
}

func NewInvestigacionService(
	repo repository.InvestigacionRepository,
	usuarios repository.UsuarioRepository,
	notificador Notificador,
	cfg *config.Config,
) InvestigacionService {
	return &investigacionService{repo: repo, usuarios: usuarios, notificador: notificador, cfg: cfg}
}

func (s *investigacionService) GetByID(ctx context.Context, id uint) (*dto.InvestigacionResponse, error) {
	inv, err := s.findExpediente(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toInvestigacionResponse(inv)
	return &resp, nil
}

func (s *investigacionService) Crear(ctx context.Context, req dto.CrearInvestigacionRequest, idUsuarioRegistro uint, por string) (*dto.InvestigacionResponse, error) {
	inv := &model.Investigacion{
		CodigoCaso:          req.CodigoCaso,
		NombreCaso:          req.NombreCaso,
		FechaInicio:         req.FechaInicio,
		IDFiscalia:          req.IDFiscalia,
		DescripcionHechos:   req.DescripcionHechos,
		EstadoRevisionDicri: model.EstadoEnRegistro,
		IDUsuarioRegistro:   idUsuarioRegistro,
		Activo:              true,
		UsuarioCreacion:     por,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("El código de caso ya está en uso")
		}
		return nil, apperr.Internal(err)
	}
	resp := toInvestigacionResponse(inv)
	return &resp, nil
}

// Actualizar has no review-state gate: only the child escenas and indicios
// are locked down by the workflow. The expediente record itself stays
// editable in every state.
func (s *investigacionService) Actualizar(ctx context.Context, id uint, req dto.ActualizarInvestigacionRequest, por string) error {
	inv, err := s.findExpediente(ctx, id)
	if err != nil {
		return err
	}
	if req.NombreCaso != "" {
		inv.NombreCaso = req.NombreCaso
	}
	if req.FechaInicio != nil {
		inv.FechaInicio = *req.FechaInicio
	}
	if req.IDFiscalia != nil {
		inv.IDFiscalia = *req.IDFiscalia
	}
	if req.DescripcionHechos != nil {
		inv.DescripcionHechos = req.DescripcionHechos
	}
	inv.UsuarioActualizacion = &por
	if err := s.repo.Update(ctx, inv); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *investigacionService) Eliminar(ctx context.Context, id uint, por string) error {
	if _, err := s.findExpediente(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id, por); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *investigacionService) Listar(ctx context.Context, filters dto.InvestigacionFilters) ([]dto.InvestigacionResponse, error) {
	if filters.EstadoRevision != "" && !model.EstadoRevisionValido(filters.EstadoRevision) {
		return nil, apperr.BadRequest("Estado de revisión inválido. Valores permitidos: " +
			strings.Join(model.EstadosRevision(), ", "))
	}
	invs, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	resp := make([]dto.InvestigacionResponse, len(invs))
	for i := range invs {
		resp[i] = toInvestigacionResponse(&invs[i])
	}
	return resp, nil
}

func (s *investigacionService) EnviarARevision(ctx context.Context, id uint, por string) error {
	inv, err := s.findExpediente(ctx, id)
	if err != nil {
		return err
	}
	if inv.EstadoRevisionDicri != model.EstadoEnRegistro && inv.EstadoRevisionDicri != model.EstadoRechazado {
		return apperr.BadRequest("El expediente debe estar en estado EN_REGISTRO o RECHAZADO para enviarse a revisión")
	}
	if err := s.repo.SendToReview(ctx, id, por); err != nil {
		return s.transitionError(err)
	}

	s.notificar(ctx, worker.NotificacionRevisionPayload{
		CodigoCaso:  inv.CodigoCaso,
		NombreCaso:  inv.NombreCaso,
		NuevoEstado: model.EstadoPendienteRevision,
		Destinatario: s.cfg.CoordinacionEmail,
	})
	return nil
}

func (s *investigacionService) Aprobar(ctx context.Context, id, idCoordinador uint, por string) error {
	inv, err := s.findExpediente(ctx, id)
	if err != nil {
		return err
	}
	if inv.EstadoRevisionDicri != model.EstadoPendienteRevision && inv.EstadoRevisionDicri != model.EstadoRechazado {
		return apperr.BadRequest("El expediente debe estar en estado PENDIENTE_REVISION o RECHAZADO para aprobarse")
	}
	if err := s.repo.Approve(ctx, id, idCoordinador, por); err != nil {
		return s.transitionError(err)
	}

	s.notificarRegistrador(ctx, inv, model.EstadoAprobado, "")
	return nil
}

func (s *investigacionService) Rechazar(ctx context.Context, id, idCoordinador uint, justificacion, por string) error {
	inv, err := s.findExpediente(ctx, id)
	if err != nil {
		return err
	}
	// State first, then justification: a rejection attempt on an expediente
	// that is not pending reports the state problem even with an empty
	// justification.
	if inv.EstadoRevisionDicri != model.EstadoPendienteRevision {
		return apperr.BadRequest("El expediente debe estar en estado PENDIENTE_REVISION para rechazarse")
	}
	if strings.TrimSpace(justificacion) == "" {
		return apperr.BadRequest("La justificación de rechazo es obligatoria")
	}
	if err := s.repo.Reject(ctx, id, idCoordinador, justificacion, por); err != nil {
		return s.transitionError(err)
	}

	s.notificarRegistrador(ctx, inv, model.EstadoRechazado, justificacion)
	return nil
}

func (s *investigacionService) findExpediente(ctx context.Context, id uint) (*model.Investigacion, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Expediente no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return inv, nil
}

func (s *investigacionService) transitionError(err error) error {
	if errors.Is(err, repository.ErrTransicionPerdida) {
		return apperr.Conflict("El expediente fue modificado por otra operación")
	}
	return apperr.Internal(err)
}

// notificarRegistrador mails the technician who registered the expediente.
// Notification failures never fail the transition.
func (s *investigacionService) notificarRegistrador(ctx context.Context, inv *model.Investigacion, nuevoEstado, justificacion string) {
	if s.notificador == nil {
		return
	}
	registrador, err := s.usuarios.FindByID(ctx, inv.IDUsuarioRegistro)
	if err != nil {
		log.Warn().Err(err).Uint("id_usuario", inv.IDUsuarioRegistro).
			Msg("notificación de revisión: registrador no encontrado")
		return
	}
	s.notificar(ctx, worker.NotificacionRevisionPayload{
		CodigoCaso:    inv.CodigoCaso,
		NombreCaso:    inv.NombreCaso,
		NuevoEstado:   nuevoEstado,
		Justificacion: justificacion,
		Destinatario:  registrador.Email,
	})
}

func (s *investigacionService) notificar(ctx context.Context, p worker.NotificacionRevisionPayload) {
	if s.notificador == nil || p.Destinatario == "" {
		return
	}
	if err := s.notificador.EnqueueNotificacionRevision(ctx, p); err != nil {
		log.Warn().Err(err).Str("codigo_caso", p.CodigoCaso).
			Msg("no se pudo encolar la notificación de revisión")
	}
}

func toInvestigacionResponse(inv *model.Investigacion) dto.InvestigacionResponse {
	return dto.InvestigacionResponse{
		IDInvestigacion:       inv.ID,
		CodigoCaso:            inv.CodigoCaso,
		NombreCaso:            inv.NombreCaso,
		FechaInicio:           inv.FechaInicio,
		IDFiscalia:            inv.IDFiscalia,
		NombreFiscalia:        inv.NombreFiscalia,
		DescripcionHechos:     inv.DescripcionHechos,
		EstadoRevisionDicri:   inv.EstadoRevisionDicri,
		IDUsuarioRegistro:     inv.IDUsuarioRegistro,
		IDUsuarioRevision:     inv.IDUsuarioRevision,
		JustificacionRevision: inv.JustificacionRevision,
		FechaRevision:         inv.FechaRevision,
		Activo:                inv.Activo,
	}
}
