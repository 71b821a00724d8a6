package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"gorm.io/gorm"
)

// ErrTransicionPerdida is returned when a state transition's conditional
// update matched zero rows: another request changed the expediente between
// the read and the write. Callers surface it as a conflict.
var ErrTransicionPerdida = errors.New("transición de estado perdida por concurrencia")

type InvestigacionRepository interface {
	Create(ctx context.Context, inv *model.Investigacion) error
	FindByID(ctx context.Context, id uint) (*model.Investigacion, error)
	FindAll(ctx context.Context, filters dto.InvestigacionFilters) ([]model.Investigacion, error)
	Update(ctx context.Context, inv *model.Investigacion) error
	SoftDelete(ctx context.Context, id uint, por string) error
	SendToReview(ctx context.Context, id uint, por string) error
	Approve(ctx context.Context, id, idRevisor uint, por string) error
	Reject(ctx context.Context, id, idRevisor uint, justificacion, por string) error
}

type investigacionRepo struct{ db *gorm.DB }

func NewInvestigacionRepository(db *gorm.DB) InvestigacionRepository {
	return &investigacionRepo{db: db}
}

func (r *investigacionRepo) Create(ctx context.Context, inv *model.Investigacion) error {
	if inv.EstadoRevisionDicri == "" {
		inv.EstadoRevisionDicri = model.EstadoEnRegistro
	}
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *investigacionRepo) FindByID(ctx context.Context, id uint) (*model.Investigacion, error) {
	var inv model.Investigacion
	err := r.db.WithContext(ctx).First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *investigacionRepo) FindAll(ctx context.Context, filters dto.InvestigacionFilters) ([]model.Investigacion, error) {
	var invs []model.Investigacion
	q := r.db.WithContext(ctx).
		Select("investigaciones.*, f.nombre_fiscalia AS nombre_fiscalia").
		Joins("LEFT JOIN fiscalias f ON f.id = investigaciones.id_fiscalia")
	if filters.Activo != nil {
		q = q.Where("investigaciones.activo = ?", *filters.Activo)
	}
	if filters.EstadoRevision != "" {
		q = q.Where("investigaciones.estado_revision_dicri = ?", filters.EstadoRevision)
	}
	if filters.IDUsuarioRegistro != nil {
		q = q.Where("investigaciones.id_usuario_registro = ?", *filters.IDUsuarioRegistro)
	}
	if filters.IDFiscalia != nil {
		q = q.Where("investigaciones.id_fiscalia = ?", *filters.IDFiscalia)
	}
	err := q.Order("investigaciones.id ASC").Find(&invs).Error
	return invs, err
}

func (r *investigacionRepo) Update(ctx context.Context, inv *model.Investigacion) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *investigacionRepo) SoftDelete(ctx context.Context, id uint, por string) error {
	return r.db.WithContext(ctx).Model(&model.Investigacion{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"activo":                false,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   time.Now(),
		}).Error
}

// Transitions are conditional updates: the WHERE clause re-checks the source
// state so two racing requests cannot both win. RowsAffected == 0 after the
// service already saw a valid source state means the race was lost.

func (r *investigacionRepo) SendToReview(ctx context.Context, id uint, por string) error {
	return r.transition(ctx, id,
		[]string{model.EstadoEnRegistro, model.EstadoRechazado},
		map[string]interface{}{
			"estado_revision_dicri": model.EstadoPendienteRevision,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   time.Now(),
		})
}

func (r *investigacionRepo) Approve(ctx context.Context, id, idRevisor uint, por string) error {
	now := time.Now()
	return r.transition(ctx, id,
		[]string{model.EstadoPendienteRevision, model.EstadoRechazado},
		map[string]interface{}{
			"estado_revision_dicri": model.EstadoAprobado,
			"id_usuario_revision":   idRevisor,
			"fecha_revision":        now,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   now,
		})
}

func (r *investigacionRepo) Reject(ctx context.Context, id, idRevisor uint, justificacion, por string) error {
	now := time.Now()
	return r.transition(ctx, id,
		[]string{model.EstadoPendienteRevision},
		map[string]interface{}{
			"estado_revision_dicri":  model.EstadoRechazado,
			"id_usuario_revision":    idRevisor,
			"justificacion_revision": justificacion,
			"fecha_revision":         now,
			"usuario_actualizacion":  por,
			"fecha_actualizacion":    now,
		})
}

func (r *investigacionRepo) transition(ctx context.Context, id uint, desde []string, cambios map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Investigacion{}).
		Where("id = ? AND estado_revision_dicri IN ?", id, desde).
		Updates(cambios)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransicionPerdida
	}
	return nil
}
