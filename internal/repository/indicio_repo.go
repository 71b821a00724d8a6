package repository

import (
	"context"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"gorm.io/gorm"
)

type IndicioRepository interface {
	Create(ctx context.Context, i *model.Indicio) error
	FindByID(ctx context.Context, id uint) (*model.Indicio, error)
	FindByEscena(ctx context.Context, idEscena uint) ([]model.Indicio, error)
	FindAll(ctx context.Context, filters dto.IndicioFilters) ([]model.Indicio, error)
	Update(ctx context.Context, i *model.Indicio) error
	SoftDelete(ctx context.Context, id uint, por string) error
}

type indicioRepo struct{ db *gorm.DB }

func NewIndicioRepository(db *gorm.DB) IndicioRepository { return &indicioRepo{db: db} }

func (r *indicioRepo) Create(ctx context.Context, i *model.Indicio) error {
	if i.EstadoActual == "" {
		i.EstadoActual = model.CustodiaRecolectado
	}
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *indicioRepo) FindByID(ctx context.Context, id uint) (*model.Indicio, error) {
	var i model.Indicio
	err := r.db.WithContext(ctx).First(&i, id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *indicioRepo) FindByEscena(ctx context.Context, idEscena uint) ([]model.Indicio, error) {
	var indicios []model.Indicio
	err := r.withJoins(ctx).
		Where("indicios.id_escena = ? AND indicios.activo = true", idEscena).
		Order("indicios.id ASC").
		Find(&indicios).Error
	return indicios, err
}

func (r *indicioRepo) FindAll(ctx context.Context, filters dto.IndicioFilters) ([]model.Indicio, error) {
	var indicios []model.Indicio
	q := r.withJoins(ctx)
	if filters.Activo != nil {
		q = q.Where("indicios.activo = ?", *filters.Activo)
	}
	if filters.IDEscena != nil {
		q = q.Where("indicios.id_escena = ?", *filters.IDEscena)
	}
	if filters.IDTipoIndicio != nil {
		q = q.Where("indicios.id_tipo_indicio = ?", *filters.IDTipoIndicio)
	}
	if filters.EstadoActual != "" {
		q = q.Where("indicios.estado_actual = ?", filters.EstadoActual)
	}
	err := q.Order("indicios.id ASC").Find(&indicios).Error
	return indicios, err
}

func (r *indicioRepo) withJoins(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Indicio{}).
		Select("indicios.*, e.nombre_escena AS nombre_escena, t.nombre_tipo AS nombre_tipo, " +
			"u.nombre || ' ' || u.apellido AS nombre_recolector").
		Joins("LEFT JOIN escenas e ON e.id = indicios.id_escena").
		Joins("LEFT JOIN tipos_indicio t ON t.id = indicios.id_tipo_indicio").
		Joins("LEFT JOIN usuarios u ON u.id = indicios.id_usuario_recolector")
}

func (r *indicioRepo) Update(ctx context.Context, i *model.Indicio) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *indicioRepo) SoftDelete(ctx context.Context, id uint, por string) error {
	return r.db.WithContext(ctx).Model(&model.Indicio{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"activo":                false,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   time.Now(),
		}).Error
}
