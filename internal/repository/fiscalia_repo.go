package repository

import (
	"context"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"gorm.io/gorm"
)

type FiscaliaRepository interface {
	Create(ctx context.Context, f *model.Fiscalia) error
	FindByID(ctx context.Context, id uint) (*model.Fiscalia, error)
	FindAll(ctx context.Context, activo *bool) ([]model.Fiscalia, error)
	Update(ctx context.Context, f *model.Fiscalia) error
	SoftDelete(ctx context.Context, id uint, por string) error
}

type TipoIndicioRepository interface {
	Create(ctx context.Context, t *model.TipoIndicio) error
	FindByID(ctx context.Context, id uint) (*model.TipoIndicio, error)
	FindAll(ctx context.Context, activo *bool) ([]model.TipoIndicio, error)
	Update(ctx context.Context, t *model.TipoIndicio) error
	SoftDelete(ctx context.Context, id uint, por string) error
}

type fiscaliaRepo struct{ db *gorm.DB }

func NewFiscaliaRepository(db *gorm.DB) FiscaliaRepository { return &fiscaliaRepo{db: db} }

func (r *fiscaliaRepo) Create(ctx context.Context, f *model.Fiscalia) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fiscaliaRepo) FindByID(ctx context.Context, id uint) (*model.Fiscalia, error) {
	var f model.Fiscalia
	err := r.db.WithContext(ctx).First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fiscaliaRepo) FindAll(ctx context.Context, activo *bool) ([]model.Fiscalia, error) {
	var fiscalias []model.Fiscalia
	q := r.db.WithContext(ctx)
	if activo != nil {
		q = q.Where("activo = ?", *activo)
	}
	err := q.Order("nombre_fiscalia ASC").Find(&fiscalias).Error
	return fiscalias, err
}

func (r *fiscaliaRepo) Update(ctx context.Context, f *model.Fiscalia) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *fiscaliaRepo) SoftDelete(ctx context.Context, id uint, por string) error {
	return r.db.WithContext(ctx).Model(&model.Fiscalia{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"activo":                false,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   time.Now(),
		}).Error
}

type tipoIndicioRepo struct{ db *gorm.DB }

func NewTipoIndicioRepository(db *gorm.DB) TipoIndicioRepository { return &tipoIndicioRepo{db: db} }

func (r *tipoIndicioRepo) Create(ctx context.Context, t *model.TipoIndicio) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoIndicioRepo) FindByID(ctx context.Context, id uint) (*model.TipoIndicio, error) {
	var t model.TipoIndicio
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoIndicioRepo) FindAll(ctx context.Context, activo *bool) ([]model.TipoIndicio, error) {
	var tipos []model.TipoIndicio
	q := r.db.WithContext(ctx)
	if activo != nil {
		q = q.Where("activo = ?", *activo)
	}
	err := q.Order("nombre_tipo ASC").Find(&tipos).Error
	return tipos, err
}

func (r *tipoIndicioRepo) Update(ctx context.Context, t *model.TipoIndicio) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoIndicioRepo) SoftDelete(ctx context.Context, id uint, por string) error {
	return r.db.WithContext(ctx).Model(&model.TipoIndicio{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"activo":                false,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   time.Now(),
		}).Error
}
