package repository

import (
	"context"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"gorm.io/gorm"
)

type EscenaRepository interface {
	Create(ctx context.Context, e *model.Escena) error
	FindByID(ctx context.Context, id uint) (*model.Escena, error)
	FindByInvestigacion(ctx context.Context, idInvestigacion uint) ([]model.Escena, error)
	Update(ctx context.Context, e *model.Escena) error
	SoftDelete(ctx context.Context, id uint, por string) error
}

type escenaRepo struct{ db *gorm.DB }

func NewEscenaRepository(db *gorm.DB) EscenaRepository { return &escenaRepo{db: db} }

func (r *escenaRepo) Create(ctx context.Context, e *model.Escena) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *escenaRepo) FindByID(ctx context.Context, id uint) (*model.Escena, error) {
	var e model.Escena
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *escenaRepo) FindByInvestigacion(ctx context.Context, idInvestigacion uint) ([]model.Escena, error) {
	var escenas []model.Escena
	err := r.db.WithContext(ctx).
		Where("id_investigacion = ? AND activo = true", idInvestigacion).
		Order("id ASC").
		Find(&escenas).Error
	return escenas, err
}

func (r *escenaRepo) Update(ctx context.Context, e *model.Escena) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *escenaRepo) SoftDelete(ctx context.Context, id uint, por string) error {
	return r.db.WithContext(ctx).Model(&model.Escena{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"activo":                false,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   time.Now(),
		}).Error
}
