package repository

import (
	"context"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	// FindByUsername loads the user regardless of the activo flag: the auth
	// flow needs to distinguish "inactive" from "not found".
	FindByUsername(ctx context.Context, nombreUsuario string) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindAll(ctx context.Context, activo *bool) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	UpdatePassword(ctx context.Context, id uint, claveHash, por string) error
	UpdateLastAccess(ctx context.Context, id uint) error
	IncrementFailedAttempts(ctx context.Context, id uint) error
	ResetFailedAttempts(ctx context.Context, id uint) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, nombreUsuario string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("nombre_usuario = ?", nombreUsuario).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindAll(ctx context.Context, activo *bool) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	q := r.db.WithContext(ctx)
	if activo != nil {
		q = q.Where("activo = ?", *activo)
	}
	err := q.Order("id ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) UpdatePassword(ctx context.Context, id uint, claveHash, por string) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"clave_hash":            claveHash,
			"cambiar_clave":         false,
			"usuario_actualizacion": por,
			"fecha_actualizacion":   time.Now(),
		}).Error
}

func (r *usuarioRepo) UpdateLastAccess(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).
		Update("fecha_ultimo_acceso", time.Now()).Error
}

func (r *usuarioRepo) IncrementFailedAttempts(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).
		Update("intentos_fallidos", gorm.Expr("intentos_fallidos + 1")).Error
}

func (r *usuarioRepo) ResetFailedAttempts(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).
		Update("intentos_fallidos", 0).Error
}
