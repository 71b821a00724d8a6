package repository

import (
	"context"

	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"gorm.io/gorm"
)

type PerfilRepository interface {
	FindByUsuario(ctx context.Context, idUsuario uint) ([]model.Perfil, error)
	FindAll(ctx context.Context, activo *bool) ([]model.Perfil, error)
}

type RoleRepository interface {
	FindByUsuario(ctx context.Context, idUsuario uint) ([]model.Role, error)
	FindAll(ctx context.Context, activo *bool) ([]model.Role, error)
}

type ModuloRepository interface {
	// FindByUsuario resolves the modules visible to a user through their
	// perfiles, ordered ascending by orden.
	FindByUsuario(ctx context.Context, idUsuario uint) ([]model.Modulo, error)
	FindAll(ctx context.Context, activo *bool) ([]model.Modulo, error)
}

type perfilRepo struct{ db *gorm.DB }

func NewPerfilRepository(db *gorm.DB) PerfilRepository { return &perfilRepo{db: db} }

func (r *perfilRepo) FindByUsuario(ctx context.Context, idUsuario uint) ([]model.Perfil, error) {
	var perfiles []model.Perfil
	err := r.db.WithContext(ctx).
		Joins("JOIN usuario_perfiles up ON up.id_perfil = perfiles.id").
		Where("up.id_usuario = ? AND perfiles.activo = true", idUsuario).
		Find(&perfiles).Error
	return perfiles, err
}

func (r *perfilRepo) FindAll(ctx context.Context, activo *bool) ([]model.Perfil, error) {
	var perfiles []model.Perfil
	q := r.db.WithContext(ctx)
	if activo != nil {
		q = q.Where("activo = ?", *activo)
	}
	err := q.Find(&perfiles).Error
	return perfiles, err
}

type roleRepo struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) RoleRepository { return &roleRepo{db: db} }

func (r *roleRepo) FindByUsuario(ctx context.Context, idUsuario uint) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).
		Joins("JOIN usuario_roles ur ON ur.id_role = roles.id").
		Where("ur.id_usuario = ? AND roles.activo = true", idUsuario).
		Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindAll(ctx context.Context, activo *bool) ([]model.Role, error) {
	var roles []model.Role
	q := r.db.WithContext(ctx)
	if activo != nil {
		q = q.Where("activo = ?", *activo)
	}
	err := q.Find(&roles).Error
	return roles, err
}

type moduloRepo struct{ db *gorm.DB }

func NewModuloRepository(db *gorm.DB) ModuloRepository { return &moduloRepo{db: db} }

func (r *moduloRepo) FindByUsuario(ctx context.Context, idUsuario uint) ([]model.Modulo, error) {
	var modulos []model.Modulo
	err := r.db.WithContext(ctx).
		Distinct("modulos.*").
		Joins("JOIN perfil_modulos pm ON pm.id_modulo = modulos.id").
		Joins("JOIN usuario_perfiles up ON up.id_perfil = pm.id_perfil").
		Where("up.id_usuario = ? AND modulos.activo = true", idUsuario).
		Order("modulos.orden ASC").
		Find(&modulos).Error
	return modulos, err
}

func (r *moduloRepo) FindAll(ctx context.Context, activo *bool) ([]model.Modulo, error) {
	var modulos []model.Modulo
	q := r.db.WithContext(ctx)
	if activo != nil {
		q = q.Where("activo = ?", *activo)
	}
	err := q.Order("orden ASC").Find(&modulos).Error
	return modulos, err
}
