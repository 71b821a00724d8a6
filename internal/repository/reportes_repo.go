package repository

import (
	"context"

	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"gorm.io/gorm"
)

type ReportesRepository interface {
	ReporteRevisionExpedientes(ctx context.Context, filters dto.ReporteRevisionFilters) ([]dto.ReporteRevisionExpediente, error)
	EstadisticasGenerales(ctx context.Context) (*dto.EstadisticasGenerales, error)
}

type reportesRepo struct{ db *gorm.DB }

func NewReportesRepository(db *gorm.DB) ReportesRepository { return &reportesRepo{db: db} }

func (r *reportesRepo) ReporteRevisionExpedientes(ctx context.Context, filters dto.ReporteRevisionFilters) ([]dto.ReporteRevisionExpediente, error) {
	var filas []dto.ReporteRevisionExpediente
	q := r.db.WithContext(ctx).Model(&model.Investigacion{}).
		Select(`investigaciones.codigo_caso,
			investigaciones.nombre_caso,
			f.nombre_fiscalia,
			investigaciones.fecha_creacion AS fecha_registro,
			ur.nombre || ' ' || ur.apellido AS tecnico_registra,
			investigaciones.estado_revision_dicri AS estado_actual,
			investigaciones.fecha_revision,
			uc.nombre || ' ' || uc.apellido AS coordinador_revision,
			investigaciones.justificacion_revision`).
		Joins("JOIN fiscalias f ON f.id = investigaciones.id_fiscalia").
		Joins("JOIN usuarios ur ON ur.id = investigaciones.id_usuario_registro").
		Joins("LEFT JOIN usuarios uc ON uc.id = investigaciones.id_usuario_revision").
		Where("investigaciones.activo = true")
	if filters.FechaInicio != nil {
		q = q.Where("investigaciones.fecha_creacion >= ?", *filters.FechaInicio)
	}
	if filters.FechaFin != nil {
		q = q.Where("investigaciones.fecha_creacion <= ?", *filters.FechaFin)
	}
	if filters.EstadoRevision != "" {
		q = q.Where("investigaciones.estado_revision_dicri = ?", filters.EstadoRevision)
	}
	err := q.Order("investigaciones.fecha_creacion ASC").Scan(&filas).Error
	return filas, err
}

func (r *reportesRepo) EstadisticasGenerales(ctx context.Context) (*dto.EstadisticasGenerales, error) {
	stats := &dto.EstadisticasGenerales{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Investigacion{}).Where("activo = true").Count(&stats.TotalExpedientes).Error; err != nil {
		return nil, err
	}

	porEstado := map[string]*int64{
		model.EstadoEnRegistro:        &stats.EnRegistro,
		model.EstadoPendienteRevision: &stats.PendienteRevision,
		model.EstadoAprobado:          &stats.Aprobados,
		model.EstadoRechazado:         &stats.Rechazados,
	}
	for estado, destino := range porEstado {
		if err := db.Model(&model.Investigacion{}).
			Where("activo = true AND estado_revision_dicri = ?", estado).
			Count(destino).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&model.Indicio{}).Where("activo = true").Count(&stats.TotalIndicios).Error; err != nil {
		return nil, err
	}

	err := db.Model(&model.Investigacion{}).
		Select("f.nombre_fiscalia, COUNT(*) AS total").
		Joins("JOIN fiscalias f ON f.id = investigaciones.id_fiscalia").
		Where("investigaciones.activo = true").
		Group("f.nombre_fiscalia").
		Order("total DESC").
		Scan(&stats.ExpedientesPorFiscalia).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
