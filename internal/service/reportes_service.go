package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	estadisticasCacheKey = "reportes:estadisticas"
	estadisticasCacheTTL = time.Minute
)

type ReportesService interface {
	ReporteRevision(ctx context.Context, filters dto.ReporteRevisionFilters) ([]dto.ReporteRevisionExpediente, error)
	Estadisticas(ctx context.Context) (*dto.EstadisticasGenerales, error)
}

type reportesService struct {
	repo repository.ReportesRepository
	rdb  *redis.Client
}

// NewReportesService builds the read-only reporting service. rdb may be nil;
// the statistics cache is then skipped.
func NewReportesService(repo repository.ReportesRepository, rdb *redis.Client) ReportesService {
	return &reportesService{repo: repo, rdb: rdb}
}

func (s *reportesService) ReporteRevision(ctx context.Context, filters dto.ReporteRevisionFilters) ([]dto.ReporteRevisionExpediente, error) {
	if filters.FechaInicio != nil && filters.FechaFin != nil && filters.FechaFin.Before(*filters.FechaInicio) {
		return nil, apperr.BadRequest("La fecha de fin no puede ser anterior a la fecha de inicio")
	}
	if filters.EstadoRevision != "" && !model.EstadoRevisionValido(filters.EstadoRevision) {
		return nil, apperr.BadRequest("Estado de revisión inválido. Valores permitidos: " +
			strings.Join(model.EstadosRevision(), ", "))
	}

	filas, err := s.repo.ReporteRevisionExpedientes(ctx, filters)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return filas, nil
}

// Estadisticas serves the dashboard counters. The aggregate query touches
// every expediente, so results are cached briefly; cache failures fall
// through to the database.
func (s *reportesService) Estadisticas(ctx context.Context) (*dto.EstadisticasGenerales, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, estadisticasCacheKey).Result(); err == nil {
			var stats dto.EstadisticasGenerales
			if err := json.Unmarshal([]byte(raw), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.repo.EstadisticasGenerales(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, estadisticasCacheKey, data, estadisticasCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear estadísticas")
			}
		}
	}
	return stats, nil
}
