package service

import (
	"context"
	"testing"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporteRevisionRangoInvalido(t *testing.T) {
	svc := NewReportesService(&stubReportesRepo{}, nil)

	inicio := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(0, 0, -5)
	_, err := svc.ReporteRevision(context.Background(), dto.ReporteRevisionFilters{
		FechaInicio: &inicio,
		FechaFin:    &fin,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	assert.Contains(t, err.Error(), "fecha de fin")
}

func TestReporteRevisionEstadoInvalido(t *testing.T) {
	svc := NewReportesService(&stubReportesRepo{}, nil)

	_, err := svc.ReporteRevision(context.Background(), dto.ReporteRevisionFilters{
		EstadoRevision: "ARCHIVADO",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestReporteRevision(t *testing.T) {
	repo := &stubReportesRepo{filas: []dto.ReporteRevisionExpediente{
		{CodigoCaso: "DICRI-2026-00001", NombreCaso: "Allanamiento zona 18", EstadoActual: model.EstadoAprobado},
	}}
	svc := NewReportesService(repo, nil)

	filas, err := svc.ReporteRevision(context.Background(), dto.ReporteRevisionFilters{
		EstadoRevision: model.EstadoAprobado,
	})
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "DICRI-2026-00001", filas[0].CodigoCaso)
}

func TestEstadisticasUsaCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := &stubReportesRepo{stats: dto.EstadisticasGenerales{
		TotalExpedientes: 12,
		Aprobados:        4,
	}}
	svc := NewReportesService(repo, rdb)

	stats, err := svc.Estadisticas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalExpedientes)
	assert.Equal(t, 1, repo.consultas)

	// la segunda llamada se sirve desde redis, sin tocar la base
	stats, err = svc.Estadisticas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalExpedientes)
	assert.Equal(t, int64(4), stats.Aprobados)
	assert.Equal(t, 1, repo.consultas)

	// vencido el TTL vuelve a consultarse
	mr.FastForward(2 * time.Minute)
	_, err = svc.Estadisticas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.consultas)
}

func TestEstadisticasSinRedis(t *testing.T) {
	repo := &stubReportesRepo{stats: dto.EstadisticasGenerales{TotalExpedientes: 3}}
	svc := NewReportesService(repo, nil)

	for i := 0; i < 2; i++ {
		stats, err := svc.Estadisticas(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalExpedientes)
	}
	assert.Equal(t, 2, repo.consultas)
}
