package service

import (
	"context"
	"testing"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearYListarFiscalias(t *testing.T) {
	svc := NewFiscaliaService(newStubFiscaliaRepo())
	ctx := context.Background()

	direccion := "6a avenida 3-45, zona 1"
	creada, err := svc.Crear(ctx, dto.CrearFiscaliaRequest{
		NombreFiscalia: "Fiscalía Metropolitana",
		Direccion:      &direccion,
	}, "admin")
	require.NoError(t, err)
	assert.True(t, creada.Activo)

	lista, err := svc.Listar(ctx, nil)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Fiscalía Metropolitana", lista[0].NombreFiscalia)
	require.NotNil(t, lista[0].Direccion)
	assert.Equal(t, direccion, *lista[0].Direccion)
}

func TestActualizarFiscalia(t *testing.T) {
	svc := NewFiscaliaService(newStubFiscaliaRepo())
	ctx := context.Background()

	creada, err := svc.Crear(ctx, dto.CrearFiscaliaRequest{NombreFiscalia: "Fiscalía Municipal"}, "admin")
	require.NoError(t, err)

	telefono := "2411-9191"
	resp, err := svc.Actualizar(ctx, creada.IDFiscalia, dto.ActualizarFiscaliaRequest{
		NombreFiscalia: "Fiscalía Municipal de Mixco",
		Telefono:       &telefono,
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Fiscalía Municipal de Mixco", resp.NombreFiscalia)
	require.NotNil(t, resp.Telefono)
	assert.Equal(t, telefono, *resp.Telefono)
}

func TestEliminarFiscaliaLaOcultaDeGet(t *testing.T) {
	svc := NewFiscaliaService(newStubFiscaliaRepo())
	ctx := context.Background()

	creada, err := svc.Crear(ctx, dto.CrearFiscaliaRequest{NombreFiscalia: "Fiscalía de Turno"}, "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, creada.IDFiscalia, "admin"))

	_, err = svc.GetByID(ctx, creada.IDFiscalia)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Contains(t, err.Error(), "Fiscalía")
}

func TestGetFiscaliaInexistente(t *testing.T) {
	svc := NewFiscaliaService(newStubFiscaliaRepo())

	_, err := svc.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTipoIndicioCRUD(t *testing.T) {
	svc := NewTipoIndicioService(newStubTipoIndicioRepo())
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.CrearTipoIndicioRequest{NombreTipo: "Arma de fuego"}, "admin")
	require.NoError(t, err)

	descripcion := "Armas cortas y largas"
	resp, err := svc.Actualizar(ctx, creado.IDTipoIndicio, dto.ActualizarTipoIndicioRequest{
		Descripcion: &descripcion,
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Arma de fuego", resp.NombreTipo)

	require.NoError(t, svc.Eliminar(ctx, creado.IDTipoIndicio, "admin"))
	_, err = svc.GetByID(ctx, creado.IDTipoIndicio)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
