package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/apperr"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indicioFixture struct {
	indicios *stubIndicioRepo
	escenas  *stubEscenaRepo
	invs     *stubInvestigacionRepo
	svc      IndicioService
}

func newIndicioFixture() *indicioFixture {
	indicios := newStubIndicioRepo()
	escenas := newStubEscenaRepo()
	invs := newStubInvestigacionRepo()
	return &indicioFixture{
		indicios: indicios,
		escenas:  escenas,
		invs:     invs,
		svc:      NewIndicioService(indicios, escenas, invs),
	}
}

func (f *indicioFixture) seedExpedienteConEscena(t *testing.T, estado string) (*model.Investigacion, *model.Escena) {
	t.Helper()
	inv := f.invs.seed(model.Investigacion{
		CodigoCaso: "MP-2026-001", NombreCaso: "Caso", FechaInicio: time.Now(),
		IDFiscalia: 1, EstadoRevisionDicri: estado, IDUsuarioRegistro: 1,
	})
	escena := &model.Escena{
		IDInvestigacion: inv.ID, NombreEscena: "Vivienda", DireccionEscena: "zona 1",
		FechaHoraInicio: time.Now(), Activo: true, UsuarioCreacion: "test",
	}
	require.NoError(t, f.escenas.Create(context.Background(), escena))
	return inv, escena
}

func (f *indicioFixture) seedIndicio(t *testing.T, idEscena uint, codigo string) *dto.IndicioResponse {
	t.Helper()
	resp, err := f.svc.Crear(context.Background(), idEscena, dto.CrearIndicioRequest{
		CodigoIndicio:        codigo,
		IDTipoIndicio:        2,
		DescripcionCorta:     "Arma blanca tipo cuchillo",
		FechaHoraRecoleccion: time.Now(),
	}, 5, "aperez")
	require.NoError(t, err)
	return resp
}

func TestCrearIndicioEstadoInicialRecolectado(t *testing.T) {
	f := newIndicioFixture()
	_, escena := f.seedExpedienteConEscena(t, model.EstadoEnRegistro)

	resp := f.seedIndicio(t, escena.ID, "IND-001")
	assert.Equal(t, model.CustodiaRecolectado, resp.EstadoActual)
	assert.Equal(t, uint(5), resp.IDUsuarioRecolector)
}

// Los indicios solo se bloquean con expediente APROBADO: a diferencia de
// las escenas, siguen editables en PENDIENTE_REVISION.
func TestCrearIndicioPorEstado(t *testing.T) {
	casos := []struct {
		estado string
		ok     bool
	}{
		{model.EstadoEnRegistro, true},
		{model.EstadoPendienteRevision, true},
		{model.EstadoRechazado, true},
		{model.EstadoAprobado, false},
	}
	for _, tc := range casos {
		t.Run(tc.estado, func(t *testing.T) {
			f := newIndicioFixture()
			_, escena := f.seedExpedienteConEscena(t, tc.estado)

			_, err := f.svc.Crear(context.Background(), escena.ID, dto.CrearIndicioRequest{
				CodigoIndicio: "IND-001", IDTipoIndicio: 2,
				DescripcionCorta: "Casquillo calibre 9mm", FechaHoraRecoleccion: time.Now(),
			}, 5, "aperez")
			if tc.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
				assert.Contains(t, err.Error(), "aprobado")
			}
		})
	}
}

func TestActualizarIndicioBloqueadoSoloAprobado(t *testing.T) {
	for _, tc := range []struct {
		estado string
		ok     bool
	}{
		{model.EstadoPendienteRevision, true},
		{model.EstadoAprobado, false},
	} {
		t.Run(tc.estado, func(t *testing.T) {
			f := newIndicioFixture()
			inv, escena := f.seedExpedienteConEscena(t, model.EstadoEnRegistro)
			indicio := f.seedIndicio(t, escena.ID, "IND-001")

			stored, _ := f.invs.FindByID(context.Background(), inv.ID)
			stored.EstadoRevisionDicri = tc.estado
			require.NoError(t, f.invs.Update(context.Background(), stored))

			err := f.svc.Actualizar(context.Background(), indicio.IDIndicio, dto.ActualizarIndicioRequest{
				EstadoActual: model.CustodiaEnCustodia,
			}, "aperez")
			if tc.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
			}
		})
	}
}

func TestEliminarIndicioExpedienteAprobado(t *testing.T) {
	f := newIndicioFixture()
	inv, escena := f.seedExpedienteConEscena(t, model.EstadoEnRegistro)
	indicio := f.seedIndicio(t, escena.ID, "IND-001")

	stored, _ := f.invs.FindByID(context.Background(), inv.ID)
	stored.EstadoRevisionDicri = model.EstadoAprobado
	require.NoError(t, f.invs.Update(context.Background(), stored))

	err := f.svc.Eliminar(context.Background(), indicio.IDIndicio, "aperez")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	assert.Contains(t, err.Error(), "eliminar")
}

func TestCrearIndicioCodigoDuplicado(t *testing.T) {
	f := newIndicioFixture()
	_, escena := f.seedExpedienteConEscena(t, model.EstadoEnRegistro)
	f.seedIndicio(t, escena.ID, "IND-001")

	_, err := f.svc.Crear(context.Background(), escena.ID, dto.CrearIndicioRequest{
		CodigoIndicio: "IND-001", IDTipoIndicio: 2,
		DescripcionCorta: "Duplicado", FechaHoraRecoleccion: time.Now(),
	}, 5, "aperez")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

// El listado por expediente aplana los indicios de todas las escenas en el
// orden de las escenas, sin reordenar globalmente.
func TestGetByInvestigacionAplanaEnOrdenDeEscena(t *testing.T) {
	f := newIndicioFixture()
	inv, escena1 := f.seedExpedienteConEscena(t, model.EstadoEnRegistro)
	escena2 := &model.Escena{
		IDInvestigacion: inv.ID, NombreEscena: "Patio", DireccionEscena: "zona 1",
		FechaHoraInicio: time.Now(), Activo: true, UsuarioCreacion: "test",
	}
	require.NoError(t, f.escenas.Create(context.Background(), escena2))

	// Crear intercalado para que el orden global por id no coincida con el
	// orden por escena
	f.seedIndicio(t, escena2.ID, "IND-B1")
	f.seedIndicio(t, escena1.ID, "IND-A1")
	f.seedIndicio(t, escena2.ID, "IND-B2")

	resp, err := f.svc.GetByInvestigacion(context.Background(), inv.ID)
	require.NoError(t, err)
	require.Len(t, resp, 3)

	codigos := make([]string, len(resp))
	for i, r := range resp {
		codigos[i] = r.CodigoIndicio
	}
	assert.Equal(t, []string{"IND-A1", "IND-B1", "IND-B2"}, codigos)
}

func TestGetByInvestigacionSinEscenasDevuelveVacio(t *testing.T) {
	f := newIndicioFixture()
	inv := f.invs.seed(model.Investigacion{
		CodigoCaso: "MP-2026-002", NombreCaso: "Sin escenas", FechaInicio: time.Now(),
		IDFiscalia: 1, EstadoRevisionDicri: model.EstadoEnRegistro, IDUsuarioRegistro: 1,
	})

	resp, err := f.svc.GetByInvestigacion(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestListarEstadoCustodiaInvalido(t *testing.T) {
	f := newIndicioFixture()

	_, err := f.svc.Listar(context.Background(), dto.IndicioFilters{EstadoActual: "PERDIDO"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestListarPorEstadoCustodia(t *testing.T) {
	f := newIndicioFixture()
	_, escena := f.seedExpedienteConEscena(t, model.EstadoEnRegistro)
	for i := 0; i < 3; i++ {
		f.seedIndicio(t, escena.ID, fmt.Sprintf("IND-%03d", i))
	}

	resp, err := f.svc.Listar(context.Background(), dto.IndicioFilters{EstadoActual: model.CustodiaRecolectado})
	require.NoError(t, err)
	assert.Len(t, resp, 3)

	resp, err = f.svc.Listar(context.Background(), dto.IndicioFilters{EstadoActual: model.CustodiaDevuelto})
	require.NoError(t, err)
	assert.Empty(t, resp)
}
