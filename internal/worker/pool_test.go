package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestDispatcherEnqueueNotificacionRevision(t *testing.T) {
	_, rdb := newTestRedis(t)
	d := NewDispatcher(rdb)
	ctx := context.Background()

	payload := NotificacionRevisionPayload{
		CodigoCaso:   "DICRI-2026-00042",
		NombreCaso:   "Allanamiento zona 18",
		NuevoEstado:  "PENDIENTE_REVISION",
		Destinatario: "coordinacion@dicri.gob.gt",
	}
	require.NoError(t, d.EnqueueNotificacionRevision(ctx, payload))

	raw, err := rdb.RPop(ctx, QueueNotificaciones).Result()
	require.NoError(t, err)

	var job Job
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "notificacion_revision", job.Type)

	var got NotificacionRevisionPayload
	require.NoError(t, json.Unmarshal(job.Payload, &got))
	assert.Equal(t, payload, got)
}

func TestDispatcherEncolaEnOrdenFIFO(t *testing.T) {
	_, rdb := newTestRedis(t)
	d := NewDispatcher(rdb)
	ctx := context.Background()

	for _, codigo := range []string{"DICRI-2026-00001", "DICRI-2026-00002"} {
		require.NoError(t, d.EnqueueNotificacionRevision(ctx, NotificacionRevisionPayload{CodigoCaso: codigo}))
	}

	// BRPOP consume por la cola derecha: el primero encolado sale primero
	for _, want := range []string{"DICRI-2026-00001", "DICRI-2026-00002"} {
		raw, err := rdb.RPop(ctx, QueueNotificaciones).Result()
		require.NoError(t, err)
		var job Job
		require.NoError(t, json.Unmarshal([]byte(raw), &job))
		var got NotificacionRevisionPayload
		require.NoError(t, json.Unmarshal(job.Payload, &got))
		assert.Equal(t, want, got.CodigoCaso)
	}
}

func TestSendToDLQYLongitud(t *testing.T) {
	_, rdb := newTestRedis(t)
	ctx := context.Background()

	n, err := DLQLength(ctx, rdb, QueueNotificaciones)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	payload := json.RawMessage(`{"codigo_caso":"DICRI-2026-00042"}`)
	SendToDLQ(ctx, rdb, QueueNotificaciones, "notificacion_revision", payload, "smtp: connection refused", 1)

	n, err = DLQLength(ctx, rdb, QueueNotificaciones)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	raw, err := rdb.RPop(ctx, DLQPrefix+QueueNotificaciones).Result()
	require.NoError(t, err)

	var entry DLQEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entry))
	assert.Equal(t, QueueNotificaciones, entry.OriginalQueue)
	assert.Equal(t, "notificacion_revision", entry.JobType)
	assert.Equal(t, "smtp: connection refused", entry.Reason)
	assert.Equal(t, 1, entry.Attempts)
	assert.WithinDuration(t, time.Now().UTC(), entry.FailedAt, time.Minute)
}

func TestProcessJobDesconocidoNoVaADLQ(t *testing.T) {
	_, rdb := newTestRedis(t)
	ctx := context.Background()

	raw, err := json.Marshal(Job{Type: "tipo_inexistente", Payload: json.RawMessage(`{}`)})
	require.NoError(t, err)
	processJob(ctx, rdb, &Handlers{}, QueueNotificaciones, string(raw))

	n, err := DLQLength(ctx, rdb, QueueNotificaciones)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
