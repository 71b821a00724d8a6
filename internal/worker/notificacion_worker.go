package worker

// notificacion_worker.go
// Processes review-workflow notification jobs from QueueNotificaciones.
// Sends the notification mail to the coordination inbox or the registering
// technician via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jfrosalesgt/dicki-backend/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotificacionWorker processes notification jobs from QueueNotificaciones.
type NotificacionWorker struct {
	mailer *infra.Mailer
}

// NewNotificacionWorker creates a NotificacionWorker with the provided SMTP mailer.
func NewNotificacionWorker(mailer *infra.Mailer) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer}
}

// Process sends the state-change notification mail. Returning an error moves
// the job to the DLQ.
func (w *NotificacionWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload NotificacionRevisionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return err
	}
	if payload.Destinatario == "" {
		log.Warn().Str("codigo_caso", payload.CodigoCaso).Msg("notificacion_worker: empty destinatario, skipping")
		return nil
	}

	subject := fmt.Sprintf("Expediente %s: %s", payload.CodigoCaso, payload.NuevoEstado)
	body := fmt.Sprintf("El expediente %s (%s) cambió al estado %s.", payload.CodigoCaso, payload.NombreCaso, payload.NuevoEstado)
	if payload.Justificacion != "" {
		body += fmt.Sprintf("\n\nJustificación: %s", payload.Justificacion)
	}

	if err := w.mailer.SendNotificacion(payload.Destinatario, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.Destinatario).Msg("notificacion_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.Destinatario).Str("codigo_caso", payload.CodigoCaso).Msg("notificacion_worker: notificación enviada")
	return nil
}
