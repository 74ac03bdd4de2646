package worker

// recordatorio_worker.go
// Processes follow-up reminder jobs from QueueRecordatorios: each job is one
// contacto whose seguimiento date is due, mailed to its vendedor via SMTP.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/infra"

	"github.com/rs/zerolog/log"
)

// RecordatorioPayload is the job envelope sent to QueueRecordatorios.
type RecordatorioPayload struct {
	VendedorEmail  string `json:"vendedor_email"`
	ContactoNombre string `json:"contacto_nombre"`
	ContactoTel    string `json:"contacto_tel"`
	Fecha          string `json:"fecha"` // YYYY-MM-DD
	Prioridad      string `json:"prioridad"`
}

// RecordatorioWorker sends the reminder emails dequeued by the pool.
type RecordatorioWorker struct {
	mailer *infra.Mailer
}

func NewRecordatorioWorker(mailer *infra.Mailer) *RecordatorioWorker {
	return &RecordatorioWorker{mailer: mailer}
}

func (w *RecordatorioWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload RecordatorioPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recordatorio_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	if payload.VendedorEmail == "" {
		log.Warn().Msg("recordatorio_worker: empty vendedor_email, skipping")
		return nil
	}

	subject := fmt.Sprintf("Seguimiento pendiente: %s", payload.ContactoNombre)
	body := fmt.Sprintf(
		"Tenes un seguimiento agendado para hoy (%s).\n\nContacto: %s\nTelefono: %s\nPrioridad: %s\n",
		payload.Fecha, payload.ContactoNombre, payload.ContactoTel, payload.Prioridad,
	)

	if err := w.mailer.SendRecordatorio(payload.VendedorEmail, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.VendedorEmail).Msg("recordatorio_worker: send failed")
		return errors.New("envio de recordatorio fallo")
	}
	log.Info().Str("to", payload.VendedorEmail).Msg("recordatorio_worker: recordatorio enviado")
	return nil
}
