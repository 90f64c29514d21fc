package worker

// email_worker.go
// Processes mail jobs from QueueEmail: PO sheets to purchasing, goods receipt
// notifications. Attachments reference files already in the document archive.

import (
	"context"
	"encoding/json"

	"dapurstok/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	To         []string `json:"to"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	AttachPath string   `json:"attach_path"`
}

// EmailWorker processes email jobs from QueueEmail.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends the notification, one message per recipient. Returns an
// error so the pool can retry and eventually dead-letter the job.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil // malformed payloads are unrecoverable, do not retry
	}
	if len(payload.To) == 0 {
		log.Warn().Msg("email_worker: empty recipient list — skipping")
		return nil
	}

	for _, to := range payload.To {
		if err := w.mailer.Send(to, payload.Subject, payload.Body, payload.AttachPath); err != nil {
			log.Error().Err(err).Str("to", to).Msg("email_worker: send failed")
			return err
		}
	}
	log.Info().Strs("to", payload.To).Str("subject", payload.Subject).
		Msg("email_worker: notification sent")
	return nil
}
