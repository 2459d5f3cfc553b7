package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
)

// LogSender "delivers" mails by logging them. The reference API has no SMTP
// relay; the log line carries the token a developer needs to finish a flow.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log.With().Str("component", "mail").Logger()}
}

func (s *LogSender) Send(_ context.Context, mail domain.Mail) error {
	ev := s.log.Info().
		Str("kind", string(mail.Kind)).
		Str("to", mail.To).
		Str("subject", mail.Subject)
	if mail.Token != "" {
		ev = ev.Str("token", mail.Token)
	}
	if mail.OrderNumber != "" {
		ev = ev.Str("order_number", mail.OrderNumber).Float64("total", mail.Total)
	}
	ev.Msg("mail sent")
	return nil
}
