package ports

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
)

// MailOutbox accepts mails for asynchronous delivery.
type MailOutbox interface {
	Enqueue(mail domain.Mail)
}

// MailSender delivers a single mail.
type MailSender interface {
	Send(ctx context.Context, mail domain.Mail) error
}
