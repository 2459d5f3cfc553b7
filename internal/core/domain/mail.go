package domain

// MailKind identifies the template of an outgoing mail.
type MailKind string

const (
	MailVerification      MailKind = "verification"
	MailPasswordReset     MailKind = "password_reset"
	MailOrderConfirmation MailKind = "order_confirmation"
)

// Mail is a message queued by the reference API for delivery.
type Mail struct {
	Kind        MailKind
	To          string
	Subject     string
	Token       string
	OrderNumber string
	Total       float64
}
