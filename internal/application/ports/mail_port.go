package ports

import "context"

// MailSender puerto de salida para correo electrónico.
// Un error significa que el servidor no aceptó el mensaje; el llamador decide qué hacer.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
