// Package mail implementa ports.MailSender sobre SMTP con gomail.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/pkg/config"
	"github.com/jhoicas/crudpark-api/pkg/logger"
)

var (
	_ ports.MailSender = (*SMTPSender)(nil)
	_ ports.MailSender = (*LogSender)(nil)
)

// dialer abstrae gomail.Dialer para poder sustituirlo en pruebas.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender envía correos en texto plano por SMTP (STARTTLS en el puerto 587).
type SMTPSender struct {
	d           dialer
	from        string
	displayName string
}

// NewSMTPSender construye el sender a partir de la configuración de correo.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		d:           gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:        cfg.User,
		displayName: cfg.DisplayName,
	}
}

// Send arma y envía el mensaje. Cada envío abre su propia conexión.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.displayName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: enviar a %s: %w", to, err)
	}
	return nil
}

// LogSender registra el correo en el log en vez de enviarlo (MAIL_ENABLED=false).
type LogSender struct {
	log *logger.Logger
}

// NewLogSender construye el sender de desarrollo.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send solo deja constancia en el log.
func (s *LogSender) Send(_ context.Context, to, subject, _ string) error {
	s.log.Info().Str("to", to).Str("subject", subject).Msg("correo no enviado (MAIL_ENABLED=false)")
	return nil
}
