package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/pkg/logger"
)

// mailer envuelve el MailSender: un fallo se registra una vez y se descarta, sin reintentos.
type mailer struct {
	sender ports.MailSender
	log    *logger.Logger
}

// trySend devuelve true si el servidor aceptó el mensaje.
func (m mailer) trySend(ctx context.Context, to, subject, body string) bool {
	if m.sender == nil {
		return false
	}
	if err := m.sender.Send(ctx, to, subject, body); err != nil {
		m.log.Warn().Err(err).Str("to", to).Str("subject", subject).Msg("no se pudo enviar el correo")
		return false
	}
	return true
}

const fechaCorreo = "02/01/2006"

func subscriptionCreatedMail(s *entity.Subscription) (subject, body string) {
	subject = "Registro de mensualidad exitoso"
	body = fmt.Sprintf(
		"Hola %s,\n\nTu mensualidad ha sido registrada con éxito.\nPlaca: %s\nFecha de inicio: %s\nFecha de fin: %s\n\n¡Gracias por confiar en nuestro servicio!\n",
		s.CustomerName, s.Plate, s.StartDate.Format(fechaCorreo), s.EndDate.Format(fechaCorreo),
	)
	return subject, body
}

func subscriptionExpiringMail(s *entity.Subscription) (subject, body string) {
	subject = "Tu mensualidad está próxima a vencer"
	body = fmt.Sprintf(
		"Hola %s,\n\nTe recordamos que tu mensualidad con placa %s vence el día %s.\nPor favor, realiza la renovación a tiempo para evitar interrupciones.\n",
		s.CustomerName, s.Plate, s.EndDate.Format(fechaCorreo),
	)
	return subject, body
}
