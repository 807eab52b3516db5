package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
	"github.com/jhoicas/crudpark-api/pkg/logger"
)

// NotificationUseCase envío de correos con registro y control de duplicados por (mensualidad, tipo).
type NotificationUseCase struct {
	repo  repository.NotificationRepository
	subs  repository.SubscriptionRepository
	mail  mailer
	clock ports.Clock
	log   *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	repo repository.NotificationRepository,
	subs repository.SubscriptionRepository,
	sender ports.MailSender,
	clock ports.Clock,
	log *logger.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		repo:  repo,
		subs:  subs,
		mail:  mailer{sender: sender, log: log},
		clock: clock,
		log:   log,
	}
}

// List lista el historial de notificaciones.
func (uc *NotificationUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.NotificationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return items, nil
}

// SendCreation envía el correo de creación de una mensualidad una sola vez.
// Un envío fallido también queda registrado (enviado=false) y bloquea reenvíos.
func (uc *NotificationUseCase) SendCreation(ctx context.Context, subscriptionID string) (*dto.NotificationResponse, error) {
	s, err := uc.subs.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if s == nil || !s.HasEmail() {
		return nil, fmt.Errorf("%w: mensualidad no encontrada o sin correo asociado", domain.ErrNotFound)
	}
	exists, err := uc.repo.Exists(ctx, s.ID, entity.NotificationKindCreation)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyNotified
	}

	subject, body := subscriptionCreatedMail(s)
	n := uc.newNotification(s.ID, entity.NotificationKindCreation)
	n.Sent = uc.mail.trySend(ctx, *s.Email, subject, body)
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// SendExpiry notifica el vencimiento a las mensualidades dentro de la ventana de recordatorio
// que tengan correo y no hayan sido notificadas antes.
func (uc *NotificationUseCase) SendExpiry(ctx context.Context) (*dto.ExpiryNotificationResult, error) {
	today := parking.DateOf(uc.clock.Now())
	due, err := uc.subs.ListDue(ctx, today, today.AddDate(0, 0, parking.ExpiryWindowDays))
	if err != nil {
		return nil, err
	}

	res := &dto.ExpiryNotificationResult{}
	for i := range due {
		s := &due[i]
		if !s.HasEmail() {
			res.Skipped++
			continue
		}
		exists, err := uc.repo.Exists(ctx, s.ID, entity.NotificationKindExpiry)
		if err != nil {
			return nil, err
		}
		if exists {
			res.Skipped++
			continue
		}

		subject, body := subscriptionExpiringMail(s)
		n := uc.newNotification(s.ID, entity.NotificationKindExpiry)
		n.Sent = uc.mail.trySend(ctx, *s.Email, subject, body)
		if err := uc.repo.Create(ctx, n); err != nil {
			// Otra petición concurrente ya la registró.
			if errors.Is(err, domain.ErrAlreadyNotified) {
				res.Skipped++
				continue
			}
			return nil, err
		}
		if n.Sent {
			res.Sent++
		} else {
			res.Failed++
		}
	}
	uc.log.Info().Int("enviados", res.Sent).Int("omitidos", res.Skipped).Int("fallidos", res.Failed).Msg("notificaciones de vencimiento")
	return res, nil
}

func (uc *NotificationUseCase) newNotification(subscriptionID, kind string) *entity.Notification {
	id := subscriptionID
	return &entity.Notification{
		ID:             uuid.New().String(),
		SubscriptionID: &id,
		Kind:           kind,
		SentAt:         uc.clock.Now(),
	}
}
