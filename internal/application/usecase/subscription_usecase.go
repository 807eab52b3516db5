package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/application/ports"
	"github.com/jhoicas/crudpark-api/internal/domain"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
	"github.com/jhoicas/crudpark-api/internal/domain/repository"
	"github.com/jhoicas/crudpark-api/pkg/logger"
)

// SubscriptionUseCase administración de mensualidades.
type SubscriptionUseCase struct {
	repo  repository.SubscriptionRepository
	tx    SubscriptionTxRunner
	mail  mailer
	clock ports.Clock
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(repo repository.SubscriptionRepository, tx SubscriptionTxRunner, sender ports.MailSender, clock ports.Clock, log *logger.Logger) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		repo:  repo,
		tx:    tx,
		mail:  mailer{sender: sender, log: log},
		clock: clock,
	}
}

// Create registra una mensualidad. Rechaza con domain.ErrPlateHasActive si la placa ya tiene
// una vigente. El correo de confirmación no afecta el resultado.
func (uc *SubscriptionUseCase) Create(ctx context.Context, in dto.SubscriptionRequest) (*dto.SubscriptionResponse, error) {
	s, err := subscriptionFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	s.ID = uuid.New().String()
	s.CreatedAt = now
	s.UpdatedAt = now

	err = uc.tx.RunSubscription(ctx, func(subs repository.SubscriptionRepository) error {
		if err := subs.LockPlate(ctx, s.Plate); err != nil {
			return err
		}
		if s.Active {
			exists, err := subs.ExistsCurrentForPlate(ctx, s.Plate, now, "")
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrPlateHasActive
			}
		}
		return subs.Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	if s.HasEmail() {
		subject, body := subscriptionCreatedMail(s)
		uc.mail.trySend(ctx, *s.Email, subject, body)
	}
	return toSubscriptionResponse(s, now), nil
}

// Update reemplaza los datos de la mensualidad. Si el resultado queda vigente, se vuelve a
// comprobar que no haya otra vigente para la misma placa.
func (uc *SubscriptionUseCase) Update(ctx context.Context, id string, in dto.SubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrIDMismatch
	}
	upd, err := subscriptionFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var out *entity.Subscription
	err = uc.tx.RunSubscription(ctx, func(subs repository.SubscriptionRepository) error {
		s, err := subs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if in.Active == nil {
			upd.Active = s.Active
		}
		if err := subs.LockPlate(ctx, upd.Plate); err != nil {
			return err
		}
		s.CustomerName = upd.CustomerName
		s.Email = upd.Email
		s.Plate = upd.Plate
		s.StartDate = upd.StartDate
		s.EndDate = upd.EndDate
		s.Active = upd.Active
		s.UpdatedAt = now

		if parking.IsCurrent(*s, now) {
			exists, err := subs.ExistsCurrentForPlate(ctx, s.Plate, now, s.ID)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrPlateHasActive
			}
		}
		if err := subs.Update(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSubscriptionResponse(out, now), nil
}

// Deactivate cancela la mensualidad; nunca se borra.
func (uc *SubscriptionUseCase) Deactivate(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if !s.Active {
		return nil
	}
	s.Active = false
	s.UpdatedAt = uc.clock.Now()
	return uc.repo.Update(ctx, s)
}

// GetByID obtiene una mensualidad con su estado a la fecha.
func (uc *SubscriptionUseCase) GetByID(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(s, uc.clock.Now()), nil
}

// List lista mensualidades paginadas.
func (uc *SubscriptionUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SubscriptionResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	items := make([]dto.SubscriptionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubscriptionResponse(s, now))
	}
	return items, nil
}

// SendReminders envía el recordatorio de vencimiento a toda mensualidad dentro de la ventana.
// No deja registro ni evita duplicados; para eso está NotificationUseCase.SendExpiry.
func (uc *SubscriptionUseCase) SendReminders(ctx context.Context) (*dto.ReminderResult, error) {
	today := parking.DateOf(uc.clock.Now())
	due, err := uc.repo.ListDue(ctx, today, today.AddDate(0, 0, parking.ExpiryWindowDays))
	if err != nil {
		return nil, err
	}
	res := &dto.ReminderResult{Count: len(due)}
	for i := range due {
		s := &due[i]
		if !s.HasEmail() {
			continue
		}
		subject, body := subscriptionExpiringMail(s)
		if uc.mail.trySend(ctx, *s.Email, subject, body) {
			res.Sent++
		} else {
			res.Failed++
		}
	}
	return res, nil
}

func subscriptionFromRequest(in dto.SubscriptionRequest) (*entity.Subscription, error) {
	plate := NormalizePlate(in.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: la placa es obligatoria", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	start, err := parseDate(in.StartDate, "fecha_inicio")
	if err != nil {
		return nil, err
	}
	end, err := parseDate(in.EndDate, "fecha_fin")
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: la fecha fin es anterior a la fecha de inicio", domain.ErrInvalidInput)
	}
	var email *string
	if in.Email != nil {
		if e := strings.TrimSpace(*in.Email); e != "" {
			email = &e
		}
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return &entity.Subscription{
		CustomerName: name,
		Email:        email,
		Plate:        plate,
		StartDate:    start,
		EndDate:      end,
		Active:       active,
	}, nil
}

// parseDate acepta 2006-01-02 o RFC 3339; en ambos casos se queda con la fecha UTC.
func parseDate(s, field string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dto.DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return parking.DateOf(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %s debe tener formato AAAA-MM-DD", domain.ErrInvalidInput, field)
}
