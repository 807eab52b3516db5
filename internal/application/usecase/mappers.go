package usecase

import (
	"time"

	"github.com/jhoicas/crudpark-api/internal/application/dto"
	"github.com/jhoicas/crudpark-api/internal/domain/entity"
	"github.com/jhoicas/crudpark-api/internal/domain/parking"
)

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:         t.ID,
		Plate:      t.Plate,
		Kind:       t.Kind,
		EntryTime:  t.EntryTime,
		ExitTime:   t.ExitTime,
		AmountDue:  t.AmountDue,
		Paid:       t.Paid,
		OperatorID: t.OperatorID,
		QRCode:     t.QRCode,
	}
}

func toSubscriptionResponse(s *entity.Subscription, ref time.Time) *dto.SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &dto.SubscriptionResponse{
		ID:           s.ID,
		CustomerName: s.CustomerName,
		Email:        s.Email,
		Plate:        s.Plate,
		StartDate:    s.StartDate.Format(dto.DateLayout),
		EndDate:      s.EndDate.Format(dto.DateLayout),
		Active:       s.Active,
		Status:       string(parking.ClassifySubscription(*s, ref)),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:             n.ID,
		SubscriptionID: n.SubscriptionID,
		Kind:           n.Kind,
		SentAt:         n.SentAt,
		Sent:           n.Sent,
	}
}

func toOperatorResponse(o *entity.Operator) *dto.OperatorResponse {
	if o == nil {
		return nil
	}
	return &dto.OperatorResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Role:      o.Role,
		Active:    o.Active,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:       p.ID,
		TicketID: p.TicketID,
		Method:   p.Method,
		Amount:   p.Amount,
		PaidAt:   p.PaidAt,
	}
}
