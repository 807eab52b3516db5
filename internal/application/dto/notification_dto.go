package dto

import "time"

// NotificationResponse registro de notificación.
type NotificationResponse struct {
	ID             string    `json:"id"`
	SubscriptionID *string   `json:"id_mensualidad"`
	Kind           string    `json:"tipo"`
	SentAt         time.Time `json:"fecha_envio"`
	Sent           bool      `json:"enviado"`
}

// ExpiryNotificationResult resultado de POST /enviar-vencimientos.
type ExpiryNotificationResult struct {
	Sent    int `json:"enviados"`
	Skipped int `json:"omitidos"`
	Failed  int `json:"fallidos"`
}
