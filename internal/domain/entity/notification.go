package entity

import "time"

// Tipos de notificación. El par (SubscriptionID, Kind) evita envíos duplicados.
const (
	NotificationKindCreation = "Creation"
	NotificationKindExpiry   = "Expiry"
)

// Notification registro append-only de correos enviados (o intentados).
type Notification struct {
	ID             string
	SubscriptionID *string
	Kind           string
	SentAt         time.Time
	Sent           bool // false si el servidor SMTP rechazó el envío
}
