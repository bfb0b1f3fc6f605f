package notifyservice

import "time"

// Event types понятные NotifyService
const (
	EventReservationCreated     = "reservation_created"
	EventReservationConfirmed   = "reservation_confirmed"
	EventReservationCancelled   = "reservation_cancelled"
	EventReservationRescheduled = "reservation_rescheduled"
)

// ReservationEvent событие изменения бронирования
// EventID генерируется на нашей стороне, чтобы NotifyService мог дедуплицировать
// повторную доставку
type ReservationEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	Reference     string    `json:"reference"`
	ProviderID    int64     `json:"provider_id"`
	ClientID      int64     `json:"client_id"`
	StartAt       time.Time `json:"start_at"`
	DurationHours int       `json:"duration_hours"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
