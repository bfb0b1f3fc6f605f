package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a booked time range in a provider's calendar
// Отмена никогда не удаляет запись физически - только переводит статус в cancelled,
// поэтому все запросы на конфликты обязаны фильтровать отменённые бронирования
type Reservation struct {
	ID            int64
	Reference     string // Публичный UUID для писем и ссылок клиента
	ProviderID    int64
	ListingID     *int64
	ClientID      int64
	StartAt       time.Time // Локальное время получателя, без конвертации таймзон
	DurationHours int
	Status        ReservationStatus

	Amount        float64
	DepositAmount float64
	QuoteAmount   *float64 // Согласованная цена по заявке, вместо тарифа листинга

	// Denormalized client data for history
	ClientName  string
	ClientEmail *string
	ClientPhone *string
	Location    string
	PartySize   int
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still blocks the calendar
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the reservation is waiting for a payment confirmation
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeRescheduled returns true if the reservation date/time/duration can still change
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// EffectiveDurationHours возвращает длительность бронирования в часах
// Для legacy записей без длительности действует дефолт 2 часа
func (r *Reservation) EffectiveDurationHours() int {
	if r.DurationHours <= 0 {
		return DefaultReservationDurationHours
	}
	return r.DurationHours
}

// Interval возвращает полуоткрытый интервал [StartAt, StartAt+duration) бронирования
func (r *Reservation) Interval() Interval {
	return NewInterval(r.StartAt, r.EffectiveDurationHours())
}

// ProviderReservationsFilter фильтр для выборки бронирований провайдера
type ProviderReservationsFilter struct {
	ProviderID      int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}
