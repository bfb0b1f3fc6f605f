package models

import (
	"fmt"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// ReservationResponse модель бронирования для вызывающего кода
type ReservationResponse struct {
	ID            int64
	Reference     string
	ProviderID    int64
	ListingID     *int64
	ClientID      int64
	StartAt       time.Time
	DurationHours int
	Status        string
	Amount        float64
	DepositAmount float64
	QuoteAmount   *float64

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

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse
	Total        int
}

// GetClientReservationsRequest запрос истории бронирований клиента
type GetClientReservationsRequest struct {
	ClientID int64
	UserID   int64   // Аутентифицированный пользователь
	Status   *string // Опциональный фильтр по статусу
}

// GetProviderReservationsRequest запрос бронирований провайдера
type GetProviderReservationsRequest struct {
	ProviderID      int64
	UserID          int64 // Аутентифицированный пользователь (менеджер)
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetProviderReservationsRequest) ToDomainFilter() (domain.ProviderReservationsFilter, error) {
	filter := domain.ProviderReservationsFilter{
		ProviderID:      r.ProviderID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return domain.ProviderReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelReservationRequest запрос отмены бронирования
type CancelReservationRequest struct {
	UserID             int64
	CancellationReason string
}

// ConfirmReservationRequest запрос подтверждения оплаты бронирования
type ConfirmReservationRequest struct {
	UserID int64
}

// ToDomainReservationStatus конвертирует строку в domain статус с валидацией
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
}

// FromDomainReservation конвертирует domain бронирование в response модель
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 res.ID,
		Reference:          res.Reference,
		ProviderID:         res.ProviderID,
		ListingID:          res.ListingID,
		ClientID:           res.ClientID,
		StartAt:            res.StartAt,
		DurationHours:      res.EffectiveDurationHours(),
		Status:             string(res.Status),
		Amount:             res.Amount,
		DepositAmount:      res.DepositAmount,
		QuoteAmount:        res.QuoteAmount,
		ClientName:         res.ClientName,
		ClientEmail:        res.ClientEmail,
		ClientPhone:        res.ClientPhone,
		Location:           res.Location,
		PartySize:          res.PartySize,
		Notes:              res.Notes,
		CancellationReason: res.CancellationReason,
		CancelledAt:        res.CancelledAt,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain бронирований
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, len(reservations))
	for i, res := range reservations {
		result[i] = FromDomainReservation(res)
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}
