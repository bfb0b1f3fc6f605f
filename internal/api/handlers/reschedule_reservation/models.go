package reschedule_reservation

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	rescheduleReservation "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/reschedule_reservation"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/types"
)

// RescheduleReservationRequest HTTP request model
type RescheduleReservationRequest struct {
	Date          string `json:"date"`      // "2026-09-15"
	StartTime     string `json:"startTime"` // "10:00"
	DurationHours int    `json:"durationHours,omitempty"`
}

// RescheduleReservationResponse HTTP response model
type RescheduleReservationResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	ProviderID    int64  `json:"providerId"`
	ClientID      int64  `json:"clientId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	Status        string `json:"status"`
	UpdatedAt     string `json:"updatedAt"`
}

// ConflictResponse HTTP модель 409 ответа с альтернативами
type ConflictResponse struct {
	Message      string                `json:"message"`
	Alternatives []AlternativeResponse `json:"alternatives"`
}

// AlternativeResponse свободный слот той же длительности
type AlternativeResponse struct {
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleReservationRequest) ToUseCaseRequest(reservationID, userID int64) (*rescheduleReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		StartAt:       date.Add(time.Duration(startTime.Minutes()) * time.Minute),
		DurationHours: r.DurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleReservation.Response) *RescheduleReservationResponse {
	return &RescheduleReservationResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		ProviderID:    resp.ProviderID,
		ClientID:      resp.ClientID,
		Date:          resp.StartAt.Format(domain.DateFormat),
		StartTime:     resp.StartAt.Format("15:04"),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

// ToConflictResponse собирает тело 409 ответа
func ToConflictResponse(message string, resp *rescheduleReservation.Response) *ConflictResponse {
	alternatives := make([]AlternativeResponse, 0)
	if resp != nil {
		for _, a := range resp.Alternatives {
			alternatives = append(alternatives, AlternativeResponse{
				Date:      a.Date.Format(domain.DateFormat),
				StartHour: a.StartHour,
			})
		}
	}
	return &ConflictResponse{
		Message:      message,
		Alternatives: alternatives,
	}
}
