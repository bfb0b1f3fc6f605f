package confirm_reservation

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/reservations/models"
)

// ConfirmReservationResponse HTTP response model
type ConfirmReservationResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	ProviderID    int64   `json:"providerId"`
	ClientID      int64   `json:"clientId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	DurationHours int     `json:"durationHours"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	DepositAmount float64 `json:"depositAmount"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *ConfirmReservationResponse {
	return &ConfirmReservationResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		ProviderID:    resp.ProviderID,
		ClientID:      resp.ClientID,
		Date:          resp.StartAt.Format(domain.DateFormat),
		StartTime:     resp.StartAt.Format("15:04"),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		Amount:        resp.Amount,
		DepositAmount: resp.DepositAmount,
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
