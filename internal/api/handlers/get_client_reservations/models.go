package get_client_reservations

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/reservations/models"
)

// ReservationResponse HTTP модель бронирования в истории клиента
type ReservationResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	ProviderID    int64   `json:"providerId"`
	ListingID     *int64  `json:"listingId,omitempty"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	DurationHours int     `json:"durationHours"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	DepositAmount float64 `json:"depositAmount"`
	Location      string  `json:"location"`
	CreatedAt     string  `json:"createdAt"`
}

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationListResponse) *ReservationListResponse {
	reservations := make([]ReservationResponse, 0, len(resp.Reservations))
	for _, res := range resp.Reservations {
		reservations = append(reservations, ReservationResponse{
			ID:            res.ID,
			Reference:     res.Reference,
			ProviderID:    res.ProviderID,
			ListingID:     res.ListingID,
			Date:          res.StartAt.Format(domain.DateFormat),
			StartTime:     res.StartAt.Format("15:04"),
			DurationHours: res.DurationHours,
			Status:        res.Status,
			Amount:        res.Amount,
			DepositAmount: res.DepositAmount,
			Location:      res.Location,
			CreatedAt:     res.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ReservationListResponse{
		Reservations: reservations,
		Total:        resp.Total,
	}
}
