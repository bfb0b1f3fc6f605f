package get_provider_reservations

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/reservations/models"
)

// ReservationResponse HTTP модель бронирования в календаре провайдера
// Включает контакты клиента - список доступен только менеджерам
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"`
	ListingID          *int64  `json:"listingId,omitempty"`
	ClientID           int64   `json:"clientId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	DurationHours      int     `json:"durationHours"`
	Status             string  `json:"status"`
	Amount             float64 `json:"amount"`
	DepositAmount      float64 `json:"depositAmount"`
	ClientName         string  `json:"clientName"`
	ClientEmail        *string `json:"clientEmail,omitempty"`
	ClientPhone        *string `json:"clientPhone,omitempty"`
	Location           string  `json:"location"`
	PartySize          int     `json:"partySize"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
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
			ID:                 res.ID,
			Reference:          res.Reference,
			ListingID:          res.ListingID,
			ClientID:           res.ClientID,
			Date:               res.StartAt.Format(domain.DateFormat),
			StartTime:          res.StartAt.Format("15:04"),
			DurationHours:      res.DurationHours,
			Status:             res.Status,
			Amount:             res.Amount,
			DepositAmount:      res.DepositAmount,
			ClientName:         res.ClientName,
			ClientEmail:        res.ClientEmail,
			ClientPhone:        res.ClientPhone,
			Location:           res.Location,
			PartySize:          res.PartySize,
			Notes:              res.Notes,
			CancellationReason: res.CancellationReason,
			CreatedAt:          res.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ReservationListResponse{
		Reservations: reservations,
		Total:        resp.Total,
	}
}
