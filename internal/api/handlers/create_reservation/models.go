package create_reservation

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	createReservation "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/create_reservation"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ProviderID    int64    `json:"providerId"`
	ListingID     *int64   `json:"listingId,omitempty"`
	Date          string   `json:"date"`      // "2026-09-15"
	StartTime     string   `json:"startTime"` // "10:00"
	DurationHours int      `json:"durationHours,omitempty"`
	QuoteAmount   *float64 `json:"quoteAmount,omitempty"`
	ClientName    string   `json:"clientName"`
	ClientEmail   *string  `json:"clientEmail,omitempty"`
	ClientPhone   *string  `json:"clientPhone,omitempty"`
	Location      string   `json:"location"`
	PartySize     int      `json:"partySize"`
	Notes         *string  `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64    `json:"id"`
	Reference     string   `json:"reference"`
	ProviderID    int64    `json:"providerId"`
	ListingID     *int64   `json:"listingId,omitempty"`
	ClientID      int64    `json:"clientId"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	DurationHours int      `json:"durationHours"`
	Status        string   `json:"status"`
	Amount        float64  `json:"amount"`
	DepositAmount float64  `json:"depositAmount"`
	ClientName    string   `json:"clientName"`
	ClientEmail   *string  `json:"clientEmail,omitempty"`
	ClientPhone   *string  `json:"clientPhone,omitempty"`
	Location      string   `json:"location"`
	PartySize     int      `json:"partySize"`
	Notes         *string  `json:"notes,omitempty"`
	CreatedAt     string   `json:"createdAt"`
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
func (r *CreateReservationRequest) ToUseCaseRequest(clientID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientID:      clientID,
		ProviderID:    r.ProviderID,
		ListingID:     r.ListingID,
		StartAt:       date.Add(time.Duration(startTime.Minutes()) * time.Minute),
		DurationHours: r.DurationHours,
		QuoteAmount:   r.QuoteAmount,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientPhone:   r.ClientPhone,
		Location:      r.Location,
		PartySize:     r.PartySize,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		ProviderID:    resp.ProviderID,
		ListingID:     resp.ListingID,
		ClientID:      resp.ClientID,
		Date:          resp.StartAt.Format(domain.DateFormat),
		StartTime:     resp.StartAt.Format("15:04"),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		Amount:        resp.Amount,
		DepositAmount: resp.DepositAmount,
		ClientName:    resp.ClientName,
		ClientEmail:   resp.ClientEmail,
		ClientPhone:   resp.ClientPhone,
		Location:      resp.Location,
		PartySize:     resp.PartySize,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}

// ToConflictResponse собирает тело 409 ответа
func ToConflictResponse(message string, resp *createReservation.Response) *ConflictResponse {
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
