package check_availability

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProviderID    int64                 `json:"providerId"`
	Date          string                `json:"date"`
	StartTime     string                `json:"startTime"`
	DurationHours int                   `json:"durationHours"`
	Available     bool                  `json:"available"`
	Alternatives  []AlternativeResponse `json:"alternatives"`
}

// AlternativeResponse свободный слот той же длительности
type AlternativeResponse struct {
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
}

// buildStartAt собирает момент начала слота из даты и времени HH:MM
func buildStartAt(date time.Time, startTime types.TimeString) time.Time {
	return date.Add(time.Duration(startTime.Minutes()) * time.Minute)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	alternatives := make([]AlternativeResponse, 0, len(resp.Alternatives))
	for _, a := range resp.Alternatives {
		alternatives = append(alternatives, AlternativeResponse{
			Date:      a.Date.Format(domain.DateFormat),
			StartHour: a.StartHour,
		})
	}

	return &AvailabilityResponse{
		ProviderID:    resp.ProviderID,
		Date:          resp.StartAt.Format(domain.DateFormat),
		StartTime:     resp.StartAt.Format("15:04"),
		DurationHours: resp.DurationHours,
		Available:     resp.Available,
		Alternatives:  alternatives,
	}
}
