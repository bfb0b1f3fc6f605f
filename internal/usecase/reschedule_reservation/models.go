package reschedule_reservation

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// Request модель запроса переноса бронирования
type Request struct {
	ReservationID int64
	UserID        int64 // Аутентифицированный пользователь (клиент или менеджер)

	StartAt       time.Time // Новое начало слота
	DurationHours int       // Новая длительность; 0 сохраняет текущую
}

// Response модель перенесенного бронирования
// При ErrSlotConflict заполнены только ProviderID, StartAt, DurationHours
// и Alternatives
type Response struct {
	ID            int64
	Reference     string
	ProviderID    int64
	ClientID      int64
	StartAt       time.Time
	DurationHours int
	Status        string
	UpdatedAt     time.Time

	Alternatives []Alternative
}

// Alternative свободный слот той же длительности
type Alternative struct {
	Date      time.Time
	StartHour int
}

// fromDomain конвертирует domain бронирование в response модель
func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:            res.ID,
		Reference:     res.Reference,
		ProviderID:    res.ProviderID,
		ClientID:      res.ClientID,
		StartAt:       res.StartAt,
		DurationHours: res.DurationHours,
		Status:        string(res.Status),
		UpdatedAt:     res.UpdatedAt,
	}
}

// toAlternatives конвертирует предложения сервиса в response модель
func toAlternatives(suggestions []domain.SlotSuggestion) []Alternative {
	alternatives := make([]Alternative, 0, len(suggestions))
	for _, s := range suggestions {
		alternatives = append(alternatives, Alternative{
			Date:      s.Date,
			StartHour: s.StartHour,
		})
	}
	return alternatives
}
