package create_reservation

import (
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// Request модель запроса создания бронирования
type Request struct {
	ClientID   int64  // Аутентифицированный клиент
	ProviderID int64  // ID провайдера
	ListingID  *int64 // Листинг услуги (опционально: прямое бронирование по заявке)

	StartAt       time.Time // Начало слота, выровненное по часу
	DurationHours int       // Сырой пользовательский ввод (для почасового тарифа)

	// QuoteAmount согласованная цена по принятой заявке
	// Обязательна для договорных листингов и бронирований без листинга
	QuoteAmount *float64

	ClientName  string
	ClientEmail *string
	ClientPhone *string
	Location    string
	PartySize   int
	Notes       *string
}

// Response модель созданного бронирования
// При ErrSlotConflict заполнены только ProviderID, StartAt, DurationHours и
// Alternatives - их хендлер кладёт в тело 409 ответа
type Response struct {
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

	ClientName  string
	ClientEmail *string
	ClientPhone *string
	Location    string
	PartySize   int
	Notes       *string

	CreatedAt time.Time

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
		ListingID:     res.ListingID,
		ClientID:      res.ClientID,
		StartAt:       res.StartAt,
		DurationHours: res.DurationHours,
		Status:        string(res.Status),
		Amount:        res.Amount,
		DepositAmount: res.DepositAmount,
		ClientName:    res.ClientName,
		ClientEmail:   res.ClientEmail,
		ClientPhone:   res.ClientPhone,
		Location:      res.Location,
		PartySize:     res.PartySize,
		Notes:         res.Notes,
		CreatedAt:     res.CreatedAt,
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
