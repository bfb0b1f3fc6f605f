package domain

import "time"

// ProviderScheduleConfig represents the booking configuration of a provider
// Хранится по одной строке на провайдера; при отсутствии строки действуют
// дефолтные значения из constants.go
type ProviderScheduleConfig struct {
	ID              int64
	ProviderID      int64
	OpenHour        int // Час начала рабочего дня (включительно)
	CloseHour       int // Час конца рабочего дня (исключительно)
	SearchDays      int // Глубина поиска альтернативных слотов в днях
	MaxAlternatives int // Максимум предлагаемых альтернатив
	DepositPercent  int // Процент предоплаты от суммы бронирования
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultProviderScheduleConfig возвращает конфигурацию с дефолтными значениями
func DefaultProviderScheduleConfig(providerID int64) *ProviderScheduleConfig {
	return &ProviderScheduleConfig{
		ProviderID:      providerID,
		OpenHour:        DefaultOpenHour,
		CloseHour:       DefaultCloseHour,
		SearchDays:      DefaultSearchDays,
		MaxAlternatives: DefaultMaxAlternatives,
		DepositPercent:  DefaultDepositPercent,
	}
}

// WorkingHoursCount возвращает количество рабочих часов в дне
func (c *ProviderScheduleConfig) WorkingHoursCount() int {
	return c.CloseHour - c.OpenHour
}

// RequiresDeposit returns true if bookings start as pending until a deposit is paid
func (c *ProviderScheduleConfig) RequiresDeposit() bool {
	return c.DepositPercent > 0
}

// SlotSuggestion свободный слот, предложенный как альтернатива занятому времени
type SlotSuggestion struct {
	Date      time.Time // День слота (время обнулено)
	StartHour int       // Час начала слота
}

// StartAt возвращает точное время начала предложенного слота
func (s SlotSuggestion) StartAt() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), s.StartHour, 0, 0, 0, s.Date.Location())
}
