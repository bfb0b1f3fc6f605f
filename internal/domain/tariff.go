package domain

import (
	"errors"
	"fmt"
)

// TariffUnit единица тарификации листинга
type TariffUnit string

const (
	TariffHour    TariffUnit = "hour"
	TariffHalfDay TariffUnit = "half_day"
	TariffDay     TariffUnit = "day"
	TariffSession TariffUnit = "session"
	TariffPackage TariffUnit = "package"
)

var (
	// ErrInvalidDuration возвращается, когда для почасового тарифа не передана
	// положительная длительность. Отклоняется до любого обращения к хранилищу
	ErrInvalidDuration = errors.New("invalid duration: a positive duration in hours is required")

	// ErrUnknownTariffUnit возвращается при неизвестной единице тарификации
	ErrUnknownTariffUnit = errors.New("unknown tariff unit")
)

// IsValid returns true if the tariff unit is one of the known values
func (u TariffUnit) IsValid() bool {
	switch u {
	case TariffHour, TariffHalfDay, TariffDay, TariffSession, TariffPackage:
		return true
	default:
		return false
	}
}

// NormalizeDuration приводит единицу тарификации и сырой пользовательский ввод
// к канонической длительности в часах
//
// Только почасовой тариф даёт пользователю контрол длительности. Остальные
// единицы - продукты фиксированного размера, поэтому любое случайное значение
// длительности (например, застрявшее в скрытом поле формы) молча перекрывается,
// чтобы расчёт цены и проверка конфликтов всегда сходились
//
// - hour: длительность = rawHours, обязана быть положительной
// - half_day: всегда 4 часа
// - day: всегда 8 часов
// - session / package: unitHours листинга, если он положителен, иначе 1 час
func NormalizeDuration(unit TariffUnit, rawHours int, unitHours int) (int, error) {
	switch unit {
	case TariffHour:
		if rawHours <= 0 {
			return 0, ErrInvalidDuration
		}
		return rawHours, nil
	case TariffHalfDay:
		return HalfDayDurationHours, nil
	case TariffDay:
		return DayDurationHours, nil
	case TariffSession, TariffPackage:
		if unitHours > 0 {
			return unitHours, nil
		}
		return DefaultUnitDurationHours, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTariffUnit, string(unit))
	}
}
