package create_reservation

import (
	"errors"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

var (
	// ErrInvalidDuration возвращается для почасового тарифа без положительной длительности
	ErrInvalidDuration = domain.ErrInvalidDuration

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("listing not found")

	// ErrSlotConflict возвращается, когда запрошенный слот пересекается с
	// активным бронированием или заблокированным слотом
	// Вместе с ошибкой возвращается Response с альтернативными слотами
	ErrSlotConflict = errors.New("requested slot is not available")

	// ErrPriceUnresolved возвращается, когда сумму нечем посчитать:
	// листинг договорной (или не передан), а согласованной цены по заявке нет
	ErrPriceUnresolved = errors.New("price cannot be resolved: negotiated listing requires a quote amount")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
