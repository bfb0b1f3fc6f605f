package check_availability

import (
	"errors"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

var (
	// ErrInvalidDuration возвращается, когда не передана положительная
	// длительность для почасового тарифа. Переиспользуем sentinel из domain,
	// чтобы все три пользовательских сценария отдавали одну и ту же ошибку
	ErrInvalidDuration = domain.ErrInvalidDuration

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
