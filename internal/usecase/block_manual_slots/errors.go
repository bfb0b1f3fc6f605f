package block_manual_slots

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrAccessDenied возвращается, когда пользователь не менеджер провайдера
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotConflict возвращается, когда блокируемые часы пересекаются с
	// активным бронированием или уже заблокированным слотом
	ErrSlotConflict = errors.New("requested slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
