package reschedule_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда пользователь не клиент и не менеджер провайдера
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotReschedule возвращается при попытке перенести отмененное бронирование
	ErrCannotReschedule = errors.New("cancelled reservation cannot be rescheduled")

	// ErrSlotConflict возвращается, когда новый слот пересекается с чужим
	// бронированием или заблокированным слотом. Собственная запись переносимого
	// бронирования конфликтом не считается
	ErrSlotConflict = errors.New("requested slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
