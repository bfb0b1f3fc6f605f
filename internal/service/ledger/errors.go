package ledger

import "errors"

var (
	// ErrInternal возвращается при ошибках записи леджера
	// Вызывающий код после успешной записи бронирования обязан логировать эту
	// ошибку как рассинхронизацию леджера и продолжать: повторный вызов
	// OnReservationConfirmed/OnReservationCancelled выверяет состояние
	ErrInternal = errors.New("ledger.service: internal error")
)
