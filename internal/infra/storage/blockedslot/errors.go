package blockedslot

import "errors"

var (
	// ErrSlotTaken возвращается при нарушении уникальности (provider_id, slot_at)
	// Проигранная гонка между проверкой доступности и записью превращается
	// в эту ошибку вместо двойного бронирования
	ErrSlotTaken = errors.New("blockedslot.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockedslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockedslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockedslot.repository: failed to scan row")
)
