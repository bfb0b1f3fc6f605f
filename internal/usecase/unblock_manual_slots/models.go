package unblock_manual_slots

import "time"

// Request модель запроса снятия ручных блокировок
type Request struct {
	ProviderID    int64
	UserID        int64     // Аутентифицированный менеджер
	StartAt       time.Time // Первый освобождаемый час
	DurationHours int       // Число часов подряд
}

// Response результат снятия блокировок
// ReleasedCount меньше DurationHours - не ошибка: часть окна могла быть
// свободна или занята слотами от бронирований, которые не снимаются
type Response struct {
	ProviderID    int64
	StartAt       time.Time
	DurationHours int
	ReleasedCount int64
}
