package block_manual_slots

import "time"

// Request модель запроса ручной блокировки часов
type Request struct {
	ProviderID    int64
	UserID        int64     // Аутентифицированный менеджер
	StartAt       time.Time // Первый блокируемый час
	DurationHours int       // Число блокируемых часов подряд
	Reason        string    // Причина (отпуск, выезд), опционально
	ListingID     *int64    // Привязка блокировки к листингу, опционально
}

// Response результат ручной блокировки
type Response struct {
	ProviderID    int64
	StartAt       time.Time
	DurationHours int
	BlockedCount  int // Число созданных строк леджера
}
