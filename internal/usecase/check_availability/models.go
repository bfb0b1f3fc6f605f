package check_availability

import "time"

// Request модель запроса проверки доступности слота
type Request struct {
	UserID        int64      // 0 для неаутентифицированных запросов (публичная страница листинга)
	ProviderID    int64      // ID провайдера
	ListingID     *int64     // Листинг для нормализации тарифа (опционально)
	StartAt       time.Time  // Кандидат: начало слота
	DurationHours int        // Сырой пользовательский ввод длительности (0 = не передан)
}

// Response результат проверки доступности
// Пустой список альтернатив при Available=false - валидный ответ
// "занято и предложить нечего", вызывающая сторона обязана показывать его
// отлично от "свободно"
type Response struct {
	ProviderID    int64
	StartAt       time.Time
	DurationHours int           // Нормализованная длительность
	Available     bool
	Alternatives  []Alternative // Заполняется только при Available=false
}

// Alternative свободный слот той же длительности
type Alternative struct {
	Date      time.Time // День слота
	StartHour int       // Час начала
}
