package domain

// Canonical tariff durations
const (
	HalfDayDurationHours     = 4
	DayDurationHours         = 8
	DefaultUnitDurationHours = 1 // session/package без объявленных часов
)

// Default durations
const (
	// DefaultReservationDurationHours дефолт для legacy бронирований без длительности
	// Асимметрия с шириной слота (1ч) унаследована от исходных страниц и
	// сохранена сознательно: дефолт применяется только к чтению старых строк,
	// новые записи всегда сохраняют явную длительность
	DefaultReservationDurationHours = 2

	// BlockedSlotDurationHours ширина одного заблокированного слота
	BlockedSlotDurationHours = 1
)

// Default provider schedule configuration
const (
	DefaultOpenHour        = 8
	DefaultCloseHour       = 20
	DefaultSearchDays      = 7
	DefaultMaxAlternatives = 3
	DefaultDepositPercent  = 30
)

// Business validation constants
const (
	MinOpenHour        = 0
	MaxCloseHour       = 24
	MinSearchDays      = 1
	MaxSearchDays      = 60
	MinMaxAlternatives = 1
	MaxMaxAlternatives = 20
	MinDepositPercent  = 0
	MaxDepositPercent  = 100

	MaxDurationHours  = 24 // Ни одно бронирование не длиннее суток
	MaxPartySize      = 1000
	MaxNotesLength    = 500
	MaxReasonLength   = 500
	MaxLocationLength = 300
)

// ConflictFetchWindowHours окно выборки соседних интервалов при проверке
// конфликтов: ±24ч достаточно, так как ни один интервал не длиннее суток
const ConflictFetchWindowHours = 24

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих календарь
// Используется для фильтрации при проверке конфликтов
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, блокирующих календарь
// Бронирование в статусе pending блокирует слоты наравне с confirmed
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
