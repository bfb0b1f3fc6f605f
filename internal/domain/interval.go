package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End)
// Вся логика конфликтов работает на парах таких интервалов
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал от start длительностью durationHours часов
func NewInterval(start time.Time, durationHours int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationHours) * time.Hour),
	}
}

// Overlaps возвращает true, если интервалы действительно пересекаются
// Полуоткрытая семантика: соседние интервалы (a.End == b.Start) НЕ пересекаются
//
// Примеры:
// - [10:00, 12:00) и [11:00, 13:00) → пересекаются
// - [10:00, 11:00) и [11:00, 12:00) → НЕ пересекаются (граничат)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains возвращает true, если момент t попадает в интервал
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// DurationHours возвращает длительность интервала в целых часах
func (i Interval) DurationHours() int {
	return int(i.End.Sub(i.Start) / time.Hour)
}
