package domain

import "time"

// BlockedSlot represents a single blocked hour in a provider's calendar
// Ручные блокировки (отпуск, переезд студии) и блокировки, производные от
// бронирований, живут в одной таблице, чтобы проверка конфликтов шла по
// единому пути
type BlockedSlot struct {
	ID            int64
	ProviderID    int64
	SlotAt        time.Time // Начало заблокированного часа, выровнено по часу
	Reason        string
	ListingID     *int64
	ReservationID *int64 // nil = ручная блокировка провайдера
	CreatedAt     time.Time
}

// IsReservationDerived returns true if the slot was expanded from a reservation
func (s *BlockedSlot) IsReservationDerived() bool {
	return s.ReservationID != nil
}

// IsManual returns true if the slot was created by the provider directly
func (s *BlockedSlot) IsManual() bool {
	return s.ReservationID == nil
}

// Interval возвращает полуоткрытый интервал слота, всегда шириной в один час
func (s *BlockedSlot) Interval() Interval {
	return NewInterval(s.SlotAt, BlockedSlotDurationHours)
}
