package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// Writer ведёт леджер заблокированных слотов
//
// Для каждого активного бронирования длительностью D часов с началом T
// в леджере лежат D строк на T, T+1ч, ..., T+(D-1)ч, привязанных к
// бронированию. Ручные блокировки и блокировки от бронирований живут в одной
// таблице, поэтому проверка конфликтов идёт по единому пути
//
// Все операции идемпотентны по id бронирования: повторный вызов выверяет
// состояние, а не дублирует строки
type Writer struct {
	slotRepo BlockedSlotRepository
	logger   Logger
}

// NewWriter создает новый экземпляр писателя леджера
func NewWriter(slotRepo BlockedSlotRepository, logger Logger) *Writer {
	return &Writer{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// OnReservationConfirmed разворачивает бронирование в почасовые слоты леджера
//
// Сначала удаляются все строки этого бронирования, затем вставляется полный
// набор заново - поэтому повторный вызов для того же бронирования даёт ровно
// тот же набор строк, а выверка после рассинхронизации сводится к повторному
// вызову этого метода
func (w *Writer) OnReservationConfirmed(ctx context.Context, res *domain.Reservation) error {
	deleted, err := w.slotRepo.DeleteByReservationID(ctx, res.ProviderID, res.ID)
	if err != nil {
		return fmt.Errorf("%w: OnReservationConfirmed - clear stale slots: %v", ErrInternal, err)
	}
	if deleted > 0 {
		w.logger.Info("Ledger: replaced %d stale slots for reservation id=%d", deleted, res.ID)
	}

	slots := w.expandReservation(res)
	if err := w.slotRepo.InsertBatch(ctx, slots); err != nil {
		return fmt.Errorf("%w: OnReservationConfirmed - insert slots: %v", ErrInternal, err)
	}

	w.logger.Info("Ledger: blocked %d slots for reservation id=%d (provider=%d, start=%s)",
		len(slots), res.ID, res.ProviderID, res.StartAt.Format(time.RFC3339))

	return nil
}

// OnReservationCancelled удаляет все слоты, производные от бронирования
// Удаление ключуется по id бронирования, а не по окну времени, поэтому ручные
// блокировки провайдера с совпадающими часами не затрагиваются
func (w *Writer) OnReservationCancelled(ctx context.Context, res *domain.Reservation) error {
	deleted, err := w.slotRepo.DeleteByReservationID(ctx, res.ProviderID, res.ID)
	if err != nil {
		return fmt.Errorf("%w: OnReservationCancelled - delete slots: %v", ErrInternal, err)
	}

	w.logger.Info("Ledger: released %d slots for cancelled reservation id=%d (provider=%d)",
		deleted, res.ID, res.ProviderID)

	return nil
}

// OnManualBlock блокирует часы по инициативе провайдера, без бронирования
// Используется быстрыми действиями в календаре провайдера (отпуск, выезд)
func (w *Writer) OnManualBlock(
	ctx context.Context,
	providerID int64,
	start time.Time,
	durationHours int,
	reason string,
	listingID *int64,
) error {
	start = alignToHour(start)

	slots := make([]*domain.BlockedSlot, 0, durationHours)
	for i := 0; i < durationHours; i++ {
		slots = append(slots, &domain.BlockedSlot{
			ProviderID: providerID,
			SlotAt:     start.Add(time.Duration(i) * time.Hour),
			Reason:     reason,
			ListingID:  listingID,
		})
	}

	if err := w.slotRepo.InsertBatch(ctx, slots); err != nil {
		return fmt.Errorf("%w: OnManualBlock - insert slots: %v", ErrInternal, err)
	}

	w.logger.Info("Ledger: manually blocked %d slots for provider=%d from %s",
		len(slots), providerID, start.Format(time.RFC3339))

	return nil
}

// OnManualUnblock снимает ручные блокировки в окне [start, start+durationHours)
// Слоты, производные от бронирований, не затрагиваются
// Возвращает количество снятых блокировок
func (w *Writer) OnManualUnblock(
	ctx context.Context,
	providerID int64,
	start time.Time,
	durationHours int,
) (int64, error) {
	start = alignToHour(start)
	end := start.Add(time.Duration(durationHours) * time.Hour)

	deleted, err := w.slotRepo.DeleteManualByRange(ctx, providerID, start, end)
	if err != nil {
		return 0, fmt.Errorf("%w: OnManualUnblock - delete slots: %v", ErrInternal, err)
	}

	w.logger.Info("Ledger: manually unblocked %d slots for provider=%d from %s",
		deleted, providerID, start.Format(time.RFC3339))

	return deleted, nil
}

// expandReservation разворачивает бронирование в набор почасовых слотов
func (w *Writer) expandReservation(res *domain.Reservation) []*domain.BlockedSlot {
	duration := res.EffectiveDurationHours()
	start := alignToHour(res.StartAt)

	reason := fmt.Sprintf("Бронирование %s", res.Reference)
	if res.ClientName != "" {
		reason = fmt.Sprintf("%s, клиент: %s", reason, res.ClientName)
	}

	slots := make([]*domain.BlockedSlot, 0, duration)
	for i := 0; i < duration; i++ {
		reservationID := res.ID
		slots = append(slots, &domain.BlockedSlot{
			ProviderID:    res.ProviderID,
			SlotAt:        start.Add(time.Duration(i) * time.Hour),
			Reason:        reason,
			ListingID:     res.ListingID,
			ReservationID: &reservationID,
		})
	}

	return slots
}

// alignToHour обнуляет минуты и секунды - слоты леджера выровнены по часу
func alignToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
