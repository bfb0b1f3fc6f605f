package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// memSlotRepo in-memory репозиторий слотов для тестов писателя леджера
type memSlotRepo struct {
	slots  []*domain.BlockedSlot
	nextID int64
}

func (m *memSlotRepo) InsertBatch(_ context.Context, slots []*domain.BlockedSlot) error {
	for _, slot := range slots {
		m.nextID++
		stored := *slot
		stored.ID = m.nextID
		m.slots = append(m.slots, &stored)
	}
	return nil
}

func (m *memSlotRepo) DeleteByReservationID(_ context.Context, providerID, reservationID int64) (int64, error) {
	kept := make([]*domain.BlockedSlot, 0, len(m.slots))
	var deleted int64
	for _, slot := range m.slots {
		if slot.ProviderID == providerID && slot.ReservationID != nil && *slot.ReservationID == reservationID {
			deleted++
			continue
		}
		kept = append(kept, slot)
	}
	m.slots = kept
	return deleted, nil
}

func (m *memSlotRepo) DeleteManualByRange(_ context.Context, providerID int64, from, to time.Time) (int64, error) {
	kept := make([]*domain.BlockedSlot, 0, len(m.slots))
	var deleted int64
	for _, slot := range m.slots {
		manual := slot.ReservationID == nil
		inRange := !slot.SlotAt.Before(from) && slot.SlotAt.Before(to)
		if slot.ProviderID == providerID && manual && inRange {
			deleted++
			continue
		}
		kept = append(kept, slot)
	}
	m.slots = kept
	return deleted, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(id int64, startHour, durationHours int) *domain.Reservation {
	return &domain.Reservation{
		ID:            id,
		Reference:     "e9b1c5d0-0000-0000-0000-000000000001",
		ProviderID:    1,
		ClientID:      42,
		StartAt:       time.Date(2026, time.September, 15, startHour, 0, 0, 0, time.UTC),
		DurationHours: durationHours,
		Status:        domain.StatusConfirmed,
		ClientName:    "Анна Иванова",
	}
}

func TestOnReservationConfirmed(t *testing.T) {
	t.Run("expands reservation into hourly rows", func(t *testing.T) {
		repo := &memSlotRepo{}
		writer := NewWriter(repo, nopLogger{})
		res := testReservation(10, 10, 3)

		err := writer.OnReservationConfirmed(context.Background(), res)

		require.NoError(t, err)
		require.Len(t, repo.slots, 3)
		for i, slot := range repo.slots {
			assert.Equal(t, res.StartAt.Add(time.Duration(i)*time.Hour), slot.SlotAt)
			require.NotNil(t, slot.ReservationID)
			assert.Equal(t, res.ID, *slot.ReservationID)
			assert.Contains(t, slot.Reason, res.Reference)
			assert.Contains(t, slot.Reason, res.ClientName)
		}
	})

	t.Run("legacy reservation without duration blocks two hours", func(t *testing.T) {
		repo := &memSlotRepo{}
		writer := NewWriter(repo, nopLogger{})

		err := writer.OnReservationConfirmed(context.Background(), testReservation(10, 10, 0))

		require.NoError(t, err)
		assert.Len(t, repo.slots, domain.DefaultReservationDurationHours)
	})

	t.Run("repeated confirm is idempotent", func(t *testing.T) {
		repo := &memSlotRepo{}
		writer := NewWriter(repo, nopLogger{})
		res := testReservation(10, 10, 2)

		require.NoError(t, writer.OnReservationConfirmed(context.Background(), res))
		require.NoError(t, writer.OnReservationConfirmed(context.Background(), res))

		assert.Len(t, repo.slots, 2)
	})

	t.Run("reschedule rewrites old hours", func(t *testing.T) {
		repo := &memSlotRepo{}
		writer := NewWriter(repo, nopLogger{})
		res := testReservation(10, 10, 2)

		require.NoError(t, writer.OnReservationConfirmed(context.Background(), res))

		res.StartAt = time.Date(2026, time.September, 16, 14, 0, 0, 0, time.UTC)
		require.NoError(t, writer.OnReservationConfirmed(context.Background(), res))

		require.Len(t, repo.slots, 2)
		assert.Equal(t, res.StartAt, repo.slots[0].SlotAt)
		assert.Equal(t, res.StartAt.Add(time.Hour), repo.slots[1].SlotAt)
	})
}

func TestOnReservationCancelled(t *testing.T) {
	t.Run("releases only rows of the cancelled reservation", func(t *testing.T) {
		repo := &memSlotRepo{}
		writer := NewWriter(repo, nopLogger{})

		first := testReservation(10, 10, 2)
		second := testReservation(11, 14, 1)
		require.NoError(t, writer.OnReservationConfirmed(context.Background(), first))
		require.NoError(t, writer.OnReservationConfirmed(context.Background(), second))

		require.NoError(t, writer.OnReservationCancelled(context.Background(), first))

		require.Len(t, repo.slots, 1)
		assert.Equal(t, second.StartAt, repo.slots[0].SlotAt)
	})

	t.Run("manual blocks with matching hours survive cancellation", func(t *testing.T) {
		repo := &memSlotRepo{}
		writer := NewWriter(repo, nopLogger{})
		res := testReservation(10, 10, 2)

		require.NoError(t, writer.OnManualBlock(context.Background(), 1, res.StartAt, 2, "выезд", nil))
		require.NoError(t, writer.OnReservationCancelled(context.Background(), res))

		assert.Len(t, repo.slots, 2)
	})
}

func TestOnManualBlock(t *testing.T) {
	repo := &memSlotRepo{}
	writer := NewWriter(repo, nopLogger{})
	start := time.Date(2026, time.September, 15, 9, 30, 0, 0, time.UTC)

	err := writer.OnManualBlock(context.Background(), 1, start, 3, "отпуск", nil)

	require.NoError(t, err)
	require.Len(t, repo.slots, 3)
	// Начало выравнивается по часу
	assert.Equal(t, time.Date(2026, time.September, 15, 9, 0, 0, 0, time.UTC), repo.slots[0].SlotAt)
	for _, slot := range repo.slots {
		assert.Nil(t, slot.ReservationID)
		assert.Equal(t, "отпуск", slot.Reason)
	}
}

func TestOnManualUnblock(t *testing.T) {
	repo := &memSlotRepo{}
	writer := NewWriter(repo, nopLogger{})
	start := time.Date(2026, time.September, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, writer.OnManualBlock(context.Background(), 1, start, 3, "отпуск", nil))
	require.NoError(t, writer.OnReservationConfirmed(context.Background(), testReservation(10, 12, 2)))

	// Окно покрывает и ручные блокировки, и слоты бронирования
	released, err := writer.OnManualUnblock(context.Background(), 1, start, 6)

	require.NoError(t, err)
	assert.Equal(t, int64(3), released)
	// Слоты бронирования не затронуты
	assert.Len(t, repo.slots, 2)
}
