package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	calls        int
}

func (f *fakeReservationRepo) GetByProviderAndRange(
	_ context.Context,
	_ int64,
	from, to time.Time,
	excludeReservationID *int64,
) ([]*domain.Reservation, error) {
	f.calls++

	result := make([]*domain.Reservation, 0)
	for _, res := range f.reservations {
		if excludeReservationID != nil && res.ID == *excludeReservationID {
			continue
		}
		if res.StartAt.Before(to) && res.StartAt.After(from.Add(-time.Nanosecond)) {
			result = append(result, res)
		}
	}
	return result, nil
}

type fakeSlotRepo struct {
	slots []*domain.BlockedSlot
}

func (f *fakeSlotRepo) GetByProviderAndRange(
	_ context.Context,
	_ int64,
	from, to time.Time,
	excludeReservationID *int64,
) ([]*domain.BlockedSlot, error) {
	result := make([]*domain.BlockedSlot, 0)
	for _, slot := range f.slots {
		if excludeReservationID != nil && slot.ReservationID != nil && *slot.ReservationID == *excludeReservationID {
			continue
		}
		if slot.SlotAt.Before(to) && slot.SlotAt.After(from.Add(-time.Nanosecond)) {
			result = append(result, slot)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slotAt(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

var testDay = time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name         string
		reservations []*domain.Reservation
		slots        []*domain.BlockedSlot
		candidate    domain.Interval
		exclude      *int64
		want         bool
	}{
		{
			name:      "empty calendar has no conflicts",
			candidate: domain.NewInterval(slotAt(testDay, 10), 2),
			want:      false,
		},
		{
			name: "two hour reservation blocks one hour candidate inside it",
			reservations: []*domain.Reservation{
				{ID: 1, StartAt: slotAt(testDay, 10), DurationHours: 2, Status: domain.StatusConfirmed},
			},
			candidate: domain.NewInterval(slotAt(testDay, 10), 1),
			want:      true,
		},
		{
			name: "candidate ending at reservation start does not conflict",
			reservations: []*domain.Reservation{
				{ID: 1, StartAt: slotAt(testDay, 10), DurationHours: 2, Status: domain.StatusConfirmed},
			},
			candidate: domain.NewInterval(slotAt(testDay, 9), 1),
			want:      false,
		},
		{
			name: "cancelled reservation never blocks",
			reservations: []*domain.Reservation{
				{ID: 1, StartAt: slotAt(testDay, 10), DurationHours: 2, Status: domain.StatusCancelled},
			},
			candidate: domain.NewInterval(slotAt(testDay, 10), 2),
			want:      false,
		},
		{
			name: "legacy reservation without duration blocks two hours",
			reservations: []*domain.Reservation{
				{ID: 1, StartAt: slotAt(testDay, 10), DurationHours: 0, Status: domain.StatusPending},
			},
			candidate: domain.NewInterval(slotAt(testDay, 11), 1),
			want:      true,
		},
		{
			name: "manual blocked slot conflicts",
			slots: []*domain.BlockedSlot{
				{ID: 1, SlotAt: slotAt(testDay, 14), Reason: "отпуск"},
			},
			candidate: domain.NewInterval(slotAt(testDay, 13), 2),
			want:      true,
		},
		{
			name: "excluded reservation and its slots are ignored",
			reservations: []*domain.Reservation{
				{ID: 7, StartAt: slotAt(testDay, 10), DurationHours: 2, Status: domain.StatusConfirmed},
			},
			slots: []*domain.BlockedSlot{
				{ID: 1, SlotAt: slotAt(testDay, 10), ReservationID: ptrInt64(7)},
				{ID: 2, SlotAt: slotAt(testDay, 11), ReservationID: ptrInt64(7)},
			},
			candidate: domain.NewInterval(slotAt(testDay, 10), 2),
			exclude:   ptrInt64(7),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(
				&fakeReservationRepo{reservations: tt.reservations},
				&fakeSlotRepo{slots: tt.slots},
				nopLogger{},
			)

			got, err := checker.HasConflict(context.Background(), 1, tt.candidate, tt.exclude)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindAlternatives(t *testing.T) {
	opts := SearchOptions{
		OpenHour:   8,
		CloseHour:  20,
		SearchDays: 7,
		MaxResults: 3,
	}

	t.Run("free day offers first slots of the day", func(t *testing.T) {
		checker := NewChecker(&fakeReservationRepo{}, &fakeSlotRepo{}, nopLogger{})

		got, err := checker.FindAlternatives(context.Background(), 1, testDay, 2, opts, nil)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 8, got[0].StartHour)
		assert.Equal(t, 9, got[1].StartHour)
		assert.Equal(t, 10, got[2].StartHour)
		for _, s := range got {
			assert.Equal(t, testDay, s.Date)
		}
	})

	t.Run("suggestions skip busy hours", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			{ID: 1, StartAt: slotAt(testDay, 8), DurationHours: 2, Status: domain.StatusConfirmed},
		}}
		checker := NewChecker(repo, &fakeSlotRepo{}, nopLogger{})

		got, err := checker.FindAlternatives(context.Background(), 1, testDay, 2, opts, nil)

		require.NoError(t, err)
		require.Len(t, got, 3)
		// 08:00 и 09:00 пересекаются с бронированием, первый свободный - 10:00
		assert.Equal(t, 10, got[0].StartHour)
		assert.Equal(t, 11, got[1].StartHour)
		assert.Equal(t, 12, got[2].StartHour)
	})

	t.Run("fully booked day rolls over to next morning", func(t *testing.T) {
		busy := make([]*domain.Reservation, 0)
		for hour := 8; hour < 20; hour++ {
			busy = append(busy, &domain.Reservation{
				ID:            int64(hour),
				StartAt:       slotAt(testDay, hour),
				DurationHours: 1,
				Status:        domain.StatusConfirmed,
			})
		}
		checker := NewChecker(&fakeReservationRepo{reservations: busy}, &fakeSlotRepo{}, nopLogger{})

		got, err := checker.FindAlternatives(context.Background(), 1, testDay, 2, opts, nil)

		require.NoError(t, err)
		require.Len(t, got, 3)
		nextDay := testDay.AddDate(0, 0, 1)
		assert.Equal(t, nextDay, got[0].Date)
		assert.Equal(t, 8, got[0].StartHour)
	})

	t.Run("last slot of the day must fit before closing", func(t *testing.T) {
		checker := NewChecker(&fakeReservationRepo{}, &fakeSlotRepo{}, nopLogger{})

		shortSearch := SearchOptions{OpenHour: 8, CloseHour: 20, SearchDays: 1, MaxResults: 100}
		got, err := checker.FindAlternatives(context.Background(), 1, testDay, 4, shortSearch, nil)

		require.NoError(t, err)
		require.NotEmpty(t, got)
		// Четырехчасовой слот обязан закончиться к 20:00
		assert.Equal(t, 16, got[len(got)-1].StartHour)
	})

	t.Run("everything blocked for the whole horizon yields empty result", func(t *testing.T) {
		busy := make([]*domain.Reservation, 0)
		for day := 0; day < 7; day++ {
			d := testDay.AddDate(0, 0, day)
			busy = append(busy, &domain.Reservation{
				ID:            int64(day + 1),
				StartAt:       slotAt(d, 8),
				DurationHours: 12,
				Status:        domain.StatusConfirmed,
			})
		}
		checker := NewChecker(&fakeReservationRepo{reservations: busy}, &fakeSlotRepo{}, nopLogger{})

		got, err := checker.FindAlternatives(context.Background(), 1, testDay, 2, opts, nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("suggested slots never conflict", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{
			{ID: 1, StartAt: slotAt(testDay, 9), DurationHours: 3, Status: domain.StatusConfirmed},
			{ID: 2, StartAt: slotAt(testDay, 15), DurationHours: 2, Status: domain.StatusPending},
		}}
		slots := &fakeSlotRepo{slots: []*domain.BlockedSlot{
			{ID: 1, SlotAt: slotAt(testDay, 13), Reason: "выезд"},
		}}
		checker := NewChecker(repo, slots, nopLogger{})

		wide := SearchOptions{OpenHour: 8, CloseHour: 20, SearchDays: 2, MaxResults: 50}
		got, err := checker.FindAlternatives(context.Background(), 1, testDay, 2, wide, nil)

		require.NoError(t, err)
		for _, s := range got {
			candidate := domain.NewInterval(s.StartAt(), 2)
			conflict, err := checker.HasConflict(context.Background(), 1, candidate, nil)
			require.NoError(t, err)
			assert.False(t, conflict, "suggested slot %s %d:00 must be free", s.Date.Format("2006-01-02"), s.StartHour)
		}
	})
}

func ptrInt64(v int64) *int64 {
	return &v
}
