package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2026, time.September, 15, hour, 0, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals overlap",
			a:    NewInterval(at(10), 2),
			b:    NewInterval(at(10), 2),
			want: true,
		},
		{
			name: "shorter interval inside longer one overlaps",
			a:    NewInterval(at(10), 2),
			b:    NewInterval(at(10), 1),
			want: true,
		},
		{
			name: "partial overlap at the tail",
			a:    NewInterval(at(10), 2),
			b:    NewInterval(at(11), 2),
			want: true,
		},
		{
			name: "adjacent intervals do not overlap",
			a:    NewInterval(at(9), 1),
			b:    NewInterval(at(10), 2),
			want: false,
		},
		{
			name: "disjoint intervals do not overlap",
			a:    NewInterval(at(8), 1),
			b:    NewInterval(at(12), 2),
			want: false,
		},
		{
			name: "interval crossing midnight overlaps next day morning",
			a:    Interval{Start: at(23), End: at(23).Add(2 * time.Hour)},
			b:    Interval{Start: at(24), End: at(24).Add(time.Hour)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	interval := NewInterval(at(10), 2)

	assert.True(t, interval.Contains(at(10)))
	assert.True(t, interval.Contains(at(11)))
	// Правая граница полуоткрытая
	assert.False(t, interval.Contains(at(12)))
	assert.False(t, interval.Contains(at(9)))
}

func TestReservationEffectiveDurationHours(t *testing.T) {
	res := &Reservation{DurationHours: 3}
	assert.Equal(t, 3, res.EffectiveDurationHours())

	// Legacy записи без длительности получают дефолт
	legacy := &Reservation{DurationHours: 0}
	assert.Equal(t, DefaultReservationDurationHours, legacy.EffectiveDurationHours())
}

func TestReservationStatusTransitions(t *testing.T) {
	pending := &Reservation{Status: StatusPending}
	confirmed := &Reservation{Status: StatusConfirmed}
	cancelled := &Reservation{Status: StatusCancelled}

	assert.True(t, pending.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, pending.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, cancelled.CanBeConfirmed())

	assert.True(t, pending.CanBeRescheduled())
	assert.True(t, confirmed.CanBeRescheduled())
	assert.False(t, cancelled.CanBeRescheduled())

	assert.True(t, pending.IsActive())
	assert.True(t, confirmed.IsActive())
	assert.False(t, cancelled.IsActive())
}
