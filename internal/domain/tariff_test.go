package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		name      string
		unit      TariffUnit
		rawHours  int
		unitHours int
		want      int
		wantErr   error
	}{
		{
			name:     "hour uses raw duration",
			unit:     TariffHour,
			rawHours: 3,
			want:     3,
		},
		{
			name:     "hour rejects zero duration",
			unit:     TariffHour,
			rawHours: 0,
			wantErr:  ErrInvalidDuration,
		},
		{
			name:     "hour rejects negative duration",
			unit:     TariffHour,
			rawHours: -2,
			wantErr:  ErrInvalidDuration,
		},
		{
			name:     "half_day is always four hours",
			unit:     TariffHalfDay,
			rawHours: 0,
			want:     4,
		},
		{
			name:     "half_day overrides stray raw input",
			unit:     TariffHalfDay,
			rawHours: 99,
			want:     4,
		},
		{
			name:     "day is always eight hours",
			unit:     TariffDay,
			rawHours: 1,
			want:     8,
		},
		{
			name:      "session uses declared unit hours",
			unit:      TariffSession,
			unitHours: 3,
			want:      3,
		},
		{
			name:      "session falls back to one hour",
			unit:      TariffSession,
			unitHours: 0,
			want:      1,
		},
		{
			name:      "package uses declared unit hours",
			unit:      TariffPackage,
			rawHours:  5,
			unitHours: 6,
			want:      6,
		},
		{
			name:    "unknown unit is rejected",
			unit:    TariffUnit("weekly"),
			wantErr: ErrUnknownTariffUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDuration(tt.unit, tt.rawHours, tt.unitHours)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTariffUnitIsValid(t *testing.T) {
	for _, unit := range []TariffUnit{TariffHour, TariffHalfDay, TariffDay, TariffSession, TariffPackage} {
		assert.True(t, unit.IsValid(), "unit %s must be valid", unit)
	}

	assert.False(t, TariffUnit("").IsValid())
	assert.False(t, TariffUnit("minute").IsValid())
}
