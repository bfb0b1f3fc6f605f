package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{input: "10:00", want: "10:00"},
		{input: "00:00", want: "00:00"},
		{input: "23:59", want: "23:59"},
		{input: "9:00", want: "09:00"},
		{input: "25:00", wantErr: true},
		{input: "10:75", wantErr: true},
		{input: "10-00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 630, TimeString("10:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// 24:00 допустима как граница конца рабочего дня
	got, err = TimeString("22:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:00").AddMinutes(120)
	require.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("01:00").AddMinutes(-120)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), ts)

	// Колонки TIME приходят с секундами
	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.September, 15, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.Error(t, ts.Scan(42))
}

func TestTimeStringJSON(t *testing.T) {
	data, err := TimeString("10:00").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"10:00"`, string(data))

	var ts TimeString
	require.NoError(t, ts.UnmarshalJSON([]byte(`"12:30"`)))
	assert.Equal(t, TimeString("12:30"), ts)

	require.Error(t, ts.UnmarshalJSON([]byte(`"99:99"`)))
}
