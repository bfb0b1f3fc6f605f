package unblock_manual_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
)

var startAt = time.Date(2026, time.September, 15, 9, 0, 0, 0, time.UTC)

type fakeLedger struct {
	released int64

	gotStart    time.Time
	gotDuration int
}

func (f *fakeLedger) OnManualUnblock(_ context.Context, _ int64, start time.Time, durationHours int) (int64, error) {
	f.gotStart = start
	f.gotDuration = durationHours
	return f.released, nil
}

type fakeProviderClient struct {
	provider *providerservice.Provider
}

func (f *fakeProviderClient) GetProvider(context.Context, int64) (*providerservice.Provider, error) {
	if f.provider == nil {
		return nil, providerservice.ErrProviderNotFound
	}
	return f.provider, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUsecase(ledger *fakeLedger) *Usecase {
	return NewUsecase(
		ledger,
		&fakeProviderClient{provider: &providerservice.Provider{ID: 1, OwnerUserID: 500}},
		nopLogger{},
	)
}

func TestExecute_ReleasesManualBlocks(t *testing.T) {
	ledger := &fakeLedger{released: 3}
	uc := newUsecase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        500,
		StartAt:       startAt,
		DurationHours: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ReleasedCount)
	assert.Equal(t, startAt, ledger.gotStart)
	assert.Equal(t, 4, ledger.gotDuration)
}

func TestExecute_FewerReleasedThanRequestedIsValid(t *testing.T) {
	// В окне могут стоять слоты бронирований - они не снимаются
	ledger := &fakeLedger{released: 0}
	uc := newUsecase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        500,
		StartAt:       startAt,
		DurationHours: 2,
	})

	require.NoError(t, err)
	assert.Zero(t, resp.ReleasedCount)
}

func TestExecute_OnlyManagerMayUnblock(t *testing.T) {
	uc := newUsecase(&fakeLedger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        999,
		StartAt:       startAt,
		DurationHours: 1,
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := NewUsecase(&fakeLedger{}, &fakeProviderClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:    404,
		UserID:        500,
		StartAt:       startAt,
		DurationHours: 1,
	})

	require.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_UnalignedStartRejected(t *testing.T) {
	uc := newUsecase(&fakeLedger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        500,
		StartAt:       startAt.Add(15 * time.Minute),
		DurationHours: 1,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}
