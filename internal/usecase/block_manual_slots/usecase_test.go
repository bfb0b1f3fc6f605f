package block_manual_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	blockedslotRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/blockedslot"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
)

var startAt = time.Date(2026, time.September, 15, 9, 0, 0, 0, time.UTC)

type fakeChecker struct {
	conflict bool
}

func (f *fakeChecker) HasConflict(context.Context, int64, domain.Interval, *int64) (bool, error) {
	return f.conflict, nil
}

type fakeLedger struct {
	err error

	blockedStart    time.Time
	blockedDuration int
	blockedReason   string
}

func (f *fakeLedger) OnManualBlock(
	_ context.Context, _ int64, start time.Time, durationHours int, reason string, _ *int64,
) error {
	if f.err != nil {
		return f.err
	}
	f.blockedStart = start
	f.blockedDuration = durationHours
	f.blockedReason = reason
	return nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUsecase(checker *fakeChecker, ledger *fakeLedger) *Usecase {
	return NewUsecase(
		checker,
		ledger,
		&fakeProviderClient{provider: &providerservice.Provider{ID: 1, OwnerUserID: 500}},
		fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_BlocksSlots(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newUsecase(&fakeChecker{}, ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        500,
		StartAt:       startAt,
		DurationHours: 3,
		Reason:        "отпуск",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.BlockedCount)
	assert.Equal(t, startAt, ledger.blockedStart)
	assert.Equal(t, 3, ledger.blockedDuration)
	assert.Equal(t, "отпуск", ledger.blockedReason)
}

func TestExecute_BusyHoursRejectBlock(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newUsecase(&fakeChecker{conflict: true}, ledger)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        500,
		StartAt:       startAt,
		DurationHours: 1,
	})

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.True(t, ledger.blockedStart.IsZero())
}

func TestExecute_UniqueViolationMapsToConflict(t *testing.T) {
	ledger := &fakeLedger{err: blockedslotRepo.ErrSlotTaken}
	uc := newUsecase(&fakeChecker{}, ledger)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        500,
		StartAt:       startAt,
		DurationHours: 1,
	})

	require.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_OnlyManagerMayBlock(t *testing.T) {
	uc := newUsecase(&fakeChecker{}, &fakeLedger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		UserID:        999,
		StartAt:       startAt,
		DurationHours: 1,
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUsecase(&fakeChecker{}, &fakeLedger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero duration", &Request{ProviderID: 1, UserID: 500, StartAt: startAt, DurationHours: 0}},
		{"duration above limit", &Request{ProviderID: 1, UserID: 500, StartAt: startAt, DurationHours: domain.MaxDurationHours + 1}},
		{"zero start", &Request{ProviderID: 1, UserID: 500, DurationHours: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
