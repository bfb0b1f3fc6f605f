package reschedule_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	configRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/providerconfig"
	reservationRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
)

var (
	now        = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	oldStartAt = time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
	newStartAt = time.Date(2026, time.September, 16, 14, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	reservation *domain.Reservation

	updatedStartAt  *time.Time
	updatedDuration int
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copy := *f.reservation
	return &copy, nil
}

func (f *fakeReservationRepo) UpdateSchedule(_ context.Context, _ int64, startAt time.Time, durationHours int) error {
	f.updatedStartAt = &startAt
	f.updatedDuration = durationHours
	return nil
}

type fakeConfigRepo struct{}

func (fakeConfigRepo) GetByProviderID(context.Context, int64) (*domain.ProviderScheduleConfig, error) {
	return nil, configRepo.ErrConfigNotFound
}

type fakeChecker struct {
	conflict        bool
	alternatives    []domain.SlotSuggestion
	conflictExclude *int64
	searchExclude   *int64
}

func (f *fakeChecker) HasConflict(_ context.Context, _ int64, _ domain.Interval, exclude *int64) (bool, error) {
	f.conflictExclude = exclude
	return f.conflict, nil
}

func (f *fakeChecker) FindAlternatives(
	_ context.Context, _ int64, _ time.Time, _ int, _ availability.SearchOptions, exclude *int64,
) ([]domain.SlotSuggestion, error) {
	f.searchExclude = exclude
	return f.alternatives, nil
}

type fakeLedger struct {
	rewritten *domain.Reservation
}

func (f *fakeLedger) OnReservationConfirmed(_ context.Context, res *domain.Reservation) error {
	f.rewritten = res
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

type fakeNotifyClient struct {
	events []*notifyservice.ReservationEvent
}

func (f *fakeNotifyClient) PostReservationEvent(_ context.Context, event *notifyservice.ReservationEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	reservationRepo *fakeReservationRepo
	checker         *fakeChecker
	ledger          *fakeLedger
	providerClient  *fakeProviderClient
	notifyClient    *fakeNotifyClient
	usecase         *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		reservationRepo: &fakeReservationRepo{
			reservation: &domain.Reservation{
				ID:            7,
				Reference:     "e9b1c5d0-0000-0000-0000-000000000007",
				ProviderID:    1,
				ClientID:      42,
				StartAt:       oldStartAt,
				DurationHours: 2,
				Status:        domain.StatusConfirmed,
			},
		},
		checker: &fakeChecker{},
		ledger:  &fakeLedger{},
		providerClient: &fakeProviderClient{
			provider: &providerservice.Provider{ID: 1, OwnerUserID: 500},
		},
		notifyClient: &fakeNotifyClient{},
	}

	f.usecase = NewUsecase(
		f.reservationRepo,
		fakeConfigRepo{},
		f.checker,
		f.ledger,
		f.providerClient,
		f.notifyClient,
		fakeTxManager{},
		fixedClock{},
		nopLogger{},
	)
	return f
}

func TestExecute_ReschedulesReservation(t *testing.T) {
	f := newFixture()

	resp, err := f.usecase.Execute(context.Background(), &Request{
		ReservationID: 7,
		UserID:        42,
		StartAt:       newStartAt,
		DurationHours: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, newStartAt, resp.StartAt)
	assert.Equal(t, 3, resp.DurationHours)

	require.NotNil(t, f.reservationRepo.updatedStartAt)
	assert.Equal(t, newStartAt, *f.reservationRepo.updatedStartAt)
	assert.Equal(t, 3, f.reservationRepo.updatedDuration)

	// Леджер перезаписан под новый слот
	require.NotNil(t, f.ledger.rewritten)
	assert.Equal(t, newStartAt, f.ledger.rewritten.StartAt)

	require.Len(t, f.notifyClient.events, 1)
	assert.Equal(t, notifyservice.EventReservationRescheduled, f.notifyClient.events[0].Type)
}

func TestExecute_ExcludesOwnRecordFromConflictCheck(t *testing.T) {
	f := newFixture()

	_, err := f.usecase.Execute(context.Background(), &Request{
		ReservationID: 7,
		UserID:        42,
		StartAt:       newStartAt,
	})

	require.NoError(t, err)
	require.NotNil(t, f.checker.conflictExclude)
	assert.Equal(t, int64(7), *f.checker.conflictExclude)
}

func TestExecute_ZeroDurationKeepsCurrent(t *testing.T) {
	f := newFixture()

	resp, err := f.usecase.Execute(context.Background(), &Request{
		ReservationID: 7,
		UserID:        42,
		StartAt:       newStartAt,
		DurationHours: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.DurationHours)
}

func TestExecute_ConflictOffersAlternativesWithExclusion(t *testing.T) {
	f := newFixture()
	f.checker.conflict = true
	f.checker.alternatives = []domain.SlotSuggestion{{Date: newStartAt, StartHour: 16}}

	resp, err := f.usecase.Execute(context.Background(), &Request{
		ReservationID: 7,
		UserID:        42,
		StartAt:       newStartAt,
	})

	require.ErrorIs(t, err, ErrSlotConflict)
	require.NotNil(t, resp)
	assert.Len(t, resp.Alternatives, 1)

	// Поиск альтернатив тоже игнорирует собственную запись
	require.NotNil(t, f.checker.searchExclude)
	assert.Equal(t, int64(7), *f.checker.searchExclude)

	// Расписание не менялось
	assert.Nil(t, f.reservationRepo.updatedStartAt)
	assert.Empty(t, f.notifyClient.events)
}

func TestExecute_CancelledReservationCannotBeRescheduled(t *testing.T) {
	f := newFixture()
	f.reservationRepo.reservation.Status = domain.StatusCancelled

	_, err := f.usecase.Execute(context.Background(), &Request{
		ReservationID: 7,
		UserID:        42,
		StartAt:       newStartAt,
	})

	require.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_AccessControl(t *testing.T) {
	t.Run("client can reschedule own reservation", func(t *testing.T) {
		f := newFixture()

		_, err := f.usecase.Execute(context.Background(), &Request{
			ReservationID: 7,
			UserID:        42,
			StartAt:       newStartAt,
		})

		require.NoError(t, err)
	})

	t.Run("provider owner can reschedule", func(t *testing.T) {
		f := newFixture()

		_, err := f.usecase.Execute(context.Background(), &Request{
			ReservationID: 7,
			UserID:        500,
			StartAt:       newStartAt,
		})

		require.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.usecase.Execute(context.Background(), &Request{
			ReservationID: 7,
			UserID:        999,
			StartAt:       newStartAt,
		})

		require.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.usecase.Execute(context.Background(), &Request{
		ReservationID: 404,
		UserID:        42,
		StartAt:       newStartAt,
	})

	require.ErrorIs(t, err, ErrReservationNotFound)
}
