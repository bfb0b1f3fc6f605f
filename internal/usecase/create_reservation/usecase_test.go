package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	configRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/providerconfig"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/identityservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/ptr"
)

var (
	now     = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	startAt = time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	created *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	stored := *res
	stored.ID = 100
	stored.CreatedAt = now
	stored.UpdatedAt = now
	f.created = &stored
	return &stored, nil
}

type fakeConfigRepo struct {
	config *domain.ProviderScheduleConfig
}

func (f *fakeConfigRepo) GetByProviderID(_ context.Context, providerID int64) (*domain.ProviderScheduleConfig, error) {
	if f.config == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.config, nil
}

type fakeChecker struct {
	conflict     bool
	alternatives []domain.SlotSuggestion
}

func (f *fakeChecker) HasConflict(context.Context, int64, domain.Interval, *int64) (bool, error) {
	return f.conflict, nil
}

func (f *fakeChecker) FindAlternatives(
	context.Context, int64, time.Time, int, availability.SearchOptions, *int64,
) ([]domain.SlotSuggestion, error) {
	return f.alternatives, nil
}

type fakeLedger struct {
	err    error
	called int
}

func (f *fakeLedger) OnReservationConfirmed(context.Context, *domain.Reservation) error {
	f.called++
	return f.err
}

type fakeProviderClient struct {
	provider *providerservice.Provider
	listing  *providerservice.Listing
}

func (f *fakeProviderClient) GetProvider(_ context.Context, providerID int64) (*providerservice.Provider, error) {
	if f.provider == nil {
		return nil, providerservice.ErrProviderNotFound
	}
	return f.provider, nil
}

func (f *fakeProviderClient) GetListing(_ context.Context, _, listingID int64) (*providerservice.Listing, error) {
	if f.listing == nil {
		return nil, providerservice.ErrListingNotFound
	}
	return f.listing, nil
}

type fakeIdentityClient struct {
	user *identityservice.User
	err  error
}

func (f *fakeIdentityClient) GetUserWithGracefulDegradation(context.Context, int64) (*identityservice.User, error) {
	return f.user, f.err
}

type fakeNotifyClient struct {
	events []*notifyservice.ReservationEvent
	err    error
}

func (f *fakeNotifyClient) PostReservationEvent(_ context.Context, event *notifyservice.ReservationEvent) error {
	f.events = append(f.events, event)
	return f.err
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
	configRepo      *fakeConfigRepo
	checker         *fakeChecker
	ledger          *fakeLedger
	providerClient  *fakeProviderClient
	identityClient  *fakeIdentityClient
	notifyClient    *fakeNotifyClient
	usecase         *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		reservationRepo: &fakeReservationRepo{},
		configRepo:      &fakeConfigRepo{},
		checker:         &fakeChecker{},
		ledger:          &fakeLedger{},
		providerClient: &fakeProviderClient{
			provider: &providerservice.Provider{ID: 1, OwnerUserID: 500, IsActive: true},
			listing: &providerservice.Listing{
				ID:         10,
				ProviderID: 1,
				TariffUnit: "hour",
				UnitPrice:  ptr.Ptr(3000.0),
				IsActive:   true,
			},
		},
		identityClient: &fakeIdentityClient{
			user: &identityservice.User{ID: 42, DisplayName: "Анна", Email: ptr.Ptr("anna@example.com")},
		},
		notifyClient: &fakeNotifyClient{},
	}

	f.usecase = NewUsecase(
		f.reservationRepo,
		f.configRepo,
		f.checker,
		f.ledger,
		f.providerClient,
		f.identityClient,
		f.notifyClient,
		fakeTxManager{},
		fixedClock{},
		nopLogger{},
	)
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:      42,
		ProviderID:    1,
		ListingID:     ptr.Ptr(int64(10)),
		StartAt:       startAt,
		DurationHours: 2,
		ClientName:    "Анна Иванова",
		Location:      "Москва, Парк Горького",
		PartySize:     2,
	}
}

func TestExecute_CreatesPendingReservation(t *testing.T) {
	f := newFixture()

	resp, err := f.usecase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	// 2 часа по 3000 с дефолтной предоплатой 30%
	assert.Equal(t, 6000.0, resp.Amount)
	assert.Equal(t, 1800.0, resp.DepositAmount)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	// Email обогащен из профиля
	require.NotNil(t, resp.ClientEmail)
	assert.Equal(t, "anna@example.com", *resp.ClientEmail)
}

func TestExecute_ZeroDepositConfirmsImmediately(t *testing.T) {
	f := newFixture()
	f.providerClient.listing.DepositPercent = ptr.Ptr(0)

	resp, err := f.usecase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 0.0, resp.DepositAmount)
}

func TestExecute_ListingDepositOverridesConfig(t *testing.T) {
	f := newFixture()
	f.configRepo.config = &domain.ProviderScheduleConfig{ProviderID: 1, DepositPercent: 50}
	f.providerClient.listing.DepositPercent = ptr.Ptr(10)

	resp, err := f.usecase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 600.0, resp.DepositAmount)
}

func TestExecute_QuoteOverridesListingTariff(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.QuoteAmount = ptr.Ptr(10000.0)

	resp, err := f.usecase.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 6000.0, resp.Amount)

	resp, err = f.usecase.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, resp.Amount)
	assert.Equal(t, 3000.0, resp.DepositAmount)
}

func TestExecute_NegotiatedListingRequiresQuote(t *testing.T) {
	f := newFixture()
	f.providerClient.listing.UnitPrice = nil

	_, err := f.usecase.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrPriceUnresolved)
	assert.Nil(t, f.reservationRepo.created)
}

func TestExecute_SessionTariffOverridesRawDuration(t *testing.T) {
	f := newFixture()
	f.providerClient.listing.TariffUnit = "session"
	f.providerClient.listing.UnitHours = 3
	req := validRequest()
	req.DurationHours = 99

	resp, err := f.usecase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.DurationHours)
}

func TestExecute_HourTariffRequiresPositiveDuration(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.DurationHours = 0

	_, err := f.usecase.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_SlotConflictReturnsAlternatives(t *testing.T) {
	f := newFixture()
	f.checker.conflict = true
	f.checker.alternatives = []domain.SlotSuggestion{
		{Date: startAt.Truncate(24 * time.Hour), StartHour: 14},
		{Date: startAt.Truncate(24 * time.Hour), StartHour: 16},
	}

	resp, err := f.usecase.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotConflict)
	require.NotNil(t, resp)
	assert.Len(t, resp.Alternatives, 2)
	assert.Equal(t, 14, resp.Alternatives[0].StartHour)
	// Запись не создавалась, уведомления не отправлялись
	assert.Nil(t, f.reservationRepo.created)
	assert.Empty(t, f.notifyClient.events)
}

func TestExecute_LedgerFailureDoesNotAbortReservation(t *testing.T) {
	f := newFixture()
	f.ledger.err = errors.New("insert failed")

	resp, err := f.usecase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, 1, f.ledger.called)
}

func TestExecute_NotifyFailureDoesNotAbortReservation(t *testing.T) {
	f := newFixture()
	f.notifyClient.err = errors.New("notify service is down")

	resp, err := f.usecase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
}

func TestExecute_IdentityDegradationFallsBackToRequestContacts(t *testing.T) {
	f := newFixture()
	f.identityClient.user = nil
	f.identityClient.err = identityservice.ErrServiceDegraded
	req := validRequest()
	req.ClientEmail = ptr.Ptr("fallback@example.com")

	resp, err := f.usecase.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.ClientEmail)
	assert.Equal(t, "fallback@example.com", *resp.ClientEmail)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	f := newFixture()
	f.providerClient.provider = nil

	_, err := f.usecase.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_ValidationRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"past start", func(r *Request) { r.StartAt = now.Add(-24 * time.Hour) }},
		{"unaligned start", func(r *Request) { r.StartAt = startAt.Add(30 * time.Minute) }},
		{"missing client name", func(r *Request) { r.ClientName = " " }},
		{"missing location", func(r *Request) { r.Location = "" }},
		{"zero party size", func(r *Request) { r.PartySize = 0 }},
		{"negative quote", func(r *Request) { r.QuoteAmount = ptr.Ptr(-1.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.usecase.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SendsCreatedEvent(t *testing.T) {
	f := newFixture()

	resp, err := f.usecase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, f.notifyClient.events, 1)
	event := f.notifyClient.events[0]
	assert.Equal(t, notifyservice.EventReservationCreated, event.Type)
	assert.Equal(t, resp.ID, event.ReservationID)
	assert.Equal(t, resp.Reference, event.Reference)
}
