package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	configRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/providerconfig"
	"github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	"github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
)

var startAt = time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)

type fakeChecker struct {
	conflict     bool
	alternatives []domain.SlotSuggestion

	gotCandidate domain.Interval
	gotOptions   availability.SearchOptions
	searched     bool
}

func (f *fakeChecker) HasConflict(_ context.Context, _ int64, candidate domain.Interval, _ *int64) (bool, error) {
	f.gotCandidate = candidate
	return f.conflict, nil
}

func (f *fakeChecker) FindAlternatives(
	_ context.Context, _ int64, _ time.Time, _ int, opts availability.SearchOptions, _ *int64,
) ([]domain.SlotSuggestion, error) {
	f.searched = true
	f.gotOptions = opts
	return f.alternatives, nil
}

type fakeConfigRepo struct {
	config *domain.ProviderScheduleConfig
}

func (f *fakeConfigRepo) GetByProviderID(context.Context, int64) (*domain.ProviderScheduleConfig, error) {
	if f.config == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.config, nil
}

type fakeProviderClient struct {
	provider *providerservice.Provider
	listing  *providerservice.Listing
}

func (f *fakeProviderClient) GetProvider(context.Context, int64) (*providerservice.Provider, error) {
	if f.provider == nil {
		return nil, providerservice.ErrProviderNotFound
	}
	return f.provider, nil
}

func (f *fakeProviderClient) GetListing(context.Context, int64, int64) (*providerservice.Listing, error) {
	if f.listing == nil {
		return nil, providerservice.ErrListingNotFound
	}
	return f.listing, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUsecase(checker *fakeChecker, configs *fakeConfigRepo, providers *fakeProviderClient) *Usecase {
	return NewUsecase(checker, configs, providers, nopLogger{})
}

func ptrInt64(v int64) *int64 {
	return &v
}

func TestExecute_FreeSlot(t *testing.T) {
	checker := &fakeChecker{}
	uc := newUsecase(checker, &fakeConfigRepo{}, &fakeProviderClient{
		provider: &providerservice.Provider{ID: 1, OwnerUserID: 500},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		StartAt:       startAt,
		DurationHours: 2,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 2, resp.DurationHours)
	assert.Empty(t, resp.Alternatives)
	// Без листинга - почасовой ввод как есть
	assert.Equal(t, startAt.Add(2*time.Hour), checker.gotCandidate.End)
	// Свободный слот не запускает подбор альтернатив
	assert.False(t, checker.searched)
}

func TestExecute_BusySlotOffersAlternatives(t *testing.T) {
	checker := &fakeChecker{
		conflict: true,
		alternatives: []domain.SlotSuggestion{
			{Date: startAt.Truncate(24 * time.Hour), StartHour: 14},
			{Date: startAt.Truncate(24 * time.Hour), StartHour: 15},
		},
	}
	uc := newUsecase(checker, &fakeConfigRepo{}, &fakeProviderClient{
		provider: &providerservice.Provider{ID: 1, OwnerUserID: 500},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		StartAt:       startAt,
		DurationHours: 2,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Alternatives, 2)
	assert.Equal(t, 14, resp.Alternatives[0].StartHour)
}

func TestExecute_BusySlotWithoutAlternatives(t *testing.T) {
	checker := &fakeChecker{conflict: true}
	uc := newUsecase(checker, &fakeConfigRepo{}, &fakeProviderClient{
		provider: &providerservice.Provider{ID: 1, OwnerUserID: 500},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:    1,
		StartAt:       startAt,
		DurationHours: 2,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	// "занято и предложить нечего" - валидный ответ
	assert.NotNil(t, resp.Alternatives)
	assert.Empty(t, resp.Alternatives)
}

func TestExecute_DurationNormalization(t *testing.T) {
	tests := []struct {
		name        string
		listing     *providerservice.Listing
		listingID   *int64
		rawDuration int
		want        int
		wantErr     error
	}{
		{
			name:        "no listing keeps raw hours",
			rawDuration: 5,
			want:        5,
		},
		{
			name:        "no listing rejects zero duration",
			rawDuration: 0,
			wantErr:     ErrInvalidDuration,
		},
		{
			name:        "half day tariff overrides raw input",
			listing:     &providerservice.Listing{ID: 10, TariffUnit: string(domain.TariffHalfDay)},
			listingID:   ptrInt64(10),
			rawDuration: 99,
			want:        4,
		},
		{
			name:      "day tariff blocks eight hours",
			listing:   &providerservice.Listing{ID: 10, TariffUnit: string(domain.TariffDay)},
			listingID: ptrInt64(10),
			want:      8,
		},
		{
			name:      "session tariff uses unit hours",
			listing:   &providerservice.Listing{ID: 10, TariffUnit: string(domain.TariffSession), UnitHours: 3},
			listingID: ptrInt64(10),
			want:      3,
		},
		{
			name:        "hour tariff listing requires positive duration",
			listing:     &providerservice.Listing{ID: 10, TariffUnit: string(domain.TariffHour)},
			listingID:   ptrInt64(10),
			rawDuration: 0,
			wantErr:     ErrInvalidDuration,
		},
		{
			name:      "missing listing is reported",
			listingID: ptrInt64(404),
			wantErr:   ErrListingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &fakeChecker{}
			uc := newUsecase(checker, &fakeConfigRepo{}, &fakeProviderClient{
				provider: &providerservice.Provider{ID: 1, OwnerUserID: 500},
				listing:  tt.listing,
			})

			resp, err := uc.Execute(context.Background(), &Request{
				ProviderID:    1,
				ListingID:     tt.listingID,
				StartAt:       startAt,
				DurationHours: tt.rawDuration,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.DurationHours)
		})
	}
}

func TestExecute_ScheduleConfigDrivesSearch(t *testing.T) {
	t.Run("saved config is used", func(t *testing.T) {
		checker := &fakeChecker{conflict: true}
		uc := newUsecase(checker, &fakeConfigRepo{
			config: &domain.ProviderScheduleConfig{
				ProviderID:      1,
				OpenHour:        10,
				CloseHour:       18,
				SearchDays:      3,
				MaxAlternatives: 5,
			},
		}, &fakeProviderClient{provider: &providerservice.Provider{ID: 1, OwnerUserID: 500}})

		_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, StartAt: startAt, DurationHours: 1})

		require.NoError(t, err)
		require.True(t, checker.searched)
		assert.Equal(t, 10, checker.gotOptions.OpenHour)
		assert.Equal(t, 18, checker.gotOptions.CloseHour)
		assert.Equal(t, 3, checker.gotOptions.SearchDays)
		assert.Equal(t, 5, checker.gotOptions.MaxResults)
	})

	t.Run("missing config falls back to defaults", func(t *testing.T) {
		checker := &fakeChecker{conflict: true}
		uc := newUsecase(checker, &fakeConfigRepo{}, &fakeProviderClient{
			provider: &providerservice.Provider{ID: 1, OwnerUserID: 500},
		})

		_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, StartAt: startAt, DurationHours: 1})

		require.NoError(t, err)
		require.True(t, checker.searched)
		assert.Equal(t, domain.DefaultOpenHour, checker.gotOptions.OpenHour)
		assert.Equal(t, domain.DefaultCloseHour, checker.gotOptions.CloseHour)
	})
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newUsecase(&fakeChecker{}, &fakeConfigRepo{}, &fakeProviderClient{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 404, StartAt: startAt, DurationHours: 1})

	require.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUsecase(&fakeChecker{}, &fakeConfigRepo{}, &fakeProviderClient{
		provider: &providerservice.Provider{ID: 1, OwnerUserID: 500},
	})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero provider", &Request{ProviderID: 0, StartAt: startAt, DurationHours: 1}},
		{"zero start", &Request{ProviderID: 1, DurationHours: 1}},
		{"unaligned start", &Request{ProviderID: 1, StartAt: startAt.Add(30 * time.Minute), DurationHours: 1}},
		{"negative duration", &Request{ProviderID: 1, StartAt: startAt, DurationHours: -1}},
		{"non-positive listing id", &Request{ProviderID: 1, ListingID: ptrInt64(0), StartAt: startAt, DurationHours: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
