package providerconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации расписания провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID получает конфигурацию провайдера
// При отсутствии строки возвращает ErrConfigNotFound - вызывающий код
// подставляет дефолты из domain
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"open_hour",
		"close_hour",
		"search_days",
		"max_alternatives",
		"deposit_percent",
		"created_at",
		"updated_at",
	).
		From("provider_schedule_config").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ProviderScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.ProviderID,
		&config.OpenHour,
		&config.CloseHour,
		&config.SearchDays,
		&config.MaxAlternatives,
		&config.DepositPercent,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или обновляет конфигурацию провайдера
func (r *Repository) Upsert(ctx context.Context, config *domain.ProviderScheduleConfig) (*domain.ProviderScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_schedule_config").
		Columns(
			"provider_id",
			"open_hour",
			"close_hour",
			"search_days",
			"max_alternatives",
			"deposit_percent",
		).
		Values(
			config.ProviderID,
			config.OpenHour,
			config.CloseHour,
			config.SearchDays,
			config.MaxAlternatives,
			config.DepositPercent,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			open_hour = EXCLUDED.open_hour,
			close_hour = EXCLUDED.close_hour,
			search_days = EXCLUDED.search_days,
			max_alternatives = EXCLUDED.max_alternatives,
			deposit_percent = EXCLUDED.deposit_percent,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
