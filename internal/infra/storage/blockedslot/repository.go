package blockedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

// Repository репозиторий для работы с заблокированными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertBatch вставляет набор заблокированных слотов одним запросом
// Нарушение уникального индекса (provider_id, slot_at) маппится в ErrSlotTaken
func (r *Repository) InsertBatch(ctx context.Context, slots []*domain.BlockedSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("blocked_slots").
		Columns(
			"provider_id",
			"slot_at",
			"reason",
			"listing_id",
			"reservation_id",
		)

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(
			slot.ProviderID,
			slot.SlotAt,
			slot.Reason,
			slot.ListingID,
			slot.ReservationID,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: InsertBatch: %v", ErrSlotTaken, err)
		}
		return fmt.Errorf("%w: InsertBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByReservationID удаляет все слоты, производные от указанного бронирования
// Ручные блокировки провайдера в том же окне не затрагиваются,
// так как у них reservation_id IS NULL
// Возвращает количество удалённых строк
func (r *Repository) DeleteByReservationID(ctx context.Context, providerID, reservationID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservationID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservationID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservationID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteManualByRange удаляет ручные блокировки провайдера в полуоткрытом окне [from, to)
// Слоты, производные от бронирований, не затрагиваются
func (r *Repository) DeleteManualByRange(ctx context.Context, providerID int64, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"reservation_id": nil}).
		Where(squirrel.GtOrEq{"slot_at": from}).
		Where(squirrel.Lt{"slot_at": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteManualByRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteManualByRange - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteManualByRange - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// GetByProviderAndRange получает слоты провайдера в полуоткрытом окне [from, to)
//
// excludeReservationID исключает слоты, производные от указанного бронирования -
// нужно при переносе бронирования, чтобы оно не конфликтовало само с собой
//
// Внутри транзакции добавляет FOR UPDATE
func (r *Repository) GetByProviderAndRange(
	ctx context.Context,
	providerID int64,
	from, to time.Time,
	excludeReservationID *int64,
) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"provider_id",
		"slot_at",
		"reason",
		"listing_id",
		"reservation_id",
		"created_at",
	).
		From("blocked_slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.GtOrEq{"slot_at": from}).
		Where(squirrel.Lt{"slot_at": to}).
		OrderBy("slot_at ASC")

	if excludeReservationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"reservation_id": nil},
			squirrel.NotEq{"reservation_id": *excludeReservationID},
		})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var slot domain.BlockedSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.ProviderID,
			&slot.SlotAt,
			&slot.Reason,
			&slot.ListingID,
			&slot.ReservationID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProviderAndRange - scan slot: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndRange - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// CountByReservationID возвращает количество слотов, производных от бронирования
// Используется выверкой леджера
func (r *Repository) CountByReservationID(ctx context.Context, providerID, reservationID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("blocked_slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByReservationID - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// isUniqueViolation возвращает true, если ошибка вызвана нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
