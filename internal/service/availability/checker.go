package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/PhotoMarket-BookingService/internal/domain"
)

// Checker проверяет календарь провайдера на конфликты и ищет свободные слоты
// Единственная точка, где сравниваются интервалы: все три пользовательских
// сценария (заявка на квоту, форма бронирования, быстрые действия провайдера)
// ходят через этот сервис
type Checker struct {
	reservationRepo ReservationRepository
	slotRepo        BlockedSlotRepository
	logger          Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(
	reservationRepo ReservationRepository,
	slotRepo BlockedSlotRepository,
	logger Logger,
) *Checker {
	return &Checker{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		logger:          logger,
	}
}

// HasConflict возвращает true, если кандидат пересекается с активным
// бронированием или заблокированным слотом провайдера
//
// Выборка идёт в окне ±24ч вокруг кандидата: ни один интервал не длиннее суток,
// поэтому всё, что может пересечься с кандидатом, начинается внутри этого окна
//
// Пересечение полуоткрытое: бронирование, заканчивающееся ровно в момент начала
// кандидата, конфликтом не считается
//
// excludeReservationID позволяет переносу бронирования игнорировать
// его собственную запись и производные от неё слоты
func (c *Checker) HasConflict(
	ctx context.Context,
	providerID int64,
	candidate domain.Interval,
	excludeReservationID *int64,
) (bool, error) {
	from := candidate.Start.Add(-domain.ConflictFetchWindowHours * time.Hour)
	to := candidate.End.Add(domain.ConflictFetchWindowHours * time.Hour)

	reservations, err := c.reservationRepo.GetByProviderAndRange(ctx, providerID, from, to, excludeReservationID)
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - fetch reservations: %v", ErrInternal, err)
	}

	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.Interval().Overlaps(candidate) {
			return true, nil
		}
	}

	slots, err := c.slotRepo.GetByProviderAndRange(ctx, providerID, from, to, excludeReservationID)
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - fetch blocked slots: %v", ErrInternal, err)
	}

	for _, slot := range slots {
		if slot.Interval().Overlaps(candidate) {
			return true, nil
		}
	}

	return false, nil
}

// SearchOptions параметры поиска альтернативных слотов
type SearchOptions struct {
	OpenHour   int // Первый допустимый час начала (включительно)
	CloseHour  int // Час закрытия: слот обязан закончиться не позже него
	SearchDays int // Глубина поиска в днях от seed даты
	MaxResults int // Максимум возвращаемых предложений
}

// SearchOptionsFromConfig строит параметры поиска из конфигурации провайдера
func SearchOptionsFromConfig(config *domain.ProviderScheduleConfig) SearchOptions {
	return SearchOptions{
		OpenHour:   config.OpenHour,
		CloseHour:  config.CloseHour,
		SearchDays: config.SearchDays,
		MaxResults: config.MaxAlternatives,
	}
}

// FindAlternatives ищет свободные слоты той же длительности вперед по времени
//
// Детерминированный хронологический перебор: по дням от seedDate, внутри дня
// по часам от OpenHour до CloseHour-durationHours включительно, с шагом в час.
// Первые MaxResults свободных кандидатов возвращаются в хронологическом
// порядке; оба цикла обрываются сразу после набора MaxResults
//
// Результат короче MaxResults (в том числе пустой) - не ошибка, а валидный
// ответ "альтернатив нет", который вызывающий код обязан отличать от "свободно"
func (c *Checker) FindAlternatives(
	ctx context.Context,
	providerID int64,
	seedDate time.Time,
	durationHours int,
	opts SearchOptions,
	excludeReservationID *int64,
) ([]domain.SlotSuggestion, error) {
	suggestions := make([]domain.SlotSuggestion, 0, opts.MaxResults)

	seed := time.Date(seedDate.Year(), seedDate.Month(), seedDate.Day(), 0, 0, 0, 0, seedDate.Location())

	for dayOffset := 0; dayOffset < opts.SearchDays; dayOffset++ {
		day := seed.AddDate(0, 0, dayOffset)

		for hour := opts.OpenHour; hour <= opts.CloseHour-durationHours; hour++ {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
			candidate := domain.NewInterval(start, durationHours)

			conflict, err := c.HasConflict(ctx, providerID, candidate, excludeReservationID)
			if err != nil {
				return nil, err
			}
			if conflict {
				continue
			}

			suggestions = append(suggestions, domain.SlotSuggestion{
				Date:      day,
				StartHour: hour,
			})

			if len(suggestions) >= opts.MaxResults {
				c.logger.Info("FindAlternatives: provider=%d, duration=%dh, found %d slots (search stopped early)",
					providerID, durationHours, len(suggestions))
				return suggestions, nil
			}
		}
	}

	c.logger.Info("FindAlternatives: provider=%d, duration=%dh, found %d slots in %d days",
		providerID, durationHours, len(suggestions), opts.SearchDays)

	return suggestions, nil
}
