package add_vacation

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// UseCase use case для добавления выходных
type UseCase struct {
	calendar     CalendarService
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. loc задает, какой день считается сегодняшним
func NewUseCase(calendar CalendarService, metrics Metrics, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		calendar:     calendar,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// Execute проверяет лимиты и добавляет имя на все даты запроса
// Если хотя бы одна дата не прошла проверку, календарь не меняется и возвращается *LimitError
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddVacation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("AddVacation: name=%s, dates=%d, first=%s", req.Name, len(req.Dates), req.Dates[0])

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	added := 0

	// 3. Проверка лимитов и изменение в одном цикле чтения-записи
	err := uc.calendar.Mutate(ctx, func(cal *domain.VacationCalendar) (bool, error) {
		// 3.1. Проверяем все даты, собираем все нарушения
		if violations := CheckLimits(cal, req.Dates, now); len(violations) > 0 {
			return false, &LimitError{Violations: violations}
		}

		// 3.2. Добавляем имя на каждую дату
		for _, day := range req.Dates {
			if cal.Add(day, req.Name) {
				added++
			}
		}

		return added > 0, nil
	})
	if err != nil {
		var limitErr *LimitError
		if errors.As(err, &limitErr) {
			uc.logger.Warn("AddVacation: name=%s rejected, %d violations", req.Name, len(limitErr.Violations))
			uc.countViolations(limitErr.Violations)
		}
		return nil, err
	}

	uc.logger.Info("AddVacation: name=%s, added %d of %d dates", req.Name, added, len(req.Dates))

	return &Response{
		Name:  req.Name,
		Dates: req.Dates,
		Added: added,
	}, nil
}

func (uc *UseCase) countViolations(violations []Violation) {
	if uc.metrics == nil {
		return
	}
	for _, v := range violations {
		uc.metrics.IncLimitViolation(string(v.Kind))
	}
}
