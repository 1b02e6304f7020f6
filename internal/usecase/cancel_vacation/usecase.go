package cancel_vacation

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// UseCase use case для отмены выходных на конкретные даты
// Лимиты и окно бронирования не проверяются: отменить можно всегда
type UseCase struct {
	calendar CalendarService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarService, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		logger:   logger,
	}
}

// Execute вычеркивает имя из всех дат запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Dates) == 0 || strings.TrimSpace(req.Name) == "" {
		uc.logger.Warn("CancelVacation: invalid request")
		return nil, fmt.Errorf("%w: dates and name are required", ErrInvalidInput)
	}

	removed := 0
	err := uc.calendar.Mutate(ctx, func(cal *domain.VacationCalendar) (bool, error) {
		for _, day := range req.Dates {
			if cal.Remove(day, req.Name) {
				removed++
			}
		}
		return removed > 0, nil
	})
	if err != nil {
		uc.logger.Error("CancelVacation: name=%s: %v", req.Name, err)
		return nil, err
	}

	uc.logger.Info("CancelVacation: name=%s, removed %d of %d dates", req.Name, removed, len(req.Dates))

	return &Response{Name: req.Name, Removed: removed}, nil
}
