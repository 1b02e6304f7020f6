package cancel_all_vacations

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// UseCase use case для отмены всех выходных одного человека
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

// Execute вычеркивает имя из всех дат календаря, остальные записи не трогает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		uc.logger.Warn("CancelAllVacations: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	removed := 0
	err := uc.calendar.Mutate(ctx, func(cal *domain.VacationCalendar) (bool, error) {
		removed = cal.RemoveAll(req.Name)
		return removed > 0, nil
	})
	if err != nil {
		uc.logger.Error("CancelAllVacations: name=%s: %v", req.Name, err)
		return nil, err
	}

	uc.logger.Info("CancelAllVacations: name=%s, removed from %d days", req.Name, removed)

	return &Response{Name: req.Name, Removed: removed}, nil
}
