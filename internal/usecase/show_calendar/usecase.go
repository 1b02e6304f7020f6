package show_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// UseCase use case для показа календаря выходных
type UseCase struct {
	calendar     CalendarService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarService, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		calendar:     calendar,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// Execute возвращает календарь на ближайшие дни в виде текста сообщения
func (uc *UseCase) Execute(ctx context.Context) (string, error) {
	today := domain.NewDay(uc.timeProvider.Now())
	cal := uc.calendar.Load(ctx)

	uc.logger.Info("ShowCalendar: from %s, %d stored days", today, cal.Len())

	return RenderCalendar(cal, today, domain.CalendarHorizonDays), nil
}
