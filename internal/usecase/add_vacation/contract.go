package add_vacation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/service/calendar"
)

// CalendarService интерфейс доступа к календарю выходных
type CalendarService interface {
	Mutate(ctx context.Context, fn calendar.MutateFunc) error
}

// Metrics интерфейс метрик нарушений лимитов
type Metrics interface {
	IncLimitViolation(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе календаря
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
