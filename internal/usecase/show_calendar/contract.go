package show_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// CalendarService интерфейс чтения календаря выходных
type CalendarService interface {
	Load(ctx context.Context) *domain.VacationCalendar
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
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
