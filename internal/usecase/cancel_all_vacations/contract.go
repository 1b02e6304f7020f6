package cancel_all_vacations

import (
	"context"

	"github.com/m04kA/SMC-DayOffBot/internal/service/calendar"
)

// CalendarService интерфейс доступа к календарю выходных
type CalendarService interface {
	Mutate(ctx context.Context, fn calendar.MutateFunc) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
