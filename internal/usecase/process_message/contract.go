package process_message

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/usecase/add_vacation"
	"github.com/m04kA/SMC-DayOffBot/internal/usecase/cancel_all_vacations"
	"github.com/m04kA/SMC-DayOffBot/internal/usecase/cancel_vacation"
)

// AddVacationUseCase интерфейс добавления выходных
type AddVacationUseCase interface {
	Execute(ctx context.Context, req *add_vacation.Request) (*add_vacation.Response, error)
}

// CancelVacationUseCase интерфейс отмены выходных на даты
type CancelVacationUseCase interface {
	Execute(ctx context.Context, req *cancel_vacation.Request) (*cancel_vacation.Response, error)
}

// CancelAllVacationsUseCase интерфейс отмены всех выходных человека
type CancelAllVacationsUseCase interface {
	Execute(ctx context.Context, req *cancel_all_vacations.Request) (*cancel_all_vacations.Response, error)
}

// ShowCalendarUseCase интерфейс показа календаря
type ShowCalendarUseCase interface {
	Execute(ctx context.Context) (string, error)
}

// Metrics интерфейс метрик команд
type Metrics interface {
	IncCommand(command string)
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
