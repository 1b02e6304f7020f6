package calendar

import (
	"context"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// Repository хранилище календаря выходных (JSON файл или PostgreSQL)
type Repository interface {
	Load(ctx context.Context) (*domain.VacationCalendar, error)
	Save(ctx context.Context, calendar *domain.VacationCalendar) error
}

// Metrics метрики ошибок хранилища
type Metrics interface {
	IncStorageError(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
