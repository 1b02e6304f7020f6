package cancel_vacation

import (
	"context"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// memoryRepository хранилище календаря в памяти для calendar.Service
type memoryRepository struct {
	data  map[string][]string
	saves int
}

func (r *memoryRepository) Load(_ context.Context) (*domain.VacationCalendar, error) {
	return domain.NewVacationCalendarFromMap(r.data), nil
}

func (r *memoryRepository) Save(_ context.Context, cal *domain.VacationCalendar) error {
	r.saves++
	r.data = cal.Snapshot()
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
