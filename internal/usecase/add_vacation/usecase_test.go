package add_vacation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
	"github.com/m04kA/SMC-DayOffBot/internal/service/calendar"
)

// Пятница, 16.10.2026, полдень
var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func day(month time.Month, d int) domain.Day {
	return domain.Day{Year: 2026, Month: month, Day: d}
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeCalendar struct {
	cal   *domain.VacationCalendar
	saves int
}

func newFakeCalendar(data map[string][]string) *fakeCalendar {
	return &fakeCalendar{cal: domain.NewVacationCalendarFromMap(data)}
}

func (f *fakeCalendar) Mutate(_ context.Context, fn calendar.MutateFunc) error {
	working := domain.NewVacationCalendarFromMap(f.cal.Snapshot())
	changed, err := fn(working)
	if err != nil {
		return err
	}
	if changed {
		f.cal = working
		f.saves++
	}
	return nil
}

type fakeMetrics struct{ kinds []string }

func (m *fakeMetrics) IncLimitViolation(kind string) { m.kinds = append(m.kinds, kind) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(cal CalendarService, m Metrics) *UseCase {
	uc := NewUseCase(cal, m, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestCheckLimits(t *testing.T) {
	full := domain.NewVacationCalendarFromMap(map[string][]string{
		"17.10.2026": {"Иван", "Мария", "Петр"}, // суббота
		"19.10.2026": {"Иван", "Мария"},         // понедельник
		"20.10.2026": {"Иван"},                  // вторник
		"18.10.2026": {"Иван", "Мария"},         // воскресенье
	})

	tests := []struct {
		name    string
		dates   []domain.Day
		kinds   []ViolationKind
		message string
	}{
		{
			name:  "today is allowed",
			dates: []domain.Day{day(time.October, 16)},
		},
		{
			name:  "last day of window is allowed",
			dates: []domain.Day{day(time.November, 15)},
		},
		{
			name:    "day after window",
			dates:   []domain.Day{day(time.November, 16)},
			kinds:   []ViolationKind{ViolationOutOfWindow},
			message: "Выходные можно брать только в ближайшие 30 дней",
		},
		{
			name:  "yesterday",
			dates: []domain.Day{day(time.October, 15)},
			kinds: []ViolationKind{ViolationOutOfWindow},
		},
		{
			name:    "next year",
			dates:   []domain.Day{{Year: 2027, Month: time.January, Day: 5}},
			kinds:   []ViolationKind{ViolationWrongYear},
			message: "Выходные можно брать только в 2026 году",
		},
		{
			name:    "weekend full at three",
			dates:   []domain.Day{day(time.October, 17)},
			kinds:   []ViolationKind{ViolationCapacityExceeded},
			message: "Суббота 17.10.2026 — лимит в выходные исчерпан (максимум 3 человек)",
		},
		{
			name:  "weekend with two has room",
			dates: []domain.Day{day(time.October, 18)},
		},
		{
			name:    "weekday full at two",
			dates:   []domain.Day{day(time.October, 19)},
			kinds:   []ViolationKind{ViolationCapacityExceeded},
			message: "Понедельник 19.10.2026 — лимит в будни исчерпан (максимум 2 человек)",
		},
		{
			name:  "weekday with one has room",
			dates: []domain.Day{day(time.October, 20)},
		},
		{
			name:  "all violations are collected in order",
			dates: []domain.Day{day(time.October, 17), day(time.October, 20), day(time.November, 20)},
			kinds: []ViolationKind{ViolationCapacityExceeded, ViolationOutOfWindow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := CheckLimits(full, tt.dates, now)

			kinds := make([]ViolationKind, 0, len(violations))
			for _, v := range violations {
				kinds = append(kinds, v.Kind)
			}

			if len(tt.kinds) == 0 {
				assert.Empty(t, violations)
			} else {
				assert.Equal(t, tt.kinds, kinds)
			}
			if tt.message != "" {
				require.NotEmpty(t, violations)
				assert.Equal(t, tt.message, violations[0].Message)
			}
		})
	}
}

func TestCheckLimits_WindowUsesCalendarDays(t *testing.T) {
	lateEvening := time.Date(2026, time.October, 16, 23, 59, 0, 0, time.UTC)

	violations := CheckLimits(domain.NewVacationCalendar(), []domain.Day{day(time.November, 15)}, lateEvening)

	assert.Empty(t, violations)
}

func TestUseCase_Execute_Success(t *testing.T) {
	cal := newFakeCalendar(nil)
	uc := newUseCase(cal, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Dates: []domain.Day{day(time.October, 17), day(time.October, 18)},
		Name:  "Иван",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Added)
	assert.Equal(t, 1, cal.saves)
	assert.Equal(t, []string{"Иван"}, cal.cal.Holders(day(time.October, 17)))
	assert.Equal(t, []string{"Иван"}, cal.cal.Holders(day(time.October, 18)))
}

func TestUseCase_Execute_DuplicateIsIdempotent(t *testing.T) {
	cal := newFakeCalendar(map[string][]string{"17.10.2026": {"Иван"}})
	uc := newUseCase(cal, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Dates: []domain.Day{day(time.October, 17)},
		Name:  "Иван",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Added)
	assert.Equal(t, 0, cal.saves)
	assert.Equal(t, []string{"Иван"}, cal.cal.Holders(day(time.October, 17)))
}

func TestUseCase_Execute_WeekendLimitAbortsWholeRequest(t *testing.T) {
	cal := newFakeCalendar(map[string][]string{"17.10.2026": {"Иван", "Мария", "Петр"}})
	m := &fakeMetrics{}
	uc := newUseCase(cal, m)

	_, err := uc.Execute(context.Background(), &Request{
		Dates: []domain.Day{day(time.October, 16), day(time.October, 17)},
		Name:  "Анна",
	})

	require.ErrorIs(t, err, ErrLimitExceeded)
	var limitErr *LimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Len(t, limitErr.Violations, 1)
	assert.Equal(t, "Суббота 17.10.2026 — лимит в выходные исчерпан (максимум 3 человек)", err.Error())

	assert.Equal(t, 0, cal.saves)
	assert.Empty(t, cal.cal.Holders(day(time.October, 16)))
	assert.Equal(t, []string{"capacity_exceeded"}, m.kinds)
}

func TestUseCase_Execute_WeekdayLimitIsTwo(t *testing.T) {
	cal := newFakeCalendar(map[string][]string{"19.10.2026": {"Иван", "Мария"}})
	uc := newUseCase(cal, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Dates: []domain.Day{day(time.October, 19)},
		Name:  "Анна",
	})

	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.Equal(t, []string{"Иван", "Мария"}, cal.cal.Holders(day(time.October, 19)))
}

func TestUseCase_Execute_OutOfWindowIgnoresOccupancy(t *testing.T) {
	cal := newFakeCalendar(nil)
	uc := newUseCase(cal, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Dates: []domain.Day{day(time.December, 1)},
		Name:  "Иван",
	})

	var limitErr *LimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, ViolationOutOfWindow, limitErr.Violations[0].Kind)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newUseCase(newFakeCalendar(nil), nil)

	_, err := uc.Execute(context.Background(), &Request{Name: "Иван"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Dates: []domain.Day{day(time.October, 17)}, Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
