package add_vacation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

const (
	msgWrongYear        = "Выходные можно брать только в %d году"
	msgOutOfWindow      = "Выходные можно брать только в ближайшие %d дней"
	msgCapacityExceeded = "%s %s — лимит в %s исчерпан (максимум %d человек)"

	dayTypeWeekend = "выходные"
	dayTypeWeekday = "будни"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req == nil || len(req.Dates) == 0 {
		return fmt.Errorf("%w: no dates", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidInput)
	}
	return nil
}

// CheckLimits проверяет даты по порядку и возвращает все нарушения
// Для каждой даты засчитывается только первое нарушение: год, затем окно, затем вместимость.
// Имя не влияет на проверку: лимит считается на день, а не на человека
func CheckLimits(cal *domain.VacationCalendar, dates []domain.Day, now time.Time) []Violation {
	today := domain.NewDay(now)
	var violations []Violation

	for _, day := range dates {
		if day.Year != today.Year {
			violations = append(violations, Violation{
				Day:     day,
				Kind:    ViolationWrongYear,
				Message: fmt.Sprintf(msgWrongYear, today.Year),
			})
			continue
		}

		diff := today.DaysUntil(day)
		if diff < 0 || diff > domain.BookingWindowDays {
			violations = append(violations, Violation{
				Day:     day,
				Kind:    ViolationOutOfWindow,
				Message: fmt.Sprintf(msgOutOfWindow, domain.BookingWindowDays),
			})
			continue
		}

		capacity := day.Capacity()
		if cal.Count(day) >= capacity {
			violations = append(violations, Violation{
				Day:     day,
				Kind:    ViolationCapacityExceeded,
				Message: fmt.Sprintf(msgCapacityExceeded, day.Name(), day.String(), dayType(day), capacity),
			})
		}
	}

	return violations
}

func dayType(day domain.Day) string {
	if day.IsWeekend() {
		return dayTypeWeekend
	}
	return dayTypeWeekday
}
