package domain

import (
	"fmt"
	"time"
)

// Day календарная дата без времени
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay возвращает календарную дату момента t в его часовом поясе
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// NewDayFromParts собирает дату из частей и проверяет, что такая дата существует
// (31.02 не превращается в 03.03, как это делает time.Date)
func NewDayFromParts(year int, month time.Month, day int) (Day, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Day{}, fmt.Errorf("no such date: %02d.%02d.%04d", day, int(month), year)
	}
	return Day{Year: year, Month: month, Day: day}, nil
}

// Time возвращает полночь этой даты в UTC
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String форматирует дату как DD.MM.YYYY
func (d Day) String() string {
	return d.Time().Format(DateFormat)
}

// Key ключ даты в хранилище
func (d Day) Key() string {
	return d.String()
}

func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend суббота или воскресенье
func (d Day) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Name название дня недели на русском
func (d Day) Name() string {
	return dayNames[d.Weekday()]
}

// Capacity максимальное количество человек, которые могут взять выходной в этот день
func (d Day) Capacity() int {
	if d.IsWeekend() {
		return WeekendCapacity
	}
	return WeekdayCapacity
}

// AddDays сдвигает дату на n календарных дней
func (d Day) AddDays(n int) Day {
	return NewDay(d.Time().AddDate(0, 0, n))
}

func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

func (d Day) After(other Day) bool {
	return d.Time().After(other.Time())
}

// DaysUntil количество целых календарных дней от d до other (отрицательное, если other раньше)
func (d Day) DaysUntil(other Day) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}
