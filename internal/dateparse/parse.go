// Package dateparse разбирает даты из сообщений чата: "16.08", "16.08 17.08", "16.08 по 25.08"
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// ErrParse возвращается, если текст не является датой
var ErrParse = errors.New("dateparse: malformed date")

// spanSeparator разделитель диапазона "<начало> по <конец>"
const spanSeparator = " по "

var listTokenRe = regexp.MustCompile(`^\d{1,2}\.\d{1,2}$`)

// ParseSingle разбирает дату вида DD.MM (год берется из year) или DD.MM.YYYY
func ParseSingle(text string, year int) (domain.Day, error) {
	parts := strings.Split(strings.TrimSpace(text), ".")
	if len(parts) != 2 && len(parts) != 3 {
		return domain.Day{}, fmt.Errorf("%w: %q", ErrParse, text)
	}

	day, err := parseNumber(parts[0], 2)
	if err != nil {
		return domain.Day{}, fmt.Errorf("%w: day in %q", ErrParse, text)
	}

	month, err := parseNumber(parts[1], 2)
	if err != nil {
		return domain.Day{}, fmt.Errorf("%w: month in %q", ErrParse, text)
	}

	if len(parts) == 3 {
		year, err = parseNumber(parts[2], 4)
		if err != nil {
			return domain.Day{}, fmt.Errorf("%w: year in %q", ErrParse, text)
		}
	}

	result, err := domain.NewDayFromParts(year, time.Month(month), day)
	if err != nil {
		return domain.Day{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return result, nil
}

// ParseKey разбирает ключ хранилища DD.MM.YYYY
func ParseKey(key string) (domain.Day, error) {
	t, err := time.Parse(domain.DateFormat, key)
	if err != nil {
		return domain.Day{}, fmt.Errorf("%w: key %q: %v", ErrParse, key, err)
	}
	return domain.NewDay(t), nil
}

// ParseRange разбирает выражение с датами
//
// Диапазон "16.08 по 25.08" раскрывается по дням включительно. Если начало позже конца,
// результат пустой. Ошибка возвращается, только если одна из границ диапазона не дата.
//
// Список "16.08 17.08" разбирается по пробелам, токены не в формате DD.MM пропускаются.
func ParseRange(text string, year int) ([]domain.Day, error) {
	if strings.Contains(text, spanSeparator) {
		return parseSpan(text, year)
	}

	dates := make([]domain.Day, 0)
	for _, token := range strings.Fields(text) {
		if !listTokenRe.MatchString(token) {
			continue
		}
		day, err := ParseSingle(token, year)
		if err != nil {
			continue
		}
		dates = append(dates, day)
	}

	return dates, nil
}

func parseSpan(text string, year int) ([]domain.Day, error) {
	// Всё после второго " по " игнорируется
	parts := strings.Split(text, spanSeparator)

	start, err := ParseSingle(parts[0], year)
	if err != nil {
		return nil, err
	}

	end, err := ParseSingle(parts[1], year)
	if err != nil {
		return nil, err
	}

	dates := make([]domain.Day, 0)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}

	return dates, nil
}

func parseNumber(s string, maxDigits int) (int, error) {
	if s == "" || len(s) > maxDigits {
		return 0, ErrParse
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrParse
		}
	}
	return strconv.Atoi(s)
}
