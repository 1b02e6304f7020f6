// Package command разбирает текст сообщения в команду бота
//
// Грамматика: показать календарь, добавить выходные, отменить выходные, отменить все выходные.
// Порядок проверок фиксирован, первая сработавшая побеждает. Выражение с датами всегда
// идет первым и забирает минимальный префикс, имя - весь остаток строки.
package command

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-DayOffBot/internal/dateparse"
	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

// Kind тип команды
type Kind string

const (
	KindGreet        Kind = "greet"
	KindShowCalendar Kind = "calendar"
	KindRemoveAll    Kind = "remove_all"
	KindRemove       Kind = "remove"
	KindAdd          Kind = "add"
	KindUnknown      Kind = "unknown"
)

// Command разобранная команда
type Command struct {
	Kind  Kind
	Dates []domain.Day // для KindAdd и KindRemove
	Name  string       // для KindAdd, KindRemove и KindRemoveAll
}

const (
	cmdStart = "/start"

	keywordCancel    = "отмена"
	keywordCancelAll = "отмена всех выходных"
)

var calendarCommands = map[string]struct{}{
	"/календарь": {},
	"/calendar":  {},
	"календарь":  {},
}

var (
	removeAllRe = regexp.MustCompile(`(?i)отмена всех выходных\s+(.+)`)
	removeRe    = regexp.MustCompile(`(?i)отмена\s+(?:выходных\s+)?(.+)`)
	addRe       = regexp.MustCompile(`(?i)(?:выходной\s+)?(.+?)\s+(.+)$`)
	splitRe     = regexp.MustCompile(`(.+?)\s+(.+)$`)
)

// Parse разбирает текст сообщения. year - текущий год, он подставляется в даты без года
func Parse(text string, year int) Command {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if lower == cmdStart {
		return Command{Kind: KindGreet}
	}

	if _, ok := calendarCommands[lower]; ok {
		return Command{Kind: KindShowCalendar}
	}

	if strings.Contains(lower, keywordCancelAll) {
		if m := removeAllRe.FindStringSubmatch(trimmed); m != nil {
			return Command{Kind: KindRemoveAll, Name: strings.TrimSpace(m[1])}
		}
		// Имени нет - пробуем следующие правила
	}

	if strings.Contains(lower, keywordCancel) {
		if cmd, ok := parseRemove(trimmed, year); ok {
			return cmd
		}
	}

	if cmd, ok := parseAdd(trimmed, year); ok {
		return cmd
	}

	return Command{Kind: KindUnknown}
}

func parseRemove(text string, year int) (Command, bool) {
	m := removeRe.FindStringSubmatch(text)
	if m == nil {
		return Command{}, false
	}

	dateExpr, name, ok := splitDatesAndName(strings.TrimSpace(m[1]))
	if !ok {
		return Command{}, false
	}

	dates, err := dateparse.ParseRange(dateExpr, year)
	if err != nil || len(dates) == 0 {
		return Command{}, false
	}

	return Command{Kind: KindRemove, Dates: dates, Name: name}, true
}

func parseAdd(text string, year int) (Command, bool) {
	m := addRe.FindStringSubmatch(text)
	if m == nil {
		return Command{}, false
	}

	dateExpr := strings.TrimSpace(m[1])
	name := strings.TrimSpace(m[2])

	// Не даем отмене, которая не разобралась выше, превратиться в добавление
	if strings.Contains(strings.ToLower(dateExpr), keywordCancel) {
		return Command{}, false
	}

	dates, err := dateparse.ParseRange(dateExpr, year)
	if err != nil || len(dates) == 0 {
		return Command{}, false
	}

	return Command{Kind: KindAdd, Dates: dates, Name: name}, true
}

func splitDatesAndName(rest string) (string, string, bool) {
	m := splitRe.FindStringSubmatch(rest)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}
