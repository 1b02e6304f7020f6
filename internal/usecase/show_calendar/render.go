package show_calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DayOffBot/internal/domain"
)

const (
	header     = "📅 Текущие выходные:\n"
	lineFormat = "%s %s — %s %s"
	nobody     = "Никто"
	namesSep   = ", "
	statusOK   = "✅"
	statusOver = "❌"
)

// RenderCalendar строит календарь на days дней начиная с today, по строке на день
// ❌ ставится, только если записей на день больше, чем позволяет лимит
func RenderCalendar(cal *domain.VacationCalendar, today domain.Day, days int) string {
	lines := make([]string, 0, days)

	for i := 0; i < days; i++ {
		day := today.AddDays(i)
		holders := cal.Holders(day)

		names := nobody
		if len(holders) > 0 {
			names = strings.Join(holders, namesSep)
		}

		status := statusOK
		if len(holders) > day.Capacity() {
			status = statusOver
		}

		lines = append(lines, fmt.Sprintf(lineFormat, day.Name(), day.String(), names, status))
	}

	return header + strings.Join(lines, "\n")
}
