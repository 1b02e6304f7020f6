package domain

import (
	"sort"
	"strings"
)

// VacationCalendar календарь выходных: дата (DD.MM.YYYY) -> имена в порядке записи
// Имя встречается в дне не более одного раза, пустые дни не хранятся.
// Имена сравниваются без учета регистра, в дне остается написание первой записи
type VacationCalendar struct {
	vacations map[string][]string
}

// NewVacationCalendar создает пустой календарь
func NewVacationCalendar() *VacationCalendar {
	return &VacationCalendar{vacations: make(map[string][]string)}
}

// NewVacationCalendarFromMap строит календарь из сохраненных данных
// Дубликаты имен внутри дня схлопываются, пустые дни отбрасываются
func NewVacationCalendarFromMap(vacations map[string][]string) *VacationCalendar {
	c := NewVacationCalendar()
	for key, names := range vacations {
		for _, name := range names {
			c.addByKey(key, name)
		}
	}
	return c
}

// Holders возвращает копию списка имен на дату (пустой список, если записей нет)
func (c *VacationCalendar) Holders(day Day) []string {
	names := c.vacations[day.Key()]
	result := make([]string, len(names))
	copy(result, names)
	return result
}

// Count количество записей на дату
func (c *VacationCalendar) Count(day Day) int {
	return len(c.vacations[day.Key()])
}

// Add записывает name на дату. Возвращает false, если имя уже было записано
func (c *VacationCalendar) Add(day Day, name string) bool {
	return c.addByKey(day.Key(), name)
}

// Remove вычеркивает name из даты. Если день опустел, он удаляется целиком
func (c *VacationCalendar) Remove(day Day, name string) bool {
	return c.removeByKey(day.Key(), name)
}

// RemoveAll вычеркивает name из всех дат календаря и возвращает количество затронутых дней
func (c *VacationCalendar) RemoveAll(name string) int {
	removed := 0
	for _, key := range c.Keys() {
		if c.removeByKey(key, name) {
			removed++
		}
	}
	return removed
}

// Keys ключи всех непустых дней в лексикографическом порядке
func (c *VacationCalendar) Keys() []string {
	keys := make([]string, 0, len(c.vacations))
	for key := range c.vacations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len количество непустых дней
func (c *VacationCalendar) Len() int {
	return len(c.vacations)
}

// Snapshot копия данных календаря для сохранения
func (c *VacationCalendar) Snapshot() map[string][]string {
	result := make(map[string][]string, len(c.vacations))
	for key, names := range c.vacations {
		copied := make([]string, len(names))
		copy(copied, names)
		result[key] = copied
	}
	return result
}

func (c *VacationCalendar) addByKey(key, name string) bool {
	for _, existing := range c.vacations[key] {
		if sameHolder(existing, name) {
			return false
		}
	}
	c.vacations[key] = append(c.vacations[key], name)
	return true
}

func (c *VacationCalendar) removeByKey(key, name string) bool {
	names, ok := c.vacations[key]
	if !ok {
		return false
	}

	filtered := make([]string, 0, len(names))
	for _, existing := range names {
		if !sameHolder(existing, name) {
			filtered = append(filtered, existing)
		}
	}

	if len(filtered) == len(names) {
		return false
	}

	if len(filtered) == 0 {
		delete(c.vacations, key)
	} else {
		c.vacations[key] = filtered
	}
	return true
}

// sameHolder "Иван" и "иван" - один и тот же человек
func sameHolder(a, b string) bool {
	return strings.EqualFold(a, b)
}
