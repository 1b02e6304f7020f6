package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	aug16 = Day{2026, time.August, 16}
	aug17 = Day{2026, time.August, 17}
)

func TestVacationCalendar_AddIsIdempotent(t *testing.T) {
	c := NewVacationCalendar()

	assert.True(t, c.Add(aug16, "Иван"))
	assert.False(t, c.Add(aug16, "Иван"))

	assert.Equal(t, []string{"Иван"}, c.Holders(aug16))
}

func TestVacationCalendar_NamesIgnoreCase(t *testing.T) {
	c := NewVacationCalendar()

	assert.True(t, c.Add(aug16, "Иван"))
	assert.False(t, c.Add(aug16, "иван"))
	assert.Equal(t, []string{"Иван"}, c.Holders(aug16))

	assert.True(t, c.Remove(aug16, "ИВАН"))
	assert.Equal(t, 0, c.Len())

	c.Add(aug16, "иван")
	c.Add(aug17, "Иван")
	assert.Equal(t, 2, c.RemoveAll("ИвАн"))
}

func TestNewVacationCalendarFromMap_CollapsesCaseDuplicates(t *testing.T) {
	c := NewVacationCalendarFromMap(map[string][]string{
		"16.08.2026": {"иван", "Иван", "мария"},
	})

	assert.Equal(t, []string{"иван", "мария"}, c.Holders(aug16))
}

func TestVacationCalendar_KeepsInsertionOrder(t *testing.T) {
	c := NewVacationCalendar()
	c.Add(aug16, "Мария")
	c.Add(aug16, "Иван")
	c.Add(aug16, "Анна")

	assert.Equal(t, []string{"Мария", "Иван", "Анна"}, c.Holders(aug16))
}

func TestVacationCalendar_RemoveLastHolderDropsDay(t *testing.T) {
	c := NewVacationCalendar()
	c.Add(aug16, "Иван")

	assert.True(t, c.Remove(aug16, "Иван"))
	assert.Equal(t, 0, c.Len())
	assert.NotContains(t, c.Snapshot(), aug16.Key())
	assert.Empty(t, c.Holders(aug16))
}

func TestVacationCalendar_RemoveMissing(t *testing.T) {
	c := NewVacationCalendar()
	c.Add(aug16, "Иван")

	assert.False(t, c.Remove(aug16, "Мария"))
	assert.False(t, c.Remove(aug17, "Иван"))
	assert.Equal(t, []string{"Иван"}, c.Holders(aug16))
}

func TestVacationCalendar_RemoveAll(t *testing.T) {
	c := NewVacationCalendar()
	c.Add(aug16, "Иван")
	c.Add(aug16, "Мария")
	c.Add(aug17, "Иван")

	removed := c.RemoveAll("Иван")

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"Мария"}, c.Holders(aug16))
	assert.Empty(t, c.Holders(aug17))
	assert.Equal(t, []string{aug16.Key()}, c.Keys())
}

func TestNewVacationCalendarFromMap_Normalizes(t *testing.T) {
	c := NewVacationCalendarFromMap(map[string][]string{
		"16.08.2026": {"Иван", "Иван", "Мария"},
		"17.08.2026": {},
	})

	assert.Equal(t, []string{"Иван", "Мария"}, c.Holders(aug16))
	assert.Equal(t, 1, c.Len())
}

func TestVacationCalendar_SnapshotIsCopy(t *testing.T) {
	c := NewVacationCalendar()
	c.Add(aug16, "Иван")

	snapshot := c.Snapshot()
	snapshot[aug16.Key()][0] = "changed"

	assert.Equal(t, []string{"Иван"}, c.Holders(aug16))
}
