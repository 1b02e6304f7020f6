package domain

// Лимиты бронирования выходных
const (
	WeekendCapacity   = 3  // максимум человек в субботу и воскресенье
	WeekdayCapacity   = 2  // максимум человек в будний день
	BookingWindowDays = 30 // выходной можно взять не дальше чем через 30 дней
)

// CalendarHorizonDays количество дней в отображаемом календаре
const CalendarHorizonDays = 30

// Time format constants
const (
	DateFormat = "02.01.2006" // DD.MM.YYYY, он же ключ в хранилище
)

// dayNames названия дней недели, индекс совпадает с time.Weekday
var dayNames = [7]string{
	"Воскресенье",
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
}
