package add_vacation

import "github.com/m04kA/SMC-DayOffBot/internal/domain"

// Request запрос на добавление выходных
type Request struct {
	Dates []domain.Day // Даты в порядке из сообщения
	Name  string       // Имя, на которое берутся выходные
}

// Response результат добавления
type Response struct {
	Name  string
	Dates []domain.Day
	Added int // Сколько дат реально добавлено (без уже занятых этим именем)
}

// ViolationKind вид нарушения лимита
type ViolationKind string

const (
	ViolationWrongYear        ViolationKind = "wrong_year"
	ViolationOutOfWindow      ViolationKind = "out_of_window"
	ViolationCapacityExceeded ViolationKind = "capacity_exceeded"
)

// Violation нарушение лимита для одной даты
type Violation struct {
	Day     domain.Day
	Kind    ViolationKind
	Message string
}
