package cancel_vacation

import "github.com/m04kA/SMC-DayOffBot/internal/domain"

// Request запрос на отмену выходных
type Request struct {
	Dates []domain.Day
	Name  string
}

// Response результат отмены
type Response struct {
	Name    string
	Removed int // Сколько дат реально освобождено
}
