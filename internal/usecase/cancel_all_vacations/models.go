package cancel_all_vacations

// Request запрос на отмену всех выходных человека
type Request struct {
	Name string
}

// Response результат отмены
type Response struct {
	Name    string
	Removed int // Сколько дней освобождено
}
