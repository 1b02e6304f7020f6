package add_vacation

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при пустом списке дат или пустом имени
	ErrInvalidInput = errors.New("add_vacation: invalid input data")

	// ErrLimitExceeded возвращается, когда хотя бы одна дата не прошла проверку лимитов
	ErrLimitExceeded = errors.New("add_vacation: limit exceeded")
)

// LimitError содержит все нарушения по запросу. Ни одна дата запроса не добавлена
type LimitError struct {
	Violations []Violation
}

// Error сообщения нарушений через перевод строки, в том виде, в каком их видит пользователь
func (e *LimitError) Error() string {
	return strings.Join(e.Messages(), "\n")
}

func (e *LimitError) Unwrap() error {
	return ErrLimitExceeded
}

// Messages тексты нарушений по порядку дат
func (e *LimitError) Messages() []string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return messages
}
