package process_message

import "errors"

var (
	// ErrInvalidInput возвращается, если сообщение не передано
	ErrInvalidInput = errors.New("process_message: invalid input data")

	// ErrInternal возвращается при внутренних ошибках вложенных use case
	ErrInternal = errors.New("process_message: internal error")
)
