package telegram

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (запрос не ушел)
	ErrInternal = errors.New("telegram client: internal error")

	// ErrInvalidResponse возвращается, если ответ Bot API не удалось разобрать
	ErrInvalidResponse = errors.New("telegram client: invalid response")

	// ErrAPI возвращается, если Bot API ответил ok=false
	ErrAPI = errors.New("telegram client: api error")
)
