package cancel_all_vacations

import "errors"

// ErrInvalidInput возвращается при пустом имени
var ErrInvalidInput = errors.New("cancel_all_vacations: invalid input data")
