package cancel_vacation

import "errors"

// ErrInvalidInput возвращается при пустом списке дат или пустом имени
var ErrInvalidInput = errors.New("cancel_vacation: invalid input data")
