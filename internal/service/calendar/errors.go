package calendar

import "errors"

// ErrMutationAborted возвращается из MutateFunc, если изменение нужно отменить без сохранения
var ErrMutationAborted = errors.New("calendar.service: mutation aborted")
