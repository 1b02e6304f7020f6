package vacationfile

import "errors"

var (
	// ErrRead возвращается, когда файл календаря не удалось прочитать
	ErrRead = errors.New("vacationfile.repository: failed to read file")

	// ErrDecode возвращается, когда содержимое файла не является корректным JSON календаря
	ErrDecode = errors.New("vacationfile.repository: failed to decode calendar")

	// ErrWrite возвращается, когда календарь не удалось записать на диск
	ErrWrite = errors.New("vacationfile.repository: failed to write file")
)
