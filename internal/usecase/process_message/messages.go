package process_message

const (
	msgHelp = "Привет! Я бот для управления выходными. Доступные команды:\n" +
		"/календарь - показать календарь выходных\n" +
		"выходной DD.MM.YYYY Имя - добавить выходной\n" +
		"отмена DD.MM.YYYY Имя - отменить выходной\n" +
		"отмена всех выходных Имя - отменить все выходные"

	msgGroupOnly      = "Бот работает только в групповых чатах"
	msgRemovedAll     = "Удалены все выходные для %s"
	msgRemoved        = "Удалены выходные для %s"
	msgAdded          = "Добавлены выходные для %s"
	msgUnknownCommand = "Неизвестная команда. Используйте /календарь для просмотра выходных."
)
