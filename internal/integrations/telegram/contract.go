package telegram

// Metrics интерфейс метрик запросов к Bot API
type Metrics interface {
	IncTelegramRequest(method, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
