package webhook

import (
	"context"

	processMessage "github.com/m04kA/SMC-DayOffBot/internal/usecase/process_message"
)

type ProcessMessageUseCase interface {
	Execute(ctx context.Context, msg *processMessage.Message) (string, error)
}

// MessageSender отправка ответа в чат
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
