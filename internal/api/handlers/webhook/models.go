package webhook

import (
	"github.com/m04kA/SMC-DayOffBot/internal/integrations/telegram"
	processMessage "github.com/m04kA/SMC-DayOffBot/internal/usecase/process_message"
)

// StatusResponse ответ на GET: бот жив
type StatusResponse struct {
	Message string `json:"message"`
}

// OKResponse ответ на обработанный апдейт
type OKResponse struct {
	OK bool `json:"ok"`
}

// ToUseCaseMessage конвертирует сообщение Telegram в модель use case
// Возвращает nil, если в апдейте нет текстового сообщения
func ToUseCaseMessage(update *telegram.Update) *processMessage.Message {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return nil
	}

	chatID, chatType, ok := telegram.ChatOf(update.Message)
	if !ok {
		return nil
	}

	return &processMessage.Message{
		Text:            update.Message.Text,
		FromDisplayName: telegram.DisplayName(update.Message),
		ChatID:          chatID,
		ChatType:        chatType,
	}
}
