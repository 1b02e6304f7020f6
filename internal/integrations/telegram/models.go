package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Update входящий апдейт вебхука. Бот обрабатывает только message
type Update = tgbotapi.Update

// Message сообщение из чата
type Message = tgbotapi.Message

// DisplayName имя отправителя, как его показывает Telegram
func DisplayName(m *Message) string {
	if m == nil || m.From == nil {
		return ""
	}
	return m.From.FirstName
}

// ChatOf id и тип чата сообщения. ok=false, если чата в сообщении нет
func ChatOf(m *Message) (id int64, chatType string, ok bool) {
	if m == nil || m.Chat == nil {
		return 0, "", false
	}
	return m.Chat.ID, m.Chat.Type, true
}
