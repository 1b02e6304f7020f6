package process_message

// Типы чатов Telegram, в которых бот принимает команды
const (
	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
)

// Message входящее сообщение. Другие поля апдейта бот не читает
type Message struct {
	Text            string
	FromDisplayName string
	ChatID          int64
	ChatType        string
}

// IsGroup сообщение пришло из группы или супергруппы
func (m *Message) IsGroup() bool {
	return m.ChatType == ChatTypeGroup || m.ChatType == ChatTypeSupergroup
}
