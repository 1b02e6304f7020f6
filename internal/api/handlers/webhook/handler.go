package webhook

import (
	"net/http"

	"github.com/m04kA/SMC-DayOffBot/internal/api/handlers"
	"github.com/m04kA/SMC-DayOffBot/internal/integrations/telegram"
)

const (
	msgRunning            = "Day-off bot is running!"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase ProcessMessageUseCase
	sender  MessageSender
	logger  Logger
}

func NewHandler(useCase ProcessMessageUseCase, sender MessageSender, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		sender:  sender,
		logger:  logger,
	}
}

// Handle POST <webhook_path> принимает апдейт Telegram, любой другой метод отвечает статусом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		handlers.RespondJSON(w, http.StatusOK, StatusResponse{Message: msgRunning})
		return
	}

	var update telegram.Update
	if err := handlers.DecodeJSON(r, &update); err != nil {
		h.logger.Warn("POST /webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	msg := ToUseCaseMessage(&update)
	if msg == nil {
		// Правки, колбэки и сообщения без текста бот не обрабатывает
		h.logger.Info("POST /webhook - Update id=%d has no text message, skipping", update.UpdateID)
		handlers.RespondJSON(w, http.StatusOK, OKResponse{OK: true})
		return
	}

	// Вызываем use case
	text, err := h.useCase.Execute(r.Context(), msg)
	if err != nil {
		h.logger.Error("POST /webhook - Failed to process message: update_id=%d, chat_id=%d, error=%v",
			update.UpdateID, msg.ChatID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Отправляем ответ в тот же чат
	if err := h.sender.SendMessage(r.Context(), msg.ChatID, text); err != nil {
		h.logger.Error("POST /webhook - Failed to send reply: update_id=%d, chat_id=%d, error=%v",
			update.UpdateID, msg.ChatID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /webhook - Update processed: update_id=%d, chat_id=%d", update.UpdateID, msg.ChatID)
	handlers.RespondJSON(w, http.StatusOK, OKResponse{OK: true})
}
