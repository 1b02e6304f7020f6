package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayOffBot/internal/api/handlers"
)

// HeaderTelegramSecret заголовок, в котором Telegram присылает secret_token из setWebhook
const HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

const msgInvalidSecret = "неверный секрет вебхука"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// WebhookSecret пропускает POST запросы только с правильным секретом, остальные методы не проверяются.
// Пустой secret отключает проверку
func WebhookSecret(secret string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderTelegramSecret)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				log.Warn("%s %s - invalid webhook secret, request_id=%s", r.Method, r.URL.Path, RequestIDFromContext(r.Context()))
				handlers.RespondUnauthorized(w, msgInvalidSecret)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
