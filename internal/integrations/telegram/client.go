package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	methodSendMessage = "sendMessage"
	methodSetWebhook  = "setWebhook"

	resultOK    = "ok"
	resultError = "error"

	// endpointFormat адрес метода Bot API: {apiURL}/bot{token}/{method}
	endpointFormat = "%s/bot%%s/%%s"
)

// Client клиент Telegram Bot API поверх tgbotapi
type Client struct {
	bot     *tgbotapi.BotAPI
	token   string
	metrics Metrics
	log     Logger
}

// NewClient создает новый экземпляр клиента Bot API. metrics может быть nil
// getMe при создании не вызывается: сервер поднимается и без доступа к Telegram
func NewClient(apiURL, token string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	bot := &tgbotapi.BotAPI{
		Token:  token,
		Client: &http.Client{Timeout: timeout},
	}
	bot.SetAPIEndpoint(fmt.Sprintf(endpointFormat, strings.TrimRight(apiURL, "/")))

	return &Client{
		bot:     bot,
		token:   token,
		metrics: metrics,
		log:     log,
	}
}

// SendMessage отправляет текст в чат
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	err := c.call(ctx, methodSendMessage, func() error {
		_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
		return err
	})
	if err != nil {
		c.log.Error("Telegram.SendMessage: chat=%d: %v", chatID, err)
		return err
	}

	c.log.Info("Telegram.SendMessage: chat=%d, %d bytes", chatID, len(text))
	return nil
}

// SetWebhook регистрирует адрес вебхука. secret приходит обратно в заголовке X-Telegram-Bot-Api-Secret-Token
func (c *Client) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	// WebhookConfig в tgbotapi не знает про secret_token, поэтому параметры собираем сами
	params := make(tgbotapi.Params)
	params.AddNonEmpty("url", webhookURL)
	params.AddNonEmpty("secret_token", secret)
	if err := params.AddInterface("allowed_updates", []string{tgbotapi.UpdateTypeMessage}); err != nil {
		return fmt.Errorf("%w: failed to encode allowed_updates: %v", ErrInternal, err)
	}

	err := c.call(ctx, methodSetWebhook, func() error {
		_, err := c.bot.MakeRequest(methodSetWebhook, params)
		return err
	})
	if err != nil {
		c.log.Error("Telegram.SetWebhook: %v", err)
		return err
	}

	c.log.Info("Telegram.SetWebhook: webhook set to %s", webhookURL)
	return nil
}

// call выполняет запрос, приводит ошибку tgbotapi к ошибкам пакета и пишет метрику
// tgbotapi не принимает context, поэтому отмену проверяем до запроса, а время ограничивает http.Client
func (c *Client) call(ctx context.Context, method string, do func() error) (err error) {
	defer func() {
		c.observe(method, err)
	}()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInternal, method, err)
	}

	return c.wrapError(method, do())
}

func (c *Client) wrapError(method string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s: code %d: %s", ErrAPI, method, apiErr.Code, apiErr.Message)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// В тексте ошибки net/http есть URL, а в нем токен
		return fmt.Errorf("%w: failed to execute %s request: %v", ErrInternal, method, c.redact(err.Error()))
	}

	return fmt.Errorf("%w: %s: %v", ErrInvalidResponse, method, c.redact(err.Error()))
}

func (c *Client) observe(method string, err error) {
	if c.metrics == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultError
	}
	c.metrics.IncTelegramRequest(method, result)
}

func (c *Client) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, "<token>")
}
