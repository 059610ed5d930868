package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
// The HTTP client has no timeout; every call is bounded by its context so long polls work.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secretToken is echoed back
// in the X-Telegram-Bot-Api-Secret-Token header of every webhook call.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	return b.call(ctx, "setWebhook", SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secretToken,
		AllowedUpdates: DefaultAllowedUpdates,
	}, nil)
}

// DeleteWebhook removes the webhook so getUpdates can be used.
func (b *Bot) DeleteWebhook(ctx context.Context) error {
	return b.call(ctx, "deleteWebhook", map[string]bool{"drop_pending_updates": false}, nil)
}

// GetMe returns the bot's own user.
func (b *Bot) GetMe(ctx context.Context) (*User, error) {
	var me User
	if err := b.call(ctx, "getMe", struct{}{}, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// GetUpdates long-polls for new updates.
func (b *Bot) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]Update, error) {
	var updates []Update
	if err := b.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	return b.Send(ctx, SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
}

// Send sends a fully specified message, including an optional inline keyboard.
func (b *Bot) Send(ctx context.Context, req SendMessageRequest) error {
	return b.call(ctx, "sendMessage", req, nil)
}

// EditMessageText replaces the text (and keyboard) of a sent message.
func (b *Bot) EditMessageText(ctx context.Context, req EditMessageTextRequest) error {
	return b.call(ctx, "editMessageText", req, nil)
}

// AnswerCallbackQuery acknowledges an inline button press.
func (b *Bot) AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error {
	return b.call(ctx, "answerCallbackQuery", AnswerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
		Text:            text,
	}, nil)
}

// call POSTs payload to method and decodes the result into out when non-nil.
func (b *Bot) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode telegram %s response (status %d): %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed (%d): %s", method, apiResp.ErrorCode, apiResp.Description)
	}

	if out != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("failed to decode telegram %s result: %w", method, err)
		}
	}
	return nil
}
