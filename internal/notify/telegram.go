package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/example/baan-scheduler/internal/booking"
)

// Telegram pushes outcome messages to a single chat through the Bot API's
// sendMessage call. It renders plain text only; menus and buttons belong to
// the chat layer, not here.
type Telegram struct {
	token      string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

type TelegramOption func(*Telegram)

func WithHTTPClient(c *http.Client) TelegramOption {
	return func(t *Telegram) { t.httpClient = c }
}

// WithBaseURL overrides the Bot API host, for tests.
func WithBaseURL(u string) TelegramOption {
	return func(t *Telegram) { t.baseURL = u }
}

func NewTelegram(token, chatID string, opts ...TelegramOption) *Telegram {
	t := &Telegram{
		token:      token,
		chatID:     chatID,
		baseURL:    "https://api.telegram.org",
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Configured returns true when both the token and chat id are set.
func (t *Telegram) Configured() bool {
	return t.token != "" && t.chatID != ""
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (t *Telegram) DeferredResolved(ctx context.Context, date string, slot booking.Slot, outcome booking.Outcome) {
	text := fmt.Sprintf("Booking for %s at %s: %s", date, slot.StartTime, outcome.Message)
	if err := t.send(ctx, text); err != nil {
		slog.Warn("telegram notification failed", "error", err)
	}
}

func (t *Telegram) send(ctx context.Context, text string) error {
	if !t.Configured() {
		return fmt.Errorf("telegram notifier not configured")
	}
	payload, err := json.Marshal(sendMessageRequest{ChatID: t.chatID, Text: text})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("sendMessage returned status %d", res.StatusCode)
	}
	return nil
}
