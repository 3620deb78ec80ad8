package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/pricelist-monitor/internal/metrics"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramNotifier implements Notifier via the Telegram Bot API sendMessage
// method, with HTML parse mode.
type TelegramNotifier struct {
	botToken string
	apiURL   string
	client   *http.Client
}

// TelegramOption configures a TelegramNotifier.
type TelegramOption func(*TelegramNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) TelegramOption {
	return func(n *TelegramNotifier) {
		n.client = c
	}
}

// WithAPIURL overrides the Bot API base URL.
func WithAPIURL(u string) TelegramOption {
	return func(n *TelegramNotifier) {
		n.apiURL = strings.TrimRight(u, "/")
	}
}

// NewTelegramNotifier creates a new TelegramNotifier for the given bot.
func NewTelegramNotifier(botToken string, opts ...TelegramOption) *TelegramNotifier {
	n := &TelegramNotifier{
		botToken: botToken,
		apiURL:   defaultTelegramAPI,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// sendMessageRequest is the sendMessage JSON body.
type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

// Send delivers text to the chat identified by userID.
func (n *TelegramNotifier) Send(ctx context.Context, userID int64, text string) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                userID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("marshaling telegram payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		n.apiURL+"/bot"+n.botToken+"/sendMessage",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating telegram request: %w", redactURLError(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending telegram message: %w", redactURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("telegram returned %d (body unreadable)", resp.StatusCode)
	}

	var apiResp apiResponse
	_ = json.Unmarshal(respBody, &apiResp) //nolint:errcheck // best-effort error parsing

	if resp.StatusCode == http.StatusTooManyRequests {
		retry := 0
		if apiResp.Parameters != nil {
			retry = apiResp.Parameters.RetryAfter
		}
		return fmt.Errorf("telegram rate limited (429, retry after %ds)", retry)
	}

	if apiResp.Description != "" {
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, apiResp.Description)
	}
	return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, respBody)
}

// redactURLError drops the request URL, which embeds the bot token, from
// transport errors.
func redactURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}
