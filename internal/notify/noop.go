package notify

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

// NoOpNotifier implements Notifier by logging discarded messages. It is used
// when Telegram (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards messages with a log line.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Send logs and discards a message.
func (n *NoOpNotifier) Send(_ context.Context, userID int64, text string) error {
	n.log.Debug("notification discarded (no backend configured)",
		"user_id", userID,
		"length", utf8.RuneCountInString(text),
	)
	return nil
}
