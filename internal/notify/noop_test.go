package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	err := n.Send(context.Background(), 42, "📊 <b>Price list changes detected:</b>")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "user_id=42")
	assert.Contains(t, buf.String(), "length=37")
}

// compile-time interface check.
var _ Notifier = (*NoOpNotifier)(nil)
