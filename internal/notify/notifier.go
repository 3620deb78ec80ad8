// Package notify defines the notification interface, its implementations,
// and the formatting of change notifications into bounded messages.
package notify

import "context"

// Notifier delivers one preformatted message to one recipient.
type Notifier interface {
	Send(ctx context.Context, userID int64, text string) error
}
