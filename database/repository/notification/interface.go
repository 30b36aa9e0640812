package notificationRepo

import (
	"context"
	"errors"
	"time"

	"ledgerly/models"
)

// ErrDuplicateNotification is returned by Create when an equivalent unread
// notification already exists in the same dedup bucket. A racing evaluation
// pass losing the insert gets this instead of a second notification.
var ErrDuplicateNotification = errors.New("equivalent unread notification already exists")

// ErrNotificationNotFound is returned when a user-scoped lookup matches nothing.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists alert notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (*models.Notification, error)
	// HasUnread reports whether an unread notification with the same type
	// and title exists for the user with timestamp >= since.
	HasUnread(ctx context.Context, userID, notifType, title string, since time.Time) (bool, error)
	GetByUserID(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	// MarkRead flips the read flag for the user's notification. The
	// transition is one-way; marking an already-read notification is a no-op.
	MarkRead(ctx context.Context, userID, id string) error
	EnsureIndexes() error
}
