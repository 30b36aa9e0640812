package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"ledgerly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new notification. When the document carries a dedup key,
// the partial unique index turns a concurrent double-create into
// ErrDuplicateNotification instead of a second row.
func (r *mongoNotificationRepo) Create(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, n)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateNotification
		}
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}
	return &n, nil
}

// MarkRead sets the read flag on the user's notification.
func (r *mongoNotificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	filter := bson.M{"id": id, "userId": userID}
	update := bson.M{"$set": bson.M{"read": true}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
