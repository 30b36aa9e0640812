package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"ledgerly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HasUnread reports whether an unread notification with the same type and
// title exists for the user with timestamp >= since.
func (r *mongoNotificationRepo) HasUnread(ctx context.Context, userID, notifType, title string, since time.Time) (bool, error) {
	filter := bson.M{
		"userId":    userID,
		"type":      notifType,
		"title":     title,
		"read":      false,
		"timestamp": bson.M{"$gte": since},
	}

	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to query unread notifications: %w", err)
	}
	return count > 0, nil
}

// GetByUserID fetches the user's notifications, newest first.
func (r *mongoNotificationRepo) GetByUserID(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}
