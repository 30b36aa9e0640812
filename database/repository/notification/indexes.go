package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the notifications collection.
func (r *mongoNotificationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on notification ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index backing the dedup lookup and unread listings
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "read", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("user_read_timestamp_idx"),
		},
		// One unread alert per (user, type, title, dedup bucket). Partial so
		// that read notifications and manual ones without a dedup key never
		// collide.
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "type", Value: 1},
				{Key: "title", Value: 1},
				{Key: "dedupKey", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unread_dedup_idx").
				SetPartialFilterExpression(bson.M{
					"read":     false,
					"dedupKey": bson.M{"$exists": true},
				}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}
	return nil
}
