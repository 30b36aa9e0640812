package financeRepo

import (
	"context"
	"fmt"
	"time"

	"ledgerly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new financial record and returns its ID.
func (r *mongoFinanceRepo) Create(ctx context.Context, record models.FinancialRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	record.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to insert financial record: %w", err)
	}
	return record.ID, nil
}

// GetByUserID fetches records for a user, newest first. An empty category
// matches both sales and expenses.
func (r *mongoFinanceRepo) GetByUserID(ctx context.Context, userID, category string, limit int64) ([]models.FinancialRecord, error) {
	filter := bson.M{"userId": userID}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.M{"date": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.FinancialRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode financial records: %w", err)
	}
	return records, nil
}

// ListUserIDs returns the distinct owners of financial records.
func (r *mongoFinanceRepo) ListUserIDs(ctx context.Context) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list record owners: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
