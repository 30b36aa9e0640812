package financeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// SumAmount totals amounts for the user and category over [start, end).
// It has no side effects and is safe to call concurrently for different users.
func (r *mongoFinanceRepo) SumAmount(ctx context.Context, userID, category string, start, end time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"userId":   userID,
			"category": category,
			"date":     bson.M{"$gte": start, "$lt": end},
		}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate financial records: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode aggregate result: %w", err)
	}
	if len(results) == 0 {
		// No matching records is an empty window, not an error.
		return 0, nil
	}
	return results[0].Total, nil
}
