package financeRepo

import (
	"context"
	"time"

	"ledgerly/models"
)

// FinancialRecordRepository persists sales and expense entries and answers
// aggregate queries over them.
type FinancialRecordRepository interface {
	Create(ctx context.Context, record models.FinancialRecord) (string, error)
	GetByUserID(ctx context.Context, userID, category string, limit int64) ([]models.FinancialRecord, error)
	// SumAmount totals record amounts for the user and category over the
	// half-open interval [start, end). A user with no matching records
	// totals 0.
	SumAmount(ctx context.Context, userID, category string, start, end time.Time) (float64, error)
	// ListUserIDs returns the distinct owners of financial records, used by
	// the scheduled evaluation sweep.
	ListUserIDs(ctx context.Context) ([]string, error)
	EnsureIndexes() error
}
