package alerts

import (
	"context"

	"ledgerly/models"
)

// AlertService runs rule evaluation passes.
type AlertService interface {
	// RunEvaluationPass checks every rule once for the user and returns the
	// notifications it created. A data-access failure aborts the remaining
	// rules but keeps what was already created.
	RunEvaluationPass(ctx context.Context, userID string) ([]models.Notification, error)
}
