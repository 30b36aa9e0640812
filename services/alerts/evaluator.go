package alerts

import (
	"context"
	"errors"
	"strings"
	"time"

	financeRepo "ledgerly/database/repository/finance"
	notificationRepo "ledgerly/database/repository/notification"
	"ledgerly/models"
	"ledgerly/utils"

	"go.uber.org/zap"
)

// DefaultAlertService is the production evaluator. It holds no per-pass
// state; passes for different users may run fully in parallel. Serializing
// passes for the same user is the caller's job (see utils.LockManager).
type DefaultAlertService struct {
	Finance       financeRepo.FinancialRecordRepository
	Notifications notificationRepo.NotificationRepository
	Rules         []Rule
	Formatter     *CurrencyFormatter

	// Now is the pass clock, replaceable in tests.
	Now func() time.Time
}

func NewDefaultAlertService(
	finance financeRepo.FinancialRecordRepository,
	notifications notificationRepo.NotificationRepository,
	rules []Rule,
	formatter *CurrencyFormatter,
) *DefaultAlertService {
	return &DefaultAlertService{
		Finance:       finance,
		Notifications: notifications,
		Rules:         rules,
		Formatter:     formatter,
		Now:           time.Now,
	}
}

// RunEvaluationPass checks every rule once for the user: aggregate, compare,
// dedup-check, create. Store failures abort the remaining rules and surface
// unretried; notifications created earlier in the pass stand.
func (s *DefaultAlertService) RunEvaluationPass(ctx context.Context, userID string) ([]models.Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, InvalidInputError{Reason: "userID is required"}
	}

	logger := utils.GetLogger()
	now := s.Now()
	created := []models.Notification{}

	for _, rule := range s.Rules {
		if !models.ValidCategory(rule.Category) {
			return created, InvalidInputError{Reason: "unknown category " + rule.Category}
		}

		total, err := s.Finance.SumAmount(ctx, userID, rule.Category, rule.Window.Start(now), now)
		if err != nil {
			return created, DataAccessError{Op: "aggregate for rule " + rule.Name, Err: err}
		}

		if !rule.Evaluate(total) {
			continue
		}

		suppressed, err := s.Notifications.HasUnread(ctx, userID, rule.Type, rule.Title, rule.DedupWindow.Start(now))
		if err != nil {
			return created, DataAccessError{Op: "dedup check for rule " + rule.Name, Err: err}
		}
		if suppressed {
			logger.Debug("alert suppressed by existing unread notification",
				zap.String("userId", userID),
				zap.String("rule", rule.Name))
			continue
		}

		notification := models.Notification{
			UserID:    userID,
			Type:      rule.Type,
			Title:     rule.Title,
			Message:   rule.RenderMessage(s.Formatter, total),
			Link:      rule.Link,
			DedupKey:  rule.DedupKey(now),
			Timestamp: now,
		}

		saved, err := s.Notifications.Create(ctx, notification)
		if err != nil {
			if errors.Is(err, notificationRepo.ErrDuplicateNotification) {
				// A racing pass won the insert; the unique index kept us
				// from double-creating.
				logger.Debug("alert suppressed by unique index",
					zap.String("userId", userID),
					zap.String("rule", rule.Name))
				continue
			}
			return created, DataAccessError{Op: "create notification for rule " + rule.Name, Err: err}
		}

		logger.Info("alert created",
			zap.String("userId", userID),
			zap.String("rule", rule.Name),
			zap.String("title", saved.Title),
			zap.Float64("total", total))
		created = append(created, *saved)
	}

	return created, nil
}
