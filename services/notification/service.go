package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "ledgerly/database/repository/notification"
	"ledgerly/models"
)

// NotificationService exposes the read side of notifications: listing,
// the one-way mark-read transition, and the manual test-alert path.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	SendTestAlert(ctx context.Context, userID string) (*models.Notification, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository) (*DefaultNotificationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultNotificationService{Repo: repo}, nil
}

func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	return s.Repo.GetByUserID(ctx, userID, limit)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.Repo.MarkRead(ctx, userID, id)
}

// SendTestAlert creates a system message so a user can verify delivery end
// to end. It carries no dedup key and bypasses the suppression rules.
func (s *DefaultNotificationService) SendTestAlert(ctx context.Context, userID string) (*models.Notification, error) {
	return s.Repo.Create(ctx, models.Notification{
		UserID:    userID,
		Type:      models.NotificationSystemMessage,
		Title:     "Test Alert",
		Message:   "This is a test notification. If you can read this, alerts are working.",
		Timestamp: time.Now(),
	})
}
