package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	notificationRepo "ledgerly/database/repository/notification"
	"ledgerly/models"

	"github.com/gin-gonic/gin"
)

type fakeNotificationService struct {
	notifications []models.Notification
	markReadErr   error
}

func (f *fakeNotificationService) ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	return f.notifications, nil
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return f.markReadErr
}

func (f *fakeNotificationService) SendTestAlert(ctx context.Context, userID string) (*models.Notification, error) {
	n := models.Notification{ID: "t-1", UserID: userID, Type: models.NotificationSystemMessage, Title: "Test Alert"}
	return &n, nil
}

func setUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
	}
}

func newNotificationRouter(svc *fakeNotificationService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotificationHandler(svc)
	r := gin.New()
	group := r.Group("/api/notifications")
	if userID != "" {
		group.Use(setUser(userID))
	}
	group.GET("", h.ListNotificationsHandler)
	group.PUT("/:id/read", h.MarkNotificationReadHandler)
	group.POST("/test", h.TestAlertHandler)
	return r
}

func TestListNotificationsHandler(t *testing.T) {
	svc := &fakeNotificationService{notifications: []models.Notification{
		{ID: "n-1", UserID: "u1", Type: models.NotificationSalesAlert, Title: "Low Sales Alert"},
	}}
	router := newNotificationRouter(svc, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var got []models.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a notification list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n-1" {
		t.Errorf("got %v, want the stored notification", got)
	}
}

func TestListNotificationsHandler_Unauthorized(t *testing.T) {
	router := newNotificationRouter(&fakeNotificationService{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestMarkNotificationReadHandler_NotFound(t *testing.T) {
	svc := &fakeNotificationService{markReadErr: notificationRepo.ErrNotificationNotFound}
	router := newNotificationRouter(svc, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/missing/read", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestTestAlertHandler(t *testing.T) {
	router := newNotificationRouter(&fakeNotificationService{}, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/test", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	var got models.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a notification: %v", err)
	}
	if got.Type != models.NotificationSystemMessage {
		t.Errorf("Type = %q, want %q", got.Type, models.NotificationSystemMessage)
	}
}
