package handlers

import (
	"errors"
	"net/http"
	"strconv"

	notificationRepo "ledgerly/database/repository/notification"
	"ledgerly/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes notification listing and the mark-read transition.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(service notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// ListNotificationsHandler returns the authenticated user's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	notifications, err := h.Service.ListForUser(c.Request.Context(), userID.(string), limit)
	if err != nil {
		logger.Error("Failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler flips a notification's read flag for its owner.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification id is required"})
		return
	}

	if err := h.Service.MarkRead(c.Request.Context(), userID.(string), id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		logger.Error("Failed to mark notification read", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// TestAlertHandler creates a manual test notification for the authenticated user.
func (h *NotificationHandler) TestAlertHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.Service.SendTestAlert(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Error("Failed to create test alert", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create test alert"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
