package handlers

import (
	"context"
	"errors"
	"net/http"

	"ledgerly/services/alerts"
	"ledgerly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AlertHandler exposes the evaluation-pass trigger.
type AlertHandler struct {
	Service alerts.AlertService
	Locks   *utils.LockManager
}

func NewAlertHandler(service alerts.AlertService, locks *utils.LockManager) *AlertHandler {
	return &AlertHandler{Service: service, Locks: locks}
}

// CheckAlertsHandler runs one evaluation pass for the authenticated user and
// returns the newly created notifications. Passes for the same user are
// serialized through a redis lease.
func (h *AlertHandler) CheckAlertsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	uid := userID.(string)

	acquired, err := h.Locks.Acquire(c.Request.Context(), uid)
	if err != nil {
		logger.Error("Failed to acquire evaluation lease", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start alert check"})
		return
	}
	if !acquired {
		c.JSON(http.StatusConflict, gin.H{"error": "An alert check is already running for this user"})
		return
	}
	// Release with a fresh context; the request context may be done by then.
	defer h.Locks.Release(context.Background(), uid)

	created, err := h.Service.RunEvaluationPass(c.Request.Context(), uid)
	if err != nil {
		var invalid alerts.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		logger.Error("Evaluation pass failed", zap.String("userId", uid), zap.Error(err))
		// Notifications created before the failure stand; report them.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Alert check failed",
			"created": created,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"count":   len(created),
	})
}
