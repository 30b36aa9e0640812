package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the route handlers for registration.
type HandlerBundle struct {
	// Alert endpoints.
	CheckAlertsHandler gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
	TestAlertHandler            gin.HandlerFunc

	// Financial record endpoints.
	CreateSaleHandler    gin.HandlerFunc
	ListSalesHandler     gin.HandlerFunc
	CreateExpenseHandler gin.HandlerFunc
	ListExpensesHandler  gin.HandlerFunc
}
