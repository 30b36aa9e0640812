package handlers

import (
	"net/http"
	"strconv"
	"time"

	financeRepo "ledgerly/database/repository/finance"
	"ledgerly/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinanceHandler exposes sale and expense record endpoints.
type FinanceHandler struct {
	Repo financeRepo.FinancialRecordRepository
}

func NewFinanceHandler(repo financeRepo.FinancialRecordRepository) *FinanceHandler {
	return &FinanceHandler{Repo: repo}
}

type createRecordRequest struct {
	Description string    `json:"description" binding:"required"`
	Amount      float64   `json:"amount" binding:"gte=0"`
	Date        time.Time `json:"date"`
}

// CreateSaleHandler records a sale (income) for the authenticated user.
func (h *FinanceHandler) CreateSaleHandler(c *gin.Context) {
	h.createRecord(c, models.CategoryIncome)
}

// CreateExpenseHandler records an expense for the authenticated user.
func (h *FinanceHandler) CreateExpenseHandler(c *gin.Context) {
	h.createRecord(c, models.CategoryExpense)
}

func (h *FinanceHandler) createRecord(c *gin.Context, category string) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid record request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record := models.FinancialRecord{
		UserID:      userID.(string),
		Category:    category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}

	id, err := h.Repo.Create(c.Request.Context(), record)
	if err != nil {
		logger.Error("Failed to create financial record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListSalesHandler returns the authenticated user's sales, newest first.
func (h *FinanceHandler) ListSalesHandler(c *gin.Context) {
	h.listRecords(c, models.CategoryIncome)
}

// ListExpensesHandler returns the authenticated user's expenses, newest first.
func (h *FinanceHandler) ListExpensesHandler(c *gin.Context) {
	h.listRecords(c, models.CategoryExpense)
}

func (h *FinanceHandler) listRecords(c *gin.Context, category string) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	records, err := h.Repo.GetByUserID(c.Request.Context(), userID.(string), category, limit)
	if err != nil {
		logger.Error("Failed to list financial records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve records"})
		return
	}

	c.JSON(http.StatusOK, records)
}
