package models

import "time"

// Record categories.
const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

// ValidCategory reports whether c names a known record category.
func ValidCategory(c string) bool {
	return c == CategoryIncome || c == CategoryExpense
}

// FinancialRecord is a single sale or expense entry owned by a user.
// Sales carry the income category, expenses the expense category.
type FinancialRecord struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"userId" bson:"userId"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	Amount      float64   `json:"amount" bson:"amount"`
	Date        time.Time `json:"date" bson:"date"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
