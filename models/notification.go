package models

import "time"

// Notification types.
const (
	NotificationSalesAlert    = "sales_alert"
	NotificationExpenseAlert  = "expense_alert"
	NotificationFinancialTip  = "financial_tip"
	NotificationSystemMessage = "system_message"
	NotificationOther         = "other"
)

// Notification is an alert produced for a user. Timestamp is set once at
// creation; Read flips to true at most once via the mark-read endpoint.
type Notification struct {
	ID      string `json:"id" bson:"id"`
	UserID  string `json:"userId" bson:"userId"`
	Type    string `json:"type" bson:"type"`
	Title   string `json:"title" bson:"title"`
	Message string `json:"message" bson:"message"`
	Link    string `json:"link,omitempty" bson:"link,omitempty"`
	Read    bool   `json:"isRead" bson:"read"`

	// DedupKey is the dedup-window bucket the notification was created in.
	// Together with userId, type and title it backs the unique index that
	// keeps racing evaluation passes from double-creating an alert.
	DedupKey string `json:"-" bson:"dedupKey,omitempty"`

	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
