package alerts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ledgerly/models"
)

// Comparator names the condition a rule applies to its aggregate.
type Comparator string

const (
	CompareGreater Comparator = "gt"
	CompareLess    Comparator = "lt"
	CompareEqual   Comparator = "eq"
	// CompareBetween is strict on both ends: lower < total < threshold.
	CompareBetween Comparator = "between"
)

// Window is the start of an aggregation interval relative to evaluation time.
// Either a trailing number of days or the start of the current day.
type Window struct {
	Days           int
	FromStartOfDay bool
}

// Start resolves the window's start for a pass running at now. The interval
// is always [Start(now), now).
func (w Window) Start(now time.Time) time.Time {
	if w.FromStartOfDay {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}
	return now.AddDate(0, 0, -w.Days)
}

// Rule maps one aggregate condition to a notification template. Rules are
// configuration: adding one is a data change, not a code change.
type Rule struct {
	Name       string
	Type       string
	Category   string
	Window     Window
	Comparator Comparator
	// Lower is only consulted by CompareBetween.
	Lower     float64
	Threshold float64
	Title     string
	// Message may carry one %s verb for the currency-formatted total.
	Message string
	Link    string
	// DedupWindow is the trailing span within which an existing unread
	// notification with the same type and title suppresses a new one.
	DedupWindow Window
}

// Evaluate applies the rule's comparator to an aggregate total.
func (r Rule) Evaluate(total float64) bool {
	switch r.Comparator {
	case CompareGreater:
		return total > r.Threshold
	case CompareLess:
		return total < r.Threshold
	case CompareEqual:
		return total == r.Threshold
	case CompareBetween:
		return total > r.Lower && total < r.Threshold
	default:
		return false
	}
}

// RenderMessage fills the rule's message template with the formatted total.
func (r Rule) RenderMessage(f *CurrencyFormatter, total float64) string {
	if !strings.Contains(r.Message, "%s") {
		return r.Message
	}
	return fmt.Sprintf(r.Message, f.Format(total))
}

// DedupKey buckets the pass time by the rule's dedup window. The unique
// index over (userId, type, title, dedupKey) rejects a racing duplicate
// within the same bucket.
func (r Rule) DedupKey(now time.Time) string {
	if r.DedupWindow.FromStartOfDay {
		return now.Format("2006-01-02")
	}
	span := int64(r.DedupWindow.Days) * 86400
	if span <= 0 {
		span = 86400
	}
	return strconv.FormatInt(now.UTC().Unix()/span, 10)
}

// DefaultRules builds the fixed rule table. The low-sales and no-sales
// predicates are disjoint for every total, so at most one of them fires per
// pass; a total exactly at the threshold fires neither.
func DefaultRules(lowSalesThreshold, highExpenseThreshold float64, salesWindowDays int) []Rule {
	salesWindow := Window{Days: salesWindowDays}
	today := Window{FromStartOfDay: true}

	return []Rule{
		{
			Name:       "low_sales",
			Type:       models.NotificationSalesAlert,
			Category:   models.CategoryIncome,
			Window:     salesWindow,
			Comparator: CompareBetween,
			Lower:      0,
			Threshold:  lowSalesThreshold,
			Title:      "Low Sales Alert",
			Message: fmt.Sprintf(
				"Your sales over the last %d days total %%s. Consider running a promotion to boost revenue.",
				salesWindowDays),
			Link:        "/dashboard/sales",
			DedupWindow: salesWindow,
		},
		{
			Name:       "no_sales",
			Type:       models.NotificationSalesAlert,
			Category:   models.CategoryIncome,
			Window:     salesWindow,
			Comparator: CompareEqual,
			Threshold:  0,
			Title:      "No Sales Recorded",
			Message: fmt.Sprintf(
				"You have no sales recorded in the last %d days. Time to reach out to your customers!",
				salesWindowDays),
			Link:        "/dashboard/sales",
			DedupWindow: salesWindow,
		},
		{
			Name:        "high_daily_expenses",
			Type:        models.NotificationExpenseAlert,
			Category:    models.CategoryExpense,
			Window:      today,
			Comparator:  CompareGreater,
			Threshold:   highExpenseThreshold,
			Title:       "High Daily Expenses",
			Message:     "You have spent %s today, which is above your daily budget. Review your expenses.",
			Link:        "/dashboard/expenses",
			DedupWindow: today,
		},
	}
}
