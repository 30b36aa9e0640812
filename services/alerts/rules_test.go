package alerts

import (
	"testing"
	"time"
)

func findRule(t *testing.T, rules []Rule, name string) Rule {
	t.Helper()
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rule %q not found", name)
	return Rule{}
}

func TestRuleEvaluate_Boundaries(t *testing.T) {
	rules := DefaultRules(1000, 500, 7)
	lowSales := findRule(t, rules, "low_sales")
	noSales := findRule(t, rules, "no_sales")
	highExpenses := findRule(t, rules, "high_daily_expenses")

	tests := []struct {
		name  string
		rule  Rule
		total float64
		want  bool
	}{
		{"low sales just under threshold", lowSales, 999.99, true},
		{"low sales exactly at threshold", lowSales, 1000.00, false},
		{"low sales at zero", lowSales, 0, false},
		{"no sales at zero", noSales, 0, true},
		{"no sales with any revenue", noSales, 0.01, false},
		{"high expenses exactly at threshold", highExpenses, 500.00, false},
		{"high expenses just above threshold", highExpenses, 500.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Evaluate(tt.total); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestIncomeRules_MutuallyExclusive(t *testing.T) {
	rules := DefaultRules(1000, 500, 7)
	lowSales := findRule(t, rules, "low_sales")
	noSales := findRule(t, rules, "no_sales")

	for _, total := range []float64{0, 0.01, 1, 500, 999.99, 1000, 1000.01, 5000} {
		low := lowSales.Evaluate(total)
		no := noSales.Evaluate(total)
		if low && no {
			t.Errorf("total %v fires both income rules", total)
		}
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 45, 0, time.UTC)

	tests := []struct {
		name   string
		window Window
		want   time.Time
	}{
		{
			name:   "trailing seven days",
			window: Window{Days: 7},
			want:   time.Date(2025, 3, 3, 15, 30, 45, 0, time.UTC),
		},
		{
			name:   "start of today",
			window: Window{FromStartOfDay: true},
			want:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Start(now); !got.Equal(tt.want) {
				t.Errorf("Start() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleDedupKey(t *testing.T) {
	rules := DefaultRules(1000, 500, 7)
	highExpenses := findRule(t, rules, "high_daily_expenses")
	lowSales := findRule(t, rules, "low_sales")

	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	if highExpenses.DedupKey(morning) != "2025-03-10" {
		t.Errorf("daily dedup key = %q, want 2025-03-10", highExpenses.DedupKey(morning))
	}
	if highExpenses.DedupKey(morning) != highExpenses.DedupKey(evening) {
		t.Error("same-day passes must share a dedup bucket")
	}
	if highExpenses.DedupKey(morning) == highExpenses.DedupKey(nextDay) {
		t.Error("next-day passes must get a fresh dedup bucket")
	}

	if lowSales.DedupKey(morning) != lowSales.DedupKey(evening) {
		t.Error("7-day rule: same-day passes must share a dedup bucket")
	}
}
