package alerts

import (
	"strings"
	"testing"
)

func TestCurrencyFormatter_KeepsValueExact(t *testing.T) {
	formatter, err := NewCurrencyFormatter("USD")
	if err != nil {
		t.Fatalf("NewCurrencyFormatter() error = %v", err)
	}

	got := formatter.Format(700)
	if !strings.Contains(got, "700.00") {
		t.Errorf("Format(700) = %q, want it to contain 700.00", got)
	}
}

func TestNewCurrencyFormatter_RejectsUnknownCode(t *testing.T) {
	if _, err := NewCurrencyFormatter("NOPE"); err == nil {
		t.Fatal("NewCurrencyFormatter(NOPE) error = nil, want error")
	}
}
