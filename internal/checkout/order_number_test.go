package checkout

import (
	"regexp"
	"testing"
	"time"
)

func TestNewOrderNumberFormat(t *testing.T) {
	at := time.Date(2025, 8, 30, 14, 52, 7, 0, time.UTC)
	number := NewOrderNumber(at)

	pattern := regexp.MustCompile(`^ORD20250830145207[0-9A-F]{4}$`)
	if !pattern.MatchString(number) {
		t.Fatalf("unexpected order number %q", number)
	}
}

func TestNewOrderNumberSuffixVaries(t *testing.T) {
	at := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		seen[NewOrderNumber(at)] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected random suffix to vary across calls")
	}
}
