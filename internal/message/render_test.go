package message

import (
	"fmt"
	"strings"
	"testing"
)

func intPtr(i int) *int {
	return &i
}

func TestParseAlertTypeRejectsUnknown(t *testing.T) {
	for _, tag := range []string{"", "price_drop", "LOW_STOCK", "low-stock"} {
		if _, err := ParseAlertType(tag); err == nil {
			t.Errorf("expected error for tag '%s'", tag)
		}
	}

	if _, err := ParseAlertType("low_stock"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestRenderTruncatesItems(t *testing.T) {
	items := make([]Item, 37)
	for i := range items {
		items[i] = Item{
			Name:         fmt.Sprintf("item-%d", i),
			Quantity:     intPtr(2),
			ReorderLevel: intPtr(10),
		}
	}

	for _, alertType := range []string{"low_stock", "weekly_summary"} {
		a, err := NewAlert(alertType, items, &Summary{TotalItems: 37})
		if err != nil {
			t.Fatal(err)
		}
		body, err := Render(a)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Count(body, "- item-"); got != 20 {
			t.Errorf("%s: expected 20 item lines got %d", alertType, got)
		}
	}
}

func TestExpiryMarkers(t *testing.T) {
	tt := []struct {
		days   int
		marker string
	}{
		{-1, "EXPIRED"},
		{0, "EXPIRED"},
		{1, "CRITICAL"},
		{2, "CRITICAL"},
		{3, "CRITICAL"},
		{4, "EXPIRING"},
		{10, "EXPIRING"},
	}

	for _, tc := range tt {
		if got := ExpiryMarker(tc.days); got != tc.marker {
			t.Errorf("days=%d: expected %s got %s", tc.days, tc.marker, got)
		}
	}
}

func TestRenderExpiryWarning(t *testing.T) {
	a, err := NewAlert("expiry_warning", []Item{
		{Name: "Milk", ExpiryDate: "2026-01-05", DaysUntilExpiry: intPtr(2)},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	body, err := Render(a)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body, "Milk") {
		t.Errorf("body missing item name: %s", body)
	}
	if !strings.Contains(body, "[CRITICAL]") {
		t.Errorf("body missing critical marker: %s", body)
	}
}

func TestRenderWeeklySummaryOmitsEmptySection(t *testing.T) {
	a, err := NewAlert("weekly_summary", nil, &Summary{TotalItems: 120, TotalValue: 45000.50, StockMovements: 32})
	if err != nil {
		t.Fatal(err)
	}

	body, err := Render(a)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(body, "needing attention") {
		t.Errorf("empty items should omit the attention section: %s", body)
	}
	if !strings.Contains(body, "Total items: 120") {
		t.Errorf("body missing aggregates: %s", body)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("<b>Cement</b>"); got != "bCement/b" {
		t.Errorf("angle brackets should be stripped, got '%s'", got)
	}

	long := strings.Repeat("a", 600)
	if got := Sanitize(long); len(got) != 500 {
		t.Errorf("expected 500 chars got %d", len(got))
	}
}

func TestRenderRejectsInvalidType(t *testing.T) {
	if _, err := Render(&Alert{}); err == nil {
		t.Fatal("zero-value alert should not render")
	}
	if _, err := Render(nil); err == nil {
		t.Fatal("nil alert should not render")
	}
}
