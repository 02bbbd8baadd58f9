package message

import (
	"fmt"
	"strings"
)

const (
	// maxItems bounds the size of the body handed to the provider.
	maxItems = 20
	// maxFieldLen caps every free-text field before interpolation.
	maxFieldLen = 500

	dashboardURL = "https://app.stockpilot.ng/inventory"

	markerExpired  = "EXPIRED"
	markerCritical = "CRITICAL"
	markerNotice   = "EXPIRING"
)

// Render produces the channel-ready plain-text body for an alert.
func Render(a *Alert) (string, error) {
	if a == nil {
		return "", ErrUnknownAlertType
	}

	items := a.Items
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	switch a.Type {
	case TypeLowStock:
		return renderLowStock(items), nil
	case TypeExpiryWarning:
		return renderExpiry(items), nil
	case TypeWeeklySummary:
		return renderWeeklySummary(items, a.Summary), nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownAlertType, a.Type)
	}
}

func renderLowStock(items []Item) string {
	var b strings.Builder
	b.WriteString("Low Stock Alert\n\n")
	for _, it := range items {
		b.WriteString(lowStockLine(&it))
		b.WriteByte('\n')
	}
	b.WriteString("\nRestock soon to avoid running out: " + dashboardURL)
	return b.String()
}

func renderExpiry(items []Item) string {
	var b strings.Builder
	b.WriteString("Expiry Warning\n\n")
	for _, it := range items {
		days := 0
		if it.DaysUntilExpiry != nil {
			days = *it.DaysUntilExpiry
		}
		b.WriteString(fmt.Sprintf("- [%s] %s", ExpiryMarker(days), Sanitize(it.Name)))
		if it.ExpiryDate != "" {
			b.WriteString(fmt.Sprintf(", expires %s", Sanitize(it.ExpiryDate)))
		}
		if days > 0 {
			b.WriteString(fmt.Sprintf(" (%d days left)", days))
		}
		b.WriteByte('\n')
	}
	b.WriteString("\nReview expiring stock: " + dashboardURL)
	return b.String()
}

func renderWeeklySummary(items []Item, s *Summary) string {
	var b strings.Builder
	b.WriteString("Weekly Inventory Summary\n\n")

	var totalItems, movements int
	var totalValue float64
	if s != nil {
		totalItems = s.TotalItems
		totalValue = s.TotalValue
		movements = s.StockMovements
	}
	b.WriteString(fmt.Sprintf("Total items: %d\n", totalItems))
	b.WriteString(fmt.Sprintf("Total value: NGN %.2f\n", totalValue))
	b.WriteString(fmt.Sprintf("Stock movements: %d\n", movements))

	if len(items) > 0 {
		b.WriteString("\nItems needing attention:\n")
		for _, it := range items {
			b.WriteString(lowStockLine(&it))
			b.WriteByte('\n')
		}
	}
	b.WriteString("\nFull report: " + dashboardURL)
	return b.String()
}

func lowStockLine(it *Item) string {
	qty, reorder := 0, 0
	if it.Quantity != nil {
		qty = *it.Quantity
	}
	if it.ReorderLevel != nil {
		reorder = *it.ReorderLevel
	}
	return fmt.Sprintf("- %s: %d left (reorder at %d)", Sanitize(it.Name), qty, reorder)
}

// ExpiryMarker returns the urgency marker for a whole-day countdown. The count
// is trusted as given, the engine never recomputes it from dates.
func ExpiryMarker(daysUntilExpiry int) string {
	switch {
	case daysUntilExpiry <= 0:
		return markerExpired
	case daysUntilExpiry <= 3:
		return markerCritical
	default:
		return markerNotice
	}
}

// Sanitize strips angle brackets out of free text and caps its length, keeping
// markup out of the rendered channels and the payload bounded.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	if r := []rune(s); len(r) > maxFieldLen {
		return string(r[:maxFieldLen])
	}
	return s
}
