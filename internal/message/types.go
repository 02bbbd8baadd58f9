package message

import (
	"errors"
	"fmt"
)

var ErrUnknownAlertType = errors.New("unknown alert type")

// AlertType is the closed set of outbound alert categories. The zero value is
// invalid on purpose so an Alert can only be built through ParseAlertType.
type AlertType int

const (
	typeInvalid AlertType = iota
	TypeLowStock
	TypeExpiryWarning
	TypeWeeklySummary
)

func (t AlertType) String() string {
	switch t {
	case TypeLowStock:
		return "low_stock"
	case TypeExpiryWarning:
		return "expiry_warning"
	case TypeWeeklySummary:
		return "weekly_summary"
	default:
		return "invalid"
	}
}

// ParseAlertType maps the wire tag to an AlertType. Anything outside the
// closed set is an error, never a default.
func ParseAlertType(s string) (AlertType, error) {
	switch s {
	case "low_stock":
		return TypeLowStock, nil
	case "expiry_warning":
		return TypeExpiryWarning, nil
	case "weekly_summary":
		return TypeWeeklySummary, nil
	default:
		return typeInvalid, fmt.Errorf("%w: '%s'", ErrUnknownAlertType, s)
	}
}

// Item is one inventory entry inside an alert. Optional fields are pointers so
// a missing value can be told apart from zero.
type Item struct {
	Name            string
	Quantity        *int
	ReorderLevel    *int
	ExpiryDate      string
	DaysUntilExpiry *int
}

// Summary carries the aggregates for a weekly summary alert.
type Summary struct {
	TotalItems     int
	TotalValue     float64
	StockMovements int
}

// Alert is the unit of work handed to Render.
type Alert struct {
	Type    AlertType
	Items   []Item
	Summary *Summary
}

// NewAlert builds an Alert from the wire tag, rejecting unknown types at
// construction time.
func NewAlert(alertType string, items []Item, summary *Summary) (*Alert, error) {
	t, err := ParseAlertType(alertType)
	if err != nil {
		return nil, err
	}
	return &Alert{
		Type:    t,
		Items:   items,
		Summary: summary,
	}, nil
}
