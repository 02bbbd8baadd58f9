package dto

// AlertItem is one inventory entry in an alert request. Which optional fields
// are present depends on the alert type.
type AlertItem struct {
	Name            string `json:"name" binding:"required"`
	Quantity        *int   `json:"quantity,omitempty"`
	ReorderLevel    *int   `json:"reorderLevel,omitempty"`
	ExpiryDate      string `json:"expiryDate,omitempty"`
	DaysUntilExpiry *int   `json:"daysUntilExpiry,omitempty"`
}

// AlertSummary carries weekly summary aggregates.
type AlertSummary struct {
	TotalItems     int     `json:"totalItems"`
	TotalValue     float64 `json:"totalValue"`
	StockMovements int     `json:"stockMovements"`
}

// AlertInput is the request body for the whatsapp alert endpoint.
type AlertInput struct {
	To        string        `json:"to" binding:"required"`
	AlertType string        `json:"alertType" binding:"required"`
	Items     []AlertItem   `json:"items" binding:"omitempty,dive"`
	Summary   *AlertSummary `json:"summary,omitempty"`
}
