package dto

// NotificationSettings is the per-user channel configuration supplied by the
// settings UI. The dispatch subsystem consumes it as given and does not
// re-validate ownership of the whatsapp number.
type NotificationSettings struct {
	LowStockAlerts  bool   `json:"lowStockAlerts"`
	ExpiryAlerts    bool   `json:"expiryAlerts"`
	WeeklySummary   bool   `json:"weeklySummary"`
	PushEnabled     bool   `json:"pushEnabled"`
	WhatsappEnabled bool   `json:"whatsappEnabled"`
	WhatsappNumber  string `json:"whatsappNumber" binding:"omitempty,e164"`
}
