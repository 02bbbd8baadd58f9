package service

import (
	"context"
	"log/slog"

	"github.com/japb1998/alert-tower/internal/dto"
	"github.com/japb1998/alert-tower/internal/message"
	"github.com/japb1998/alert-tower/internal/push"
)

// ChannelRouter fans one alert out to the channels a user's settings enable.
// The settings come from the settings UI and are trusted as given.
type ChannelRouter struct {
	push   *push.Dispatcher
	alerts *AlertService
}

func NewChannelRouter(p *push.Dispatcher, a *AlertService) *ChannelRouter {
	return &ChannelRouter{push: p, alerts: a}
}

// Route dispatches through every enabled channel. Push is silent by contract;
// the whatsapp result is the only one reported back.
func (r *ChannelRouter) Route(ctx context.Context, settings *dto.NotificationSettings, input *dto.AlertInput) error {
	t, err := message.ParseAlertType(input.AlertType)
	if err != nil {
		return err
	}
	if !typeEnabled(settings, t) {
		return nil
	}

	if settings.PushEnabled && r.push != nil {
		r.pushItems(t, input.Items)
	}

	if settings.WhatsappEnabled && settings.WhatsappNumber != "" {
		routed := *input
		routed.To = settings.WhatsappNumber
		return r.alerts.Send(ctx, &routed)
	}
	return nil
}

func (r *ChannelRouter) pushItems(t message.AlertType, items []dto.AlertItem) {
	for _, it := range items {
		switch t {
		case message.TypeExpiryWarning:
			days := 0
			if it.DaysUntilExpiry != nil {
				days = *it.DaysUntilExpiry
			}
			r.push.NotifyExpiry(it.Name, days)
		default:
			qty, reorder := 0, 0
			if it.Quantity != nil {
				qty = *it.Quantity
			}
			if it.ReorderLevel != nil {
				reorder = *it.ReorderLevel
			}
			r.push.NotifyLowStock(it.Name, qty, reorder)
		}
	}
	alertLogger.Info("push notifications dispatched", slog.Int("items", len(items)))
}

func typeEnabled(s *dto.NotificationSettings, t message.AlertType) bool {
	switch t {
	case message.TypeLowStock:
		return s.LowStockAlerts
	case message.TypeExpiryWarning:
		return s.ExpiryAlerts
	case message.TypeWeeklySummary:
		return s.WeeklySummary
	default:
		return false
	}
}
