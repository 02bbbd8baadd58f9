package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/japb1998/alert-tower/internal/dto"
	"github.com/japb1998/alert-tower/internal/message"
	"github.com/japb1998/alert-tower/pkg/whatsapp"
)

var (
	ErrMissingRecipient      = errors.New("recipient phone number is required")
	ErrInvalidPhone          = errors.New("recipient phone number must be in international format, e.g. +2348012345678")
	ErrProviderNotConfigured = errors.New("whatsapp provider is not configured")
	ErrProviderFailure       = errors.New("whatsapp provider rejected the message")
)

// leading +, non-zero first digit, 7 to 15 digits total
var phoneRe = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

// WhatsappSender delivers one rendered message.
type WhatsappSender interface {
	Send(msg *whatsapp.Msg) error
}

// AlertService validates, renders and dispatches whatsapp alerts. A nil
// sender means the provider credentials were absent at startup.
type AlertService struct {
	sender WhatsappSender
}

func NewAlertService(sender WhatsappSender) *AlertService {
	return &AlertService{sender: sender}
}

// Send runs the cheapest checks first: required fields, phone format, then
// provider configuration, then render, then the single provider call. The raw
// provider error is logged here and never returned to the caller.
func (s *AlertService) Send(ctx context.Context, input *dto.AlertInput) error {
	if input.To == "" {
		return ErrMissingRecipient
	}
	alert, err := message.NewAlert(input.AlertType, alertItems(input.Items), alertSummary(input.Summary))
	if err != nil {
		return fmt.Errorf("alertType: %w", err)
	}
	if !phoneRe.MatchString(input.To) {
		return ErrInvalidPhone
	}

	if s.sender == nil {
		return ErrProviderNotConfigured
	}

	body, err := message.Render(alert)
	if err != nil {
		return err
	}

	if err := s.sender.Send(&whatsapp.Msg{To: input.To, Body: body}); err != nil {
		alertLogger.Error("provider call failed",
			slog.String("alertType", input.AlertType),
			slog.String("error", err.Error()))
		return ErrProviderFailure
	}

	alertLogger.Info("whatsapp alert sent",
		slog.String("alertType", input.AlertType),
		slog.Int("items", len(input.Items)))
	return nil
}

// IsValidationErr reports whether the error maps to bad caller input.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrMissingRecipient) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, message.ErrUnknownAlertType)
}

func alertItems(in []dto.AlertItem) []message.Item {
	items := make([]message.Item, 0, len(in))
	for _, it := range in {
		items = append(items, message.Item{
			Name:            it.Name,
			Quantity:        it.Quantity,
			ReorderLevel:    it.ReorderLevel,
			ExpiryDate:      it.ExpiryDate,
			DaysUntilExpiry: it.DaysUntilExpiry,
		})
	}
	return items
}

func alertSummary(in *dto.AlertSummary) *message.Summary {
	if in == nil {
		return nil
	}
	return &message.Summary{
		TotalItems:     in.TotalItems,
		TotalValue:     in.TotalValue,
		StockMovements: in.StockMovements,
	}
}
