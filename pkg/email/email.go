package email

import (
	"context"
	"errors"

	"github.com/mailgun/mailgun-go/v4"
)

var (
	ErrEmptyEmail    = errors.New("empty email not allowed")
	ErrNotConfigured = errors.New("email provider credentials are not configured")
)

// Email is one outbound HTML email.
type Email struct {
	Subject string
	Html    string
	From    string
	To      []string
}

type Service struct {
	client mailgun.Mailgun
}

// NewService builds a Service from the provider domain and API key.
func NewService(domain, apiKey string) (*Service, error) {
	if domain == "" || apiKey == "" {
		return nil, ErrNotConfigured
	}
	return &Service{client: mailgun.NewMailgun(domain, apiKey)}, nil
}

// NewServiceWithClient wires an explicit mailgun client, used by tests.
func NewServiceWithClient(client mailgun.Mailgun) *Service {
	return &Service{client: client}
}

// Send delivers a single email. One attempt, no retries.
func (s *Service) Send(ctx context.Context, e *Email) error {
	if e == nil || e.Html == "" || len(e.To) == 0 {
		return ErrEmptyEmail
	}
	m := s.client.NewMessage(e.From, e.Subject, "", e.To...)
	m.SetHtml(e.Html)
	_, _, err := s.client.Send(ctx, m)
	return err
}
