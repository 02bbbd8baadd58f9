package whatsapp

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNotConfigured = errors.New("whatsapp provider credentials are not configured")

// Config holds the provider credentials, read once at startup.
type Config struct {
	AccountSid string `json:"accountSid"`
	AuthToken  string `json:"authToken"`
	From       string `json:"from"` // sender address, e.g. +14155238886
}

// Msg is one outbound whatsapp message.
type Msg struct {
	To   string `validate:"required,e164"`
	Body string `validate:"required"`
}

// messageAPI is the slice of the Twilio REST surface the service depends on.
type messageAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type Service struct {
	api      messageAPI
	from     string
	validate *validator.Validate
}

// NewService builds a Service from provider credentials. Incomplete
// credentials return ErrNotConfigured so the caller can tell operational
// misconfiguration apart from a provider failure.
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil || cfg.AccountSid == "" || cfg.AuthToken == "" || cfg.From == "" {
		return nil, ErrNotConfigured
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSid,
		Password: cfg.AuthToken,
	})
	return newService(client.Api, cfg.From), nil
}

// NewServiceWithAPI wires an explicit message API, used by tests.
func NewServiceWithAPI(api messageAPI, from string) *Service {
	return newService(api, from)
}

func newService(api messageAPI, from string) *Service {
	return &Service{
		api:      api,
		from:     from,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Send delivers a single message. One attempt, no retries.
func (s *Service) Send(msg *Msg) error {
	if err := s.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid whatsapp message: %w", err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(fmt.Sprintf("whatsapp:%s", msg.To))
	params.SetFrom(fmt.Sprintf("whatsapp:%s", s.from))
	params.SetBody(msg.Body)

	if _, err := s.api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	return nil
}
