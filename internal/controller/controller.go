package controller

import (
	"log"
	"log/slog"
	"os"

	"github.com/japb1998/alert-tower/internal/database"
	"github.com/japb1998/alert-tower/internal/service"
	"github.com/japb1998/alert-tower/pkg/awssess"
	"github.com/japb1998/alert-tower/pkg/credentials"
	"github.com/japb1998/alert-tower/pkg/email"
	"github.com/japb1998/alert-tower/pkg/whatsapp"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	alertService  *service.AlertService
	surveyService *service.SurveyService
	tracer        trace.Tracer
)

func init() {
	if os.Getenv("STAGE") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading env vars: %s", err)
		}
	}

	alertService = service.NewAlertService(whatsappSender())
	surveyService = service.NewSurveyService(
		emailSender(),
		surveyStore(),
		os.Getenv("OPERATOR_EMAIL"),
		os.Getenv("EMAIL_FROM"),
	)

	tracer = otel.Tracer("github.com/japb1998/alert-tower/internal/controller")
}

// whatsappSender builds the Twilio-backed sender. Credentials come from the
// environment or, when TWILIO_SECRET_ID is set, from a Secrets Manager JSON
// secret. A nil sender is valid and maps to the config-error response.
func whatsappSender() service.WhatsappSender {
	cfg := &whatsapp.Config{
		AccountSid: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		From:       os.Getenv("TWILIO_WHATSAPP_FROM"),
	}

	if arn := os.Getenv("TWILIO_SECRET_ID"); arn != "" {
		cm := credentials.NewCredentialsManager(awssess.MustGetSession())
		if err := cm.GetJSONSecret(arn, cfg); err != nil {
			alertLogger.Error("failed to load whatsapp credentials from secret", slog.String("error", err.Error()))
		}
	}

	svc, err := whatsapp.NewService(cfg)
	if err != nil {
		alertLogger.Warn("whatsapp provider not configured, alert sends will fail with a config error")
		return nil
	}
	return svc
}

func emailSender() service.EmailSender {
	svc, err := email.NewService(os.Getenv("MAILGUN_DOMAIN"), os.Getenv("MAILGUN_API_KEY"))
	if err != nil {
		surveyLogger.Warn("email provider not configured, survey notifications will fail")
		return nil
	}
	return svc
}

func surveyStore() database.SurveyRepository {
	if table := os.Getenv("SURVEY_TABLE"); table != "" {
		return database.NewDynamoSurveyRepo(awssess.MustGetSession(), table)
	}
	surveyLogger.Warn("SURVEY_TABLE not set, using in-memory survey store")
	return database.NewMemorySurveyRepo()
}
