package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/alert-tower/internal/database"
	"github.com/japb1998/alert-tower/internal/service"
	"github.com/japb1998/alert-tower/pkg/email"
)

type mockMailer struct {
	calls int
	err   error
}

func (m *mockMailer) Send(ctx context.Context, e *email.Email) error {
	m.calls++
	return m.err
}

func surveyRouter(t *testing.T, mailer service.EmailSender, store database.SurveyRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := surveyService
	surveyService = service.NewSurveyService(mailer, store, "ops@stockpilot.ng", "no-reply@stockpilot.ng")
	t.Cleanup(func() { surveyService = prev })

	r := gin.New()
	r.POST("/send-survey-notification", SendSurveyNotification)
	r.POST("/survey", SubmitSurvey)
	return r
}

func TestSendSurveyNotificationSuccess(t *testing.T) {
	mailer := &mockMailer{}
	r := surveyRouter(t, mailer, database.NewMemorySurveyRepo())

	w := postJSON(r, "/send-survey-notification", `{"surveyData": {"email": "ada@example.com", "name": "Ada"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if mailer.calls != 2 {
		t.Errorf("expected 2 provider calls got %d", mailer.calls)
	}
}

func TestSendSurveyNotificationMissingEmail(t *testing.T) {
	mailer := &mockMailer{}
	r := surveyRouter(t, mailer, database.NewMemorySurveyRepo())

	w := postJSON(r, "/send-survey-notification", `{"surveyData": {"name": "Ada"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if mailer.calls != 0 {
		t.Errorf("expected zero provider calls got %d", mailer.calls)
	}
}

func TestSendSurveyNotificationProviderFailure(t *testing.T) {
	mailer := &mockMailer{err: errors.New("mailgun 500")}
	r := surveyRouter(t, mailer, database.NewMemorySurveyRepo())

	w := postJSON(r, "/send-survey-notification", `{"surveyData": {"email": "ada@example.com"}}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}
}

func TestSubmitSurveySucceedsDespiteEmailFailure(t *testing.T) {
	mailer := &mockMailer{err: errors.New("mailgun down")}
	store := database.NewMemorySurveyRepo()
	r := surveyRouter(t, mailer, store)

	w := postJSON(r, "/survey", `{"email": "ada@example.com", "businessType": "pharmacy"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("submitter must see success, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
	if len(store.Records()) != 1 {
		t.Fatalf("expected the response to be persisted, got %d records", len(store.Records()))
	}
}
