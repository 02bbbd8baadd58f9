package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/japb1998/alert-tower/internal/database"
	"github.com/japb1998/alert-tower/internal/dto"
	"github.com/japb1998/alert-tower/pkg/email"
)

type mockEmailSender struct {
	calls int
	sent  []*email.Email
	err   error
}

func (m *mockEmailSender) Send(ctx context.Context, e *email.Email) error {
	m.calls++
	m.sent = append(m.sent, e)
	return m.err
}

func surveyInput() *dto.SurveyInput {
	return &dto.SurveyInput{
		Name:          "Ada Obi",
		Email:         "ada@example.com",
		Phone:         "+2348012345678",
		BusinessType:  "pharmacy",
		EmployeeCount: "1-5",
		Location:      "Lagos",
		Challenges:    []string{"expiry tracking", "stock counts"},
		BudgetRange:   "5000-15000",
	}
}

func TestNotifySendsOperatorAndSubmitterEmails(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewSurveyService(sender, database.NewMemorySurveyRepo(), "ops@stockpilot.ng", "no-reply@stockpilot.ng")

	if err := svc.Notify(context.Background(), surveyInput()); err != nil {
		t.Fatal(err)
	}
	if sender.calls != 2 {
		t.Fatalf("expected 2 provider calls got %d", sender.calls)
	}

	operator, submitter := sender.sent[0], sender.sent[1]
	if operator.To[0] != "ops@stockpilot.ng" {
		t.Errorf("operator email went to '%s'", operator.To[0])
	}
	for _, field := range []string{"Ada Obi", "ada@example.com", "pharmacy", "expiry tracking", "5000-15000"} {
		if !strings.Contains(operator.Html, field) {
			t.Errorf("operator email missing field '%s'", field)
		}
	}

	if submitter.To[0] != "ada@example.com" {
		t.Errorf("submitter email went to '%s'", submitter.To[0])
	}
	if !strings.Contains(submitter.Html, "StockPilot Premium") {
		t.Error("submitter email missing the reward list")
	}
}

func TestNotifyCapsFreeTextFields(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewSurveyService(sender, database.NewMemorySurveyRepo(), "ops@stockpilot.ng", "no-reply@stockpilot.ng")

	in := surveyInput()
	in.Comments = strings.Repeat("a", 10000)
	in.OtherChallenge = "<script>alert(1)</script>"
	in.Challenges = []string{strings.Repeat("b", 600)}

	if err := svc.Notify(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if sender.calls != 2 {
		t.Fatalf("expected 2 provider calls got %d", sender.calls)
	}

	operator := sender.sent[0]
	if strings.Contains(operator.Html, strings.Repeat("a", 501)) {
		t.Error("comments should be capped at 500 chars before interpolation")
	}
	if !strings.Contains(operator.Html, strings.Repeat("a", 500)) {
		t.Error("the capped comment prefix should still be rendered")
	}
	if strings.Contains(operator.Html, strings.Repeat("b", 501)) {
		t.Error("multi-select entries should be capped at 500 chars")
	}
	if strings.Contains(operator.Html, "&lt;script&gt;") {
		t.Error("angle brackets should be stripped before interpolation, not just escaped")
	}
	if !strings.Contains(operator.Html, "scriptalert(1)/script") {
		t.Errorf("stripped free text should survive rendering: %s", operator.Html)
	}
}

func TestNotifyRequiresSubmitterEmail(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewSurveyService(sender, database.NewMemorySurveyRepo(), "ops@stockpilot.ng", "no-reply@stockpilot.ng")

	in := surveyInput()
	in.Email = ""
	if err := svc.Notify(context.Background(), in); err == nil {
		t.Fatal("expected error for missing submitter email")
	}
	if sender.calls != 0 {
		t.Errorf("expected zero provider calls got %d", sender.calls)
	}
}

func TestNotifyReturnsProviderFailure(t *testing.T) {
	sender := &mockEmailSender{err: errors.New("mailgun 401")}
	svc := NewSurveyService(sender, database.NewMemorySurveyRepo(), "ops@stockpilot.ng", "no-reply@stockpilot.ng")

	if err := svc.Notify(context.Background(), surveyInput()); err == nil {
		t.Fatal("expected provider failure")
	}
	// both sends are still attempted, each is its own provider call
	if sender.calls != 2 {
		t.Errorf("expected 2 provider calls got %d", sender.calls)
	}
}

func TestSubmitSucceedsWhenEmailFails(t *testing.T) {
	sender := &mockEmailSender{err: errors.New("mailgun unavailable")}
	store := database.NewMemorySurveyRepo()
	svc := NewSurveyService(sender, store, "ops@stockpilot.ng", "no-reply@stockpilot.ng")

	if err := svc.Submit(context.Background(), surveyInput()); err != nil {
		t.Fatalf("email failure must not fail the submission: %s", err)
	}

	records := store.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 saved record got %d", len(records))
	}
	if records[0].Email != "ada@example.com" {
		t.Errorf("unexpected record email '%s'", records[0].Email)
	}
	if records[0].Id == "" || records[0].CreatedAt == "" {
		t.Error("record should carry id and timestamp")
	}
}

func TestSubmitFailsWhenStoreFails(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewSurveyService(sender, failingRepo{}, "ops@stockpilot.ng", "no-reply@stockpilot.ng")

	if err := svc.Submit(context.Background(), surveyInput()); err == nil {
		t.Fatal("expected persistence error")
	}
	if sender.calls != 0 {
		t.Errorf("no notification should go out for an unsaved response, got %d calls", sender.calls)
	}
}

type failingRepo struct{}

func (failingRepo) Save(ctx context.Context, rec *database.SurveyRecord) error {
	return errors.New("dynamo unavailable")
}
