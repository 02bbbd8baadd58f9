package service

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/japb1998/alert-tower/internal/database"
	"github.com/japb1998/alert-tower/internal/dto"
	"github.com/japb1998/alert-tower/internal/message"
	"github.com/japb1998/alert-tower/pkg/email"
)

// EmailSender delivers one rendered email.
type EmailSender interface {
	Send(ctx context.Context, e *email.Email) error
}

// SurveyService renders and dispatches the two survey emails and owns the
// submission flow. Email is advisory within that flow: failures are logged,
// never surfaced to the submitter.
type SurveyService struct {
	sender        EmailSender
	store         database.SurveyRepository
	operatorEmail string
	from          string
}

func NewSurveyService(sender EmailSender, store database.SurveyRepository, operatorEmail, from string) *SurveyService {
	return &SurveyService{
		sender:        sender,
		store:         store,
		operatorEmail: operatorEmail,
		from:          from,
	}
}

// Notify renders and sends the operator summary and the submitter
// confirmation, each as its own provider call.
func (s *SurveyService) Notify(ctx context.Context, in *dto.SurveyInput) error {
	if in.Email == "" {
		return fmt.Errorf("submitter email is required")
	}
	if s.sender == nil {
		return email.ErrNotConfigured
	}

	clean := sanitizeSurvey(in)
	operatorHtml, err := renderSurveyTemplate(operatorTmpl, clean)
	if err != nil {
		return err
	}
	submitterHtml, err := renderSurveyTemplate(submitterTmpl, clean)
	if err != nil {
		return err
	}

	var sendErr error
	if err := s.sender.Send(ctx, &email.Email{
		Subject: "New survey response: " + in.Email,
		Html:    operatorHtml,
		From:    s.from,
		To:      []string{s.operatorEmail},
	}); err != nil {
		surveyLogger.Error("operator email failed", slog.String("error", err.Error()))
		sendErr = err
	}

	if err := s.sender.Send(ctx, &email.Email{
		Subject: "Thanks for helping us build StockPilot",
		Html:    submitterHtml,
		From:    s.from,
		To:      []string{in.Email},
	}); err != nil {
		surveyLogger.Error("submitter email failed", slog.String("error", err.Error()))
		if sendErr == nil {
			sendErr = err
		}
	}

	if sendErr != nil {
		return fmt.Errorf("failed to send survey notification: %w", sendErr)
	}

	surveyLogger.Info("survey notifications sent", slog.String("submitter", in.Email))
	return nil
}

// Submit persists the response and then notifies best effort. A notification
// failure never fails the submission.
func (s *SurveyService) Submit(ctx context.Context, in *dto.SurveyInput) error {
	rec := &database.SurveyRecord{
		Id:        uuid.NewString(),
		Email:     in.Email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Response:  *in,
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("failed to save survey response: %w", err)
	}

	if err := s.Notify(ctx, in); err != nil {
		surveyLogger.Warn("survey saved but notification failed",
			slog.String("id", rec.Id),
			slog.String("error", err.Error()))
	}
	return nil
}

// sanitizeSurvey caps every free-text field before interpolation, the same
// bound the message engine applies. The submitter address is left alone, it
// doubles as the delivery target.
func sanitizeSurvey(in *dto.SurveyInput) *dto.SurveyInput {
	out := *in
	out.Name = message.Sanitize(in.Name)
	out.Phone = message.Sanitize(in.Phone)
	out.BusinessType = message.Sanitize(in.BusinessType)
	out.EmployeeCount = message.Sanitize(in.EmployeeCount)
	out.Location = message.Sanitize(in.Location)
	out.CurrentMethod = message.Sanitize(in.CurrentMethod)
	out.OtherChallenge = message.Sanitize(in.OtherChallenge)
	out.BudgetRange = message.Sanitize(in.BudgetRange)
	out.LaunchInterest = message.Sanitize(in.LaunchInterest)
	out.Comments = message.Sanitize(in.Comments)
	out.Challenges = sanitizeAll(in.Challenges)
	out.Features = sanitizeAll(in.Features)
	return &out
}

func sanitizeAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = message.Sanitize(s)
	}
	return out
}

func renderSurveyTemplate(t *template.Template, in *dto.SurveyInput) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, in); err != nil {
		return "", fmt.Errorf("failed to render survey email: %w", err)
	}
	return b.String(), nil
}

var operatorTmpl = template.Must(template.New("operator").Parse(`<html>
<body>
<h2>New market research submission</h2>
<table border="1" cellpadding="6">
<tr><td>Name</td><td>{{.Name}}</td></tr>
<tr><td>Email</td><td>{{.Email}}</td></tr>
<tr><td>Phone</td><td>{{.Phone}}</td></tr>
<tr><td>Business type</td><td>{{.BusinessType}}</td></tr>
<tr><td>Employee count</td><td>{{.EmployeeCount}}</td></tr>
<tr><td>Location</td><td>{{.Location}}</td></tr>
<tr><td>Current method</td><td>{{.CurrentMethod}}</td></tr>
<tr><td>Challenges</td><td>{{range .Challenges}}{{.}}<br>{{end}}</td></tr>
<tr><td>Other challenge</td><td>{{.OtherChallenge}}</td></tr>
<tr><td>Wanted features</td><td>{{range .Features}}{{.}}<br>{{end}}</td></tr>
<tr><td>Budget range</td><td>{{.BudgetRange}}</td></tr>
<tr><td>Launch interest</td><td>{{.LaunchInterest}}</td></tr>
<tr><td>Comments</td><td>{{.Comments}}</td></tr>
</table>
</body>
</html>`))

var submitterTmpl = template.Must(template.New("submitter").Parse(`<html>
<body>
<h2>Thank you{{if .Name}}, {{.Name}}{{end}}!</h2>
<p>Your response has been recorded. As an early supporter you get:</p>
<ul>
<li>3 months of StockPilot Premium, free at launch</li>
<li>Early access before the public release</li>
<li>Priority onboarding for your team</li>
</ul>
<p>Questions? Reach us at support@stockpilot.ng or on WhatsApp at +234 801 234 5678.</p>
</body>
</html>`))
