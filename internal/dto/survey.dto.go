package dto

// SurveyInput is one market-research submission. Only the submitter email is
// required, everything else is whatever the form collected.
type SurveyInput struct {
	Name           string   `json:"name"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"omitempty"`
	BusinessType   string   `json:"businessType"`
	EmployeeCount  string   `json:"employeeCount"`
	Location       string   `json:"location"`
	CurrentMethod  string   `json:"currentMethod"`
	Challenges     []string `json:"challenges"`
	OtherChallenge string   `json:"otherChallenge"`
	Features       []string `json:"features"`
	BudgetRange    string   `json:"budgetRange"`
	LaunchInterest string   `json:"launchInterest"`
	Comments       string   `json:"comments"`
}

// SurveyNotificationInput is the request body for the survey notification
// endpoint.
type SurveyNotificationInput struct {
	SurveyData SurveyInput `json:"surveyData" binding:"required"`
}
