package controller

import (
	"github.com/go-playground/validator/v10"
)

// Error Message for Validation Errors
type ErrMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "should be a valid email address"
	case "e164":
		return "should meet e164 format"
	case "min":
		return "should have min value of " + fe.Param()
	case "max":
		return "should have max value of " + fe.Param()
	}

	return "Unknown error"
}

func validationErrors(ve validator.ValidationErrors) []ErrMsg {
	out := make([]ErrMsg, len(ve))
	for i, fe := range ve {
		out[i] = ErrMsg{
			Message: getErrorMsg(fe),
			Field:   fe.Field(),
		}
	}
	return out
}
