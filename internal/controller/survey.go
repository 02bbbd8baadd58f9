package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/japb1998/alert-tower/internal/dto"
)

// SendSurveyNotification renders and sends the survey emails directly.
// @Summary send the survey notification emails.
// @Schemes
// @Description renders the operator summary and the submitter confirmation from one survey payload and sends both through the email provider.
// @Tags SURVEY
// @Param request body dto.SurveyNotificationInput true "body"
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /send-survey-notification [post]
func SendSurveyNotification(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "send-survey-notification-controller")
	defer span.End()
	defer c.Request.Body.Close()

	var input dto.SurveyNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": validationErrors(ve),
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	if err := surveyService.Notify(ctx, &input.SurveyData); err != nil {
		surveyLogger.Error("survey notification failed", "error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to send survey notification",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitSurvey persists a survey response and notifies best effort.
// @Summary submit a survey response.
// @Schemes
// @Description saves the response and then sends the notification emails; an email failure is logged and never surfaced to the submitter.
// @Tags SURVEY
// @Param request body dto.SurveyInput true "body"
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /survey [post]
func SubmitSurvey(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "submit-survey-controller")
	defer span.End()
	defer c.Request.Body.Close()

	var input dto.SurveyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": validationErrors(ve),
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	if err := surveyService.Submit(ctx, &input); err != nil {
		surveyLogger.Error("survey submission failed", "error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to save survey response",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
