package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/japb1998/alert-tower/internal/dto"
	"github.com/japb1998/alert-tower/internal/service"
)

// SendWhatsappAlert dispatches one inventory alert over whatsapp.
// @Summary send a whatsapp alert.
// @Schemes
// @Description validates the alert payload, renders the message and relays it to the whatsapp provider. One attempt, no retries.
// @Tags ALERTS
// @Param Authorization header string true "Bearer token"
// @Param request body dto.AlertInput true "body"
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /send-whatsapp-alert [post]
func SendWhatsappAlert(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "send-whatsapp-alert-controller")
	defer span.End()
	defer c.Request.Body.Close()

	var input dto.AlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": validationErrors(ve),
			})
			return
		}
		alertLogger.Warn("malformed alert body", "error", err.Error())
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	if err := alertService.Send(ctx, &input); err != nil {
		switch {
		case service.IsValidationErr(err):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrProviderNotConfigured):
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "whatsapp alerts are not configured",
			})
		default:
			// provider detail stays server-side
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "failed to send alert",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
