package api

import (
	"errors"
	"io"
	"net/http"

	"legalbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "Stripe-Signature"

type WebhookHandler struct {
	settlement commands.SettlementCommands
}

func NewWebhookHandler(settlement commands.SettlementCommands) *WebhookHandler {
	return &WebhookHandler{settlement: settlement}
}

// @Summary Payment webhook
// @Description Receive settlement events from the payment provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Event signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	// Signature verification needs the exact raw bytes, so no binding here.
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	err = h.settlement.HandleWebhook(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		if errors.Is(err, commands.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid webhook signature",
			})
			return
		}
		// Non-2xx makes the provider retry the event later.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
