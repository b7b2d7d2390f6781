package api

import (
	"errors"
	"net/http"

	resdto "labforge/internal/handler/dto/response"
	"labforge/internal/handler/httperr"
	"labforge/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Stripe webhook
// @Description Receive and reconcile checkout session events from Stripe
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	// The signature covers the exact bytes on the wire, so the body must be
	// read raw before any decoding.
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read request body", nil)
		return
	}

	result, err := h.cmds.ProcessDelivery(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSignature):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		case errors.Is(err, commands.ErrMissingSessionID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Event has no session id", nil)
		default:
			// 5xx tells the provider to redeliver.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookResult(result))
}
