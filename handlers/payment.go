package handlers

import (
	"io"
	"net/http"

	"inkstudio/services/payment"
	"inkstudio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var PaymentService *payment.StripeService

// StripeWebhook receives deposit payment events from Stripe. Signature
// verification happens inside the payment service.
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		c.String(http.StatusBadRequest, "failed to read body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.String(http.StatusBadRequest, "missing signature")
		return
	}

	if err := PaymentService.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.GetLogger().Error("stripe webhook failed", zap.Error(err))
		c.String(http.StatusBadRequest, "webhook error")
		return
	}
	c.String(http.StatusOK, "OK")
}
