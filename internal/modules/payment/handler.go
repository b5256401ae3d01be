package payment

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/webhooks/stripe", h.HandleWebhook)
}

// HandleWebhook ingests raw Stripe deliveries. Any processing failure maps
// to 400 so Stripe keeps retrying; 200 acknowledges and stops redelivery.
func (h *Handler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.loggerf("level=error msg=webhook body read failed err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if sigHeader == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Stripe signature"})
		return
	}

	if err := h.service.HandleEvent(c.Request.Context(), payload, sigHeader); err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature", "details": err.Error()})
		case errors.Is(err, ErrSubmissionNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Submission not found", "details": err.Error()})
		default:
			h.loggerf("level=error msg=webhook processing failed err=%v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook processing failed", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
