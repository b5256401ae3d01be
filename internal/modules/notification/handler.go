package notification

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chatflows/internal/pkg/response"
)

// Handler exposes the internal diagnostics surface. Routes are registered
// behind the internal token middleware; they never face the public funnel.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(internal *gin.RouterGroup) {
	internal.GET("/health", h.Health)
	internal.POST("/test-email", h.TestEmail)
}

func (h *Handler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

type testEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// TestEmail sends a minimal delivery probe, bypassing templates and
// duplicate suppression.
func (h *Handler) TestEmail(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "A valid recipient address is required")
		return
	}

	res, err := h.service.SendTest(c.Request.Context(), strings.TrimSpace(req.To))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Test email delivery failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": res.ID})
}
