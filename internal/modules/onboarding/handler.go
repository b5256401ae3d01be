package onboarding

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatflows/internal/pkg/response"
)

// maxFormMemory bounds how much of the multipart body gin keeps in memory;
// larger file parts spill to temp files.
const maxFormMemory = 32 << 20

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
	r.POST("/onboarding", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid multipart form data")
		return
	}
	form := c.Request.MultipartForm

	in := ParseForm(form)
	files := ParseFiles(form)

	res, fieldErrs, err := h.service.Submit(c.Request.Context(), in, files)
	if len(fieldErrs) > 0 {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", fieldErrs)
		return
	}
	if err != nil {
		h.loggerf("level=error msg=submission pipeline failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"submissionId": res.SubmissionID,
		"checkoutUrl":  res.CheckoutURL,
	})
}
