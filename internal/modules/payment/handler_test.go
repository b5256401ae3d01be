package payment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webhookRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	NewHandler(svc, nil).RegisterRoutes(r)
	return r
}

func postWebhook(r *gin.Engine, payload []byte, sigHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	if sigHeader != "" {
		req.Header.Set("Stripe-Signature", sigHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_MissingSignatureHeader(t *testing.T) {
	svc := NewService(nil, &fakeSender{}, testSecret, nil)
	r := webhookRouter(svc)

	w := postWebhook(r, []byte("{}"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Missing Stripe signature", body["error"])
}

func TestWebhook_InvalidSignature(t *testing.T) {
	svc := NewService(nil, &fakeSender{}, testSecret, nil)
	r := webhookRouter(svc)

	w := postWebhook(r, []byte("{}"), "t=123,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid signature", body["error"])
}

func TestWebhook_CompletedSessionAcknowledged(t *testing.T) {
	src := &fakeSource{name: "current", known: "sub-1", target: knownTarget(), changed: true}
	sender := &fakeSender{}
	svc := NewService([]SubmissionSource{src}, sender, testSecret, nil)
	r := webhookRouter(svc)

	payload, header := signedEvent(t, "checkout.session.completed", completedSession("sub-1"))
	w := postWebhook(r, payload, header)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["received"])
	assert.Len(t, sender.receipts, 1)
}

func TestWebhook_UnknownReferenceIs400(t *testing.T) {
	src := &fakeSource{name: "current", known: "someone-else"}
	sender := &fakeSender{}
	svc := NewService([]SubmissionSource{src}, sender, testSecret, nil)
	r := webhookRouter(svc)

	payload, header := signedEvent(t, "checkout.session.completed", completedSession("nobody"))
	w := postWebhook(r, payload, header)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Submission not found", body["error"])
	assert.Empty(t, sender.receipts)
}

func TestWebhook_GetIsMethodNotAllowed(t *testing.T) {
	svc := NewService(nil, &fakeSender{}, testSecret, nil)
	r := webhookRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/webhooks/stripe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
