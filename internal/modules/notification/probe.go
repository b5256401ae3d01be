package notification

import (
	"context"
	"net/http"
	"time"
)

// HTTPLinkChecker issues a metadata-only request against a stored file URL
// with a bounded timeout. Timeouts and non-2xx answers mean "not attachable",
// never a hard failure.
type HTTPLinkChecker struct {
	client  *http.Client
	timeout time.Duration
}

func NewHTTPLinkChecker(timeout time.Duration) *HTTPLinkChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPLinkChecker{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

func (c *HTTPLinkChecker) Reachable(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
