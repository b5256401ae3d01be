package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Bucket names are a fixed small set; one bucket per upload category.
const (
	BucketMenus     = "menus"
	BucketFAQs      = "faqs"
	BucketDocuments = "documents"
)

// SupabaseClient talks to the Supabase Storage HTTP API with the service
// role key. Only the two operations the pipeline needs are wired: object
// upload and public URL construction.
type SupabaseClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	loggerf    func(format string, args ...interface{})
}

func NewSupabaseClient(baseURL, serviceKey string, loggerf func(format string, args ...interface{})) *SupabaseClient {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &SupabaseClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		loggerf:    loggerf,
	}
}

// Upload stores one object. The path must be unique; upserts are disabled so
// an accidental name collision fails loudly instead of overwriting.
func (c *SupabaseClient) Upload(ctx context.Context, bucket, path, contentType string, data []byte) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, url.PathEscape(bucket), escapePath(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.loggerf("level=error msg=storage upload rejected bucket=%s path=%s status=%d body=%q", bucket, path, resp.StatusCode, string(body))
		return fmt.Errorf("storage upload rejected: status %d", resp.StatusCode)
	}

	c.loggerf("level=info msg=storage upload ok bucket=%s path=%s bytes=%d", bucket, path, len(data))
	return nil
}

// PublicURL returns the permanently-addressable URL of an uploaded object.
// Buckets are public; the URL works without credentials.
func (c *SupabaseClient) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, url.PathEscape(bucket), escapePath(path))
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
