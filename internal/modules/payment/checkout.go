package payment

import (
	"fmt"
	"net/url"

	"chatflows/internal/domain"
)

// CheckoutLinks maps pricing tiers to hosted checkout URLs. The submission
// id travels as client_reference_id and comes back verbatim in the webhook
// event, which is the only join key between checkout and submission.
type CheckoutLinks struct {
	links map[domain.Plan]string
}

func NewCheckoutLinks(links map[domain.Plan]string) *CheckoutLinks {
	return &CheckoutLinks{links: links}
}

func (c *CheckoutLinks) CheckoutURL(plan domain.Plan, submissionID string) (string, error) {
	base, ok := c.links[plan]
	if !ok || base == "" {
		return "", fmt.Errorf("no checkout link configured for plan %q", plan)
	}
	if submissionID == "" {
		return base, nil
	}
	return base + "?client_reference_id=" + url.QueryEscape(submissionID), nil
}
