package notification

import "context"

type EmailType string

const (
	TypeFormSubmission      EmailType = "form_submission"
	TypePaymentConfirmation EmailType = "payment_confirmation"
)

// Attachment is a filename+URL pair; the email provider fetches the content
// from the URL at send time.
type Attachment struct {
	Filename string
	URL      string
}

type Message struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// SendResult reports what happened to one send request. Duplicate means the
// suppressor swallowed it inside the cooldown window.
type SendResult struct {
	ID        string `json:"id,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Skipped   bool   `json:"skipped,omitempty"`
}

// Mailer is the transactional email collaborator.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Suppressor decides whether a send keyed by (type, recipient, subject,
// submission id) may proceed. Claim atomically records the attempt, so two
// concurrent claims for one key yield exactly one true.
type Suppressor interface {
	Claim(key string) bool
}

// LinkChecker probes whether a stored file URL is reachable enough to hand
// to the email provider as an attachment source.
type LinkChecker interface {
	Reachable(ctx context.Context, url string) bool
}
