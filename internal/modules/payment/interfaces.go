package payment

import (
	"context"

	"chatflows/internal/domain"
	"chatflows/internal/modules/notification"
)

// Resolution is what a lookup strategy hands back: the notification
// projection of the matched submission plus whether this event actually
// changed state (false on webhook redelivery).
type Resolution struct {
	Target  notification.PaymentTarget
	Changed bool
}

// SubmissionSource is one lookup strategy in the ordered reconciliation
// chain. Implementations return ErrSubmissionNotFound when the reference id
// is unknown to their schema; any other error aborts the chain.
type SubmissionSource interface {
	Name() string
	CompleteByReference(ctx context.Context, referenceID, sessionID string) (*Resolution, error)
}

type onboardingCompleter interface {
	CompleteByReference(ctx context.Context, referenceID, sessionID string) (*domain.OnboardingSubmission, bool, error)
}

type legacyCompleter interface {
	CompleteByReference(ctx context.Context, referenceID, sessionID string) (*domain.FormSubmission, bool, error)
}

type confirmationSender interface {
	SendPaymentReceipt(ctx context.Context, t notification.PaymentTarget, d notification.PaymentDetails) (*notification.SendResult, error)
	SendPaymentAdminAlert(ctx context.Context, t notification.PaymentTarget, d notification.PaymentDetails) (*notification.SendResult, error)
}
