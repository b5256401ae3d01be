package onboarding

import (
	"context"

	"chatflows/internal/domain"
	"chatflows/internal/modules/notification"
	"chatflows/internal/modules/upload"
)

type submissionCreator interface {
	Create(ctx context.Context, s *domain.OnboardingSubmission) error
}

type uploader interface {
	Process(ctx context.Context, in upload.Input) upload.ResultSet
}

type notifier interface {
	SendWelcome(ctx context.Context, sub *domain.OnboardingSubmission) (*notification.SendResult, error)
	SendAdminAlert(ctx context.Context, sub *domain.OnboardingSubmission, files []notification.Attachment) (*notification.SendResult, error)
}

type checkoutLinker interface {
	CheckoutURL(plan domain.Plan, submissionID string) (string, error)
}
