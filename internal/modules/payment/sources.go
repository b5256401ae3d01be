package payment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chatflows/internal/modules/notification"
)

// onboardingSource resolves references against the current schema.
type onboardingSource struct {
	repo onboardingCompleter
}

func NewOnboardingSource(repo onboardingCompleter) SubmissionSource {
	return &onboardingSource{repo: repo}
}

func (s *onboardingSource) Name() string { return "client_onboarding_submissions" }

func (s *onboardingSource) CompleteByReference(ctx context.Context, referenceID, sessionID string) (*Resolution, error) {
	sub, changed, err := s.repo.CompleteByReference(ctx, referenceID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &Resolution{
		Target: notification.PaymentTarget{
			SubmissionID: sub.ID,
			BusinessName: sub.BusinessName,
			Email:        sub.Email,
			Plan:         sub.Plan,
		},
		Changed: changed,
	}, nil
}

// legacySource resolves references against the retired form_submissions
// schema; checkout links issued before the migration still point there.
type legacySource struct {
	repo legacyCompleter
}

func NewLegacySource(repo legacyCompleter) SubmissionSource {
	return &legacySource{repo: repo}
}

func (s *legacySource) Name() string { return "form_submissions" }

func (s *legacySource) CompleteByReference(ctx context.Context, referenceID, sessionID string) (*Resolution, error) {
	sub, changed, err := s.repo.CompleteByReference(ctx, referenceID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &Resolution{
		Target: notification.PaymentTarget{
			SubmissionID: sub.ID,
			BusinessName: sub.Name,
			Email:        sub.Email,
			Plan:         sub.Plan,
		},
		Changed: changed,
	}, nil
}
