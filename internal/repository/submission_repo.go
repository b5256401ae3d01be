package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatflows/internal/domain"
)

var ErrMissingRequiredField = errors.New("missing required field")

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts one submission row, assigning id and created_at. It is the
// last line of defense after the validation engine, not a revalidation
// layer: only hard requirements are checked here.
func (r *SubmissionRepository) Create(ctx context.Context, s *domain.OnboardingSubmission) error {
	if err := checkRequired(s); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.PaymentStatus == "" {
		s.PaymentStatus = domain.PaymentPending
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func checkRequired(s *domain.OnboardingSubmission) error {
	required := map[string]string{
		"business_name":      s.BusinessName,
		"email":              s.Email,
		"instagram_handle":   s.InstagramHandle,
		"business_type":      s.BusinessType,
		"plan":               string(s.Plan),
		"credential_sharing": string(s.CredentialSharing),
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
		}
	}
	if !s.ConsentGiven {
		return fmt.Errorf("%w: consent_given", ErrMissingRequiredField)
	}
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.OnboardingSubmission, error) {
	var s domain.OnboardingSubmission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) GetByStripeSession(ctx context.Context, sessionID string) (*domain.OnboardingSubmission, error) {
	var s domain.OnboardingSubmission
	if err := r.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Update applies a partial column update and returns the fresh row.
func (r *SubmissionRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*domain.OnboardingSubmission, error) {
	res := r.db.WithContext(ctx).Model(&domain.OnboardingSubmission{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// CompleteByReference flips payment_status to completed and records the
// checkout session id, exactly once. A second call for an already-completed
// row returns the row with changed=false and writes nothing, which keeps
// webhook redelivery safe.
func (r *SubmissionRepository) CompleteByReference(ctx context.Context, referenceID, sessionID string) (*domain.OnboardingSubmission, bool, error) {
	var sub domain.OnboardingSubmission
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", referenceID).First(&sub).Error; err != nil {
			return err
		}
		if sub.PaymentStatus == domain.PaymentCompleted {
			changed = false
			return nil
		}
		res := tx.Model(&domain.OnboardingSubmission{}).Where("id = ?", referenceID).Updates(map[string]interface{}{
			"payment_status":    domain.PaymentCompleted,
			"stripe_session_id": sessionID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("submission row not updated")
		}
		sub.PaymentStatus = domain.PaymentCompleted
		sub.StripeSessionID = sessionID
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &sub, changed, nil
}
