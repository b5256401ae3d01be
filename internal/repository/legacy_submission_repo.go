package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatflows/internal/domain"
)

// LegacySubmissionRepository reads and reconciles rows of the legacy
// form_submissions schema. No new rows are created through it.
type LegacySubmissionRepository struct {
	db *gorm.DB
}

func NewLegacySubmissionRepository(db *gorm.DB) *LegacySubmissionRepository {
	return &LegacySubmissionRepository{db: db}
}

func (r *LegacySubmissionRepository) GetByID(ctx context.Context, id string) (*domain.FormSubmission, error) {
	var s domain.FormSubmission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *LegacySubmissionRepository) GetByStripeSession(ctx context.Context, sessionID string) (*domain.FormSubmission, error) {
	var s domain.FormSubmission
	if err := r.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// CompleteByReference mirrors SubmissionRepository.CompleteByReference for
// the legacy table.
func (r *LegacySubmissionRepository) CompleteByReference(ctx context.Context, referenceID, sessionID string) (*domain.FormSubmission, bool, error) {
	var sub domain.FormSubmission
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", referenceID).First(&sub).Error; err != nil {
			return err
		}
		if sub.PaymentStatus == domain.PaymentCompleted {
			changed = false
			return nil
		}
		res := tx.Model(&domain.FormSubmission{}).Where("id = ?", referenceID).Updates(map[string]interface{}{
			"payment_status":    domain.PaymentCompleted,
			"stripe_session_id": sessionID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("legacy submission row not updated")
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
