package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chatflows/internal/database"
	"chatflows/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.OnboardingSubmission{}, &domain.FormSubmission{}))
	return db
}

func newSubmission() *domain.OnboardingSubmission {
	return &domain.OnboardingSubmission{
		BusinessName:      "Bella's Bistro",
		Email:             "owner@bellasbistro.com",
		InstagramHandle:   "@bellasbistro",
		BusinessType:      "restaurant",
		ProductCategories: []string{"Food & Beverages"},
		CustomerQuestions: []string{"Hours & Location"},
		DeliveryPickup:    domain.FulfillmentNeither,
		Plan:              domain.PlanStarter,
		CredentialSharing: domain.CredentialSendSecurely,
		ConsentGiven:      true,
	}
}

func TestCreate_AssignsIDStatusAndTimestamp(t *testing.T) {
	repo := NewSubmissionRepository(testDB(t))

	sub := newSubmission()
	require.NoError(t, repo.Create(context.Background(), sub))

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, domain.PaymentPending, sub.PaymentStatus)
	assert.False(t, sub.CreatedAt.IsZero())

	got, err := repo.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food & Beverages"}, got.ProductCategories)
}

func TestCreate_RejectsMissingRequiredFields(t *testing.T) {
	repo := NewSubmissionRepository(testDB(t))

	sub := newSubmission()
	sub.Email = ""
	err := repo.Create(context.Background(), sub)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	sub = newSubmission()
	sub.ConsentGiven = false
	err = repo.Create(context.Background(), sub)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestCompleteByReference_FlipsOnce(t *testing.T) {
	repo := NewSubmissionRepository(testDB(t))
	ctx := context.Background()

	sub := newSubmission()
	require.NoError(t, repo.Create(ctx, sub))

	got, changed, err := repo.CompleteByReference(ctx, sub.ID, "cs_test_1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.PaymentCompleted, got.PaymentStatus)
	assert.Equal(t, "cs_test_1", got.StripeSessionID)

	// Redelivery: no write, no error, session id unchanged.
	got, changed, err = repo.CompleteByReference(ctx, sub.ID, "cs_test_other")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "cs_test_1", got.StripeSessionID)

	row, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, row.PaymentStatus)
	assert.Equal(t, "cs_test_1", row.StripeSessionID)
}

func TestCompleteByReference_UnknownIDIsRecordNotFound(t *testing.T) {
	repo := NewSubmissionRepository(testDB(t))

	_, _, err := repo.CompleteByReference(context.Background(), "missing", "cs_test_1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetByStripeSession(t *testing.T) {
	repo := NewSubmissionRepository(testDB(t))
	ctx := context.Background()

	sub := newSubmission()
	require.NoError(t, repo.Create(ctx, sub))
	_, _, err := repo.CompleteByReference(ctx, sub.ID, "cs_lookup")
	require.NoError(t, err)

	got, err := repo.GetByStripeSession(ctx, "cs_lookup")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)
}

func TestUpdate_PartialColumns(t *testing.T) {
	repo := NewSubmissionRepository(testDB(t))
	ctx := context.Background()

	sub := newSubmission()
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.Update(ctx, sub.ID, map[string]interface{}{"delivery_notes": "leave at the door"})
	require.NoError(t, err)
	assert.Equal(t, "leave at the door", got.DeliveryNotes)
	assert.Equal(t, sub.Email, got.Email)
}

func TestLegacyRepo_CompleteByReference(t *testing.T) {
	db := testDB(t)
	repo := NewLegacySubmissionRepository(db)
	ctx := context.Background()

	legacy := &domain.FormSubmission{
		ID:            "legacy-1",
		Name:          "Old Client",
		Email:         "old@example.com",
		Plan:          domain.PlanPro,
		PaymentStatus: domain.PaymentPending,
	}
	require.NoError(t, db.Create(legacy).Error)

	got, changed, err := repo.CompleteByReference(ctx, "legacy-1", "cs_legacy")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.PaymentCompleted, got.PaymentStatus)

	_, changed, err = repo.CompleteByReference(ctx, "legacy-1", "cs_other")
	require.NoError(t, err)
	assert.False(t, changed)
}
