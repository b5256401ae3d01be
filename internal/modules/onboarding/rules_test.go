package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chatflows/internal/pkg/validator"
)

func validInput() SubmissionInput {
	return SubmissionInput{
		BusinessName:      "Bella's Bistro",
		Email:             "owner@bellasbistro.com",
		InstagramHandle:   "@bellasbistro",
		BusinessType:      "restaurant",
		ProductCategories: []string{"Food & Beverages"},
		CustomerQuestions: []string{"Hours & Location"},
		DeliveryPickup:    "neither",
		Plan:              "starter",
		CredentialSharing: "sendsecurely",
		ConsentCheckbox:   true,
	}
}

func fieldSet(errs []validator.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateSubmission_ValidInput(t *testing.T) {
	in := validInput()
	assert.Empty(t, ValidateSubmission(&in))
}

func TestValidateSubmission_OtherSentinelRequiresQualifier(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(in *SubmissionInput)
		wantField string
	}{
		{
			name:      "product categories",
			mutate:    func(in *SubmissionInput) { in.ProductCategories = []string{"Food & Beverages", "Other"} },
			wantField: "product_categories_other",
		},
		{
			name:      "customer questions",
			mutate:    func(in *SubmissionInput) { in.CustomerQuestions = []string{"Other"} },
			wantField: "customer_questions_other",
		},
		{
			name: "delivery options",
			mutate: func(in *SubmissionInput) {
				in.DeliveryPickup = "delivery"
				in.DeliveryOptions = []string{"Other"}
			},
			wantField: "delivery_options_other",
		},
		{
			name: "pickup options",
			mutate: func(in *SubmissionInput) {
				in.DeliveryPickup = "pickup"
				in.PickupOptions = []string{"Other"}
			},
			wantField: "pickup_options_other",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			errs := ValidateSubmission(&in)
			assert.Contains(t, fieldSet(errs), tc.wantField)
		})
	}
}

func TestValidateSubmission_OtherSentinelWithQualifierPasses(t *testing.T) {
	in := validInput()
	in.ProductCategories = []string{"Other"}
	in.ProductCategoriesOther = "Catering supplies"

	assert.Empty(t, ValidateSubmission(&in))
}

func TestValidateSubmission_BothModeRequiresBothOptionLists(t *testing.T) {
	in := validInput()
	in.DeliveryPickup = "both"

	fields := fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "delivery_options")
	assert.Contains(t, fields, "pickup_options")

	in.DeliveryOptions = []string{"Uber Eats"}
	in.PickupOptions = []string{"In-store"}
	assert.Empty(t, ValidateSubmission(&in))
}

func TestValidateSubmission_DeliveryModeOnlyNeedsDeliveryOptions(t *testing.T) {
	in := validInput()
	in.DeliveryPickup = "delivery"

	fields := fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "delivery_options")
	assert.NotContains(t, fields, "pickup_options")
}

func TestValidateSubmission_ConsentFalseFailsRegardless(t *testing.T) {
	in := validInput()
	in.ConsentCheckbox = false

	fields := fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "consent_checkbox")
}

func TestValidateSubmission_DirectCredentialSharingNeedsPayload(t *testing.T) {
	in := validInput()
	in.CredentialSharing = "direct"

	fields := fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "credentials_direct")

	in.CredentialsDirect = "user / hunter2"
	assert.Empty(t, ValidateSubmission(&in))
}

func TestValidateSubmission_BusinessTypeOtherNeedsQualifier(t *testing.T) {
	in := validInput()
	in.BusinessType = "other"

	fields := fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "business_type_other")
}

func TestValidateSubmission_CollectsAllViolationsAtOnce(t *testing.T) {
	in := validInput()
	in.Email = "not-an-email"
	in.ConsentCheckbox = false
	in.ProductCategories = []string{"Other"}

	fields := fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "consent_checkbox")
	assert.Contains(t, fields, "product_categories_other")
}

func TestValidateSubmission_EnumFields(t *testing.T) {
	in := validInput()
	in.Plan = "enterprise"

	fields := fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "plan")

	in = validInput()
	in.DeliveryPickup = "teleport"
	fields = fieldSet(ValidateSubmission(&in))
	assert.Contains(t, fields, "delivery_pickup")
}
