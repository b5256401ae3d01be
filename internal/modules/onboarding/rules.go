package onboarding

import (
	"strings"

	"chatflows/internal/pkg/validator"
)

// otherSentinel is the literal multi-select option that demands a free-text
// qualifier alongside it.
const otherSentinel = "Other"

// crossRule is one named cross-field constraint, independently evaluable so
// a single pass can collect every violation at once.
type crossRule struct {
	name     string
	field    string
	message  string
	violated func(in *SubmissionInput) bool
}

var crossRules = []crossRule{
	{
		name:    "product_categories_other",
		field:   "product_categories_other",
		message: `Please describe the "Other" product or service category`,
		violated: func(in *SubmissionInput) bool {
			return hasSentinel(in.ProductCategories) && blank(in.ProductCategoriesOther)
		},
	},
	{
		name:    "customer_questions_other",
		field:   "customer_questions_other",
		message: `Please describe the "Other" customer question`,
		violated: func(in *SubmissionInput) bool {
			return hasSentinel(in.CustomerQuestions) && blank(in.CustomerQuestionsOther)
		},
	},
	{
		name:    "delivery_options_required",
		field:   "delivery_options",
		message: "Please select at least one delivery option",
		violated: func(in *SubmissionInput) bool {
			return wantsDelivery(in.DeliveryPickup) && len(in.DeliveryOptions) == 0
		},
	},
	{
		name:    "delivery_options_other",
		field:   "delivery_options_other",
		message: `Please describe the "Other" delivery option`,
		violated: func(in *SubmissionInput) bool {
			return hasSentinel(in.DeliveryOptions) && blank(in.DeliveryOptionsOther)
		},
	},
	{
		name:    "pickup_options_required",
		field:   "pickup_options",
		message: "Please select at least one pickup option",
		violated: func(in *SubmissionInput) bool {
			return wantsPickup(in.DeliveryPickup) && len(in.PickupOptions) == 0
		},
	},
	{
		name:    "pickup_options_other",
		field:   "pickup_options_other",
		message: `Please describe the "Other" pickup option`,
		violated: func(in *SubmissionInput) bool {
			return hasSentinel(in.PickupOptions) && blank(in.PickupOptionsOther)
		},
	},
	{
		name:    "credentials_direct_required",
		field:   "credentials_direct",
		message: "Please provide your login credentials for direct sharing",
		violated: func(in *SubmissionInput) bool {
			return in.CredentialSharing == "direct" && blank(in.CredentialsDirect)
		},
	},
	{
		name:    "business_type_other_required",
		field:   "business_type_other",
		message: "Please describe your business type",
		violated: func(in *SubmissionInput) bool {
			return strings.EqualFold(in.BusinessType, "other") && blank(in.BusinessTypeOther)
		},
	},
	{
		name:    "consent_required",
		field:   "consent_checkbox",
		message: "You must agree to the terms to continue",
		violated: func(in *SubmissionInput) bool {
			return !in.ConsentCheckbox
		},
	},
}

// ValidateSubmission runs the per-field tag checks and every cross-field
// rule, returning the complete violation set in one pass.
func ValidateSubmission(in *SubmissionInput) []validator.FieldError {
	errs := validator.Validate(in)
	for _, r := range crossRules {
		if r.violated(in) {
			errs = append(errs, validator.FieldError{Field: r.field, Message: r.message})
		}
	}
	return errs
}

func hasSentinel(vals []string) bool {
	for _, v := range vals {
		if v == otherSentinel {
			return true
		}
	}
	return false
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func wantsDelivery(mode string) bool { return mode == "delivery" || mode == "both" }

func wantsPickup(mode string) bool { return mode == "pickup" || mode == "both" }
