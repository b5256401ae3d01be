package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type Plan string

const (
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
	PlanProPlus Plan = "pro_plus"
)

type CredentialSharing string

const (
	CredentialDirect       CredentialSharing = "direct"
	CredentialSendSecurely CredentialSharing = "sendsecurely"
	CredentialCall         CredentialSharing = "call"
)

type FulfillmentMode string

const (
	FulfillmentDelivery FulfillmentMode = "delivery"
	FulfillmentPickup   FulfillmentMode = "pickup"
	FulfillmentBoth     FulfillmentMode = "both"
	FulfillmentNeither  FulfillmentMode = "neither"
)

// OnboardingSubmission is one row of the current-generation onboarding
// schema. File URL columns are written once at creation and never
// overwritten; payment_status only ever moves pending -> completed.
type OnboardingSubmission struct {
	ID                     string            `gorm:"column:id;primaryKey" json:"id"`
	BusinessName           string            `gorm:"column:business_name" json:"business_name"`
	Email                  string            `gorm:"column:email" json:"email"`
	InstagramHandle        string            `gorm:"column:instagram_handle" json:"instagram_handle"`
	OtherPlatforms         string            `gorm:"column:other_platforms" json:"other_platforms,omitempty"`
	BusinessType           string            `gorm:"column:business_type" json:"business_type"`
	BusinessTypeOther      string            `gorm:"column:business_type_other" json:"business_type_other,omitempty"`
	ProductCategories      []string          `gorm:"column:product_categories;serializer:json" json:"product_categories"`
	ProductCategoriesOther string            `gorm:"column:product_categories_other" json:"product_categories_other,omitempty"`
	CustomerQuestions      []string          `gorm:"column:customer_questions;serializer:json" json:"customer_questions"`
	CustomerQuestionsOther string            `gorm:"column:customer_questions_other" json:"customer_questions_other,omitempty"`
	DeliveryPickup         FulfillmentMode   `gorm:"column:delivery_pickup" json:"delivery_pickup"`
	DeliveryOptions        []string          `gorm:"column:delivery_options;serializer:json" json:"delivery_options,omitempty"`
	DeliveryOptionsOther   string            `gorm:"column:delivery_options_other" json:"delivery_options_other,omitempty"`
	PickupOptions          []string          `gorm:"column:pickup_options;serializer:json" json:"pickup_options,omitempty"`
	PickupOptionsOther     string            `gorm:"column:pickup_options_other" json:"pickup_options_other,omitempty"`
	DeliveryNotes          string            `gorm:"column:delivery_notes" json:"delivery_notes,omitempty"`
	MenuDescription        string            `gorm:"column:menu_description" json:"menu_description,omitempty"`
	MenuFileURL            string            `gorm:"column:menu_file_url" json:"menu_file_url,omitempty"`
	HasFAQs                string            `gorm:"column:has_faqs" json:"has_faqs"`
	FAQContent             string            `gorm:"column:faq_content" json:"faq_content,omitempty"`
	FAQFileURL             string            `gorm:"column:faq_file_url" json:"faq_file_url,omitempty"`
	AdditionalDocsURLs     []string          `gorm:"column:additional_docs_urls;serializer:json" json:"additional_docs_urls,omitempty"`
	Plan                   Plan              `gorm:"column:plan" json:"plan"`
	CredentialSharing      CredentialSharing `gorm:"column:credential_sharing" json:"credential_sharing"`
	CredentialsDirect      string            `gorm:"column:credentials_direct" json:"-"`
	ConsentGiven           bool              `gorm:"column:consent_given" json:"consent_given"`
	Source                 string            `gorm:"column:source" json:"source"`
	PaymentStatus          PaymentStatus     `gorm:"column:payment_status" json:"payment_status"`
	StripeSessionID        string            `gorm:"column:stripe_session_id" json:"stripe_session_id,omitempty"`
	CreatedAt              time.Time         `gorm:"column:created_at" json:"created_at"`
}

func (OnboardingSubmission) TableName() string { return "client_onboarding_submissions" }

// WantsDelivery reports whether the fulfillment mode includes delivery.
func (m FulfillmentMode) WantsDelivery() bool {
	return m == FulfillmentDelivery || m == FulfillmentBoth
}

// WantsPickup reports whether the fulfillment mode includes pickup.
func (m FulfillmentMode) WantsPickup() bool {
	return m == FulfillmentPickup || m == FulfillmentBoth
}
