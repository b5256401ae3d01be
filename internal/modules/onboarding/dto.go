package onboarding

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"
)

// maxAdditionalDocs caps the additional_docs_N file slots scanned on intake.
const maxAdditionalDocs = 10

// SubmissionInput is the typed payload one multipart intake decodes into.
// Per-field constraints live in the validate tags; cross-field constraints
// live in rules.go. The form tag doubles as the wire-level error path.
type SubmissionInput struct {
	BusinessName           string   `form:"business_name" validate:"required,min=2,max=200"`
	Email                  string   `form:"email" validate:"required,email"`
	InstagramHandle        string   `form:"instagram_handle" validate:"required,min=2,max=100"`
	OtherPlatforms         string   `form:"other_platforms" validate:"max=500"`
	BusinessType           string   `form:"business_type" validate:"required,max=100"`
	BusinessTypeOther      string   `form:"business_type_other" validate:"max=200"`
	ProductCategories      []string `form:"product_categories" validate:"required,min=1"`
	ProductCategoriesOther string   `form:"product_categories_other" validate:"max=200"`
	CustomerQuestions      []string `form:"customer_questions" validate:"required,min=1"`
	CustomerQuestionsOther string   `form:"customer_questions_other" validate:"max=200"`
	DeliveryPickup         string   `form:"delivery_pickup" validate:"required,oneof=delivery pickup both neither"`
	DeliveryOptions        []string `form:"delivery_options"`
	DeliveryOptionsOther   string   `form:"delivery_options_other" validate:"max=200"`
	PickupOptions          []string `form:"pickup_options"`
	PickupOptionsOther     string   `form:"pickup_options_other" validate:"max=200"`
	DeliveryNotes          string   `form:"delivery_notes" validate:"max=1000"`
	MenuDescription        string   `form:"menu_description" validate:"max=5000"`
	HasFAQs                string   `form:"has_faqs" validate:"omitempty,oneof=yes no"`
	FAQContent             string   `form:"faq_content" validate:"max=10000"`
	Plan                   string   `form:"plan" validate:"required,oneof=starter pro pro_plus"`
	CredentialSharing      string   `form:"credential_sharing" validate:"required,oneof=direct sendsecurely call"`
	CredentialsDirect      string   `form:"credentials_direct"`
	ConsentCheckbox        bool     `form:"consent_checkbox"`
	Source                 string   `form:"source"`
}

// FileSet is the categorized file part of one intake request.
type FileSet struct {
	Menu      *multipart.FileHeader
	FAQ       *multipart.FileHeader
	Documents []*multipart.FileHeader
}

// ParseForm decodes the raw multipart value map into a SubmissionInput. The
// form encodes multi-select fields as JSON array strings; repeated plain
// fields are accepted as a fallback.
func ParseForm(form *multipart.Form) SubmissionInput {
	get := func(name string) string {
		vals := form.Value[name]
		if len(vals) == 0 {
			return ""
		}
		return strings.TrimSpace(vals[0])
	}

	return SubmissionInput{
		BusinessName:           get("business_name"),
		Email:                  get("email"),
		InstagramHandle:        get("instagram_handle"),
		OtherPlatforms:         get("other_platforms"),
		BusinessType:           get("business_type"),
		BusinessTypeOther:      get("business_type_other"),
		ProductCategories:      decodeList(form.Value["product_categories"]),
		ProductCategoriesOther: get("product_categories_other"),
		CustomerQuestions:      decodeList(form.Value["customer_questions"]),
		CustomerQuestionsOther: get("customer_questions_other"),
		DeliveryPickup:         get("delivery_pickup"),
		DeliveryOptions:        decodeList(form.Value["delivery_options"]),
		DeliveryOptionsOther:   get("delivery_options_other"),
		PickupOptions:          decodeList(form.Value["pickup_options"]),
		PickupOptionsOther:     get("pickup_options_other"),
		DeliveryNotes:          get("delivery_notes"),
		MenuDescription:        get("menu_description"),
		HasFAQs:                get("has_faqs"),
		FAQContent:             get("faq_content"),
		Plan:                   get("plan"),
		CredentialSharing:      get("credential_sharing"),
		CredentialsDirect:      get("credentials_direct"),
		ConsentCheckbox:        parseBool(get("consent_checkbox")),
		Source:                 get("source"),
	}
}

// ParseFiles gathers the menu and FAQ slots plus the indexed
// additional_docs_N slots.
func ParseFiles(form *multipart.Form) FileSet {
	first := func(name string) *multipart.FileHeader {
		files := form.File[name]
		if len(files) == 0 {
			return nil
		}
		return files[0]
	}

	fs := FileSet{
		Menu: first("menu_file"),
		FAQ:  first("faq_file"),
	}
	for i := 0; i < maxAdditionalDocs; i++ {
		if fh := first(fmt.Sprintf("additional_docs_%d", i)); fh != nil {
			fs.Documents = append(fs.Documents, fh)
		}
	}
	return fs
}

// decodeList handles both encodings the form has used: a single JSON array
// string, or one value per repeated field.
func decodeList(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	if len(vals) == 1 && strings.HasPrefix(strings.TrimSpace(vals[0]), "[") {
		var out []string
		if err := json.Unmarshal([]byte(vals[0]), &out); err == nil {
			return compact(out)
		}
	}
	return compact(vals)
}

func compact(vals []string) []string {
	out := vals[:0:0]
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
