package domain

import "time"

// FormSubmission is the legacy onboarding schema. New rows are no longer
// written; the webhook reconciler still resolves payment references against
// it because checkout links issued before the schema switch stay valid.
type FormSubmission struct {
	ID                     string        `gorm:"column:id;primaryKey" json:"id"`
	Name                   string        `gorm:"column:name" json:"name"`
	Email                  string        `gorm:"column:email" json:"email"`
	Phone                  string        `gorm:"column:phone" json:"phone,omitempty"`
	Company                string        `gorm:"column:company" json:"company,omitempty"`
	Plan                   Plan          `gorm:"column:plan" json:"plan"`
	InstagramLogin         string        `gorm:"column:instagram_login" json:"instagram_login,omitempty"`
	FacebookLogin          string        `gorm:"column:facebook_login" json:"facebook_login,omitempty"`
	TwitterLogin           string        `gorm:"column:twitter_login" json:"twitter_login,omitempty"`
	LinkedinLogin          string        `gorm:"column:linkedin_login" json:"linkedin_login,omitempty"`
	TiktokLogin            string        `gorm:"column:tiktok_login" json:"tiktok_login,omitempty"`
	LoginSharingPreference string        `gorm:"column:login_sharing_preference" json:"login_sharing_preference"`
	FileURL                string        `gorm:"column:file_url" json:"file_url,omitempty"`
	Source                 string        `gorm:"column:source" json:"source"`
	PaymentStatus          PaymentStatus `gorm:"column:payment_status" json:"payment_status"`
	StripeSessionID        string        `gorm:"column:stripe_session_id" json:"stripe_session_id,omitempty"`
	CreatedAt              time.Time     `gorm:"column:created_at" json:"created_at"`
}

func (FormSubmission) TableName() string { return "form_submissions" }
