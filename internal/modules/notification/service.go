package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chatflows/internal/domain"
)

// PaymentTarget is the submission projection a confirmation email needs.
// Both the current and the legacy schema resolve into it.
type PaymentTarget struct {
	SubmissionID string
	BusinessName string
	Email        string
	Plan         domain.Plan
}

// PaymentDetails carries processor metadata merged into the admin variant.
type PaymentDetails struct {
	SessionID       string
	PaymentIntentID string
	AmountTotal     int64
	Currency        string
	Created         time.Time
	Metadata        map[string]string
}

// Service renders and dispatches the email pairs of the pipeline. Every
// send goes through the suppressor first; callers treat send errors as
// log-and-continue, never as request failures.
type Service struct {
	mailer     Mailer
	suppressor Suppressor
	checker    LinkChecker
	from       string
	adminEmail string
	loggerf    func(format string, args ...interface{})
}

func NewService(mailer Mailer, suppressor Suppressor, checker LinkChecker, from, adminEmail string, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		mailer:     mailer,
		suppressor: suppressor,
		checker:    checker,
		from:       from,
		adminEmail: adminEmail,
		loggerf:    loggerf,
	}
}

func (s *Service) send(ctx context.Context, emailType EmailType, uniqueID string, msg Message) (*SendResult, error) {
	key := EmailKey(emailType, msg.To[0], msg.Subject, uniqueID)
	if !s.suppressor.Claim(key) {
		s.loggerf("level=info msg=duplicate email suppressed key=%q subject=%q", key, msg.Subject)
		return &SendResult{Duplicate: true, Skipped: true}, nil
	}

	id, err := s.mailer.Send(ctx, msg)
	if err != nil {
		return nil, err
	}
	s.loggerf("level=info msg=email sent id=%s to=%s subject=%q attachments=%d", id, maskEmail(msg.To[0]), msg.Subject, len(msg.Attachments))
	return &SendResult{ID: id}, nil
}

// SendWelcome emails the submitter right after persistence.
func (s *Service) SendWelcome(ctx context.Context, sub *domain.OnboardingSubmission) (*SendResult, error) {
	html, err := render(welcomeTmpl, welcomeData{
		BusinessName:    sub.BusinessName,
		InstagramHandle: strings.TrimPrefix(sub.InstagramHandle, "@"),
		PlanName:        planName(sub.Plan),
		AdminEmail:      s.adminEmail,
	})
	if err != nil {
		return nil, err
	}
	return s.send(ctx, TypeFormSubmission, sub.ID, Message{
		From:    s.from,
		To:      []string{sub.Email},
		Subject: "🎉 Welcome to AIChatFlows – Setup Started",
		HTML:    html,
	})
}

// SendAdminAlert emails the operator a full rundown of the submission,
// attaching whichever stored files are still reachable. Unreachable URLs are
// logged and dropped from attachments only; the stored URLs stay in the body.
func (s *Service) SendAdminAlert(ctx context.Context, sub *domain.OnboardingSubmission, files []Attachment) (*SendResult, error) {
	html, err := render(adminAlertTmpl, adminAlertData{
		SubmissionID:        sub.ID,
		BusinessName:        sub.BusinessName,
		Email:               sub.Email,
		InstagramHandle:     sub.InstagramHandle,
		OtherPlatforms:      sub.OtherPlatforms,
		BusinessType:        sub.BusinessType,
		BusinessTypeOther:   sub.BusinessTypeOther,
		ProductCategories:   joinWithOther(sub.ProductCategories, sub.ProductCategoriesOther),
		CustomerQuestions:   joinWithOther(sub.CustomerQuestions, sub.CustomerQuestionsOther),
		DeliveryPickup:      string(sub.DeliveryPickup),
		DeliveryOptions:     joinWithOther(sub.DeliveryOptions, sub.DeliveryOptionsOther),
		PickupOptions:       joinWithOther(sub.PickupOptions, sub.PickupOptionsOther),
		DeliveryNotes:       sub.DeliveryNotes,
		MenuDescription:     sub.MenuDescription,
		MenuFileURL:         sub.MenuFileURL,
		FAQFileURL:          sub.FAQFileURL,
		FAQContent:          truncate(sub.FAQContent, 100),
		DocumentURLs:        sub.AdditionalDocsURLs,
		PlanName:            planName(sub.Plan),
		PlanPrice:           planPrice(sub.Plan),
		CredentialSharing:   string(sub.CredentialSharing),
		CredentialsProvided: sub.CredentialsDirect != "",
	})
	if err != nil {
		return nil, err
	}
	return s.send(ctx, TypeFormSubmission, sub.ID, Message{
		From:        s.from,
		To:          []string{s.adminEmail},
		Subject:     fmt.Sprintf("🆕 New Client Onboarding Form Submitted – %s", sub.BusinessName),
		HTML:        html,
		Attachments: s.reachableOnly(ctx, files),
	})
}

// SendPaymentReceipt emails the customer after the webhook flips the
// submission to completed.
func (s *Service) SendPaymentReceipt(ctx context.Context, t PaymentTarget, d PaymentDetails) (*SendResult, error) {
	html, err := render(receiptTmpl, receiptData{
		BusinessName:  t.BusinessName,
		PlanName:      planName(t.Plan),
		PlanPrice:     planPrice(t.Plan),
		PaymentDate:   formatDate(paymentTime(d)),
		TransactionID: d.SessionID,
		Currency:      strings.ToUpper(d.Currency),
		AdminEmail:    s.adminEmail,
	})
	if err != nil {
		return nil, err
	}
	return s.send(ctx, TypePaymentConfirmation, t.SubmissionID, Message{
		From:    s.from,
		To:      []string{t.Email},
		Subject: "🧾 Your AIChatFlows Payment Receipt",
		HTML:    html,
	})
}

// SendPaymentAdminAlert is the admin variant; it alone carries the raw
// processor metadata.
func (s *Service) SendPaymentAdminAlert(ctx context.Context, t PaymentTarget, d PaymentDetails) (*SendResult, error) {
	html, err := render(paymentAdminTmpl, paymentAdminData{
		BusinessName:    t.BusinessName,
		Email:           t.Email,
		PlanName:        planName(t.Plan),
		PlanPrice:       planPrice(t.Plan),
		Amount:          formatAmount(d.AmountTotal, d.Currency),
		Timestamp:       paymentTime(d).Format(time.RFC1123),
		SessionID:       d.SessionID,
		PaymentIntentID: d.PaymentIntentID,
		Metadata:        d.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return s.send(ctx, TypePaymentConfirmation, t.SubmissionID, Message{
		From:    s.from,
		To:      []string{s.adminEmail},
		Subject: fmt.Sprintf("✅ Payment Received – %s", t.BusinessName),
		HTML:    html,
	})
}

// SendTest is the internal diagnostics probe: a minimal message that skips
// templating and suppression.
func (s *Service) SendTest(ctx context.Context, to string) (*SendResult, error) {
	id, err := s.mailer.Send(ctx, Message{
		From:    s.from,
		To:      []string{to},
		Subject: "AIChatFlows delivery test",
		HTML:    "<p>Test email from the onboarding pipeline. If you can read this, delivery works.</p>",
	})
	if err != nil {
		return nil, err
	}
	return &SendResult{ID: id}, nil
}

func (s *Service) reachableOnly(ctx context.Context, files []Attachment) []Attachment {
	if s.checker == nil {
		return files
	}
	kept := files[:0:0]
	for _, f := range files {
		if s.checker.Reachable(ctx, f.URL) {
			kept = append(kept, f)
			continue
		}
		s.loggerf("level=warn msg=attachment url not reachable, skipping attachment file=%q url=%s", f.Filename, f.URL)
	}
	return kept
}

func paymentTime(d PaymentDetails) time.Time {
	if !d.Created.IsZero() {
		return d.Created
	}
	return time.Now()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return email
	}
	local := email[:at]
	return local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:] + email[at:]
}
