package onboarding

import (
	"context"
	"fmt"

	"chatflows/internal/domain"
	"chatflows/internal/modules/notification"
	"chatflows/internal/modules/upload"
	"chatflows/internal/pkg/validator"
)

// Result is what a successful intake hands back to the HTTP layer.
type Result struct {
	SubmissionID string
	CheckoutURL  string
}

// Service runs the intake pipeline: validate, upload, persist, notify,
// hand out the checkout link. Persistence is the only fatal stage after
// validation; upload and email failures degrade silently from the
// submitter's perspective and are logged for the operator.
type Service struct {
	repo      submissionCreator
	uploads   uploader
	notify    notifier
	checkout  checkoutLinker
	sourceTag string
	loggerf   func(format string, args ...interface{})
}

func NewService(repo submissionCreator, uploads uploader, notify notifier, checkout checkoutLinker, sourceTag string, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		repo:      repo,
		uploads:   uploads,
		notify:    notify,
		checkout:  checkout,
		sourceTag: sourceTag,
		loggerf:   loggerf,
	}
}

// Submit validates the input, attempts all uploads, persists the row, then
// fires the welcome/admin email pair. Validation failures return the full
// FieldError set and leave no side effects; nothing is uploaded or persisted
// before validation passes.
func (s *Service) Submit(ctx context.Context, in SubmissionInput, files FileSet) (*Result, []validator.FieldError, error) {
	if errs := ValidateSubmission(&in); len(errs) > 0 {
		return nil, errs, nil
	}
	if in.Source == "" {
		in.Source = s.sourceTag
	}

	rs := s.uploads.Process(ctx, upload.Input{
		Menu:      files.Menu,
		FAQ:       files.FAQ,
		Documents: files.Documents,
	})

	sub := buildSubmission(in, rs)
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.loggerf("level=info msg=submission persisted submission_id=%s business=%q plan=%s", sub.ID, sub.BusinessName, sub.Plan)

	// Emails are fire-and-forget: the row is already persisted and that
	// success must not be reported as failure over a delivery problem.
	if _, err := s.notify.SendWelcome(ctx, sub); err != nil {
		s.loggerf("level=error msg=welcome email failed submission_id=%s err=%v", sub.ID, err)
	}
	if _, err := s.notify.SendAdminAlert(ctx, sub, attachments(rs)); err != nil {
		s.loggerf("level=error msg=admin alert email failed submission_id=%s err=%v", sub.ID, err)
	}

	checkoutURL, err := s.checkout.CheckoutURL(sub.Plan, sub.ID)
	if err != nil {
		// The submission stands; the caller just gets no redirect target.
		s.loggerf("level=error msg=checkout link unavailable submission_id=%s err=%v", sub.ID, err)
	}

	return &Result{SubmissionID: sub.ID, CheckoutURL: checkoutURL}, nil, nil
}

// buildSubmission maps the validated input plus the upload outcomes onto the
// storage row. Only successful uploads contribute URLs; failed and skipped
// categories leave their columns empty.
func buildSubmission(in SubmissionInput, rs upload.ResultSet) *domain.OnboardingSubmission {
	sub := &domain.OnboardingSubmission{
		BusinessName:           in.BusinessName,
		Email:                  in.Email,
		InstagramHandle:        in.InstagramHandle,
		OtherPlatforms:         in.OtherPlatforms,
		BusinessType:           in.BusinessType,
		BusinessTypeOther:      in.BusinessTypeOther,
		ProductCategories:      in.ProductCategories,
		ProductCategoriesOther: in.ProductCategoriesOther,
		CustomerQuestions:      in.CustomerQuestions,
		CustomerQuestionsOther: in.CustomerQuestionsOther,
		DeliveryPickup:         domain.FulfillmentMode(in.DeliveryPickup),
		DeliveryOptions:        in.DeliveryOptions,
		DeliveryOptionsOther:   in.DeliveryOptionsOther,
		PickupOptions:          in.PickupOptions,
		PickupOptionsOther:     in.PickupOptionsOther,
		DeliveryNotes:          in.DeliveryNotes,
		MenuDescription:        in.MenuDescription,
		HasFAQs:                in.HasFAQs,
		FAQContent:             in.FAQContent,
		Plan:                   domain.Plan(in.Plan),
		CredentialSharing:      domain.CredentialSharing(in.CredentialSharing),
		CredentialsDirect:      in.CredentialsDirect,
		ConsentGiven:           in.ConsentCheckbox,
		Source:                 in.Source,
	}
	if rs.Menu.OK() {
		sub.MenuFileURL = rs.Menu.URL
	}
	if rs.FAQ.OK() {
		sub.FAQFileURL = rs.FAQ.URL
	}
	sub.AdditionalDocsURLs = rs.DocumentURLs()
	return sub
}

func attachments(rs upload.ResultSet) []notification.Attachment {
	stored := rs.StoredFiles()
	out := make([]notification.Attachment, 0, len(stored))
	for _, f := range stored {
		out = append(out, notification.Attachment{Filename: f.Filename, URL: f.URL})
	}
	return out
}
