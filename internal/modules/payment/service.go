package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"chatflows/internal/modules/notification"
)

// Service is the webhook reconciler. It trusts nothing before the signature
// verifies, resolves the client reference through the ordered source chain,
// applies the single pending->completed transition, and fires the
// confirmation email pair. The state update and the emails are deliberately
// not transactional: a persisted completion with a failed email is
// recoverable by a human, a rolled-back payment is not.
type Service struct {
	sources       []SubmissionSource
	notifier      confirmationSender
	webhookSecret string
	loggerf       func(format string, args ...interface{})
}

func NewService(sources []SubmissionSource, notifier confirmationSender, webhookSecret string, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		sources:       sources,
		notifier:      notifier,
		webhookSecret: webhookSecret,
		loggerf:       loggerf,
	}
}

// HandleEvent verifies and dispatches one raw webhook delivery.
func (s *Service) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	if sigHeader == "" {
		return ErrMissingSignature
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		s.loggerf("level=error msg=webhook signature verification failed err=%v", err)
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		return s.handleSessionCompleted(ctx, event)

	case stripe.EventTypeCheckoutSessionExpired:
		// No status reset without product input; the submission stays
		// pending and can still be paid through a fresh checkout.
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err == nil {
			s.loggerf("level=info msg=checkout session expired session_id=%s reference_id=%s", session.ID, session.ClientReferenceID)
		}
		return nil

	case stripe.EventTypePaymentIntentPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err == nil {
			s.loggerf("level=info msg=payment failed payment_intent=%s", intent.ID)
		}
		return nil

	default:
		s.loggerf("level=info msg=unhandled webhook event type=%s", event.Type)
		return nil
	}
}

func (s *Service) handleSessionCompleted(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	referenceID := session.ClientReferenceID
	if referenceID == "" {
		// Checkout completed outside the funnel; nothing to reconcile.
		s.loggerf("level=warn msg=completed session without client reference session_id=%s", session.ID)
		return nil
	}

	res, err := s.resolve(ctx, referenceID, session.ID)
	if err != nil {
		return err
	}
	if !res.Changed {
		s.loggerf("level=info msg=idempotent webhook replay submission_id=%s session_id=%s", res.Target.SubmissionID, session.ID)
	}

	details := paymentDetails(session)

	if _, err := s.notifier.SendPaymentReceipt(ctx, res.Target, details); err != nil {
		s.loggerf("level=error msg=payment receipt email failed submission_id=%s err=%v", res.Target.SubmissionID, err)
	}
	if _, err := s.notifier.SendPaymentAdminAlert(ctx, res.Target, details); err != nil {
		s.loggerf("level=error msg=payment admin email failed submission_id=%s err=%v", res.Target.SubmissionID, err)
	}
	return nil
}

// resolve walks the source chain newest schema first and stops at the first
// hit. Only a miss in every source is a lookup failure.
func (s *Service) resolve(ctx context.Context, referenceID, sessionID string) (*Resolution, error) {
	for _, src := range s.sources {
		res, err := src.CompleteByReference(ctx, referenceID, sessionID)
		if err == nil {
			s.loggerf("level=info msg=payment completed source=%s submission_id=%s session_id=%s", src.Name(), res.Target.SubmissionID, sessionID)
			return res, nil
		}
		if errors.Is(err, ErrSubmissionNotFound) {
			continue
		}
		return nil, fmt.Errorf("source %s: %w", src.Name(), err)
	}
	s.loggerf("level=error msg=reference resolved in no source reference_id=%s", referenceID)
	return nil, ErrSubmissionNotFound
}

func paymentDetails(session stripe.CheckoutSession) notification.PaymentDetails {
	d := notification.PaymentDetails{
		SessionID:   session.ID,
		AmountTotal: session.AmountTotal,
		Currency:    string(session.Currency),
		Metadata:    session.Metadata,
	}
	if session.PaymentIntent != nil {
		d.PaymentIntentID = session.PaymentIntent.ID
	}
	if session.Created > 0 {
		d.Created = time.Unix(session.Created, 0).UTC()
	}
	return d
}
