package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"chatflows/internal/domain"
)

func planName(p domain.Plan) string {
	switch p {
	case domain.PlanStarter:
		return "Starter Plan"
	case domain.PlanPro:
		return "Pro Plan"
	case domain.PlanProPlus:
		return "Pro Plus Plan"
	default:
		return string(p)
	}
}

func planPrice(p domain.Plan) string {
	switch p {
	case domain.PlanStarter:
		return "$100/month"
	case domain.PlanPro:
		return "$150/month"
	case domain.PlanProPlus:
		return "$200/month"
	default:
		return ""
	}
}

func formatAmount(amountTotal int64, currency string) string {
	if amountTotal <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2f %s", float64(amountTotal)/100, strings.ToUpper(currency))
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background:#f8fafc;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;">
    <div style="background:linear-gradient(135deg,#10F2B0 0%,#00D0FF 100%);padding:40px 20px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;">Welcome to AIChatFlows!</h1>
      <p style="color:#e2e8f0;margin:16px 0 0 0;">Thank you for submitting your onboarding form</p>
    </div>
    <div style="padding:40px 20px;">
      <h2 style="color:#1f2937;">Your Setup is Starting</h2>
      <p style="color:#6b7280;">We've received the onboarding form for <strong>{{.BusinessName}}</strong> and our team is beginning the setup of your AI-powered customer service assistant{{if .InstagramHandle}} for @{{.InstagramHandle}}{{end}}.</p>
      <div style="background:#f0f9ff;border-left:4px solid #3b82f6;padding:20px;margin:32px 0;">
        <h3 style="color:#1e40af;margin:0 0 12px 0;">Next Steps</h3>
        <ul style="color:#1e40af;margin:0;padding-left:20px;">
          <li>Complete your payment to activate your account</li>
          <li>We'll prepare your social media integrations</li>
          <li>Receive your login credentials within 24 hours</li>
        </ul>
      </div>
      <div style="background:#f9fafb;padding:24px;margin:32px 0;">
        <h3 style="color:#1f2937;margin:0 0 16px 0;">Your Selected Plan</h3>
        <p style="color:#374151;margin:0;font-weight:600;">{{.PlanName}}</p>
      </div>
      <p style="color:#6b7280;text-align:center;">Questions? We're here to help: {{.AdminEmail}}</p>
    </div>
  </div>
</body>
</html>`))

type welcomeData struct {
	BusinessName    string
	InstagramHandle string
	PlanName        string
	AdminEmail      string
}

var adminAlertTmpl = template.Must(template.New("adminAlert").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background:#f8fafc;">
  <div style="max-width:700px;margin:0 auto;background:#ffffff;">
    <div style="background:linear-gradient(135deg,#10F2B0 0%,#00D0FF 100%);padding:30px 20px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;">New Client Onboarding Form</h1>
      <p style="color:#fef3c7;margin:12px 0 0 0;">{{.BusinessName}}</p>
    </div>
    <div style="padding:32px 20px;color:#374151;">
      <h2 style="border-bottom:2px solid #10F2B0;padding-bottom:8px;">Business Info</h2>
      <p><strong>Name:</strong> {{.BusinessName}}</p>
      <p><strong>Instagram:</strong> {{.InstagramHandle}}</p>
      {{if .OtherPlatforms}}<p><strong>Other Platforms:</strong> {{.OtherPlatforms}}</p>{{end}}
      <p><strong>Type:</strong> {{.BusinessType}}{{if .BusinessTypeOther}} ({{.BusinessTypeOther}}){{end}}</p>
      <p><strong>Email:</strong> {{.Email}}</p>

      <h2 style="border-bottom:2px solid #00D0FF;padding-bottom:8px;">Product Categories</h2>
      <p>{{.ProductCategories}}</p>

      <h2 style="border-bottom:2px solid #10F2B0;padding-bottom:8px;">Customer Questions</h2>
      <p>{{.CustomerQuestions}}</p>

      <h2 style="border-bottom:2px solid #00D0FF;padding-bottom:8px;">Delivery Method</h2>
      <p><strong>Method:</strong> {{.DeliveryPickup}}</p>
      {{if .DeliveryOptions}}<p><strong>Delivery Options:</strong> {{.DeliveryOptions}}</p>{{end}}
      {{if .PickupOptions}}<p><strong>Pickup Options:</strong> {{.PickupOptions}}</p>{{end}}
      {{if .DeliveryNotes}}<p><strong>Notes:</strong> {{.DeliveryNotes}}</p>{{end}}

      <h2 style="border-bottom:2px solid #10F2B0;padding-bottom:8px;">Menu &amp; Docs</h2>
      {{if .MenuFileURL}}<p><strong>Menu File:</strong> <a href="{{.MenuFileURL}}">Download</a></p>{{else}}<p><strong>Menu uploaded:</strong> no</p>{{end}}
      {{if .MenuDescription}}<p><strong>Additional Notes:</strong> {{.MenuDescription}}</p>{{end}}
      {{if .DocumentURLs}}
      <p><strong>Additional Documents:</strong></p>
      <ul>{{range .DocumentURLs}}<li><a href="{{.}}">{{.}}</a></li>{{end}}</ul>
      {{end}}

      <h2 style="border-bottom:2px solid #00D0FF;padding-bottom:8px;">FAQs</h2>
      {{if .FAQFileURL}}<p><strong>FAQ File:</strong> <a href="{{.FAQFileURL}}">Download</a></p>{{else}}<p><strong>FAQ file uploaded:</strong> no</p>{{end}}
      {{if .FAQContent}}<p><strong>Text Content:</strong> {{.FAQContent}}</p>{{end}}

      <h2 style="border-bottom:2px solid #10F2B0;padding-bottom:8px;">Plan Selected</h2>
      <p style="font-weight:600;">{{.PlanName}} &ndash; {{.PlanPrice}}</p>

      <h2 style="border-bottom:2px solid #00D0FF;padding-bottom:8px;">Credential Sharing</h2>
      <p><strong>Option Chosen:</strong> {{.CredentialSharing}}</p>
      {{if .CredentialsProvided}}<p><strong>Credentials:</strong> [Provided]</p>{{end}}

      <div style="background:#fafafa;border:2px dashed #d1d5db;padding:16px;font-family:monospace;font-size:12px;">
        <p><strong>Submission ID:</strong> {{.SubmissionID}}</p>
        <p>Menu: {{if .MenuFileURL}}uploaded{{else}}not uploaded{{end}} | FAQ: {{if .FAQFileURL}}uploaded{{else}}not uploaded{{end}} | Additional: {{len .DocumentURLs}} file(s)</p>
      </div>

      <div style="background:#fee2e2;border:1px solid #fca5a5;padding:20px;text-align:center;margin-top:24px;">
        <p style="color:#dc2626;font-weight:600;margin:0;">Action Required: Set up {{.BusinessName}}'s account</p>
      </div>
    </div>
  </div>
</body>
</html>`))

type adminAlertData struct {
	SubmissionID        string
	BusinessName        string
	Email               string
	InstagramHandle     string
	OtherPlatforms      string
	BusinessType        string
	BusinessTypeOther   string
	ProductCategories   string
	CustomerQuestions   string
	DeliveryPickup      string
	DeliveryOptions     string
	PickupOptions       string
	DeliveryNotes       string
	MenuDescription     string
	MenuFileURL         string
	FAQFileURL          string
	FAQContent          string
	DocumentURLs        []string
	PlanName            string
	PlanPrice           string
	CredentialSharing   string
	CredentialsProvided bool
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background:#f8fafc;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;">
    <div style="background:linear-gradient(135deg,#10F2B0 0%,#00D0FF 100%);padding:40px 20px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;">Payment Confirmed!</h1>
      <p style="color:#d1fae5;margin:16px 0 0 0;">Your AIChatFlows account is now active</p>
    </div>
    <div style="padding:40px 20px;">
      <div style="background:#f0fdf4;border:1px solid #10F2B0;padding:24px;">
        <h3 style="color:#047857;margin:0 0 16px 0;">Your Receipt</h3>
        <p style="color:#374151;"><strong>Business:</strong> {{.BusinessName}}</p>
        <p style="color:#374151;"><strong>Plan:</strong> {{.PlanName}}</p>
        <p style="color:#374151;"><strong>Amount Charged:</strong> {{.PlanPrice}}</p>
        <p style="color:#374151;"><strong>Payment Date:</strong> {{.PaymentDate}}</p>
        <p style="color:#374151;"><strong>Status:</strong> Paid</p>
        {{if .TransactionID}}<p style="color:#6b7280;font-size:14px;"><strong>Transaction ID:</strong> {{.TransactionID}}</p>{{end}}
        {{if .Currency}}<p style="color:#6b7280;font-size:14px;"><strong>Currency:</strong> {{.Currency}}</p>{{end}}
      </div>
      <div style="background:#ecfdf5;border-left:4px solid #10F2B0;padding:20px;margin:32px 0;">
        <h3 style="color:#059669;margin:0 0 12px 0;">What's Next?</h3>
        <ul style="color:#065f46;margin:0;padding-left:20px;">
          <li>Our team is preparing your account setup</li>
          <li>You'll receive login credentials within 24 hours</li>
          <li>Your AI assistant will start helping customers</li>
        </ul>
      </div>
      <p style="color:#6b7280;text-align:center;">Need support? {{.AdminEmail}}</p>
    </div>
  </div>
</body>
</html>`))

type receiptData struct {
	BusinessName  string
	PlanName      string
	PlanPrice     string
	PaymentDate   string
	TransactionID string
	Currency      string
	AdminEmail    string
}

var paymentAdminTmpl = template.Must(template.New("paymentAdmin").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background:#f8fafc;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;">
    <div style="background:linear-gradient(135deg,#10F2B0 0%,#00D0FF 100%);padding:30px 20px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;">Payment Received</h1>
      <p style="color:#d1fae5;margin:12px 0 0 0;">{{.BusinessName}}</p>
    </div>
    <div style="padding:32px 20px;color:#374151;">
      <div style="background:#f0f9ff;border:1px solid #c7d2fe;padding:24px;">
        <h3 style="color:#1e40af;margin:0 0 16px 0;">Payment Information</h3>
        <p><strong>Business:</strong> {{.BusinessName}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Plan:</strong> {{.PlanName}}</p>
        {{if .Amount}}<p><strong>Amount:</strong> {{.Amount}}</p>{{else}}<p><strong>Amount:</strong> {{.PlanPrice}}</p>{{end}}
        <p><strong>Timestamp:</strong> {{.Timestamp}}</p>
        {{if .SessionID}}<p><strong>Stripe Session:</strong> {{.SessionID}}</p>{{end}}
        {{if .PaymentIntentID}}<p><strong>Payment Intent:</strong> {{.PaymentIntentID}}</p>{{end}}
      </div>
      {{if .Metadata}}
      <div style="background:#f9fafb;border:1px solid #e5e7eb;padding:20px;margin-top:24px;">
        <h3 style="color:#374151;margin:0 0 12px 0;">Stripe Metadata</h3>
        {{range $k, $v := .Metadata}}<p style="font-family:monospace;font-size:12px;margin:2px 0;">{{$k}}: {{$v}}</p>{{end}}
      </div>
      {{end}}
      <div style="background:#fef3c7;border:1px solid #fcd34d;padding:20px;text-align:center;margin-top:24px;">
        <p style="color:#92400e;font-weight:600;margin:0;">Action Required: Begin account setup for {{.BusinessName}}</p>
      </div>
    </div>
  </div>
</body>
</html>`))

type paymentAdminData struct {
	BusinessName    string
	Email           string
	PlanName        string
	PlanPrice       string
	Amount          string
	Timestamp       string
	SessionID       string
	PaymentIntentID string
	Metadata        map[string]string
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func joinWithOther(values []string, other string) string {
	joined := strings.Join(values, ", ")
	if strings.TrimSpace(other) != "" {
		if joined == "" {
			return other
		}
		joined += ", " + other
	}
	return joined
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
