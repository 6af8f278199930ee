package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"autohaus_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

const sendTimeout = 10 * time.Second

// SMTPSender sends staff notifications over SMTP.
type SMTPSender struct {
	cfg  config.EmailConfig
	tmpl *template.Template
}

// NewSender returns an SMTP sender, or a NoopSender when email is disabled.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	return &SMTPSender{cfg: cfg, tmpl: tmpl}, nil
}

// SendLeadNotification emails the staff inbox about a new enquiry.
func (s *SMTPSender) SendLeadNotification(ctx context.Context, n LeadNotification) error {
	var body bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&body, "lead_notification.html", n); err != nil {
		return fmt.Errorf("render lead notification: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.cfg.GetEmailFromName(), s.cfg.GetEmailFromAddress()); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(s.cfg.GetStaffNotifyAddress()); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subjectFor(n))
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.GetSMTPPort()),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	}
	if s.cfg.GetSMTPUsername() != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.GetSMTPUsername()),
			gomail.WithPassword(s.cfg.GetSMTPPassword()),
		)
	}

	client, err := gomail.NewClient(s.cfg.GetSMTPHost(), opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}
	return nil
}

func subjectFor(n LeadNotification) string {
	switch n.EnquiryType {
	case "sell_vehicle":
		return "New sell-your-vehicle enquiry"
	case "test_drive":
		return "New test drive request"
	case "finance":
		return "New finance enquiry"
	case "trade_in":
		return "New trade-in enquiry"
	case "vehicle_interest":
		return "New vehicle enquiry"
	default:
		return "New website enquiry"
	}
}

var _ Sender = (*SMTPSender)(nil)
