// Package email delivers staff notifications for new enquiries.
package email

import "context"

// LeadNotification carries the fields rendered into the staff email.
type LeadNotification struct {
	EnquiryType  string
	FirstName    string
	LastName     string
	Mobile       string
	Email        string
	Message      string
	VehicleLabel string
	PageURL      string
}

// Sender delivers a notification about a newly persisted enquiry.
type Sender interface {
	SendLeadNotification(ctx context.Context, n LeadNotification) error
}

// NoopSender is used when SMTP is not configured. Sends succeed silently.
type NoopSender struct{}

func (NoopSender) SendLeadNotification(context.Context, LeadNotification) error {
	return nil
}

var _ Sender = NoopSender{}
