package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Enquiry is a persisted lead submission.
type Enquiry struct {
	ID                     uuid.UUID
	EnquiryType            string
	FirstName              string
	LastName               string
	Mobile                 *string
	Email                  *string
	Subject                *string
	Message                *string
	PreferredContactMethod *string
	PreferredContactTime   *string

	VehicleID      *uuid.UUID
	SnapshotMake   *string
	SnapshotModel  *string
	SnapshotYear   *int
	SnapshotPrice  *float64
	WantsTestDrive bool

	HasTradeIn      bool
	TradeInYear     *int
	TradeInMake     *string
	TradeInModel    *string
	TradeInOdometer *float64

	WantsFinance      bool
	FinanceDeposit    *float64
	FinanceTermMonths *int
	FinanceAnnualRate *float64
	FinanceMonthly    *float64
	FinanceWeekly     *float64

	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	Referrer    *string
	PageURL     *string
	IPAddress   *string

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateEnquiryParams carries the normalized fields for a new enquiry.
type CreateEnquiryParams struct {
	EnquiryType            string
	FirstName              string
	LastName               string
	Mobile                 *string
	Email                  *string
	Subject                *string
	Message                *string
	PreferredContactMethod *string
	PreferredContactTime   *string

	VehicleID      *uuid.UUID
	SnapshotMake   *string
	SnapshotModel  *string
	SnapshotYear   *int
	SnapshotPrice  *float64
	WantsTestDrive bool

	HasTradeIn      bool
	TradeInYear     *int
	TradeInMake     *string
	TradeInModel    *string
	TradeInOdometer *float64

	WantsFinance      bool
	FinanceDeposit    *float64
	FinanceTermMonths *int
	FinanceAnnualRate *float64
	FinanceMonthly    *float64
	FinanceWeekly     *float64

	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	Referrer    *string
	PageURL     *string
	IPAddress   *string
}

// Repository persists enquiries.
type Repository interface {
	Create(ctx context.Context, params CreateEnquiryParams) (Enquiry, error)
}
