// Package repository persists enquiry records in PostgreSQL.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the pgx-backed enquiry repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates the enquiry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, params CreateEnquiryParams) (Enquiry, error) {
	var e Enquiry
	err := r.pool.QueryRow(ctx, `
		INSERT INTO enquiries (
			enquiry_type, first_name, last_name, mobile, email, subject, message,
			preferred_contact_method, preferred_contact_time,
			vehicle_id, snapshot_make, snapshot_model, snapshot_year, snapshot_price, wants_test_drive,
			has_trade_in, trade_in_year, trade_in_make, trade_in_model, trade_in_odometer,
			wants_finance, finance_deposit, finance_term_months, finance_annual_rate, finance_monthly, finance_weekly,
			utm_source, utm_medium, utm_campaign, referrer, page_url, ip_address
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32
		)
		RETURNING id, enquiry_type, first_name, last_name, mobile, email, subject, message,
			preferred_contact_method, preferred_contact_time,
			vehicle_id, snapshot_make, snapshot_model, snapshot_year, snapshot_price, wants_test_drive,
			has_trade_in, trade_in_year, trade_in_make, trade_in_model, trade_in_odometer,
			wants_finance, finance_deposit, finance_term_months, finance_annual_rate, finance_monthly, finance_weekly,
			utm_source, utm_medium, utm_campaign, referrer, page_url, ip_address,
			status, created_at, updated_at
	`,
		params.EnquiryType, params.FirstName, params.LastName, params.Mobile, params.Email, params.Subject, params.Message,
		params.PreferredContactMethod, params.PreferredContactTime,
		params.VehicleID, params.SnapshotMake, params.SnapshotModel, params.SnapshotYear, params.SnapshotPrice, params.WantsTestDrive,
		params.HasTradeIn, params.TradeInYear, params.TradeInMake, params.TradeInModel, params.TradeInOdometer,
		params.WantsFinance, params.FinanceDeposit, params.FinanceTermMonths, params.FinanceAnnualRate, params.FinanceMonthly, params.FinanceWeekly,
		params.UTMSource, params.UTMMedium, params.UTMCampaign, params.Referrer, params.PageURL, params.IPAddress,
	).Scan(
		&e.ID, &e.EnquiryType, &e.FirstName, &e.LastName, &e.Mobile, &e.Email, &e.Subject, &e.Message,
		&e.PreferredContactMethod, &e.PreferredContactTime,
		&e.VehicleID, &e.SnapshotMake, &e.SnapshotModel, &e.SnapshotYear, &e.SnapshotPrice, &e.WantsTestDrive,
		&e.HasTradeIn, &e.TradeInYear, &e.TradeInMake, &e.TradeInModel, &e.TradeInOdometer,
		&e.WantsFinance, &e.FinanceDeposit, &e.FinanceTermMonths, &e.FinanceAnnualRate, &e.FinanceMonthly, &e.FinanceWeekly,
		&e.UTMSource, &e.UTMMedium, &e.UTMCampaign, &e.Referrer, &e.PageURL, &e.IPAddress,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return Enquiry{}, err
	}

	return e, nil
}

var _ Repository = (*Repo)(nil)
