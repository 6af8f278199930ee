package transport

import "github.com/google/uuid"

// Tracking carries page and campaign metadata captured by the website.
// Stored verbatim.
type Tracking struct {
	UTMSource   *string `json:"utmSource,omitempty" validate:"omitempty,max=200"`
	UTMMedium   *string `json:"utmMedium,omitempty" validate:"omitempty,max=200"`
	UTMCampaign *string `json:"utmCampaign,omitempty" validate:"omitempty,max=200"`
	Referrer    *string `json:"referrer,omitempty" validate:"omitempty,max=2000"`
	PageURL     *string `json:"pageUrl,omitempty" validate:"omitempty,max=2000"`
}

// ContactRequest is the general contact form payload. Phone and email are
// both required on this surface.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Email   string  `json:"email" validate:"required,email,max=254"`
	Phone   string  `json:"phone" validate:"required,min=6,max=30"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,min=1,max=5000"`

	PreferredContactMethod *string `json:"preferredContactMethod,omitempty" validate:"omitempty,max=30"`
	PreferredContactTime   *string `json:"preferredContactTime,omitempty" validate:"omitempty,max=100"`

	Tracking
}

// TradeInDetails describes the customer's current vehicle.
type TradeInDetails struct {
	Year     *int     `json:"year,omitempty" validate:"omitempty,gte=1000,lte=9999"`
	Make     *string  `json:"make,omitempty" validate:"omitempty,max=100"`
	Model    *string  `json:"model,omitempty" validate:"omitempty,max=100"`
	Odometer *float64 `json:"odometer,omitempty" validate:"omitempty,gte=0"`
}

// FinanceDetails carries the calculator inputs the customer submitted with
// the enquiry. When the enquiry names a vehicle the repayment figures are
// recomputed server side from its listed price; otherwise the submitted
// figures are kept as-is.
type FinanceDetails struct {
	Deposit           float64  `json:"deposit" validate:"gte=0"`
	TermMonths        *int     `json:"termMonths,omitempty" validate:"omitempty,gt=0,lte=120"`
	AnnualRatePercent *float64 `json:"annualRatePercent,omitempty" validate:"omitempty,gte=0,lte=50"`
	Monthly           *float64 `json:"monthly,omitempty" validate:"omitempty,gte=0"`
	Weekly            *float64 `json:"weekly,omitempty" validate:"omitempty,gte=0"`
}

// EnquiryRequest is the vehicle enquiry payload. Mobile is required on this
// surface, email is optional.
type EnquiryRequest struct {
	EnquiryType string  `json:"enquiryType" validate:"omitempty,max=50"`
	FirstName   string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName    string  `json:"lastName" validate:"required,min=1,max=100"`
	Mobile      string  `json:"mobile" validate:"required,min=6,max=30"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=5000"`

	VehicleID      *uuid.UUID `json:"vehicleId,omitempty"`
	WantsTestDrive bool       `json:"wantsTestDrive"`

	HasTradeIn bool            `json:"hasTradeIn"`
	TradeIn    *TradeInDetails `json:"tradeIn,omitempty"`

	WantsFinance bool            `json:"wantsFinance"`
	Finance      *FinanceDetails `json:"finance,omitempty"`

	PreferredContactMethod *string `json:"preferredContactMethod,omitempty" validate:"omitempty,max=30"`
	PreferredContactTime   *string `json:"preferredContactTime,omitempty" validate:"omitempty,max=100"`

	Tracking
}

// SellRequest is the sell-your-vehicle payload. Follows the enquiry
// surface rules with the vehicle details required.
type SellRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string  `json:"lastName" validate:"required,min=1,max=100"`
	Mobile    string  `json:"mobile" validate:"required,min=6,max=30"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Message   *string `json:"message,omitempty" validate:"omitempty,max=5000"`

	Year     int      `json:"year" validate:"required,gte=1000,lte=9999"`
	Make     string   `json:"make" validate:"required,min=1,max=100"`
	Model    string   `json:"model" validate:"required,min=1,max=100"`
	Odometer *float64 `json:"odometer,omitempty" validate:"omitempty,gte=0"`

	PreferredContactMethod *string `json:"preferredContactMethod,omitempty" validate:"omitempty,max=30"`
	PreferredContactTime   *string `json:"preferredContactTime,omitempty" validate:"omitempty,max=100"`

	Tracking
}

// EnquiryResponse acknowledges a persisted enquiry.
type EnquiryResponse struct {
	ID          uuid.UUID `json:"id"`
	EnquiryType string    `json:"enquiryType"`
	Status      string    `json:"status"`
}
