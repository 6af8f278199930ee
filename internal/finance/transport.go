package finance

// EstimateRequest carries the calculator inputs. Term and rate fall back
// to the showroom defaults when omitted.
type EstimateRequest struct {
	Price             float64  `json:"price" validate:"required,gt=0"`
	Deposit           float64  `json:"deposit" validate:"gte=0"`
	TermMonths        *int     `json:"termMonths,omitempty" validate:"omitempty,gt=0,lte=120"`
	AnnualRatePercent *float64 `json:"annualRatePercent,omitempty" validate:"omitempty,gte=0,lte=50"`
}

// EstimateResponse echoes the resolved inputs next to the repayment figures
// so the caller can display the assumptions behind the quote.
type EstimateResponse struct {
	Principal         float64 `json:"principal"`
	TermMonths        int     `json:"termMonths"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	Monthly           float64 `json:"monthly"`
	Weekly            float64 `json:"weekly"`
}
