// Package finance provides the loan repayment estimate shared by every
// surface that quotes finance figures. Pure, stateless, deterministic.
package finance

import "math"

// Estimate holds periodic repayment amounts as floating-point currency.
// Callers round for display.
type Estimate struct {
	Monthly float64 `json:"monthly"`
	Weekly  float64 `json:"weekly"`
}

// Calculate computes the estimated repayments for an amortizing loan.
// A non-positive principal or any degenerate input yields a zero estimate
// rather than NaN/Inf so the caller always has a displayable number.
func Calculate(price, deposit float64, termMonths int, annualRatePercent float64) Estimate {
	principal := price - deposit
	if principal <= 0 || termMonths <= 0 {
		return Estimate{}
	}

	var monthly float64
	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		monthly = principal / float64(termMonths)
	} else {
		growth := math.Pow(1+monthlyRate, float64(termMonths))
		monthly = principal * monthlyRate * growth / (growth - 1)
	}

	if math.IsNaN(monthly) || math.IsInf(monthly, 0) {
		return Estimate{}
	}

	return Estimate{
		Monthly: monthly,
		Weekly:  monthly * 12 / 52,
	}
}
