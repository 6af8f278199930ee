package finance

import (
	"math"
	"testing"
)

func TestCalculate_StandardLoan(t *testing.T) {
	est := Calculate(50000, 5000, 60, 5.99)

	if math.Abs(est.Monthly-869.84) > 1 {
		t.Fatalf("expected monthly near 869.84, got %.2f", est.Monthly)
	}
	if math.Abs(est.Weekly-200.73) > 1 {
		t.Fatalf("expected weekly near 200.73, got %.2f", est.Weekly)
	}
	if math.Abs(est.Weekly-est.Monthly*12/52) > 0.001 {
		t.Fatalf("weekly %.4f is not monthly*12/52 (%.4f)", est.Weekly, est.Monthly*12/52)
	}
}

func TestCalculate_ZeroRateIsStraightLine(t *testing.T) {
	est := Calculate(12000, 0, 12, 0)

	if est.Monthly != 1000 {
		t.Fatalf("expected monthly 1000, got %.2f", est.Monthly)
	}
}

func TestCalculate_DepositCoversPrice(t *testing.T) {
	est := Calculate(20000, 20000, 60, 5.99)

	if est.Monthly != 0 || est.Weekly != 0 {
		t.Fatalf("expected zero estimate, got monthly %.2f weekly %.2f", est.Monthly, est.Weekly)
	}
}

func TestCalculate_DepositExceedsPrice(t *testing.T) {
	est := Calculate(20000, 25000, 60, 5.99)

	if est.Monthly != 0 || est.Weekly != 0 {
		t.Fatalf("expected zero estimate, got monthly %.2f weekly %.2f", est.Monthly, est.Weekly)
	}
}

func TestCalculate_NonPositiveTerm(t *testing.T) {
	if est := Calculate(20000, 0, 0, 5.99); est.Monthly != 0 {
		t.Fatalf("expected zero estimate for zero term, got %.2f", est.Monthly)
	}
	if est := Calculate(20000, 0, -12, 5.99); est.Monthly != 0 {
		t.Fatalf("expected zero estimate for negative term, got %.2f", est.Monthly)
	}
}
