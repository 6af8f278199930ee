package finance

import (
	"net/http"

	"autohaus_backend/platform/httpkit"
	"autohaus_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultTermMonths matches the pre-filled term on the website calculator.
	DefaultTermMonths = 60
	// DefaultAnnualRatePercent matches the pre-filled comparison rate.
	DefaultAnnualRatePercent = 5.99
)

// Handler serves repayment estimates.
type Handler struct {
	val *validator.Validator
}

// NewHandler creates the finance handler.
func NewHandler(val *validator.Validator) *Handler {
	return &Handler{val: val}
}

// Estimate handles POST /finance/estimate.
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid input", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "Invalid input", validator.FieldErrors(err))
		return
	}

	term := DefaultTermMonths
	if req.TermMonths != nil {
		term = *req.TermMonths
	}
	rate := DefaultAnnualRatePercent
	if req.AnnualRatePercent != nil {
		rate = *req.AnnualRatePercent
	}

	est := Calculate(req.Price, req.Deposit, term, rate)

	principal := req.Price - req.Deposit
	if principal < 0 {
		principal = 0
	}

	httpkit.OK(c, EstimateResponse{
		Principal:         principal,
		TermMonths:        term,
		AnnualRatePercent: rate,
		Monthly:           est.Monthly,
		Weekly:            est.Weekly,
	})
}
