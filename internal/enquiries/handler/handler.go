// Package handler exposes the public lead intake endpoints.
package handler

import (
	"net/http"

	"autohaus_backend/internal/enquiries/service"
	"autohaus_backend/internal/enquiries/transport"
	"autohaus_backend/platform/httpkit"
	"autohaus_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles enquiry HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates the enquiry handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Contact handles POST /contact.
func (h *Handler) Contact(c *gin.Context) {
	var req transport.ContactRequest
	if !h.bind(c, &req) {
		return
	}

	created, err := h.svc.CreateContact(c.Request.Context(), req, c.ClientIP())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, created)
}

// Enquiry handles POST /enquiries.
func (h *Handler) Enquiry(c *gin.Context) {
	var req transport.EnquiryRequest
	if !h.bind(c, &req) {
		return
	}

	created, err := h.svc.CreateEnquiry(c.Request.Context(), req, c.ClientIP())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, created)
}

// Sell handles POST /sell.
func (h *Handler) Sell(c *gin.Context) {
	var req transport.SellRequest
	if !h.bind(c, &req) {
		return
	}

	created, err := h.svc.CreateSell(c.Request.Context(), req, c.ClientIP())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, created)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid input", nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "Invalid input", validator.FieldErrors(err))
		return false
	}
	return true
}
