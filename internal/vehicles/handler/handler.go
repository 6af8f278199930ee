// Package handler exposes vehicle listing endpoints.
package handler

import (
	"net/http"

	"autohaus_backend/internal/vehicles/service"
	"autohaus_backend/internal/vehicles/transport"
	"autohaus_backend/platform/httpkit"
	"autohaus_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidInput = "Invalid input"

// Handler handles vehicle HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a vehicle handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List handles GET /vehicles with browse filters.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Featured handles GET /vehicles/featured.
func (h *Handler) Featured(c *gin.Context) {
	items, err := h.svc.Featured(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"items": items})
}

// Get handles GET /vehicles/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid vehicle id", nil)
		return
	}

	vehicle, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, vehicle)
}

// Create handles POST /admin/vehicles.
func (h *Handler) Create(c *gin.Context) {
	req, ok := h.bindSaveRequest(c)
	if !ok {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, created)
}

// Update handles PUT /admin/vehicles/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid vehicle id", nil)
		return
	}

	req, ok := h.bindSaveRequest(c)
	if !ok {
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, updated)
}

// Delete handles DELETE /admin/vehicles/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid vehicle id", nil)
		return
	}

	if httpkit.HandleError(c, h.svc.Delete(c.Request.Context(), id)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "deleted"})
}

func (h *Handler) bindSaveRequest(c *gin.Context) (transport.SaveVehicleRequest, bool) {
	var req transport.SaveVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgInvalidInput, validator.FieldErrors(err))
		return req, false
	}
	return req, true
}
