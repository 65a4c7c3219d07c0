package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	locationapp "github.com/openbooks/backend/internal/application/location"
)

// CabinetHandler handles cabinet API endpoints
type CabinetHandler struct {
	BaseHandler
	cabinetService *locationapp.CabinetService
}

// NewCabinetHandler creates a new CabinetHandler
func NewCabinetHandler(cabinetService *locationapp.CabinetService) *CabinetHandler {
	return &CabinetHandler{cabinetService: cabinetService}
}

// Create creates a new cabinet
func (h *CabinetHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req locationapp.CreateCabinetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cabinet, err := h.cabinetService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cabinet)
}

// GetByID retrieves a cabinet by ID
func (h *CabinetHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	cabinetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cabinet ID format")
		return
	}

	cabinet, err := h.cabinetService.GetByID(c.Request.Context(), tenantID, cabinetID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cabinet)
}

// List retrieves a paginated list of cabinets, optionally scoped to a
// warehouse via the warehouse_id query parameter
func (h *CabinetHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var warehouseID *uuid.UUID
	if raw := c.Query("warehouse_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid warehouse ID format")
			return
		}
		warehouseID = &id
	}

	page, pageSize := pageParams(c)
	cabinets, total, err := h.cabinetService.List(c.Request.Context(), tenantID, warehouseID, page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, cabinets, total, page, pageSize)
}

// Update updates a cabinet
func (h *CabinetHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	cabinetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cabinet ID format")
		return
	}

	var req locationapp.UpdateCabinetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cabinet, err := h.cabinetService.Update(c.Request.Context(), tenantID, cabinetID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cabinet)
}

// Delete deletes an empty cabinet after explicit confirmation
func (h *CabinetHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	cabinetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cabinet ID format")
		return
	}

	if !confirmedDelete(c) {
		h.ConfirmationRequired(c)
		return
	}

	if err := h.cabinetService.Delete(c.Request.Context(), tenantID, cabinetID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
