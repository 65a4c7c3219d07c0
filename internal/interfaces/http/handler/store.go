package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	locationapp "github.com/openbooks/backend/internal/application/location"
)

// StoreHandler handles store API endpoints
type StoreHandler struct {
	BaseHandler
	storeService *locationapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *locationapp.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Create creates a new store
func (h *StoreHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req locationapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, store)
}

// GetByID retrieves a store by ID
func (h *StoreHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.storeService.GetByID(c.Request.Context(), tenantID, storeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}

// List retrieves a paginated list of stores, optionally scoped to a
// cabinet via the cabinet_id query parameter
func (h *StoreHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var cabinetID *uuid.UUID
	if raw := c.Query("cabinet_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid cabinet ID format")
			return
		}
		cabinetID = &id
	}

	page, pageSize := pageParams(c)
	stores, total, err := h.storeService.List(c.Request.Context(), tenantID, cabinetID, page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, stores, total, page, pageSize)
}

// Update updates a store
func (h *StoreHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	var req locationapp.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	store, err := h.storeService.Update(c.Request.Context(), tenantID, storeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}

// Delete deletes an empty store after explicit confirmation
func (h *StoreHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	if !confirmedDelete(c) {
		h.ConfirmationRequired(c)
		return
	}

	if err := h.storeService.Delete(c.Request.Context(), tenantID, storeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
