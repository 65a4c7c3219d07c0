package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	partnerapp "github.com/openbooks/backend/internal/application/partner"
)

// PurchaserHandler handles purchaser API endpoints
type PurchaserHandler struct {
	BaseHandler
	purchaserService *partnerapp.PurchaserService
}

// NewPurchaserHandler creates a new PurchaserHandler
func NewPurchaserHandler(purchaserService *partnerapp.PurchaserService) *PurchaserHandler {
	return &PurchaserHandler{purchaserService: purchaserService}
}

// Create creates a new purchaser
func (h *PurchaserHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req partnerapp.CreatePurchaserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	purchaser, err := h.purchaserService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, purchaser)
}

// GetByID retrieves a purchaser by ID
func (h *PurchaserHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	purchaserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchaser ID format")
		return
	}

	purchaser, err := h.purchaserService.GetByID(c.Request.Context(), tenantID, purchaserID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchaser)
}

// GetByCode retrieves a purchaser by its code
func (h *PurchaserHandler) GetByCode(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Purchaser code is required")
		return
	}

	purchaser, err := h.purchaserService.GetByCode(c.Request.Context(), tenantID, code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchaser)
}

// List retrieves a paginated list of purchasers
func (h *PurchaserHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter partnerapp.PurchaserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	purchasers, total, err := h.purchaserService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, purchasers, total, filter.Page, filter.PageSize)
}

// Update updates a purchaser
func (h *PurchaserHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	purchaserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchaser ID format")
		return
	}

	var req partnerapp.UpdatePurchaserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	purchaser, err := h.purchaserService.Update(c.Request.Context(), tenantID, purchaserID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchaser)
}

// Activate marks a purchaser as active
func (h *PurchaserHandler) Activate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	purchaserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchaser ID format")
		return
	}

	purchaser, err := h.purchaserService.Activate(c.Request.Context(), tenantID, purchaserID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchaser)
}

// Deactivate marks a purchaser as inactive
func (h *PurchaserHandler) Deactivate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	purchaserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchaser ID format")
		return
	}

	purchaser, err := h.purchaserService.Deactivate(c.Request.Context(), tenantID, purchaserID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchaser)
}

// Delete deletes a purchaser after explicit confirmation
func (h *PurchaserHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	purchaserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchaser ID format")
		return
	}

	if !confirmedDelete(c) {
		h.ConfirmationRequired(c)
		return
	}

	if err := h.purchaserService.Delete(c.Request.Context(), tenantID, purchaserID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
