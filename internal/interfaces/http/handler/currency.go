package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/openbooks/backend/internal/application/catalog"
)

// CurrencyHandler handles currency API endpoints
type CurrencyHandler struct {
	BaseHandler
	currencyService *catalogapp.CurrencyService
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(currencyService *catalogapp.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// Create creates a new currency
func (h *CurrencyHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req catalogapp.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	currency, err := h.currencyService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, currency)
}

// GetByID retrieves a currency by ID
func (h *CurrencyHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	currencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid currency ID format")
		return
	}

	currency, err := h.currencyService.GetByID(c.Request.Context(), tenantID, currencyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, currency)
}

// List retrieves all currencies for the tenant
func (h *CurrencyHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	currencies, err := h.currencyService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, currencies)
}

// Update updates a currency
func (h *CurrencyHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	currencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid currency ID format")
		return
	}

	var req catalogapp.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	currency, err := h.currencyService.Update(c.Request.Context(), tenantID, currencyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, currency)
}

// SetDefault marks a currency as the tenant default
func (h *CurrencyHandler) SetDefault(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	currencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid currency ID format")
		return
	}

	currency, err := h.currencyService.SetDefault(c.Request.Context(), tenantID, currencyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, currency)
}

// Delete deletes a currency after explicit confirmation
func (h *CurrencyHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	currencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid currency ID format")
		return
	}

	if !confirmedDelete(c) {
		h.ConfirmationRequired(c)
		return
	}

	if err := h.currencyService.Delete(c.Request.Context(), tenantID, currencyID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
