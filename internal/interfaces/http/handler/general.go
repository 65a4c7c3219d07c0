package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/openbooks/backend/internal/application/catalog"
)

// GeneralHandler handles taxonomy API endpoints
type GeneralHandler struct {
	BaseHandler
	generalService *catalogapp.GeneralService
}

// NewGeneralHandler creates a new GeneralHandler
func NewGeneralHandler(generalService *catalogapp.GeneralService) *GeneralHandler {
	return &GeneralHandler{generalService: generalService}
}

// Create creates a new taxonomy entry
func (h *GeneralHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req catalogapp.CreateGeneralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	general, err := h.generalService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, general)
}

// GetByID retrieves a taxonomy entry by ID
func (h *GeneralHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	generalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	general, err := h.generalService.GetByID(c.Request.Context(), tenantID, generalID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, general)
}

// GetByGroup retrieves all entries of a taxonomy group
func (h *GeneralHandler) GetByGroup(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	groupName := c.Param("group")
	if groupName == "" {
		h.BadRequest(c, "Group name is required")
		return
	}

	generals, err := h.generalService.GetByGroup(c.Request.Context(), tenantID, groupName)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, generals)
}

// List retrieves a paginated list of taxonomy entries
func (h *GeneralHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter catalogapp.GeneralListFilter
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

	generals, total, err := h.generalService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, generals, total, filter.Page, filter.PageSize)
}

// Update updates a taxonomy entry
func (h *GeneralHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	generalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	var req catalogapp.UpdateGeneralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	general, err := h.generalService.Update(c.Request.Context(), tenantID, generalID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, general)
}

// Delete deletes a taxonomy entry after explicit confirmation
func (h *GeneralHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	generalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	if !confirmedDelete(c) {
		h.ConfirmationRequired(c)
		return
	}

	if err := h.generalService.Delete(c.Request.Context(), tenantID, generalID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
