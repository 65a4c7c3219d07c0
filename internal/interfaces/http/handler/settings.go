package handler

import (
	"github.com/gin-gonic/gin"
	settingsapp "github.com/openbooks/backend/internal/application/settings"
)

// SettingsHandler handles profile, policy, and SMTP settings endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetProfile retrieves the business profile for the tenant
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	profile, err := h.settingsService.GetProfile(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// SaveProfile creates or replaces the business profile
func (h *SettingsHandler) SaveProfile(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req settingsapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	profile, err := h.settingsService.SaveProfile(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// GetPolicy retrieves document numbering and terms policy
func (h *SettingsHandler) GetPolicy(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	policy, err := h.settingsService.GetPolicy(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policy)
}

// SavePolicy creates or replaces the numbering and terms policy
func (h *SettingsHandler) SavePolicy(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req settingsapp.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	policy, err := h.settingsService.SavePolicy(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policy)
}

// GetSMTP retrieves the outbound mail configuration with the password masked
func (h *SettingsHandler) GetSMTP(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	smtp, err := h.settingsService.GetSMTP(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, smtp)
}

// SaveSMTP creates or replaces the outbound mail configuration
func (h *SettingsHandler) SaveSMTP(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req settingsapp.UpdateSMTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	smtp, err := h.settingsService.SaveSMTP(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, smtp)
}

// SendEmail sends an email through the tenant's configured SMTP server
func (h *SettingsHandler) SendEmail(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req settingsapp.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.settingsService.SendEmail(c.Request.Context(), tenantID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"sent": true})
}
