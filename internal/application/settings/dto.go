package settings

import (
	"time"

	"github.com/openbooks/backend/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Profile DTOs
// =============================================================================

// UpdateProfileRequest represents a request to save the business profile
type UpdateProfileRequest struct {
	BusinessName string `json:"business_name" binding:"required,min=1,max=200"`
	OwnerName    string `json:"owner_name" binding:"max=200"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email,max=254"`
	Address      string `json:"address" binding:"max=500"`
	Website      string `json:"website" binding:"max=200"`
	TaxNumber    string `json:"tax_number" binding:"max=100"`
	LogoURL      string `json:"logo_url" binding:"max=500"`
}

// ProfileResponse represents the business profile in API responses
type ProfileResponse struct {
	BusinessName string    `json:"business_name"`
	OwnerName    string    `json:"owner_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Website      string    `json:"website"`
	TaxNumber    string    `json:"tax_number"`
	LogoURL      string    `json:"logo_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToProfileResponse converts a domain profile to a response DTO
func ToProfileResponse(p *settings.Profile) ProfileResponse {
	return ProfileResponse{
		BusinessName: p.BusinessName,
		OwnerName:    p.OwnerName,
		Phone:        p.Phone,
		Email:        p.Email,
		Address:      p.Address,
		Website:      p.Website,
		TaxNumber:    p.TaxNumber,
		LogoURL:      p.LogoURL,
		UpdatedAt:    p.UpdatedAt,
	}
}

// =============================================================================
// Policy DTOs
// =============================================================================

// UpdatePolicyRequest represents a request to save billing policy
type UpdatePolicyRequest struct {
	DefaultTaxRate  decimal.Decimal `json:"default_tax_rate"`
	InvoicePrefix   string          `json:"invoice_prefix" binding:"required,min=1,max=20"`
	QuotePrefix     string          `json:"quote_prefix" binding:"required,min=1,max=20"`
	PaymentTermDays int             `json:"payment_term_days" binding:"min=0,max=365"`
	InvoiceNotes    string          `json:"invoice_notes"`
	QuoteNotes      string          `json:"quote_notes"`
}

// PolicyResponse represents billing policy in API responses
type PolicyResponse struct {
	DefaultTaxRate  decimal.Decimal `json:"default_tax_rate"`
	InvoicePrefix   string          `json:"invoice_prefix"`
	QuotePrefix     string          `json:"quote_prefix"`
	PaymentTermDays int             `json:"payment_term_days"`
	InvoiceNotes    string          `json:"invoice_notes"`
	QuoteNotes      string          `json:"quote_notes"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToPolicyResponse converts a domain policy to a response DTO
func ToPolicyResponse(p *settings.Policy) PolicyResponse {
	return PolicyResponse{
		DefaultTaxRate:  p.DefaultTaxRate,
		InvoicePrefix:   p.InvoicePrefix,
		QuotePrefix:     p.QuotePrefix,
		PaymentTermDays: p.PaymentTermDays,
		InvoiceNotes:    p.InvoiceNotes,
		QuoteNotes:      p.QuoteNotes,
		UpdatedAt:       p.UpdatedAt,
	}
}

// =============================================================================
// SMTP DTOs
// =============================================================================

// UpdateSMTPRequest represents a request to save SMTP settings.
// An empty password keeps the stored one.
type UpdateSMTPRequest struct {
	Host      string `json:"host" binding:"required,min=1,max=200"`
	Port      int    `json:"port" binding:"required,min=1,max=65535"`
	Username  string `json:"username" binding:"max=200"`
	Password  string `json:"password" binding:"max=200"`
	FromName  string `json:"from_name" binding:"max=200"`
	FromEmail string `json:"from_email" binding:"required,email,max=254"`
	UseTLS    bool   `json:"use_tls"`
}

// SMTPResponse represents SMTP settings in API responses.
// The password is never returned.
type SMTPResponse struct {
	Host        string    `json:"host"`
	Port        int       `json:"port"`
	Username    string    `json:"username"`
	HasPassword bool      `json:"has_password"`
	FromName    string    `json:"from_name"`
	FromEmail   string    `json:"from_email"`
	UseTLS      bool      `json:"use_tls"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToSMTPResponse converts a domain SMTP config to a response DTO
func ToSMTPResponse(c *settings.SMTPConfig) SMTPResponse {
	return SMTPResponse{
		Host:        c.Host,
		Port:        c.Port,
		Username:    c.Username,
		HasPassword: c.Password != "",
		FromName:    c.FromName,
		FromEmail:   c.FromEmail,
		UseTLS:      c.UseTLS,
		UpdatedAt:   c.UpdatedAt,
	}
}

// SendEmailRequest represents a request to send an email through the
// tenant's SMTP settings
type SendEmailRequest struct {
	To      []string `json:"to" binding:"required,min=1,dive,email"`
	Subject string   `json:"subject" binding:"required,min=1,max=200"`
	Body    string   `json:"body" binding:"required"`
	HTML    bool     `json:"html"`
}
