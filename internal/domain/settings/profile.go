package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// Profile holds the tenant's business identity shown on printed
// documents. One row per tenant.
type Profile struct {
	shared.TenantAggregateRoot
	BusinessName string `gorm:"type:varchar(200);not null"`
	OwnerName    string `gorm:"type:varchar(200)"`
	Phone        string `gorm:"type:varchar(50)"`
	Email        string `gorm:"type:varchar(254)"`
	Address      string `gorm:"type:varchar(500)"`
	Website      string `gorm:"type:varchar(200)"`
	TaxNumber    string `gorm:"type:varchar(100)"`
	LogoURL      string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}

// NewProfile creates a new business profile
func NewProfile(tenantID uuid.UUID, businessName string) (*Profile, error) {
	if businessName == "" {
		return nil, shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot be empty")
	}
	if len(businessName) > 200 {
		return nil, shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot exceed 200 characters")
	}

	return &Profile{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BusinessName:        businessName,
	}, nil
}

// Update updates the profile fields
func (p *Profile) Update(businessName, ownerName, phone, email, address, website, taxNumber, logoURL string) error {
	if businessName == "" {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot be empty")
	}
	if len(businessName) > 200 {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot exceed 200 characters")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	p.BusinessName = businessName
	p.OwnerName = ownerName
	p.Phone = phone
	p.Email = email
	p.Address = address
	p.Website = website
	p.TaxNumber = taxNumber
	p.LogoURL = logoURL
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
