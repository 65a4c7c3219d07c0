package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// PurchaserStatus represents the status of a purchaser
type PurchaserStatus string

const (
	PurchaserStatusActive   PurchaserStatus = "active"
	PurchaserStatusInactive PurchaserStatus = "inactive"
)

// Purchaser represents a buying agent responsible for procurement
type Purchaser struct {
	shared.TenantAggregateRoot
	Code    string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_purchaser_tenant_code,priority:2"`
	Name    string          `gorm:"type:varchar(200);not null"`
	Phone   string          `gorm:"type:varchar(50);index"`
	Email   string          `gorm:"type:varchar(200);index"`
	Remarks string          `gorm:"type:text"`
	Status  PurchaserStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Purchaser) TableName() string {
	return "purchasers"
}

// NewPurchaser creates a new purchaser with required fields
func NewPurchaser(tenantID uuid.UUID, code, name string) (*Purchaser, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Purchaser{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		Status:              PurchaserStatusActive,
	}, nil
}

// Update updates the purchaser's name
func (p *Purchaser) Update(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	p.Name = name
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetContact sets the purchaser's contact information
func (p *Purchaser) SetContact(phone, email string) error {
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	p.Phone = phone
	p.Email = email
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetRemarks sets the purchaser's remarks
func (p *Purchaser) SetRemarks(remarks string) {
	p.Remarks = remarks
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate activates the purchaser
func (p *Purchaser) Activate() error {
	if p.Status == PurchaserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Purchaser is already active")
	}

	p.Status = PurchaserStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate deactivates the purchaser
func (p *Purchaser) Deactivate() error {
	if p.Status == PurchaserStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Purchaser is already inactive")
	}

	p.Status = PurchaserStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
