package location

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// Warehouse is the top level of the storage hierarchy.
// A warehouse holds cabinets; cabinets hold stores.
type Warehouse struct {
	shared.TenantAggregateRoot
	Name    string `gorm:"type:varchar(200);not null;index:idx_warehouse_tenant_name"`
	Address string `gorm:"type:varchar(500)"`
	Remarks string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse
func NewWarehouse(tenantID uuid.UUID, name string) (*Warehouse, error) {
	if err := validateLocationName(name); err != nil {
		return nil, err
	}

	return &Warehouse{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
	}, nil
}

// Update updates the warehouse's name and address
func (w *Warehouse) Update(name, address string) error {
	if err := validateLocationName(name); err != nil {
		return err
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	w.Name = name
	w.Address = address
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// SetRemarks sets the warehouse's remarks
func (w *Warehouse) SetRemarks(remarks string) {
	w.Remarks = remarks
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}

func validateLocationName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
