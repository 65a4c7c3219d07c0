package location

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// Cabinet is the middle level of the storage hierarchy, always inside
// a warehouse.
type Cabinet struct {
	shared.TenantAggregateRoot
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Remarks     string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Cabinet) TableName() string {
	return "cabinets"
}

// NewCabinet creates a new cabinet inside a warehouse
func NewCabinet(tenantID, warehouseID uuid.UUID, name string) (*Cabinet, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Cabinet requires a warehouse")
	}
	if err := validateLocationName(name); err != nil {
		return nil, err
	}

	return &Cabinet{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		WarehouseID:         warehouseID,
		Name:                name,
	}, nil
}

// Update updates the cabinet's name
func (c *Cabinet) Update(name string) error {
	if err := validateLocationName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// MoveTo reparents the cabinet under a different warehouse
func (c *Cabinet) MoveTo(warehouseID uuid.UUID) error {
	if warehouseID == uuid.Nil {
		return shared.NewDomainError("INVALID_WAREHOUSE", "Cabinet requires a warehouse")
	}

	c.WarehouseID = warehouseID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetRemarks sets the cabinet's remarks
func (c *Cabinet) SetRemarks(remarks string) {
	c.Remarks = remarks
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
