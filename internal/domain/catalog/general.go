package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// General is a taxonomy entry used to populate dropdowns (categories,
// units, departments). Entries group by name and keep an ordered value.
type General struct {
	shared.TenantAggregateRoot
	GroupName string `gorm:"type:varchar(100);not null;index:idx_general_tenant_group"`
	Value     string `gorm:"type:varchar(200);not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (General) TableName() string {
	return "generals"
}

// NewGeneral creates a new taxonomy entry
func NewGeneral(tenantID uuid.UUID, groupName, value string, sortOrder int) (*General, error) {
	if groupName == "" {
		return nil, shared.NewDomainError("INVALID_GROUP", "Group name cannot be empty")
	}
	if len(groupName) > 100 {
		return nil, shared.NewDomainError("INVALID_GROUP", "Group name cannot exceed 100 characters")
	}
	if value == "" {
		return nil, shared.NewDomainError("INVALID_VALUE", "Value cannot be empty")
	}
	if len(value) > 200 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Value cannot exceed 200 characters")
	}

	return &General{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		GroupName:           groupName,
		Value:               value,
		SortOrder:           sortOrder,
	}, nil
}

// Update updates the entry's value and sort order
func (g *General) Update(value string, sortOrder int) error {
	if value == "" {
		return shared.NewDomainError("INVALID_VALUE", "Value cannot be empty")
	}
	if len(value) > 200 {
		return shared.NewDomainError("INVALID_VALUE", "Value cannot exceed 200 characters")
	}

	g.Value = value
	g.SortOrder = sortOrder
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return nil
}
