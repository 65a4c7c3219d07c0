package location

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// Store is the leaf level of the storage hierarchy, always inside a
// cabinet.
type Store struct {
	shared.TenantAggregateRoot
	CabinetID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Remarks   string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store inside a cabinet
func NewStore(tenantID, cabinetID uuid.UUID, name string) (*Store, error) {
	if cabinetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CABINET", "Store requires a cabinet")
	}
	if err := validateLocationName(name); err != nil {
		return nil, err
	}

	return &Store{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CabinetID:           cabinetID,
		Name:                name,
	}, nil
}

// Update updates the store's name
func (s *Store) Update(name string) error {
	if err := validateLocationName(name); err != nil {
		return err
	}

	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// MoveTo reparents the store under a different cabinet
func (s *Store) MoveTo(cabinetID uuid.UUID) error {
	if cabinetID == uuid.Nil {
		return shared.NewDomainError("INVALID_CABINET", "Store requires a cabinet")
	}

	s.CabinetID = cabinetID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetRemarks sets the store's remarks
func (s *Store) SetRemarks(remarks string) {
	s.Remarks = remarks
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
