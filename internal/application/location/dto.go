package location

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/location"
)

// =============================================================================
// Warehouse DTOs
// =============================================================================

// CreateWarehouseRequest represents a request to create a warehouse
type CreateWarehouseRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=500"`
	Remarks string `json:"remarks"`
}

// UpdateWarehouseRequest represents a request to update a warehouse
type UpdateWarehouseRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Remarks *string `json:"remarks"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToWarehouseResponse converts a domain warehouse to a response DTO
func ToWarehouseResponse(w *location.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		Remarks:   w.Remarks,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToWarehouseResponses converts a slice of domain warehouses
func ToWarehouseResponses(warehouses []*location.Warehouse) []WarehouseResponse {
	responses := make([]WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		responses = append(responses, ToWarehouseResponse(w))
	}
	return responses
}

// =============================================================================
// Cabinet DTOs
// =============================================================================

// CreateCabinetRequest represents a request to create a cabinet
type CreateCabinetRequest struct {
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=200"`
	Remarks     string    `json:"remarks"`
}

// UpdateCabinetRequest represents a request to update a cabinet
type UpdateCabinetRequest struct {
	WarehouseID *uuid.UUID `json:"warehouse_id"`
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Remarks     *string    `json:"remarks"`
}

// CabinetResponse represents a cabinet in API responses
type CabinetResponse struct {
	ID          uuid.UUID `json:"id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Name        string    `json:"name"`
	Remarks     string    `json:"remarks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCabinetResponse converts a domain cabinet to a response DTO
func ToCabinetResponse(c *location.Cabinet) CabinetResponse {
	return CabinetResponse{
		ID:          c.ID,
		WarehouseID: c.WarehouseID,
		Name:        c.Name,
		Remarks:     c.Remarks,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCabinetResponses converts a slice of domain cabinets
func ToCabinetResponses(cabinets []*location.Cabinet) []CabinetResponse {
	responses := make([]CabinetResponse, 0, len(cabinets))
	for _, c := range cabinets {
		responses = append(responses, ToCabinetResponse(c))
	}
	return responses
}

// =============================================================================
// Store DTOs
// =============================================================================

// CreateStoreRequest represents a request to create a store
type CreateStoreRequest struct {
	CabinetID uuid.UUID `json:"cabinet_id" binding:"required"`
	Name      string    `json:"name" binding:"required,min=1,max=200"`
	Remarks   string    `json:"remarks"`
}

// UpdateStoreRequest represents a request to update a store
type UpdateStoreRequest struct {
	CabinetID *uuid.UUID `json:"cabinet_id"`
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Remarks   *string    `json:"remarks"`
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID        uuid.UUID `json:"id"`
	CabinetID uuid.UUID `json:"cabinet_id"`
	Name      string    `json:"name"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToStoreResponse converts a domain store to a response DTO
func ToStoreResponse(s *location.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		CabinetID: s.CabinetID,
		Name:      s.Name,
		Remarks:   s.Remarks,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStoreResponses converts a slice of domain stores
func ToStoreResponses(stores []*location.Store) []StoreResponse {
	responses := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		responses = append(responses, ToStoreResponse(s))
	}
	return responses
}

// =============================================================================
// Tree DTOs
// =============================================================================

// StoreNode is a leaf in the location tree
type StoreNode struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CabinetNode is a cabinet with its stores
type CabinetNode struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Stores []StoreNode `json:"stores"`
}

// WarehouseNode is a warehouse with its cabinets
type WarehouseNode struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Address  string        `json:"address"`
	Cabinets []CabinetNode `json:"cabinets"`
}
