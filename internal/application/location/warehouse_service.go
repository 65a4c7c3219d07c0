package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/openbooks/backend/internal/domain/location"
	"github.com/openbooks/backend/internal/domain/shared"
)

// WarehouseService handles warehouse business operations
type WarehouseService struct {
	warehouseRepo location.WarehouseRepository
	cabinetRepo   location.CabinetRepository
	storeRepo     location.StoreRepository
	productRepo   catalog.ProductRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(
	warehouseRepo location.WarehouseRepository,
	cabinetRepo location.CabinetRepository,
	storeRepo location.StoreRepository,
	productRepo catalog.ProductRepository,
) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		cabinetRepo:   cabinetRepo,
		storeRepo:     storeRepo,
		productRepo:   productRepo,
	}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, tenantID uuid.UUID, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := location.NewWarehouse(tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Address != "" {
		if err := warehouse.Update(req.Name, req.Address); err != nil {
			return nil, err
		}
	}
	if req.Remarks != "" {
		warehouse.SetRemarks(req.Remarks)
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, tenantID, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, tenantID, warehouseID)
	if err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// List retrieves warehouses with pagination
func (s *WarehouseService) List(ctx context.Context, tenantID uuid.UUID, page, pageSize int, search string) ([]WarehouseResponse, int64, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	filter.OrderBy = "name"
	filter.OrderDir = "asc"
	filter.Search = search

	warehouses, err := s.warehouseRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.warehouseRepo.Count(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToWarehouseResponses(warehouses), total, nil
}

// Update updates a warehouse
func (s *WarehouseService) Update(ctx context.Context, tenantID, warehouseID uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, tenantID, warehouseID)
	if err != nil {
		return nil, err
	}

	name := warehouse.Name
	address := warehouse.Address
	if req.Name != nil {
		name = *req.Name
	}
	if req.Address != nil {
		address = *req.Address
	}
	if err := warehouse.Update(name, address); err != nil {
		return nil, err
	}
	if req.Remarks != nil {
		warehouse.SetRemarks(*req.Remarks)
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// Delete deletes a warehouse. Warehouses holding cabinets or referenced
// by product rows cannot be deleted.
func (s *WarehouseService) Delete(ctx context.Context, tenantID, warehouseID uuid.UUID) error {
	if _, err := s.warehouseRepo.FindByID(ctx, tenantID, warehouseID); err != nil {
		return err
	}

	children, err := s.cabinetRepo.CountByWarehouse(ctx, tenantID, warehouseID)
	if err != nil {
		return err
	}
	if children > 0 {
		return shared.NewDomainError("HAS_CHILDREN", "Warehouse still contains cabinets")
	}

	inUse, err := s.productRepo.CountByWarehouse(ctx, tenantID, warehouseID)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return shared.NewDomainError("HAS_CHILDREN", "Warehouse is referenced by products")
	}

	return s.warehouseRepo.Delete(ctx, tenantID, warehouseID)
}

// Tree builds the full warehouse > cabinet > store hierarchy
func (s *WarehouseService) Tree(ctx context.Context, tenantID uuid.UUID) ([]WarehouseNode, error) {
	unpaged := shared.DefaultFilter()
	unpaged.PageSize = 0
	unpaged.OrderBy = "name"
	unpaged.OrderDir = "asc"

	warehouses, err := s.warehouseRepo.FindAll(ctx, tenantID, unpaged)
	if err != nil {
		return nil, err
	}
	cabinets, err := s.cabinetRepo.FindAll(ctx, tenantID, unpaged)
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.FindAll(ctx, tenantID, unpaged)
	if err != nil {
		return nil, err
	}

	storesByCabinet := make(map[uuid.UUID][]StoreNode)
	for _, store := range stores {
		storesByCabinet[store.CabinetID] = append(storesByCabinet[store.CabinetID], StoreNode{
			ID:   store.ID,
			Name: store.Name,
		})
	}

	cabinetsByWarehouse := make(map[uuid.UUID][]CabinetNode)
	for _, cabinet := range cabinets {
		node := CabinetNode{
			ID:     cabinet.ID,
			Name:   cabinet.Name,
			Stores: storesByCabinet[cabinet.ID],
		}
		if node.Stores == nil {
			node.Stores = []StoreNode{}
		}
		cabinetsByWarehouse[cabinet.WarehouseID] = append(cabinetsByWarehouse[cabinet.WarehouseID], node)
	}

	tree := make([]WarehouseNode, 0, len(warehouses))
	for _, warehouse := range warehouses {
		node := WarehouseNode{
			ID:       warehouse.ID,
			Name:     warehouse.Name,
			Address:  warehouse.Address,
			Cabinets: cabinetsByWarehouse[warehouse.ID],
		}
		if node.Cabinets == nil {
			node.Cabinets = []CabinetNode{}
		}
		tree = append(tree, node)
	}

	return tree, nil
}
