package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/openbooks/backend/internal/domain/location"
	"github.com/openbooks/backend/internal/domain/shared"
)

// CabinetService handles cabinet business operations
type CabinetService struct {
	cabinetRepo   location.CabinetRepository
	warehouseRepo location.WarehouseRepository
	storeRepo     location.StoreRepository
	productRepo   catalog.ProductRepository
}

// NewCabinetService creates a new CabinetService
func NewCabinetService(
	cabinetRepo location.CabinetRepository,
	warehouseRepo location.WarehouseRepository,
	storeRepo location.StoreRepository,
	productRepo catalog.ProductRepository,
) *CabinetService {
	return &CabinetService{
		cabinetRepo:   cabinetRepo,
		warehouseRepo: warehouseRepo,
		storeRepo:     storeRepo,
		productRepo:   productRepo,
	}
}

// Create creates a new cabinet inside an existing warehouse
func (s *CabinetService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCabinetRequest) (*CabinetResponse, error) {
	if _, err := s.warehouseRepo.FindByID(ctx, tenantID, req.WarehouseID); err != nil {
		return nil, err
	}

	cabinet, err := location.NewCabinet(tenantID, req.WarehouseID, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Remarks != "" {
		cabinet.SetRemarks(req.Remarks)
	}

	if err := s.cabinetRepo.Save(ctx, cabinet); err != nil {
		return nil, err
	}

	response := ToCabinetResponse(cabinet)
	return &response, nil
}

// GetByID retrieves a cabinet by ID
func (s *CabinetService) GetByID(ctx context.Context, tenantID, cabinetID uuid.UUID) (*CabinetResponse, error) {
	cabinet, err := s.cabinetRepo.FindByID(ctx, tenantID, cabinetID)
	if err != nil {
		return nil, err
	}

	response := ToCabinetResponse(cabinet)
	return &response, nil
}

// List retrieves cabinets, optionally scoped to one warehouse
func (s *CabinetService) List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, page, pageSize int) ([]CabinetResponse, int64, error) {
	if warehouseID != nil {
		cabinets, err := s.cabinetRepo.FindByWarehouse(ctx, tenantID, *warehouseID)
		if err != nil {
			return nil, 0, err
		}
		return ToCabinetResponses(cabinets), int64(len(cabinets)), nil
	}

	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	cabinets, err := s.cabinetRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.cabinetRepo.Count(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToCabinetResponses(cabinets), total, nil
}

// Update updates a cabinet, optionally reparenting it
func (s *CabinetService) Update(ctx context.Context, tenantID, cabinetID uuid.UUID, req UpdateCabinetRequest) (*CabinetResponse, error) {
	cabinet, err := s.cabinetRepo.FindByID(ctx, tenantID, cabinetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := cabinet.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.WarehouseID != nil && *req.WarehouseID != cabinet.WarehouseID {
		if _, err := s.warehouseRepo.FindByID(ctx, tenantID, *req.WarehouseID); err != nil {
			return nil, err
		}
		if err := cabinet.MoveTo(*req.WarehouseID); err != nil {
			return nil, err
		}
	}
	if req.Remarks != nil {
		cabinet.SetRemarks(*req.Remarks)
	}

	if err := s.cabinetRepo.Save(ctx, cabinet); err != nil {
		return nil, err
	}

	response := ToCabinetResponse(cabinet)
	return &response, nil
}

// Delete deletes a cabinet. Cabinets holding stores or referenced by
// product rows cannot be deleted.
func (s *CabinetService) Delete(ctx context.Context, tenantID, cabinetID uuid.UUID) error {
	if _, err := s.cabinetRepo.FindByID(ctx, tenantID, cabinetID); err != nil {
		return err
	}

	children, err := s.storeRepo.CountByCabinet(ctx, tenantID, cabinetID)
	if err != nil {
		return err
	}
	if children > 0 {
		return shared.NewDomainError("HAS_CHILDREN", "Cabinet still contains stores")
	}

	inUse, err := s.productRepo.CountByCabinet(ctx, tenantID, cabinetID)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return shared.NewDomainError("HAS_CHILDREN", "Cabinet is referenced by products")
	}

	return s.cabinetRepo.Delete(ctx, tenantID, cabinetID)
}
