package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/openbooks/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create creates a new product row
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(tenantID, req.SKU, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Category != "" || req.Unit != "" {
		if err := product.Update(req.Name, req.Category, req.Unit); err != nil {
			return nil, err
		}
	}
	if req.BuyingPrice != nil || req.SellingPrice != nil {
		buying := product.BuyingPrice
		selling := product.SellingPrice
		if req.BuyingPrice != nil {
			buying = *req.BuyingPrice
		}
		if req.SellingPrice != nil {
			selling = *req.SellingPrice
		}
		if err := product.SetPrices(buying, selling); err != nil {
			return nil, err
		}
	}
	product.SetSupplier(req.SupplierID, req.SupplierName)
	if req.Stock != nil {
		product.SetStock(*req.Stock)
	}
	if req.WarehouseID != nil || req.CabinetID != nil {
		product.SetLocation(req.WarehouseID, req.CabinetID)
	}
	if len(req.Attributes) > 0 {
		if err := product.SetAttributes(toDomainAttributes(req.Attributes)); err != nil {
			return nil, err
		}
	}
	if req.Remarks != "" {
		product.SetRemarks(req.Remarks)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product row by ID
func (s *ProductService) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves all unit rows sharing a SKU
func (s *ProductService) GetBySKU(ctx context.Context, tenantID uuid.UUID, sku string) ([]ProductResponse, error) {
	products, err := s.productRepo.FindBySKU(ctx, tenantID, sku)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, shared.ErrNotFound
	}

	return ToProductResponses(products), nil
}

// List retrieves product rows with filtering and pagination
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := s.buildFilter(filter)

	products, err := s.productRepo.FindAll(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// ListGrouped retrieves products folded by SKU with stock summed.
// Grouping happens after the tenant-wide fetch so page boundaries
// never split a SKU.
func (s *ProductService) ListGrouped(ctx context.Context, tenantID uuid.UUID, filter ProductListFilter) ([]GroupedProductResponse, int64, error) {
	domainFilter := s.buildFilter(filter)
	domainFilter.Page = 1
	domainFilter.PageSize = 0 // unpaged fetch, grouped below

	products, err := s.productRepo.FindAll(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	summaries := catalog.AggregateStock(products)
	total := int64(len(summaries))

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	start := (page - 1) * size
	if start >= len(summaries) {
		return []GroupedProductResponse{}, total, nil
	}
	end := start + size
	if end > len(summaries) {
		end = len(summaries)
	}

	return ToGroupedProductResponses(summaries[start:end]), total, nil
}

// Update updates a product row
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Category != nil || req.Unit != nil {
		name := product.Name
		category := product.Category
		unit := product.Unit
		if req.Name != nil {
			name = *req.Name
		}
		if req.Category != nil {
			category = *req.Category
		}
		if req.Unit != nil {
			unit = *req.Unit
		}
		if err := product.Update(name, category, unit); err != nil {
			return nil, err
		}
	}

	if req.BuyingPrice != nil || req.SellingPrice != nil {
		buying := product.BuyingPrice
		selling := product.SellingPrice
		if req.BuyingPrice != nil {
			buying = *req.BuyingPrice
		}
		if req.SellingPrice != nil {
			selling = *req.SellingPrice
		}
		if err := product.SetPrices(buying, selling); err != nil {
			return nil, err
		}
	}

	if req.SupplierID != nil || req.SupplierName != nil {
		supplierID := product.SupplierID
		supplierName := product.SupplierName
		if req.SupplierID != nil {
			supplierID = req.SupplierID
		}
		if req.SupplierName != nil {
			supplierName = *req.SupplierName
		}
		product.SetSupplier(supplierID, supplierName)
	}

	if req.Stock != nil {
		product.SetStock(*req.Stock)
	}
	if req.WarehouseID != nil || req.CabinetID != nil {
		warehouseID := product.WarehouseID
		cabinetID := product.CabinetID
		if req.WarehouseID != nil {
			warehouseID = req.WarehouseID
		}
		if req.CabinetID != nil {
			cabinetID = req.CabinetID
		}
		product.SetLocation(warehouseID, cabinetID)
	}
	if req.Attributes != nil {
		if err := product.SetAttributes(toDomainAttributes(req.Attributes)); err != nil {
			return nil, err
		}
	}
	if req.Remarks != nil {
		product.SetRemarks(*req.Remarks)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Activate activates a product row
func (s *ProductService) Activate(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if err := product.Activate(); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Deactivate deactivates a product row
func (s *ProductService) Deactivate(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if err := product.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product row
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, tenantID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, tenantID, productID)
}

func (s *ProductService) buildFilter(filter ProductListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	return domainFilter
}
