package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Product DTOs
// =============================================================================

// AttributeDTO is a name/value pair on a product
type AttributeDTO struct {
	Name  string `json:"name" binding:"required,max=100"`
	Value string `json:"value" binding:"max=200"`
}

// CreateProductRequest represents a request to create a product row
type CreateProductRequest struct {
	SKU          string           `json:"sku" binding:"required,min=1,max=50"`
	Name         string           `json:"name" binding:"required,min=1,max=200"`
	SupplierID   *uuid.UUID       `json:"supplier_id"`
	SupplierName string           `json:"supplier_name" binding:"max=200"`
	Category     string           `json:"category" binding:"max=100"`
	Unit         string           `json:"unit" binding:"max=50"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Stock        *int             `json:"stock"`
	WarehouseID  *uuid.UUID       `json:"warehouse_id"`
	CabinetID    *uuid.UUID       `json:"cabinet_id"`
	Attributes   []AttributeDTO   `json:"attributes"`
	Remarks      string           `json:"remarks"`
}

// UpdateProductRequest represents a request to update a product row
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	SupplierID   *uuid.UUID       `json:"supplier_id"`
	SupplierName *string          `json:"supplier_name" binding:"omitempty,max=200"`
	Category     *string          `json:"category" binding:"omitempty,max=100"`
	Unit         *string          `json:"unit" binding:"omitempty,max=50"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Stock        *int             `json:"stock"`
	WarehouseID  *uuid.UUID       `json:"warehouse_id"`
	CabinetID    *uuid.UUID       `json:"cabinet_id"`
	Attributes   []AttributeDTO   `json:"attributes"`
	Remarks      *string          `json:"remarks"`
}

// ProductResponse represents a product row in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	SupplierID   *uuid.UUID      `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	InHouse      bool            `json:"in_house"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	BuyingPrice  decimal.Decimal `json:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Stock        int             `json:"stock"`
	WarehouseID  *uuid.UUID      `json:"warehouse_id"`
	CabinetID    *uuid.UUID      `json:"cabinet_id"`
	Attributes   []AttributeDTO  `json:"attributes"`
	Remarks      string          `json:"remarks"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// GroupedProductResponse represents an aggregated SKU row
type GroupedProductResponse struct {
	ProductResponse
	TotalStock int `json:"total_stock"`
	RowCount   int `json:"row_count"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func toAttributeDTOs(attrs catalog.Attributes) []AttributeDTO {
	out := make([]AttributeDTO, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, AttributeDTO{Name: a.Name, Value: a.Value})
	}
	return out
}

func toDomainAttributes(attrs []AttributeDTO) catalog.Attributes {
	out := make(catalog.Attributes, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, catalog.Attribute{Name: a.Name, Value: a.Value})
	}
	return out
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		InHouse:      p.IsInHouse(),
		Category:     p.Category,
		Unit:         p.Unit,
		BuyingPrice:  p.BuyingPrice,
		SellingPrice: p.SellingPrice,
		Stock:        p.Stock,
		WarehouseID:  p.WarehouseID,
		CabinetID:    p.CabinetID,
		Attributes:   toAttributeDTOs(p.Attributes),
		Remarks:      p.Remarks,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Version:      p.Version,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []*catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses
}

// ToGroupedProductResponses converts aggregated SKU summaries
func ToGroupedProductResponses(summaries []catalog.StockSummary) []GroupedProductResponse {
	responses := make([]GroupedProductResponse, 0, len(summaries))
	for idx := range summaries {
		responses = append(responses, GroupedProductResponse{
			ProductResponse: ToProductResponse(&summaries[idx].Product),
			TotalStock:      summaries[idx].TotalStock,
			RowCount:        summaries[idx].RowCount,
		})
	}
	return responses
}

// =============================================================================
// General DTOs
// =============================================================================

// CreateGeneralRequest represents a request to create a taxonomy entry
type CreateGeneralRequest struct {
	GroupName string `json:"group_name" binding:"required,min=1,max=100"`
	Value     string `json:"value" binding:"required,min=1,max=200"`
	SortOrder int    `json:"sort_order"`
}

// UpdateGeneralRequest represents a request to update a taxonomy entry
type UpdateGeneralRequest struct {
	Value     *string `json:"value" binding:"omitempty,min=1,max=200"`
	SortOrder *int    `json:"sort_order"`
}

// GeneralResponse represents a taxonomy entry in API responses
type GeneralResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupName string    `json:"group_name"`
	Value     string    `json:"value"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GeneralListFilter represents filter options for taxonomy list
type GeneralListFilter struct {
	GroupName string `form:"group_name"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToGeneralResponse converts a domain entry to a response DTO
func ToGeneralResponse(g *catalog.General) GeneralResponse {
	return GeneralResponse{
		ID:        g.ID,
		GroupName: g.GroupName,
		Value:     g.Value,
		SortOrder: g.SortOrder,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ToGeneralResponses converts a slice of domain entries
func ToGeneralResponses(generals []*catalog.General) []GeneralResponse {
	responses := make([]GeneralResponse, 0, len(generals))
	for _, g := range generals {
		responses = append(responses, ToGeneralResponse(g))
	}
	return responses
}

// =============================================================================
// Currency DTOs
// =============================================================================

// CreateCurrencyRequest represents a request to create a currency
type CreateCurrencyRequest struct {
	Code          string `json:"code" binding:"required,len=3"`
	Symbol        string `json:"symbol" binding:"required,max=10"`
	Name          string `json:"name" binding:"required,max=100"`
	DecimalPlaces int    `json:"decimal_places" binding:"min=0,max=4"`
	IsDefault     bool   `json:"is_default"`
}

// UpdateCurrencyRequest represents a request to update a currency
type UpdateCurrencyRequest struct {
	Symbol        *string `json:"symbol" binding:"omitempty,max=10"`
	Name          *string `json:"name" binding:"omitempty,max=100"`
	DecimalPlaces *int    `json:"decimal_places" binding:"omitempty,min=0,max=4"`
}

// CurrencyResponse represents a currency in API responses
type CurrencyResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	DecimalPlaces int       `json:"decimal_places"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToCurrencyResponse converts a domain currency to a response DTO
func ToCurrencyResponse(c *catalog.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:            c.ID,
		Code:          c.Code,
		Symbol:        c.Symbol,
		Name:          c.Name,
		DecimalPlaces: c.DecimalPlaces,
		IsDefault:     c.IsDefault,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToCurrencyResponses converts a slice of domain currencies
func ToCurrencyResponses(currencies []*catalog.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		responses = append(responses, ToCurrencyResponse(c))
	}
	return responses
}
