package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Attribute is a single name/value pair describing a product (size, color, ...)
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attributes is an ordered list of product attributes stored as JSONB
type Attributes []Attribute

// Value implements driver.Valuer for database storage
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (a *Attributes) Scan(value any) error {
	if value == nil {
		*a = Attributes{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Attributes", value)
	}
	if len(data) == 0 {
		*a = Attributes{}
		return nil
	}
	return json.Unmarshal(data, a)
}

// Product represents one physical unit row of a stock keeping unit.
// Rows of the same SKU share the SKU code; list views aggregate them.
type Product struct {
	shared.TenantAggregateRoot
	SKU          string          `gorm:"type:varchar(50);not null;index:idx_product_tenant_sku"`
	Name         string          `gorm:"type:varchar(200);not null"`
	SupplierID   *uuid.UUID      `gorm:"type:uuid;index"` // nil means in-house product
	SupplierName string          `gorm:"type:varchar(200)"`
	Category     string          `gorm:"type:varchar(100);index"`
	Unit         string          `gorm:"type:varchar(50)"`
	BuyingPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock        int             `gorm:"not null;default:1"`
	WarehouseID  *uuid.UUID      `gorm:"type:uuid;index"`
	CabinetID    *uuid.UUID      `gorm:"type:uuid;index"`
	Attributes   Attributes      `gorm:"type:jsonb"`
	Remarks      string          `gorm:"type:text"`
	Status       ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product row with required fields
func NewProduct(tenantID uuid.UUID, sku, name string) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 strings.ToUpper(sku),
		Name:                name,
		BuyingPrice:         decimal.Zero,
		SellingPrice:        decimal.Zero,
		Stock:               1,
		Attributes:          Attributes{},
		Status:              ProductStatusActive,
	}, nil
}

// Update updates the product's name, category, and unit
func (p *Product) Update(name, category, unit string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}

	p.Name = name
	p.Category = category
	p.Unit = unit
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrices sets the buying and selling prices
func (p *Product) SetPrices(buying, selling decimal.Decimal) error {
	if buying.IsNegative() || selling.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	p.BuyingPrice = buying
	p.SellingPrice = selling
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetSupplier links the product to a supplier. A nil id marks it in-house.
func (p *Product) SetSupplier(supplierID *uuid.UUID, supplierName string) {
	p.SupplierID = supplierID
	if supplierID == nil {
		supplierName = ""
	}
	p.SupplierName = supplierName
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsInHouse reports whether the product has no supplier
func (p *Product) IsInHouse() bool {
	return p.SupplierID == nil
}

// SetStock sets the per-row stock count. Negative counts coerce to 0.
func (p *Product) SetStock(stock int) {
	if stock < 0 {
		stock = 0
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetLocation places the product in a warehouse/cabinet
func (p *Product) SetLocation(warehouseID, cabinetID *uuid.UUID) {
	p.WarehouseID = warehouseID
	p.CabinetID = cabinetID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetAttributes replaces the product's attribute list
func (p *Product) SetAttributes(attrs Attributes) error {
	for _, attr := range attrs {
		if attr.Name == "" {
			return shared.NewDomainError("INVALID_ATTRIBUTE", "Attribute name cannot be empty")
		}
	}

	if attrs == nil {
		attrs = Attributes{}
	}
	p.Attributes = attrs
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetRemarks sets the product's remarks
func (p *Product) SetRemarks(remarks string) {
	p.Remarks = remarks
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate deactivates the product
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
