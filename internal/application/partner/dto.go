package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Code            string `json:"code" binding:"required,min=1,max=50"`
	Name            string `json:"name" binding:"required,min=1,max=200"`
	ContactName     string `json:"contact_name" binding:"max=100"`
	Phone           string `json:"phone" binding:"max=50"`
	Email           string `json:"email" binding:"omitempty,email,max=254"`
	DeliveryAddress string `json:"delivery_address" binding:"max=500"`
	Remarks         string `json:"remarks"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName     *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone           *string `json:"phone" binding:"omitempty,max=50"`
	Email           *string `json:"email" binding:"omitempty,email,max=254"`
	DeliveryAddress *string `json:"delivery_address" binding:"omitempty,max=500"`
	Remarks         *string `json:"remarks"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	ContactName     string    `json:"contact_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	DeliveryAddress string    `json:"delivery_address"`
	Remarks         string    `json:"remarks"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Version         int       `json:"version"`
}

// CustomerListFilter represents filter options for customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Status:          string(c.Status),
		ContactName:     c.ContactName,
		Phone:           c.Phone,
		Email:           c.Email,
		DeliveryAddress: c.DeliveryAddress,
		Remarks:         c.Remarks,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Version:         c.Version,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, ToCustomerResponse(&c))
	}
	return responses
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=254"`
	Address     string `json:"address" binding:"max=500"`
	Remarks     string `json:"remarks"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,email,max=254"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	Remarks     *string `json:"remarks"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Remarks     string    `json:"remarks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// SupplierListFilter represents filter options for supplier list
type SupplierListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Status:      string(s.Status),
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		Remarks:     s.Remarks,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Version:     s.Version,
	}
}

// ToSupplierResponses converts a slice of domain suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		responses = append(responses, ToSupplierResponse(&s))
	}
	return responses
}

// =============================================================================
// Purchaser DTOs
// =============================================================================

// CreatePurchaserRequest represents a request to create a new purchaser
type CreatePurchaserRequest struct {
	Code    string `json:"code" binding:"required,min=1,max=50"`
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Email   string `json:"email" binding:"omitempty,email,max=254"`
	Remarks string `json:"remarks"`
}

// UpdatePurchaserRequest represents a request to update a purchaser
type UpdatePurchaserRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email,max=254"`
	Remarks *string `json:"remarks"`
}

// PurchaserResponse represents a purchaser in API responses
type PurchaserResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// PurchaserListFilter represents filter options for purchaser list
type PurchaserListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPurchaserResponse converts a domain purchaser to a response DTO
func ToPurchaserResponse(p *partner.Purchaser) PurchaserResponse {
	return PurchaserResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Status:    string(p.Status),
		Phone:     p.Phone,
		Email:     p.Email,
		Remarks:   p.Remarks,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Version:   p.Version,
	}
}

// ToPurchaserResponses converts a slice of domain purchasers
func ToPurchaserResponses(purchasers []partner.Purchaser) []PurchaserResponse {
	responses := make([]PurchaserResponse, 0, len(purchasers))
	for _, p := range purchasers {
		responses = append(responses, ToPurchaserResponse(&p))
	}
	return responses
}

// =============================================================================
// Employee DTOs
// =============================================================================

// CreateEmployeeRequest represents a request to create a new employee
type CreateEmployeeRequest struct {
	Code        string           `json:"code" binding:"required,min=1,max=50"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Phone       string           `json:"phone" binding:"max=50"`
	Email       string           `json:"email" binding:"omitempty,email,max=254"`
	Department  string           `json:"department" binding:"max=100"`
	Designation string           `json:"designation" binding:"max=100"`
	Salary      *decimal.Decimal `json:"salary"`
	JoinedAt    *time.Time       `json:"joined_at"`
	Remarks     string           `json:"remarks"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	Email       *string          `json:"email" binding:"omitempty,email,max=254"`
	Department  *string          `json:"department" binding:"omitempty,max=100"`
	Designation *string          `json:"designation" binding:"omitempty,max=100"`
	Salary      *decimal.Decimal `json:"salary"`
	JoinedAt    *time.Time       `json:"joined_at"`
	Remarks     *string          `json:"remarks"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Status      string          `json:"status"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Department  string          `json:"department"`
	Designation string          `json:"designation"`
	Salary      decimal.Decimal `json:"salary"`
	JoinedAt    *time.Time      `json:"joined_at"`
	Remarks     string          `json:"remarks"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// EmployeeListFilter represents filter options for employee list
type EmployeeListFilter struct {
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=active inactive"`
	Department string `form:"department"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToEmployeeResponse converts a domain employee to a response DTO
func ToEmployeeResponse(e *partner.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Status:      string(e.Status),
		Phone:       e.Phone,
		Email:       e.Email,
		Department:  e.Department,
		Designation: e.Designation,
		Salary:      e.Salary,
		JoinedAt:    e.JoinedAt,
		Remarks:     e.Remarks,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Version:     e.Version,
	}
}

// ToEmployeeResponses converts a slice of domain employees
func ToEmployeeResponses(employees []partner.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToEmployeeResponse(&e))
	}
	return responses
}
