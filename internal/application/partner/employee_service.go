package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/partner"
	"github.com/openbooks/backend/internal/domain/shared"
)

// EmployeeService handles employee-related business operations
type EmployeeService struct {
	employeeRepo partner.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo partner.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, tenantID uuid.UUID, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.employeeRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this code already exists")
	}

	employee, err := partner.NewEmployee(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Email != "" {
		if err := employee.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Department != "" || req.Designation != "" {
		if err := employee.SetPosition(req.Department, req.Designation); err != nil {
			return nil, err
		}
	}
	if req.Salary != nil {
		if err := employee.SetSalary(*req.Salary); err != nil {
			return nil, err
		}
	}
	if req.JoinedAt != nil {
		employee.SetJoinedAt(*req.JoinedAt)
	}
	if req.Remarks != "" {
		employee.SetRemarks(req.Remarks)
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByCode retrieves an employee by code
func (s *EmployeeService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves a list of employees with filtering and pagination
func (s *EmployeeService) List(ctx context.Context, tenantID uuid.UUID, filter EmployeeListFilter) ([]EmployeeResponse, int64, error) {
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
	if filter.Department != "" {
		domainFilter.Filters["department"] = filter.Department
	}

	employees, err := s.employeeRepo.FindAll(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.employeeRepo.Count(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToEmployeeResponses(employees), total, nil
}

// Update updates an employee
func (s *EmployeeService) Update(ctx context.Context, tenantID, employeeID uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := employee.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Phone != nil || req.Email != nil {
		phone := employee.Phone
		email := employee.Email
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := employee.SetContact(phone, email); err != nil {
			return nil, err
		}
	}

	if req.Department != nil || req.Designation != nil {
		department := employee.Department
		designation := employee.Designation
		if req.Department != nil {
			department = *req.Department
		}
		if req.Designation != nil {
			designation = *req.Designation
		}
		if err := employee.SetPosition(department, designation); err != nil {
			return nil, err
		}
	}

	if req.Salary != nil {
		if err := employee.SetSalary(*req.Salary); err != nil {
			return nil, err
		}
	}
	if req.JoinedAt != nil {
		employee.SetJoinedAt(*req.JoinedAt)
	}
	if req.Remarks != nil {
		employee.SetRemarks(*req.Remarks)
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Activate activates an employee
func (s *EmployeeService) Activate(ctx context.Context, tenantID, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	if err := employee.Activate(); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Deactivate deactivates an employee
func (s *EmployeeService) Deactivate(ctx context.Context, tenantID, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	if err := employee.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Delete deletes an employee
func (s *EmployeeService) Delete(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	if _, err := s.employeeRepo.FindByID(ctx, tenantID, employeeID); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, tenantID, employeeID)
}
