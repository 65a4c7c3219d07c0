package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmployeeStatus represents the status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee represents a staff member of the tenant's business.
// Department and Designation values come from the tenant's generals taxonomy.
type Employee struct {
	shared.TenantAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_employee_tenant_code,priority:2"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Phone       string          `gorm:"type:varchar(50);index"`
	Email       string          `gorm:"type:varchar(200);index"`
	Department  string          `gorm:"type:varchar(100)"`
	Designation string          `gorm:"type:varchar(100)"`
	Salary      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	JoinedAt    *time.Time
	Remarks     string         `gorm:"type:text"`
	Status      EmployeeStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee with required fields
func NewEmployee(tenantID uuid.UUID, code, name string) (*Employee, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Employee{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		Salary:              decimal.Zero,
		Status:              EmployeeStatusActive,
	}, nil
}

// Update updates the employee's name
func (e *Employee) Update(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	e.Name = name
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetContact sets the employee's contact information
func (e *Employee) SetContact(phone, email string) error {
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	e.Phone = phone
	e.Email = email
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetPosition sets the employee's department and designation
func (e *Employee) SetPosition(department, designation string) error {
	if len(department) > 100 {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Department cannot exceed 100 characters")
	}
	if len(designation) > 100 {
		return shared.NewDomainError("INVALID_DESIGNATION", "Designation cannot exceed 100 characters")
	}

	e.Department = department
	e.Designation = designation
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetSalary sets the employee's salary
func (e *Employee) SetSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}

	e.Salary = salary
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetJoinedAt sets the date the employee joined
func (e *Employee) SetJoinedAt(joinedAt time.Time) {
	e.JoinedAt = &joinedAt
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// SetRemarks sets the employee's remarks
func (e *Employee) SetRemarks(remarks string) {
	e.Remarks = remarks
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// Activate activates the employee
func (e *Employee) Activate() error {
	if e.Status == EmployeeStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Employee is already active")
	}

	e.Status = EmployeeStatusActive
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// Deactivate deactivates the employee
func (e *Employee) Deactivate() error {
	if e.Status == EmployeeStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Employee is already inactive")
	}

	e.Status = EmployeeStatusInactive
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}
