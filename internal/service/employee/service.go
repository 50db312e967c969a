package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (pagination.Page[employee.EmployeeResponse], error) {
	if err := filter.Validate(); err != nil {
		return pagination.Page[employee.EmployeeResponse]{}, err
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return pagination.Page[employee.EmployeeResponse]{}, fmt.Errorf("failed to list employees: %w", err)
	}

	page := pagination.NewPage(employees, total, filter.Params)
	return pagination.Map(page, employee.ToResponse), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:           id.String(),
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Address:      req.Address,
	})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return employee.EmployeeResponse{}, invalidDepartment()
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "department_id", created.DepartmentID)
	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, employee.Employee{
		ID:           req.ID,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Address:      req.Address,
	})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return employee.EmployeeResponse{}, invalidDepartment()
		}
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Employee deleted", "employee_id", id)
	return nil
}

func (s *EmployeeServiceImpl) ensureDepartment(ctx context.Context, departmentID string) error {
	if _, err := s.DepartmentRepository.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return invalidDepartment()
		}
		return fmt.Errorf("failed to get department: %w", err)
	}
	return nil
}

func invalidDepartment() error {
	return validator.Field("department_id", "the selected department_id is invalid")
}
