package department

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
	employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context, filter department.DepartmentFilter) (pagination.Page[department.DepartmentResponse], error) {
	if err := filter.Validate(); err != nil {
		return pagination.Page[department.DepartmentResponse]{}, err
	}

	departments, total, err := s.DepartmentRepository.List(ctx, filter)
	if err != nil {
		return pagination.Page[department.DepartmentResponse]{}, fmt.Errorf("failed to list departments: %w", err)
	}

	page := pagination.NewPage(departments, total, filter.Params)
	return pagination.Map(page, department.ToResponse), nil
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.ensureNameAvailable(ctx, req.DepartmentName, nil); err != nil {
		return department.DepartmentResponse{}, err
	}

	clockIn, _ := clock.ParseHHMM(req.MaxClockInTime)
	clockOut, _ := clock.ParseHHMM(req.MaxClockOutTime)

	id, err := uuid.NewV7()
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to generate department id: %w", err)
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		ID:              id.String(),
		DepartmentName:  req.DepartmentName,
		MaxClockInTime:  clockIn,
		MaxClockOutTime: clockOut,
	})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, nameTaken()
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	slog.Info("Department created", "department_id", created.ID, "department_name", created.DepartmentName)
	return department.ToResponse(created), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	if !validator.IsValidUUID(id) {
		return department.DepartmentResponse{}, department.ErrDepartmentNotFound
	}

	d, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(d), nil
}

// UpdateDepartment implements department.DepartmentService. Changing the
// policy window affects how existing records are read, not the history
// already written.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return department.DepartmentResponse{}, department.ErrDepartmentNotFound
	}
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, req.ID); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.ensureNameAvailable(ctx, req.DepartmentName, &req.ID); err != nil {
		return department.DepartmentResponse{}, err
	}

	clockIn, _ := clock.ParseHHMM(req.MaxClockInTime)
	clockOut, _ := clock.ParseHHMM(req.MaxClockOutTime)

	updated, err := s.DepartmentRepository.Update(ctx, department.Department{
		ID:              req.ID,
		DepartmentName:  req.DepartmentName,
		MaxClockInTime:  clockIn,
		MaxClockOutTime: clockOut,
	})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, nameTaken()
		}
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(updated), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return department.ErrDepartmentNotFound
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.EmployeeRepository.ExistsByDepartmentID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check department employees: %w", err)
	}
	if inUse {
		return department.ErrDepartmentHasEmployees
	}

	if err := s.DepartmentRepository.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Department deleted", "department_id", id)
	return nil
}

func (s *DepartmentServiceImpl) ensureNameAvailable(ctx context.Context, name string, excludeID *string) error {
	exists, err := s.DepartmentRepository.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return nameTaken()
	}
	return nil
}

func nameTaken() error {
	return validator.Field("department_name", department.ErrDepartmentNameExists.Error())
}
