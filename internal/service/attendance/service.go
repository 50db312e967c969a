package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/lock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	attendance.HistoryRepository
	employee.EmployeeRepository
	locker lock.Locker
	clock  clock.Clock
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	historyRepo attendance.HistoryRepository,
	employeeRepo employee.EmployeeRepository,
	locker lock.Locker,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		HistoryRepository:    historyRepo,
		EmployeeRepository:   employeeRepo,
		locker:               locker,
		clock:                clk,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	release, err := s.acquire(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	defer release()

	var result attendance.Attendance
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return validator.Field("employee_id", "the selected employee_id is invalid")
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		now := s.clock.Now()
		workDate := clock.StartOfDay(now)

		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, workDate, false)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}

		verdict, err := attendance.DecideClockIn(now, emp.Department, existing, req.Description)
		if err != nil {
			return err
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate attendance id: %w", err)
		}

		created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
			ID:         id.String(),
			EmployeeID: emp.ID,
			WorkDate:   workDate,
			ClockIn:    now,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyClockedIn) {
				return err
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		created.Employee = emp

		if verdict.Late {
			history, err := s.writeHistory(ctx, created, attendance.LateArrival, now, req.Description)
			if err != nil {
				return err
			}
			created.History = &history
		}

		result = created
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Employee clocked in", "employee_id", result.EmployeeID, "attendance_id", result.ID, "status", result.Status())
	return attendance.ToResponse(result), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	release, err := s.acquire(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	defer release()

	var result attendance.Attendance
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return err
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		now := s.clock.Now()

		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, clock.StartOfDay(now), true)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}

		verdict, err := attendance.DecideClockOut(now, emp.Department, existing, req.Description)
		if err != nil {
			return err
		}

		if err := s.AttendanceRepository.SetClockOut(ctx, existing.ID, now); err != nil {
			if errors.Is(err, attendance.ErrAlreadyClockedOut) {
				return err
			}
			return fmt.Errorf("failed to clock out: %w", err)
		}

		updated := *existing
		updated.ClockOut = &now
		updated.UpdatedAt = now
		updated.Employee = emp

		if verdict.Early {
			history, err := s.writeHistory(ctx, updated, attendance.EarlyLeave, now, req.Description)
			if err != nil {
				return err
			}
			updated.History = &history
		}

		result = updated
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Employee clocked out", "employee_id", result.EmployeeID, "attendance_id", result.ID, "status", result.Status())
	return attendance.ToResponse(result), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (pagination.Page[attendance.AttendanceResponse], error) {
	if err := filter.Validate(); err != nil {
		return pagination.Page[attendance.AttendanceResponse]{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return pagination.Page[attendance.AttendanceResponse]{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	page := pagination.NewPage(records, total, filter.Params)
	return pagination.Map(page, attendance.ToResponse), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(id) {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return attendance.ErrAttendanceNotFound
	}

	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Attendance deleted", "attendance_id", id)
	return nil
}

func (s *AttendanceServiceImpl) writeHistory(ctx context.Context, record attendance.Attendance, kind attendance.HistoryType, at time.Time, description *string) (attendance.History, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return attendance.History{}, fmt.Errorf("failed to generate history id: %w", err)
	}

	history, err := s.HistoryRepository.Create(ctx, attendance.History{
		ID:             id.String(),
		AttendanceID:   record.ID,
		EmployeeID:     record.EmployeeID,
		DateAttendance: at,
		AttendanceType: kind,
		Description:    attendance.Description(description),
	})
	if err != nil {
		return attendance.History{}, fmt.Errorf("failed to record %s: %w", kind, err)
	}

	return history, nil
}

// acquire takes the per-employee clock lock. The returned func never fails;
// release errors are only logged since the TTL frees the key anyway.
func (s *AttendanceServiceImpl) acquire(ctx context.Context, employeeID string) (func(), error) {
	release, err := s.locker.Acquire(ctx, "attendance:"+employeeID)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, attendance.ErrClockInProgress
		}
		return nil, fmt.Errorf("failed to acquire clock lock: %w", err)
	}

	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Failed to release clock lock", "employee_id", employeeID, "error", err)
		}
	}, nil
}
