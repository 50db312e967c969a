package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/lock"
)

// memStore keeps attendance rows in memory. fakeTx snapshots it so a failed
// transaction leaves no writes behind.
type memStore struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
	records   map[string]attendance.Attendance

	createHistoryErr error
	lastFilter       attendance.AttendanceFilter
}

func newMemStore(employees ...employee.Employee) *memStore {
	s := &memStore{
		employees: map[string]employee.Employee{},
		records:   map[string]attendance.Attendance{},
	}
	for _, e := range employees {
		s.employees[e.ID] = e
	}
	return s
}

func (s *memStore) snapshot() map[string]attendance.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]attendance.Attendance, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out
}

func (s *memStore) restore(records map[string]attendance.Attendance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

func (s *memStore) withEmployee(a attendance.Attendance) attendance.Attendance {
	a.Employee = s.employees[a.EmployeeID]
	return a
}

type fakeTx struct {
	store     *memStore
	commits   int
	rollbacks int
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	before := f.store.snapshot()
	if err := fn(ctx); err != nil {
		f.store.restore(before)
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type memAttendanceRepo struct{ *memStore }

func (s memAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.EmployeeID == a.EmployeeID && r.WorkDate.Equal(a.WorkDate) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}
	a.CreatedAt = a.ClockIn
	a.UpdatedAt = a.ClockIn
	s.records[a.ID] = a
	return a, nil
}

func (s memAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return s.withEmployee(a), nil
}

func (s memAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time, forUpdate bool) (*attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.EmployeeID == employeeID && r.WorkDate.Equal(workDate) {
			a := s.withEmployee(r)
			return &a, nil
		}
	}
	return nil, nil
}

func (s memAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.records[id]
	if !ok || a.ClockOut != nil {
		return attendance.ErrAlreadyClockedOut
	}
	a.ClockOut = &clockOut
	s.records[id] = a
	return nil
}

func (s memAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFilter = filter
	var all []attendance.Attendance
	for _, r := range s.records {
		all = append(all, s.withEmployee(r))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ClockIn.After(all[j].ClockIn) })
	return all, int64(len(all)), nil
}

func (s memAttendanceRepo) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(s.records, id)
	return nil
}

type memHistoryRepo struct{ *memStore }

func (s memHistoryRepo) Create(ctx context.Context, h attendance.History) (attendance.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createHistoryErr != nil {
		return attendance.History{}, s.createHistoryErr
	}
	a := s.records[h.AttendanceID]
	h.CreatedAt = h.DateAttendance
	a.History = &h
	s.records[h.AttendanceID] = a
	return h, nil
}

type memEmployeeRepo struct{ *memStore }

func (s memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s memEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (s memEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (s memEmployeeRepo) Delete(ctx context.Context, id string) error {
	panic("not used")
}

func (s memEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	panic("not used")
}

func (s memEmployeeRepo) ExistsByDepartmentID(ctx context.Context, departmentID string) (bool, error) {
	panic("not used")
}

type fakeLocker struct {
	acquireFn func(ctx context.Context, key string) (lock.ReleaseFunc, error)
	keys      []string
	released  int
}

func (f *fakeLocker) Acquire(ctx context.Context, key string) (lock.ReleaseFunc, error) {
	f.keys = append(f.keys, key)
	if f.acquireFn != nil {
		return f.acquireFn(ctx, key)
	}
	return func(context.Context) error { f.released++; return nil }, nil
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
