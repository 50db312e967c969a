package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// openTestDB connects once, applies migrations and empties every table.
// Tests are skipped when TEST_DATABASE_URL is not set.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	if testDB == nil {
		db, err := database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
		require.NoError(t, database.Migrate(ctx, db))
		testDB = db
	}

	truncateAllTables(t, ctx)
	return testDB
}

func truncateAllTables(t *testing.T, ctx context.Context) {
	tables := []string{"attendance_histories", "attendances", "employees", "departments"}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
}

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func seedDepartment(t *testing.T, db *database.DB, name string) department.Department {
	t.Helper()
	d, err := postgresql.NewDepartmentRepository(db).Create(context.Background(), department.Department{
		ID:              newID(t),
		DepartmentName:  name,
		MaxClockInTime:  clock.TimeOfDay{Hour: 8},
		MaxClockOutTime: clock.TimeOfDay{Hour: 17, Minute: 30},
	})
	require.NoError(t, err)
	return d
}

func seedEmployee(t *testing.T, db *database.DB, departmentID, name string) employee.Employee {
	t.Helper()
	e, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		ID:           newID(t),
		DepartmentID: departmentID,
		Name:         name,
		Address:      "Jl. Merdeka 1",
	})
	require.NoError(t, err)
	return e
}

func workDay(hour, minute int) time.Time {
	return time.Date(2026, time.October, 17, hour, minute, 0, 0, time.UTC)
}
