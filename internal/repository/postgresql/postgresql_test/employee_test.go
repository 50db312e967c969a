package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	it := seedDepartment(t, db, "IT")
	finance := seedDepartment(t, db, "Finance")

	created := seedEmployee(t, db, it.ID, "Budi")
	assert.Equal(t, "IT", created.Department.DepartmentName)

	created.DepartmentID = finance.ID
	created.Name = "Budi Santoso"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Finance", updated.Department.DepartmentName)
	assert.Equal(t, "Budi Santoso", updated.Name)

	inUse, err := repo.ExistsByDepartmentID(ctx, finance.ID)
	require.NoError(t, err)
	assert.True(t, inUse)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_CreateUnknownDepartment(t *testing.T) {
	db := openTestDB(t)

	_, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		ID:           newID(t),
		DepartmentID: newID(t),
		Name:         "Budi",
		Address:      "Jl. Merdeka 1",
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestEmployeeRepository_ListSearchesDepartmentName(t *testing.T) {
	db := openTestDB(t)
	it := seedDepartment(t, db, "IT")
	finance := seedDepartment(t, db, "Finance")
	seedEmployee(t, db, it.ID, "Budi")
	seedEmployee(t, db, finance.ID, "Sari")
	seedEmployee(t, db, finance.ID, "Budiman")

	search := "finance"
	items, total, err := postgresql.NewEmployeeRepository(db).List(context.Background(), employee.EmployeeFilter{
		Search: &search,
		Params: pagination.Params{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Budiman", items[0].Name)

	search = "budi"
	_, total, err = postgresql.NewEmployeeRepository(db).List(context.Background(), employee.EmployeeFilter{
		Search: &search,
		Params: pagination.Params{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
