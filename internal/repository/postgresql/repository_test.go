package postgresql

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/company"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/employee"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
)

var testDB *database.DB

// testInit connects to TEST_DATABASE_URL, skipping the suite when the
// variable is unset so these tests only run against a provisioned database.
func testInit(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return testDB
	}

	if err := database.RunMigrations(dsn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn, database.PoolConfig{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	return testDB
}

func createTestCompany(t *testing.T, ctx context.Context, db *database.DB) company.Company {
	t.Helper()
	repo := NewCompanyRepository(db)
	c, err := repo.Create(ctx, company.Company{
		ID:       uuid.NewString(),
		Name:     "Test Company",
		Username: fmt.Sprintf("test-co-%d", time.Now().UnixNano()),
		Timezone: "UTC",
	})
	require.NoError(t, err)
	return c
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, companyID string) employee.Employee {
	t.Helper()
	repo := NewEmployeeRepository(db)
	e, err := repo.Create(ctx, employee.Employee{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		FullName:  "Test Employee",
		Email:     fmt.Sprintf("emp-%d@example.com", time.Now().UnixNano()),
		HireDate:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return e
}

func TestCompanyRepositoryLifecycle(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()
	repo := NewCompanyRepository(db)

	created := createTestCompany(t, ctx, db)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Username, got.Username)

	require.NoError(t, repo.SoftDelete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, company.ErrCompanyNotFound))
}

func TestCompanyRepositoryUsernameConflict(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()
	repo := NewCompanyRepository(db)

	created := createTestCompany(t, ctx, db)

	_, err := repo.Create(ctx, company.Company{
		ID:       uuid.NewString(),
		Name:     "Duplicate",
		Username: created.Username,
		Timezone: "UTC",
	})
	assert.True(t, errors.Is(err, company.ErrCompanyUsernameExists))
}

func TestScheduleRepositoryListActiveInRange(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	c := createTestCompany(t, ctx, db)
	e := createTestEmployee(t, ctx, db, c.ID)

	shiftRepo := NewShiftTemplateRepository(db)
	day := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	sh, err := shiftRepo.Create(ctx, shift.ShiftTemplate{
		ID:                     uuid.NewString(),
		CompanyID:              c.ID,
		Name:                   "Day Shift",
		StartTime:              day.Add(8 * time.Hour),
		EndTime:                day.Add(17 * time.Hour),
		DifferentialMultiplier: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	scheduleRepo := NewRecurringScheduleRepository(db)
	endDate := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	first, err := scheduleRepo.Create(ctx, schedule.RecurringSchedule{
		ID:                uuid.NewString(),
		CompanyID:         c.ID,
		ShiftID:           sh.ID,
		EmployeeID:        e.ID,
		RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
		StartDate:         time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           &endDate,
	})
	require.NoError(t, err)
	assert.NotNil(t, first.EmployeeName)
	assert.NotNil(t, first.ShiftName)

	second, err := scheduleRepo.Create(ctx, schedule.RecurringSchedule{
		ID:                uuid.NewString(),
		CompanyID:         c.ID,
		ShiftID:           sh.ID,
		EmployeeID:        e.ID,
		RecurrencePattern: "FREQ=WEEKLY;BYDAY=SA",
		StartDate:         time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Window intersecting both rows; creation order must be preserved so
	// later rows win index collisions downstream.
	active, err := scheduleRepo.ListActiveInRange(ctx, c.ID,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)

	// Window entirely after the bounded row: only the open-ended one.
	active, err = scheduleRepo.ListActiveInRange(ctx, c.ID,
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}
