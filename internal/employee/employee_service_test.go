package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-hrportal/internal/employee"
	employeeerrors "go-hrportal/internal/employee/errors"
	employeeMock "go-hrportal/internal/employee/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	svc := employee.NewService(repo, rdb)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		BirthDate:   "1996-04-12",
		Gender:      "female",
		HiringDate:  "2025-01-02",
		Email:       "jane.doe@example.com",
		PhoneNumber: "081234567890",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - next nik derived from the last persisted one", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().GetLastNIK(ctx).Return("EMP-000041", nil)

		var created *employee.Employee
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e *employee.Employee) error {
				created = e
				return nil
			})
		deps.redisMock.ExpectDel(employee.DetailsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000042", created.NIK)
		assert.Equal(t, "EMP-000042", resp.NIK)
		assert.Equal(t, "1996-04-12", resp.BirthDate)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("success - empty table starts the sequence at the base nik", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().GetLastNIK(ctx).Return("", nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redisMock.ExpectDel(employee.DetailsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000001", resp.NIK)
	})

	t.Run("error - malformed hiring date", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validCreateRequest()
		req.HiringDate = "02/01/2025"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
	})

	t.Run("error - duplicate email surfaces as conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().GetLastNIK(ctx).Return("EMP-000041", nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_employee_email",
		})

		_, err := deps.service.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyUsed)
	})
}

func TestEmployeeService_GetDetails(t *testing.T) {
	ctx := context.Background()

	details := []employee.EmployeeDetail{
		{
			ID:         uuid.New(),
			NIK:        "EMP-000001",
			FullName:   "jane doe",
			Email:      "jane.doe@example.com",
			Major:      "Computer Science",
			Degree:     "Bachelor",
			GPA:        3.7,
			University: "Universitas Indonesia",
		},
	}

	t.Run("cache miss - queries repo, title-cases names and caches", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(employee.DetailsCacheKey).RedisNil()
		deps.repo.EXPECT().FindDetails(ctx).Return(details, nil)
		deps.redisMock.Regexp().ExpectSet(employee.DetailsCacheKey, `.*`, 60*time.Second).SetVal("OK")

		got, err := deps.service.GetDetails(ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Jane Doe", got[0].FullName)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit - repo never touched", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached := []employee.EmployeeDetail{{NIK: "EMP-000001", FullName: "Jane Doe"}}
		payload, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(employee.DetailsCacheKey).SetVal(string(payload))

		got, err := deps.service.GetDetails(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", got[0].FullName)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache write failure does not fail the read", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(employee.DetailsCacheKey).RedisNil()
		deps.repo.EXPECT().FindDetails(ctx).Return(details, nil)
		// No Set expectation: the write errors and is only logged.

		got, err := deps.service.GetDetails(ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success - nik and created date survive", func(t *testing.T) {
		deps := setupServiceTest(t)

		createdAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
		existing := &employee.Employee{
			ID:        uuid.New(),
			NIK:       "EMP-000042",
			CreatedAt: createdAt,
		}
		deps.repo.EXPECT().FindByID(ctx, existing.ID.String()).Return(existing, nil)

		var persisted *employee.Employee
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e *employee.Employee) error {
				persisted = e
				return nil
			})
		deps.redisMock.ExpectDel(employee.DetailsCacheKey).SetVal(1)

		req := employee.UpdateEmployeeRequest{
			FirstName:   "Janet",
			LastName:    "Doe",
			BirthDate:   "1996-04-12",
			Gender:      "female",
			HiringDate:  "2025-01-02",
			Email:       "janet.doe@example.com",
			PhoneNumber: "081234567890",
		}
		resp, err := deps.service.Update(ctx, existing.ID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000042", persisted.NIK)
		assert.Equal(t, createdAt, persisted.CreatedAt)
		assert.Equal(t, "Janet", resp.FirstName)
	})

	t.Run("error - invalid id short-circuits", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, "not-a-uuid", employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("error - unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success - invalidates the details cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, id).Return(&employee.Employee{}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.redisMock.ExpectDel(employee.DetailsCacheKey).SetVal(1)

		err := deps.service.Delete(ctx, id)
		assert.NoError(t, err)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("error - unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
