package university_test

import (
	"context"
	"testing"
	"time"

	"go-hrportal/internal/university"
	universityerrors "go-hrportal/internal/university/errors"
	universityMock "go-hrportal/internal/university/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (university.Service, *universityMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := universityMock.NewMockRepository(ctrl)
	return university.NewService(repo), repo
}

func TestUniversityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		var created *university.University
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *university.University) error {
				created = u
				return nil
			})

		resp, err := svc.Create(ctx, university.CreateUniversityRequest{
			Code: "UI",
			Name: "Universitas Indonesia",
		})

		assert.NoError(t, err)
		assert.Equal(t, "UI", created.Code)
		assert.Equal(t, created.ID.String(), resp.ID)
	})

	t.Run("error - duplicate code surfaces as conflict", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_university_code",
		})

		_, err := svc.Create(ctx, university.CreateUniversityRequest{
			Code: "UI",
			Name: "Universitas Indonesia",
		})
		assert.ErrorIs(t, err, universityerrors.ErrCodeAlreadyUsed)
	})
}

func TestUniversityService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success - created date survives", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		createdAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
		existing := &university.University{
			ID:        uuid.New(),
			Code:      "UI",
			Name:      "Universitas Indonesia",
			CreatedAt: createdAt,
		}
		repo.EXPECT().FindByID(ctx, existing.ID.String()).Return(existing, nil)

		var persisted *university.University
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *university.University) error {
				persisted = u
				return nil
			})

		resp, err := svc.Update(ctx, existing.ID.String(), university.UpdateUniversityRequest{
			Code: "UI",
			Name: "University of Indonesia",
		})

		assert.NoError(t, err)
		assert.Equal(t, createdAt, persisted.CreatedAt)
		assert.Equal(t, "University of Indonesia", resp.Name)
	})

	t.Run("error - not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		id := uuid.New().String()
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, id, university.UpdateUniversityRequest{Code: "UI", Name: "X"})
		assert.ErrorIs(t, err, universityerrors.ErrUniversityNotFound)
	})

	t.Run("error - invalid id", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.Update(ctx, "not-a-uuid", university.UpdateUniversityRequest{Code: "UI", Name: "X"})
		assert.ErrorIs(t, err, universityerrors.ErrInvalidUniversityID)
	})
}

func TestUniversityService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("error - not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		id := uuid.New().String()
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(ctx, id)
		assert.ErrorIs(t, err, universityerrors.ErrUniversityNotFound)
	})
}
