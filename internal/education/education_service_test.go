package education_test

import (
	"context"
	"testing"

	"go-hrportal/internal/education"
	educationerrors "go-hrportal/internal/education/errors"
	educationMock "go-hrportal/internal/education/mock"
	"go-hrportal/internal/university"
	universityMock "go-hrportal/internal/university/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service  education.Service
	repo     *educationMock.MockRepository
	univRepo *universityMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := educationMock.NewMockRepository(ctrl)
	univRepo := universityMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:  education.NewService(repo, univRepo),
		repo:     repo,
		univRepo: univRepo,
	}
}

func TestEducationService_Create(t *testing.T) {
	ctx := context.Background()

	employeeID := uuid.New()
	universityID := uuid.New()

	req := education.CreateEducationRequest{
		EmployeeID:   employeeID.String(),
		Major:        "Computer Science",
		Degree:       "Bachelor",
		GPA:          3.7,
		UniversityID: universityID.String(),
	}

	t.Run("success - record keyed by employee id", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.univRepo.EXPECT().FindByID(ctx, universityID.String()).
			Return(&university.University{ID: universityID}, nil)

		var created *education.Education
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e *education.Education) error {
				created = e
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, employeeID, created.ID)
		assert.Equal(t, universityID, created.UniversityID)
		assert.Equal(t, employeeID.String(), resp.ID)
	})

	t.Run("error - unknown university rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.univRepo.EXPECT().FindByID(ctx, universityID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, educationerrors.ErrUniversityNotFound)
	})
}

func TestEducationService_Update(t *testing.T) {
	ctx := context.Background()

	id := uuid.New()
	universityID := uuid.New()

	req := education.UpdateEducationRequest{
		Major:        "Information Systems",
		Degree:       "Master",
		GPA:          3.9,
		UniversityID: universityID.String(),
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().FindByID(ctx, id.String()).
			Return(&education.Education{ID: id}, nil)
		deps.univRepo.EXPECT().FindByID(ctx, universityID.String()).
			Return(&university.University{ID: universityID}, nil)

		var persisted *education.Education
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e *education.Education) error {
				persisted = e
				return nil
			})

		resp, err := deps.service.Update(ctx, id.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, id, persisted.ID)
		assert.Equal(t, "Master", resp.Degree)
	})

	t.Run("error - not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), req)
		assert.ErrorIs(t, err, educationerrors.ErrEducationNotFound)
	})

	t.Run("error - invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, "not-a-uuid", req)
		assert.ErrorIs(t, err, educationerrors.ErrInvalidEducationID)
	})
}

func TestEducationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("error - not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, educationerrors.ErrEducationNotFound)
	})
}
