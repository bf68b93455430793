package education

import (
	"context"
	"errors"

	educationerrors "go-hrportal/internal/education/errors"
	"go-hrportal/internal/university"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=education_service.go -destination=mock/education_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEducationRequest) (EducationResponse, error)
	GetAll(ctx context.Context) ([]EducationResponse, error)
	GetByID(ctx context.Context, id string) (EducationResponse, error)
	Update(ctx context.Context, id string, req UpdateEducationRequest) (EducationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           Repository
	universityRepo university.Repository
	logger         *zap.Logger
}

func NewService(repo Repository, universityRepo university.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("education.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("education.service")
	}
	return &service{repo: repo, universityRepo: universityRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEducationRequest) (EducationResponse, error) {
	// The referenced university must exist before an education record
	// may point at it.
	if _, err := s.universityRepo.FindByID(ctx, req.UniversityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EducationResponse{}, educationerrors.ErrUniversityNotFound
		}
		return EducationResponse{}, err
	}

	edu := &Education{
		ID:           uuid.MustParse(req.EmployeeID),
		Major:        req.Major,
		Degree:       req.Degree,
		GPA:          req.GPA,
		UniversityID: uuid.MustParse(req.UniversityID),
	}

	if err := s.repo.Create(ctx, edu); err != nil {
		s.logger.Error("create education persist failed", zap.Error(err))
		return EducationResponse{}, err
	}

	return toResponse(edu), nil
}

func (s *service) GetAll(ctx context.Context) ([]EducationResponse, error) {
	edus, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EducationResponse, 0, len(edus))
	for i := range edus {
		resp = append(resp, toResponse(&edus[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EducationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EducationResponse{}, educationerrors.ErrInvalidEducationID
	}

	edu, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EducationResponse{}, educationerrors.ErrEducationNotFound
		}
		return EducationResponse{}, err
	}
	return toResponse(edu), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEducationRequest) (EducationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EducationResponse{}, educationerrors.ErrInvalidEducationID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EducationResponse{}, educationerrors.ErrEducationNotFound
		}
		return EducationResponse{}, err
	}

	if _, err := s.universityRepo.FindByID(ctx, req.UniversityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EducationResponse{}, educationerrors.ErrUniversityNotFound
		}
		return EducationResponse{}, err
	}

	edu := &Education{
		ID:           existing.ID,
		Major:        req.Major,
		Degree:       req.Degree,
		GPA:          req.GPA,
		UniversityID: uuid.MustParse(req.UniversityID),
		CreatedAt:    existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, edu); err != nil {
		return EducationResponse{}, err
	}
	return toResponse(edu), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return educationerrors.ErrInvalidEducationID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return educationerrors.ErrEducationNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
