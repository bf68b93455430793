package university

import (
	"context"
	"errors"
	"strings"

	universityerrors "go-hrportal/internal/university/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=university_service.go -destination=mock/university_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUniversityRequest) (UniversityResponse, error)
	GetAll(ctx context.Context) ([]UniversityResponse, error)
	GetByID(ctx context.Context, id string) (UniversityResponse, error)
	Update(ctx context.Context, id string, req UpdateUniversityRequest) (UniversityResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("university.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("university.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUniversityRequest) (UniversityResponse, error) {
	univ := &University{
		ID:   uuid.New(),
		Code: req.Code,
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, univ); err != nil {
		s.logger.Error("create university persist failed", zap.Error(err))
		return UniversityResponse{}, mapRepositoryError(err)
	}

	return toResponse(univ), nil
}

func (s *service) GetAll(ctx context.Context) ([]UniversityResponse, error) {
	univs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UniversityResponse, 0, len(univs))
	for i := range univs {
		resp = append(resp, toResponse(&univs[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UniversityResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UniversityResponse{}, universityerrors.ErrInvalidUniversityID
	}

	univ, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UniversityResponse{}, mapRepositoryError(err)
	}
	return toResponse(univ), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUniversityRequest) (UniversityResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UniversityResponse{}, universityerrors.ErrInvalidUniversityID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UniversityResponse{}, mapRepositoryError(err)
	}

	univ := &University{
		ID:        existing.ID,
		Code:      req.Code,
		Name:      req.Name,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, univ); err != nil {
		return UniversityResponse{}, mapRepositoryError(err)
	}
	return toResponse(univ), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return universityerrors.ErrInvalidUniversityID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return universityerrors.ErrUniversityNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_university_code" {
			return universityerrors.ErrCodeAlreadyUsed
		}
	}

	if msg := strings.ToLower(err.Error()); strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_university_code") {
		return universityerrors.ErrCodeAlreadyUsed
	}

	return err
}
