package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-hrportal/internal/employee/errors"
	"go-hrportal/internal/shared/contextutil"
	"go-hrportal/internal/shared/nik"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DetailsCacheKey holds the cached joined detail view. Exported so the
// registration flow can invalidate it after creating an employee.
const DetailsCacheKey = "employees:details"

const detailsCacheTTL = 60 * time.Second

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetDetails(ctx context.Context) ([]EmployeeDetail, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	birthDate, hiringDate, err := parseDates(req.BirthDate, req.HiringDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	lastNIK, err := s.repo.GetLastNIK(ctx)
	if err != nil {
		s.logger.Error("create employee get last nik failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	nextNIK, err := nik.Next(lastNIK)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:          uuid.New(),
		NIK:         nextNIK,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		Gender:      req.Gender,
		HiringDate:  hiringDate,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateDetailsCache(ctx)

	return toResponse(empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, 0, len(empls))
	for i := range empls {
		resp = append(resp, toResponse(&empls[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return toResponse(empl), nil
}

// GetDetails serves the joined detail view from Redis when possible and
// collapses concurrent misses into a single repository query.
func (s *service) GetDetails(ctx context.Context) ([]EmployeeDetail, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, DetailsCacheKey).Result()
		if err == nil {
			var details []EmployeeDetail
			if err := json.Unmarshal([]byte(cached), &details); err == nil {
				return details, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DetailsCacheKey, func() (interface{}, error) {
		details, err := s.repo.FindDetails(ctx)
		if err != nil {
			return nil, err
		}

		caser := cases.Title(language.English)
		for i := range details {
			details[i].FullName = caser.String(details[i].FullName)
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(details); err == nil {
				if err := s.rdb.Set(ctx, DetailsCacheKey, payload, detailsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee details failed", zap.Error(err))
				}
			}
		}
		return details, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeDetail), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	birthDate, hiringDate, err := parseDates(req.BirthDate, req.HiringDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	// NIK and CreatedAt survive updates.
	empl := &Employee{
		ID:          existing.ID,
		NIK:         existing.NIK,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		Gender:      req.Gender,
		HiringDate:  hiringDate,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateDetailsCache(ctx)

	return toResponse(empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateDetailsCache(ctx)
	return nil
}

func (s *service) invalidateDetailsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DetailsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate employee details cache failed", zap.Error(err))
	}
}

func parseDates(birth, hiring string) (time.Time, time.Time, error) {
	birthDate, err := time.Parse(dateLayout, birth)
	if err != nil {
		return time.Time{}, time.Time{}, employeeerrors.ErrInvalidDate
	}
	hiringDate, err := time.Parse(dateLayout, hiring)
	if err != nil {
		return time.Time{}, time.Time{}, employeeerrors.ErrInvalidDate
	}
	return birthDate, hiringDate, nil
}
