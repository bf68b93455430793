package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	accounterrors "go-hrportal/internal/account/errors"
	"go-hrportal/internal/education"
	"go-hrportal/internal/employee"
	employeeerrors "go-hrportal/internal/employee/errors"
	"go-hrportal/internal/events"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/notification"
	"go-hrportal/internal/shared/apperror"
	"go-hrportal/internal/shared/contextutil"
	"go-hrportal/internal/shared/credentials"
	"go-hrportal/internal/shared/nik"
	"go-hrportal/internal/university"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const otpTTL = 5 * time.Minute

const dateLayout = "2006-01-02"

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) error
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (ForgotPasswordResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) (AccountResponse, error)

	GetAll(ctx context.Context) ([]AccountResponse, error)
	GetByID(ctx context.Context, id string) (AccountResponse, error)
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db             *sql.DB
	repo           Repository
	employeeRepo   employee.Repository
	universityRepo university.Repository
	educationRepo  education.Repository
	outbox         kafka.OutboxRepository
	creds          credentials.Service
	sink           notification.Sink
	rdb            *redis.Client
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	universityRepo university.Repository,
	educationRepo education.Repository,
	outbox kafka.OutboxRepository,
	creds credentials.Service,
	sink notification.Sink,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		employeeRepo:   employeeRepo,
		universityRepo: universityRepo,
		educationRepo:  educationRepo,
		outbox:         outbox,
		creds:          creds,
		sink:           sink,
		rdb:            rdb,
		logger:         l,
	}
}

// registrationResult tags each entity with whether registration created
// it or found it already present.
type registrationResult struct {
	employee          *employee.Employee
	university        *university.University
	universityCreated bool
	education         *education.Education
	account           *Account
}

// Register reconciles Employee, University, Education and Account in a
// single transaction. The email lookup is the sole uniqueness gate and
// runs before any write; the unique index on employees.email backstops
// it under concurrency.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("university_code", req.UniversityCode),
	)

	_, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return RegisterResponse{}, accounterrors.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RegisterResponse{}, err
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return RegisterResponse{}, employeeerrors.ErrInvalidDate
	}
	hiringDate, err := time.Parse(dateLayout, req.HiringDate)
	if err != nil {
		return RegisterResponse{}, employeeerrors.ErrInvalidDate
	}

	hashed, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return RegisterResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	res, err := s.registerTx(ctx, tx, req, birthDate, hiringDate, hashed)
	if err != nil {
		return RegisterResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, mapRegistrationError(err)
	}

	s.logger.Info("account registered",
		zap.String("request_id", rid),
		zap.String("account_id", res.account.ID.String()),
		zap.String("nik", res.employee.NIK),
		zap.Bool("university_created", res.universityCreated),
	)

	s.invalidateEmployeeDetailsCache(ctx)

	return RegisterResponse{
		ID:          res.employee.ID.String(),
		NIK:         res.employee.NIK,
		FullName:    res.employee.FirstName + " " + res.employee.LastName,
		BirthDate:   res.employee.BirthDate.Format(dateLayout),
		Gender:      res.employee.Gender,
		HiringDate:  res.employee.HiringDate.Format(dateLayout),
		Email:       res.employee.Email,
		PhoneNumber: res.employee.PhoneNumber,
		Major:       res.education.Major,
		Degree:      res.education.Degree,
		GPA:         res.education.GPA,
		University:  res.university.Name,
	}, nil
}

func (s *service) registerTx(
	ctx context.Context,
	tx *sql.Tx,
	req RegisterRequest,
	birthDate, hiringDate time.Time,
	hashedPassword string,
) (*registrationResult, error) {
	emplRepo := s.employeeRepo.WithTx(tx)
	univRepo := s.universityRepo.WithTx(tx)
	eduRepo := s.educationRepo.WithTx(tx)
	accRepo := s.repo.WithTx(tx)

	lastNIK, err := emplRepo.GetLastNIK(ctx)
	if err != nil {
		return nil, err
	}
	nextNIK, err := nik.Next(lastNIK)
	if err != nil {
		return nil, err
	}

	empl := &employee.Employee{
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
	if err := emplRepo.Create(ctx, empl); err != nil {
		return nil, mapRegistrationError(err)
	}

	res := &registrationResult{employee: empl}

	univ, err := univRepo.FindByCode(ctx, req.UniversityCode)
	switch {
	case err == nil:
		res.university = univ
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Registration is the only path that introduces universities.
		univ = &university.University{
			ID:   uuid.New(),
			Code: req.UniversityCode,
			Name: req.UniversityName,
		}
		if err := univRepo.Create(ctx, univ); err != nil {
			return nil, mapRegistrationError(err)
		}
		res.university = univ
		res.universityCreated = true
	default:
		return nil, err
	}

	_, err = eduRepo.FindByID(ctx, empl.ID.String())
	switch {
	case err == nil:
		// One education record per employee; a fresh employee cannot
		// have one, but the lookup keeps the create idempotent.
	case errors.Is(err, gorm.ErrRecordNotFound):
		edu := &education.Education{
			ID:           empl.ID,
			Major:        req.Major,
			Degree:       req.Degree,
			GPA:          req.GPA,
			UniversityID: univ.ID,
		}
		if err := eduRepo.Create(ctx, edu); err != nil {
			return nil, mapRegistrationError(err)
		}
		res.education = edu
	default:
		return nil, err
	}
	if res.education == nil {
		res.education = &education.Education{
			ID:           empl.ID,
			Major:        req.Major,
			Degree:       req.Degree,
			GPA:          req.GPA,
			UniversityID: univ.ID,
		}
	}

	acc := &Account{
		ID:       empl.ID,
		Password: hashedPassword,
	}
	if err := accRepo.Create(ctx, acc); err != nil {
		return nil, mapRegistrationError(err)
	}
	res.account = acc

	if s.outbox != nil {
		event := events.AccountRegisteredEvent{
			EventType:  "account_registered",
			RequestID:  contextutil.GetRequestID(ctx),
			AccountID:  acc.ID.String(),
			NIK:        empl.NIK,
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, err
		}
		err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     event.RequestID,
			AggregateType: "account",
			AggregateID:   acc.ID.String(),
			EventType:     event.EventType,
			Topic:         events.AccountTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Login verifies the submitted credentials. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, req LoginRequest) error {
	empl, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return accounterrors.ErrInvalidCredentials
	}

	acc, err := s.repo.FindByID(ctx, empl.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Broken employee/account link is a data integrity problem,
			// not a credential one.
			return accounterrors.ErrAccountNotFound
		}
		return err
	}

	if !s.creds.VerifyPassword(req.Password, acc.Password) {
		return accounterrors.ErrInvalidCredentials
	}

	return nil
}

// ForgotPassword issues a fresh OTP, unconditionally superseding any
// prior one, and dispatches it best-effort after the state is persisted.
func (s *service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (ForgotPasswordResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	empl, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ForgotPasswordResponse{}, apperror.ErrNotFound
		}
		return ForgotPasswordResponse{}, err
	}

	acc, err := s.repo.FindByID(ctx, empl.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ForgotPasswordResponse{}, accounterrors.ErrAccountNotFound
		}
		return ForgotPasswordResponse{}, err
	}

	acc.OTP = s.creds.GenerateOTP()
	acc.ExpiredTime = s.creds.Now().Add(otpTTL)
	acc.IsUsed = false

	if err := s.repo.Update(ctx, acc); err != nil {
		s.logger.Error("persist otp failed", zap.String("request_id", rid), zap.Error(err))
		return ForgotPasswordResponse{}, err
	}

	// The OTP is committed; a failed dispatch must not undo it.
	body := fmt.Sprintf("Your OTP is %d", acc.OTP)
	if err := s.sink.Send(ctx, "Forgot Password", body, req.Email); err != nil {
		s.logger.Warn("dispatch otp notification failed",
			zap.String("request_id", rid),
			zap.String("account_id", acc.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("otp issued",
		zap.String("request_id", rid),
		zap.String("account_id", acc.ID.String()),
		zap.Time("expired_time", acc.ExpiredTime),
	)

	return ForgotPasswordResponse{
		ID:          acc.ID.String(),
		OTP:         acc.OTP,
		ExpiredTime: acc.ExpiredTime,
		IsUsed:      acc.IsUsed,
	}, nil
}

// ChangePassword consumes an issued OTP. The checks run in a fixed
// order: code, expiry, reuse, confirmation.
func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) (AccountResponse, error) {
	empl, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, apperror.ErrNotFound
		}
		return AccountResponse{}, err
	}

	acc, err := s.repo.FindByID(ctx, empl.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, accounterrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}

	if acc.OTP != req.OTP {
		return AccountResponse{}, accounterrors.ErrInvalidOTP
	}
	if s.creds.Now().After(acc.ExpiredTime) {
		return AccountResponse{}, accounterrors.ErrOTPExpired
	}
	if acc.IsUsed {
		return AccountResponse{}, accounterrors.ErrOTPAlreadyUsed
	}
	if req.NewPassword != req.ConfirmPassword {
		return AccountResponse{}, accounterrors.ErrPasswordMismatch
	}

	hashed, err := s.creds.HashPassword(req.NewPassword)
	if err != nil {
		return AccountResponse{}, err
	}

	acc.Password = hashed
	acc.IsUsed = true

	if err := s.repo.Update(ctx, acc); err != nil {
		return AccountResponse{}, err
	}

	s.logger.Info("password changed via otp", zap.String("account_id", acc.ID.String()))

	return toResponse(acc), nil
}

func (s *service) GetAll(ctx context.Context) ([]AccountResponse, error) {
	accs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AccountResponse, 0, len(accs))
	for i := range accs {
		resp = append(resp, toResponse(&accs[i]))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AccountResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AccountResponse{}, accounterrors.ErrInvalidAccountID
	}

	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, accounterrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}
	return toResponse(acc), nil
}

func (s *service) Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	empl, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AccountResponse{}, err
	}

	hashed, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return AccountResponse{}, err
	}

	acc := &Account{
		ID:       empl.ID,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		return AccountResponse{}, mapRegistrationError(err)
	}

	return toResponse(acc), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AccountResponse{}, accounterrors.ErrInvalidAccountID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, accounterrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}

	hashed, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return AccountResponse{}, err
	}

	existing.Password = hashed
	if err := s.repo.Update(ctx, existing); err != nil {
		return AccountResponse{}, err
	}
	return toResponse(existing), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return accounterrors.ErrInvalidAccountID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounterrors.ErrAccountNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) invalidateEmployeeDetailsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employee.DetailsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate employee details cache failed", zap.Error(err))
	}
}

func mapRegistrationError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_employee_email":
			return accounterrors.ErrEmailAlreadyRegistered
		case "uq_university_code":
			// A concurrent registration created the university first.
			return apperror.Wrap(err, apperror.CodeConflict, "University code already exists", http.StatusConflict)
		}
	}

	return err
}
