package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrportal/internal/account"
	accounterrors "go-hrportal/internal/account/errors"
	"go-hrportal/internal/bootstrap"
	"go-hrportal/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAccountService struct {
	account.Service

	RegisterFn       func(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error)
	LoginFn          func(ctx context.Context, req account.LoginRequest) error
	ForgotPasswordFn func(ctx context.Context, req account.ForgotPasswordRequest) (account.ForgotPasswordResponse, error)
	ChangePasswordFn func(ctx context.Context, req account.ChangePasswordRequest) (account.AccountResponse, error)
}

func (f *fakeAccountService) Register(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAccountService) Login(ctx context.Context, req account.LoginRequest) error {
	return f.LoginFn(ctx, req)
}
func (f *fakeAccountService) ForgotPassword(ctx context.Context, req account.ForgotPasswordRequest) (account.ForgotPasswordResponse, error) {
	return f.ForgotPasswordFn(ctx, req)
}
func (f *fakeAccountService) ChangePassword(ctx context.Context, req account.ChangePasswordRequest) (account.AccountResponse, error) {
	return f.ChangePasswordFn(ctx, req)
}

type recordingAuditLogger struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAuditLogger) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func performJSON(h gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	h(c)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestAccountHandler_Register(t *testing.T) {
	validBody := `{
		"email": "jane.doe@example.com",
		"password": "s3cretpw",
		"first_name": "Jane",
		"last_name": "Doe",
		"birth_date": "1996-04-12",
		"gender": "female",
		"hiring_date": "2025-01-02",
		"phone_number": "081234567890",
		"university_code": "UI",
		"university_name": "Universitas Indonesia",
		"major": "Computer Science",
		"degree": "Bachelor",
		"gpa": 3.7
	}`

	t.Run("success - 201 with composed detail and audit entry", func(t *testing.T) {
		accountID := uuid.New().String()
		svc := &fakeAccountService{
			RegisterFn: func(_ context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
				assert.Equal(t, "jane.doe@example.com", req.Email)
				assert.Equal(t, "UI", req.UniversityCode)
				return account.RegisterResponse{
					ID:         accountID,
					NIK:        "EMP-000008",
					FullName:   "Jane Doe",
					University: "Universitas Indonesia",
				}, nil
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.Register, http.MethodPost, "/api/v1/accounts/register", validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, true, envelope["ok"])
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "EMP-000008", data["nik"])

		assert.Len(t, audit.entries, 1)
		assert.Equal(t, "ACCOUNT_REGISTERED", audit.entries[0].Action)
	})

	t.Run("error - invalid gender rejected by binding", func(t *testing.T) {
		body := strings.Replace(validBody, `"female"`, `"other"`, 1)
		svc := &fakeAccountService{
			RegisterFn: func(_ context.Context, _ account.RegisterRequest) (account.RegisterResponse, error) {
				t.Fatal("service must not be called on invalid input")
				return account.RegisterResponse{}, nil
			},
		}
		h := account.NewHandler(svc, &recordingAuditLogger{})

		w := performJSON(h.Register, http.MethodPost, "/api/v1/accounts/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, false, envelope["ok"])
	})

	t.Run("error - duplicate email maps to 409", func(t *testing.T) {
		svc := &fakeAccountService{
			RegisterFn: func(_ context.Context, _ account.RegisterRequest) (account.RegisterResponse, error) {
				return account.RegisterResponse{}, accounterrors.ErrEmailAlreadyRegistered
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.Register, http.MethodPost, "/api/v1/accounts/register", validBody)

		assert.Equal(t, http.StatusConflict, w.Code)
		envelope := decodeEnvelope(t, w)
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, apperror.CodeConflict, errObj["code"])
		assert.Empty(t, audit.entries)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	body := `{"email":"jane.doe@example.com","password":"s3cretpw"}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeAccountService{
			LoginFn: func(_ context.Context, req account.LoginRequest) error {
				assert.Equal(t, "jane.doe@example.com", req.Email)
				return nil
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.Login, http.MethodPost, "/api/v1/accounts/login", body)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Login success", envelope["data"])
		assert.Empty(t, audit.entries)
	})

	t.Run("error - rejected credentials return 401 and audit the attempt", func(t *testing.T) {
		svc := &fakeAccountService{
			LoginFn: func(_ context.Context, _ account.LoginRequest) error {
				return accounterrors.ErrInvalidCredentials
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.Login, http.MethodPost, "/api/v1/accounts/login", body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, "Email or password is incorrect", errObj["message"])

		assert.Len(t, audit.entries, 1)
		assert.Equal(t, "LOGIN_FAILED", audit.entries[0].Action)
	})

	t.Run("error - malformed email rejected by binding", func(t *testing.T) {
		svc := &fakeAccountService{
			LoginFn: func(_ context.Context, _ account.LoginRequest) error {
				t.Fatal("service must not be called on invalid input")
				return nil
			},
		}
		h := account.NewHandler(svc, &recordingAuditLogger{})

		w := performJSON(h.Login, http.MethodPost, "/api/v1/accounts/login", `{"email":"not-an-email","password":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_ForgotPassword(t *testing.T) {
	body := `{"email":"jane.doe@example.com"}`

	t.Run("success - echoes recovery state and audits issuance", func(t *testing.T) {
		accountID := uuid.New().String()
		expiry := time.Now().Add(5 * time.Minute).UTC()
		svc := &fakeAccountService{
			ForgotPasswordFn: func(_ context.Context, req account.ForgotPasswordRequest) (account.ForgotPasswordResponse, error) {
				return account.ForgotPasswordResponse{
					ID:          accountID,
					OTP:         654321,
					ExpiredTime: expiry,
					IsUsed:      false,
				}, nil
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.ForgotPassword, http.MethodPost, "/api/v1/accounts/forgot-password", body)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		assert.Equal(t, float64(654321), data["otp"])
		assert.Equal(t, false, data["is_used"])

		assert.Len(t, audit.entries, 1)
		assert.Equal(t, "OTP_ISSUED", audit.entries[0].Action)
	})

	t.Run("error - unknown email maps to 404", func(t *testing.T) {
		svc := &fakeAccountService{
			ForgotPasswordFn: func(_ context.Context, _ account.ForgotPasswordRequest) (account.ForgotPasswordResponse, error) {
				return account.ForgotPasswordResponse{}, apperror.ErrNotFound
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.ForgotPassword, http.MethodPost, "/api/v1/accounts/forgot-password", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, audit.entries)
	})
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	body := `{
		"email": "jane.doe@example.com",
		"otp": 654321,
		"new_password": "newpassword",
		"confirm_password": "newpassword"
	}`

	t.Run("success", func(t *testing.T) {
		accountID := uuid.New().String()
		svc := &fakeAccountService{
			ChangePasswordFn: func(_ context.Context, req account.ChangePasswordRequest) (account.AccountResponse, error) {
				assert.Equal(t, 654321, req.OTP)
				return account.AccountResponse{ID: accountID, IsUsed: true}, nil
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.ChangePassword, http.MethodPost, "/api/v1/accounts/change-password", body)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		assert.Equal(t, true, data["is_used"])

		assert.Len(t, audit.entries, 1)
		assert.Equal(t, "PASSWORD_CHANGED", audit.entries[0].Action)
	})

	t.Run("error - mismatched confirmation passes binding, service decides", func(t *testing.T) {
		mismatched := strings.Replace(body, `"confirm_password": "newpassword"`, `"confirm_password": "different"`, 1)
		svc := &fakeAccountService{
			ChangePasswordFn: func(_ context.Context, req account.ChangePasswordRequest) (account.AccountResponse, error) {
				assert.Equal(t, "different", req.ConfirmPassword)
				return account.AccountResponse{}, accounterrors.ErrPasswordMismatch
			},
		}
		audit := &recordingAuditLogger{}
		h := account.NewHandler(svc, audit)

		w := performJSON(h.ChangePassword, http.MethodPost, "/api/v1/accounts/change-password", mismatched)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, "New password and confirmation do not match", errObj["message"])
		assert.Empty(t, audit.entries)
	})

	t.Run("error - expired code maps to invalid state", func(t *testing.T) {
		svc := &fakeAccountService{
			ChangePasswordFn: func(_ context.Context, _ account.ChangePasswordRequest) (account.AccountResponse, error) {
				return account.AccountResponse{}, accounterrors.ErrOTPExpired
			},
		}
		h := account.NewHandler(svc, &recordingAuditLogger{})

		w := performJSON(h.ChangePassword, http.MethodPost, "/api/v1/accounts/change-password", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, apperror.CodeInvalidState, errObj["code"])
	})
}
