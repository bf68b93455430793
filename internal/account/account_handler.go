package account

import (
	"net/http"

	"go-hrportal/internal/bootstrap"
	"go-hrportal/internal/shared/apperror"
	"go-hrportal/internal/shared/contextutil"
	"go-hrportal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	audit   bootstrap.AuditLogger
	logger  *zap.Logger
}

func NewHandler(service Service, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("account.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.handler")
	}
	return &Handler{service: service, audit: audit, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	log.Warn("account request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	mapped := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "ACCOUNT_REGISTERED",
		Message: "New account registered",
		Meta:    map[string]any{"account_id": resp.ID, "nik": resp.NIK},
	})

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	if err := h.service.Login(c.Request.Context(), req); err != nil {
		h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
			Action:  "LOGIN_FAILED",
			Message: "Login attempt rejected",
			Meta:    map[string]any{"ip": c.ClientIP()},
		})
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login success", nil)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.ForgotPassword(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "OTP_ISSUED",
		Message: "Password recovery OTP issued",
		Meta:    map[string]any{"account_id": resp.ID},
	})

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.ChangePassword(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "PASSWORD_CHANGED",
		Message: "Password changed via OTP",
		Meta:    map[string]any{"account_id": resp.ID},
	})

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Data Deleted", nil)
}
