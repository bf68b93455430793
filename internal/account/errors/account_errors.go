package accounterrors

import (
	"net/http"

	"go-hrportal/internal/shared/apperror"
)

var (
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so responses never reveal which one it was.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email or password is incorrect",
		http.StatusUnauthorized,
	)
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)
	ErrInvalidOTP = apperror.New(
		apperror.CodeInvalidInput,
		"Incorrect OTP code",
		http.StatusBadRequest,
	)
	ErrOTPExpired = apperror.New(
		apperror.CodeInvalidState,
		"OTP code has expired",
		http.StatusBadRequest,
	)
	ErrOTPAlreadyUsed = apperror.New(
		apperror.CodeInvalidState,
		"OTP code has already been used",
		http.StatusBadRequest,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"New password and confirmation do not match",
		http.StatusBadRequest,
	)
	ErrInvalidAccountID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid account ID",
		http.StatusBadRequest,
	)
)
