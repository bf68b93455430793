package universityerrors

import (
	"net/http"

	"go-hrportal/internal/shared/apperror"
)

var (
	ErrUniversityNotFound = apperror.New(
		apperror.CodeNotFound,
		"University not found",
		http.StatusNotFound,
	)
	ErrCodeAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"University with the same code already exists",
		http.StatusConflict,
	)
	ErrInvalidUniversityID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid university ID",
		http.StatusBadRequest,
	)
)
