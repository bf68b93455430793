package educationerrors

import (
	"net/http"

	"go-hrportal/internal/shared/apperror"
)

var (
	ErrEducationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Education not found",
		http.StatusNotFound,
	)
	ErrInvalidEducationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid education ID",
		http.StatusBadRequest,
	)
	ErrUniversityNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced university does not exist",
		http.StatusBadRequest,
	)
)
