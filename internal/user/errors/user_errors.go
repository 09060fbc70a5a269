package usererrors

import (
	"net/http"

	"grainsync-console/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at least 8 characters long",
		http.StatusBadRequest,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Passwords do not match",
		http.StatusBadRequest,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)

	ErrProtectedUser = apperror.New(
		apperror.CodeForbidden,
		"This user cannot be removed",
		http.StatusForbidden,
	)

	ErrAlreadyAdmin = apperror.New(
		apperror.CodeInvalidState,
		"User is already an admin",
		http.StatusConflict,
	)
)
