package resourceerrors

import (
	"net/http"

	"grainsync-console/internal/shared/apperror"
)

var (
	ErrUnknownResource = apperror.New(
		apperror.CodeNotFound,
		"Unknown resource",
		http.StatusNotFound,
	)
	ErrReadOnlyResource = apperror.New(
		apperror.CodeForbidden,
		"Resource is read-only here",
		http.StatusForbidden,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid resource ID",
		http.StatusBadRequest,
	)
	ErrInvalidBody = apperror.New(
		apperror.CodeInvalidInput,
		"Request body must be a JSON object",
		http.StatusBadRequest,
	)
)
