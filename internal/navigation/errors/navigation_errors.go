package navigationerrors

import (
	"net/http"

	"grainsync-console/internal/shared/apperror"
)

var (
	ErrDashboardNotFound = apperror.New(
		apperror.CodeNotFound,
		"Dashboard not found",
		http.StatusNotFound,
	)
	ErrDashboardForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have access to this dashboard",
		http.StatusForbidden,
	)
	ErrMissingSession = apperror.New(
		apperror.CodeUnauthorized,
		"Session is required",
		http.StatusUnauthorized,
	)
)
