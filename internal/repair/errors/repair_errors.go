package repairerrors

import (
	"net/http"

	"grainsync-console/internal/shared/apperror"
)

var (
	ErrRepairNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subtype repair not found",
		http.StatusNotFound,
	)
	ErrRepairAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A pending repair already exists for this employee",
		http.StatusConflict,
	)
	ErrInvalidRepairID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid repair ID",
		http.StatusBadRequest,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"Designation kind has no subtype record",
		http.StatusBadRequest,
	)
	ErrRepairInProgress = apperror.New(
		apperror.CodeInvalidState,
		"The missing record is being created, try again shortly",
		http.StatusConflict,
	)
	ErrRetryLimitReached = apperror.New(
		apperror.CodeInvalidState,
		"Automatic retry limit reached",
		http.StatusConflict,
	)
)
