package employeeerrors

import (
	"net/http"

	"grainsync-console/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"Date of birth must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown employee field",
		http.StatusBadRequest,
	)
	ErrDesignationNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Designation is not available for the selected department",
		http.StatusBadRequest,
	)
	ErrNoSpecialField = apperror.New(
		apperror.CodeInvalidInput,
		"The selected designation has no extra field",
		http.StatusBadRequest,
	)
	ErrDraftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee draft not found",
		http.StatusNotFound,
	)
	ErrDraftCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Employee draft has already been submitted",
		http.StatusConflict,
	)
	ErrDraftSubmitting = apperror.New(
		apperror.CodeInvalidState,
		"Employee draft is being submitted",
		http.StatusConflict,
	)
	ErrDraftOutcomeUnknown = apperror.New(
		apperror.CodeInvalidState,
		"The backend may already hold this employee, check the employee list and delete the draft",
		http.StatusConflict,
	)
	ErrBaseAlreadyCreated = apperror.New(
		apperror.CodeInvalidState,
		"Employee already exists in the backend, only the extra field can change",
		http.StatusConflict,
	)
	ErrMissingCreatedID = apperror.New(
		apperror.CodeUpstreamError,
		"Backend did not return the new employee ID",
		http.StatusBadGateway,
	)
)
