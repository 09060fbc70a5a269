package employee

import "grainsync-console/internal/designation"

// UpdateDraftRequest is a partial edit. Nil fields are left alone.
type UpdateDraftRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	DateOfBirth  *string `json:"date_of_birth"`
	CNIC         *string `json:"cnic"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	Gender       *string `json:"gender" binding:"omitempty,oneof=male female Male Female"`
	DepartmentID *int64  `json:"department_id"`
	Designation  *string `json:"designation"`
	SpecialValue *string `json:"special_value"`
}

// CreateEmployeeRequest is the one-shot form: a full draft submitted in one call.
type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	DateOfBirth  string `json:"date_of_birth" binding:"required"`
	CNIC         string `json:"cnic" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Address      string `json:"address" binding:"required"`
	Gender       string `json:"gender"`
	DepartmentID int64  `json:"department_id" binding:"required,gt=0"`
	Designation  string `json:"designation" binding:"required"`
	SpecialValue string `json:"special_value"`
}

type UpdateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	DateOfBirth  string `json:"date_of_birth" binding:"required"`
	CNIC         string `json:"cnic" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Address      string `json:"address" binding:"required"`
	Gender       string `json:"gender" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required,gt=0"`
	Designation  string `json:"designation" binding:"required"`
}

type DraftResponse struct {
	ID                  string             `json:"id"`
	FirstName           string             `json:"first_name"`
	LastName            string             `json:"last_name"`
	DateOfBirth         string             `json:"date_of_birth"`
	CNIC                string             `json:"cnic"`
	Email               string             `json:"email"`
	Address             string             `json:"address"`
	Gender              string             `json:"gender"`
	Department          DepartmentRef      `json:"department"`
	Designation         string             `json:"designation"`
	AllowedDesignations []string           `json:"allowed_designations"`
	SpecialField        *designation.Field `json:"special_field,omitempty"`
	SpecialValue        string             `json:"special_value,omitempty"`
	State               State              `json:"state"`
	EmployeeID          int64              `json:"employee_id,omitempty"`
	RepairID            string             `json:"repair_id,omitempty"`
	LastError           string             `json:"last_error,omitempty"`
	OutcomeUnknown      bool               `json:"outcome_unknown,omitempty"`
	MissingFields       []string           `json:"missing_fields"`
}

type SubmitResponse struct {
	Message    string        `json:"message"`
	Redirect   string        `json:"redirect"`
	EmployeeID int64         `json:"employee_id"`
	Draft      DraftResponse `json:"draft"`
}

type EmployeeResponse struct {
	ID          int64         `json:"employee_id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	DateOfBirth string        `json:"date_of_birth"`
	CNIC        string        `json:"cnic"`
	Email       string        `json:"email"`
	Address     string        `json:"address"`
	Gender      string        `json:"gender"`
	Department  DepartmentRef `json:"department"`
	Designation string        `json:"designation"`
	Absences    int           `json:"absences"`
	Leaves      int           `json:"leaves"`
}
