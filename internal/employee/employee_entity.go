package employee

import (
	"slices"
	"strings"
	"time"

	"grainsync-console/internal/designation"
	employeeerrors "grainsync-console/internal/employee/errors"
	"grainsync-console/internal/erpclient"

	"github.com/go-playground/validator/v10"
)

type State string

const (
	StateDrafting   State = "drafting"
	StateSubmitting State = "submitting"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

const (
	DefaultGender = "male"
	DefaultLeaves = 21

	SuccessMessage  = "Employee added successfully!"
	SuccessRedirect = "/hr/employees"

	dateLayout = "2006-01-02"

	interruptedMessage = "previous submit was interrupted"
)

var validate = validator.New()

type DepartmentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Draft is the add-employee form. It lives in Redis between requests.
// OutcomeUnknown marks a draft whose base create may or may not exist in the
// backend. Such a draft can only be deleted.
type Draft struct {
	ID             string        `json:"id"`
	Owner          string        `json:"owner"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	DateOfBirth    string        `json:"date_of_birth"`
	CNIC           string        `json:"cnic"`
	Email          string        `json:"email"`
	Address        string        `json:"address"`
	Gender         string        `json:"gender"`
	Department     DepartmentRef `json:"department"`
	Designation    string        `json:"designation"`
	SpecialValue   string        `json:"special_value"`
	Allowed        []string      `json:"allowed_designations"`
	State          State         `json:"state"`
	EmployeeID     int64         `json:"employee_id"`
	RepairID       string        `json:"repair_id"`
	LastError      string        `json:"last_error"`
	OutcomeUnknown bool          `json:"outcome_unknown,omitempty"`
	SubmittedAt    *time.Time    `json:"submitted_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func NewDraft(id, owner string, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Owner:     owner,
		Gender:    DefaultGender,
		Allowed:   []string{},
		State:     StateDrafting,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d *Draft) checkEditable() error {
	switch d.State {
	case StateDone:
		return employeeerrors.ErrDraftCompleted
	case StateSubmitting:
		return employeeerrors.ErrDraftSubmitting
	}
	if d.OutcomeUnknown {
		return employeeerrors.ErrDraftOutcomeUnknown
	}
	return nil
}

// recoverInterrupted fails a draft left in submitting by a request that never
// finished. Without an employee ID the base create may have gone through.
func (d *Draft) recoverInterrupted() bool {
	if d.State != StateSubmitting {
		return false
	}
	d.State = StateFailed
	d.LastError = interruptedMessage
	if d.EmployeeID == 0 {
		d.OutcomeUnknown = true
	}
	return true
}

// reopen sends a failed draft back to drafting once it is edited.
func (d *Draft) reopen() {
	if d.State == StateFailed {
		d.State = StateDrafting
		d.LastError = ""
	}
}

// beginBaseEdit additionally refuses changes that the backend already has.
func (d *Draft) beginBaseEdit() error {
	if err := d.checkEditable(); err != nil {
		return err
	}
	if d.EmployeeID != 0 {
		return employeeerrors.ErrBaseAlreadyCreated
	}
	d.reopen()
	return nil
}

func (d *Draft) SetField(name, value string) error {
	var target *string
	switch name {
	case "first_name":
		target = &d.FirstName
	case "last_name":
		target = &d.LastName
	case "date_of_birth":
		target = &d.DateOfBirth
	case "cnic":
		target = &d.CNIC
	case "email":
		target = &d.Email
	case "address":
		target = &d.Address
	case "gender":
		target = &d.Gender
	default:
		return employeeerrors.ErrUnknownField
	}

	if err := d.beginBaseEdit(); err != nil {
		return err
	}
	*target = value
	return nil
}

// SelectDepartment clears the designation and special value and reloads the allowed list.
func (d *Draft) SelectDepartment(dept DepartmentRef) error {
	if err := d.beginBaseEdit(); err != nil {
		return err
	}
	d.Department = dept
	d.Designation = ""
	d.SpecialValue = ""
	d.Allowed = designation.Designations(dept.Name)
	return nil
}

// SelectDesignation always discards the previous special value. An empty value clears the selection.
func (d *Draft) SelectDesignation(value string) error {
	if err := d.beginBaseEdit(); err != nil {
		return err
	}
	if value != "" && !slices.Contains(d.Allowed, value) {
		return employeeerrors.ErrDesignationNotAllowed
	}
	d.Designation = value
	d.SpecialValue = ""
	return nil
}

func (d *Draft) SetSpecial(value string) error {
	if err := d.checkEditable(); err != nil {
		return err
	}
	if !d.Kind().IsSpecial() {
		return employeeerrors.ErrNoSpecialField
	}
	d.reopen()
	d.SpecialValue = value
	return nil
}

func (d *Draft) Kind() designation.Kind {
	return designation.KindOf(d.Designation)
}

// SpecialField is the extra input shown for the current designation, if any.
func (d *Draft) SpecialField() (designation.Field, bool) {
	return d.Kind().Field()
}

// MissingFields lists empty required inputs by their JSON names.
func (d *Draft) MissingFields() []string {
	missing := d.missingBaseFields()
	if field, ok := d.SpecialField(); ok && strings.TrimSpace(d.SpecialValue) == "" {
		missing = append(missing, field.Name)
	}
	return missing
}

func (d *Draft) missingBaseFields() []string {
	missing := []string{}
	required := []struct {
		name  string
		value string
	}{
		{"first_name", d.FirstName},
		{"last_name", d.LastName},
		{"date_of_birth", d.DateOfBirth},
		{"cnic", d.CNIC},
		{"email", d.Email},
		{"address", d.Address},
		{"gender", d.Gender},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if d.Department.ID == 0 {
		missing = append(missing, "department")
	}
	if d.Designation == "" {
		missing = append(missing, "designation")
	}
	return missing
}

// Validate checks everything a submit needs, including the special value.
func (d *Draft) Validate() error {
	if missing := d.MissingFields(); len(missing) > 0 {
		return employeeerrors.ErrMissingRequiredFields.WithDetails(map[string]any{"fields": missing})
	}
	return d.validateFormat()
}

// ValidateBase checks the fields stored on the employee record only.
func (d *Draft) ValidateBase() error {
	if missing := d.missingBaseFields(); len(missing) > 0 {
		return employeeerrors.ErrMissingRequiredFields.WithDetails(map[string]any{"fields": missing})
	}
	return d.validateFormat()
}

func (d *Draft) validateFormat() error {
	if err := validate.Var(d.Email, "email"); err != nil {
		return employeeerrors.ErrInvalidEmail
	}
	if _, err := time.Parse(dateLayout, d.DateOfBirth); err != nil {
		return employeeerrors.ErrInvalidDateOfBirth
	}
	if !designation.Allowed(d.Department.Name, d.Designation) {
		return employeeerrors.ErrDesignationNotAllowed
	}
	return nil
}

// BeginSubmit moves a valid draft to submitting. Nothing is sent when it fails.
func (d *Draft) BeginSubmit(now time.Time) error {
	if err := d.checkEditable(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	d.State = StateSubmitting
	d.LastError = ""
	d.SubmittedAt = &now
	return nil
}

func (d *Draft) complete() {
	d.State = StateDone
	d.LastError = ""
}

func (d *Draft) fail(err error) {
	d.State = StateFailed
	d.LastError = err.Error()
}

// Payload is the body sent to POST /api/employees.
func (d *Draft) Payload() erpclient.Employee {
	return erpclient.Employee{
		FirstName:   strings.TrimSpace(d.FirstName),
		LastName:    strings.TrimSpace(d.LastName),
		DateOfBirth: d.DateOfBirth,
		CNIC:        strings.TrimSpace(d.CNIC),
		Email:       strings.TrimSpace(d.Email),
		Designation: d.Designation,
		Address:     strings.TrimSpace(d.Address),
		Gender:      strings.ToLower(d.Gender),
		Department:  erpclient.Department{ID: d.Department.ID},
		Absences:    0,
		Leaves:      DefaultLeaves,
	}
}
