package employee

import (
	"context"
	"encoding/json"
	"fmt"

	employeeerrors "grainsync-console/internal/employee/errors"
	"grainsync-console/internal/erpclient"

	"go.uber.org/zap"
)

const (
	StepEmployee = "employee"
	StepSubtype  = "subtype"
)

//go:generate mockgen -source=employee_submitter.go -destination=mock/employee_gateway_mock.go -package=mock
type Gateway interface {
	CreateEmployee(ctx context.Context, e erpclient.Employee) (erpclient.Employee, error)
	GetEmployee(ctx context.Context, id string) (erpclient.Employee, error)
	UpdateEmployee(ctx context.Context, id string, e erpclient.Employee) (erpclient.Employee, error)
	CreateSubtype(ctx context.Context, collection, field string, employeeID int64, value string) (json.RawMessage, error)
}

// SubmitError reports which backend call failed. EmployeeID is set when the base record exists.
type SubmitError struct {
	Step       string
	EmployeeID int64
	Err        error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit %s: %v", e.Step, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

type submitter struct {
	gateway Gateway
	logger  *zap.Logger
}

// submit creates the base employee unless the draft already has one, then the
// subtype record for special designations. The subtype call is never made
// without a base employee ID.
func (s *submitter) submit(ctx context.Context, d *Draft) error {
	if d.EmployeeID == 0 {
		created, err := s.gateway.CreateEmployee(ctx, d.Payload())
		if err != nil {
			return &SubmitError{Step: StepEmployee, Err: err}
		}
		if created.ID == 0 {
			return &SubmitError{Step: StepEmployee, Err: employeeerrors.ErrMissingCreatedID}
		}
		d.EmployeeID = created.ID
		s.logger.Info("employee created in backend",
			zap.String("draft_id", d.ID),
			zap.Int64("employee_id", d.EmployeeID),
		)
	}

	kind := d.Kind()
	field, ok := kind.Field()
	if !ok {
		return nil
	}

	if _, err := s.gateway.CreateSubtype(ctx, kind.Collection(), field.Name, d.EmployeeID, d.SpecialValue); err != nil {
		return &SubmitError{Step: StepSubtype, EmployeeID: d.EmployeeID, Err: err}
	}
	s.logger.Info("employee subtype created",
		zap.String("draft_id", d.ID),
		zap.Int64("employee_id", d.EmployeeID),
		zap.String("kind", string(kind)),
	)
	return nil
}
