package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"grainsync-console/internal/department"
	"grainsync-console/internal/designation"
	employeeerrors "grainsync-console/internal/employee/errors"
	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/events"
	"grainsync-console/internal/messaging/kafka"
	"grainsync-console/internal/repair"
	repairerrors "grainsync-console/internal/repair/errors"
	"grainsync-console/internal/shared/apperror"
	"grainsync-console/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	CreateDraft(ctx context.Context, owner string) (DraftResponse, error)
	GetDraft(ctx context.Context, owner, id string) (DraftResponse, error)
	UpdateDraft(ctx context.Context, owner, id string, req UpdateDraftRequest) (DraftResponse, error)
	DeleteDraft(ctx context.Context, owner, id string) error
	SubmitDraft(ctx context.Context, owner, id string) (SubmitResponse, error)
	Create(ctx context.Context, owner string, req CreateEmployeeRequest) (SubmitResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
}

type DepartmentLookup interface {
	GetByID(ctx context.Context, id int64) (department.DepartmentResponse, error)
}

// RepairRecorder keeps track of employees whose subtype record is missing.
// Once a draft has a repair, its subtype is only ever created through it.
type RepairRecorder interface {
	Record(ctx context.Context, req repair.RecordRequest) (repair.RepairResponse, error)
	RetryWithValue(ctx context.Context, id, value string) (repair.RepairResponse, error)
}

type service struct {
	drafts      DraftRepository
	gateway     Gateway
	departments DepartmentLookup
	repairs     RepairRecorder
	outbox      kafka.OutboxRepository
	submitter   *submitter
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	drafts DraftRepository,
	gateway Gateway,
	departments DepartmentLookup,
	repairs RepairRecorder,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(drafts, gateway, departments, repairs, nil, logger...)
}

func NewServiceWithOutbox(
	drafts DraftRepository,
	gateway Gateway,
	departments DepartmentLookup,
	repairs RepairRecorder,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		drafts:      drafts,
		gateway:     gateway,
		departments: departments,
		repairs:     repairs,
		outbox:      outboxRepo,
		submitter:   &submitter{gateway: gateway, logger: l},
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

func (s *service) CreateDraft(ctx context.Context, owner string) (DraftResponse, error) {
	d := NewDraft(uuid.NewString(), owner, s.now())
	if err := s.drafts.Save(ctx, d); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("save draft failed", zap.Error(err))
		return DraftResponse{}, err
	}
	return mapDraftToResponse(*d), nil
}

func (s *service) GetDraft(ctx context.Context, owner, id string) (DraftResponse, error) {
	d, err := s.drafts.FindByID(ctx, owner, id)
	if err != nil {
		return DraftResponse{}, err
	}
	return mapDraftToResponse(*d), nil
}

func (s *service) UpdateDraft(ctx context.Context, owner, id string, req UpdateDraftRequest) (DraftResponse, error) {
	d, err := s.drafts.FindByID(ctx, owner, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if d.State == StateSubmitting {
		var release func()
		if d, release, err = s.takeOverInterrupted(ctx, owner, id); err != nil {
			return DraftResponse{}, err
		}
		defer release()
	}
	if err := s.applyUpdate(ctx, d, req); err != nil {
		return DraftResponse{}, err
	}

	d.UpdatedAt = s.now()
	if err := s.drafts.Save(ctx, d); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("save draft failed",
			zap.String("draft_id", id),
			zap.Error(err),
		)
		return DraftResponse{}, err
	}
	return mapDraftToResponse(*d), nil
}

// applyUpdate runs department, designation and special value changes in that
// order so a request can pick all three at once.
func (s *service) applyUpdate(ctx context.Context, d *Draft, req UpdateDraftRequest) error {
	if req.DepartmentID != nil {
		dept, err := s.departments.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return err
		}
		if err := d.SelectDepartment(DepartmentRef{ID: dept.ID, Name: dept.Name}); err != nil {
			return err
		}
	}
	if req.Designation != nil {
		if err := d.SelectDesignation(*req.Designation); err != nil {
			return err
		}
	}
	if req.SpecialValue != nil {
		if err := d.SetSpecial(*req.SpecialValue); err != nil {
			return err
		}
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"date_of_birth", req.DateOfBirth},
		{"cnic", req.CNIC},
		{"email", req.Email},
		{"address", req.Address},
		{"gender", req.Gender},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := d.SetField(f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) DeleteDraft(ctx context.Context, owner, id string) error {
	d, err := s.drafts.FindByID(ctx, owner, id)
	if err != nil {
		return err
	}
	if d.State == StateSubmitting {
		release, err := s.lock(ctx, owner, id)
		if err != nil {
			return err
		}
		defer release()
	}
	return s.drafts.Delete(ctx, owner, id)
}

func (s *service) SubmitDraft(ctx context.Context, owner, id string) (SubmitResponse, error) {
	release, err := s.lock(ctx, owner, id)
	if err != nil {
		return SubmitResponse{}, err
	}
	defer release()

	d, err := s.drafts.FindByID(ctx, owner, id)
	if err != nil {
		return SubmitResponse{}, err
	}
	if err := s.recoverInterrupted(ctx, d); err != nil {
		return SubmitResponse{}, err
	}
	return s.submit(ctx, d)
}

// lock takes the submit lock. The lock outlives the backend timeouts, so a draft
// stored as submitting while the lock is free was left by a request that died.
func (s *service) lock(ctx context.Context, owner, id string) (func(), error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	locked, err := s.drafts.Lock(ctx, owner, id)
	if err != nil {
		logger.Error("lock draft failed", zap.String("draft_id", id), zap.Error(err))
		return nil, err
	}
	if !locked {
		return nil, employeeerrors.ErrDraftSubmitting
	}
	return func() {
		if err := s.drafts.Unlock(context.WithoutCancel(ctx), owner, id); err != nil {
			logger.Warn("unlock draft failed", zap.String("draft_id", id), zap.Error(err))
		}
	}, nil
}

// takeOverInterrupted locks a draft found in submitting and reloads it, failing
// it if it is still stuck.
func (s *service) takeOverInterrupted(ctx context.Context, owner, id string) (*Draft, func(), error) {
	release, err := s.lock(ctx, owner, id)
	if err != nil {
		return nil, nil, err
	}
	d, err := s.drafts.FindByID(ctx, owner, id)
	if err == nil {
		err = s.recoverInterrupted(ctx, d)
	}
	if err != nil {
		release()
		return nil, nil, err
	}
	return d, release, nil
}

// recoverInterrupted must run under the submit lock.
func (s *service) recoverInterrupted(ctx context.Context, d *Draft) error {
	if !d.recoverInterrupted() {
		return nil
	}
	contextutil.GetLogger(ctx, s.logger).Warn("interrupted submit recovered",
		zap.String("draft_id", d.ID),
		zap.Int64("employee_id", d.EmployeeID),
		zap.Bool("outcome_unknown", d.OutcomeUnknown),
	)
	d.UpdatedAt = s.now()
	return s.drafts.Save(ctx, d)
}

// Create submits a complete form in one call. The draft is still persisted so a
// failed subtype can be retried through the draft endpoints.
func (s *service) Create(ctx context.Context, owner string, req CreateEmployeeRequest) (SubmitResponse, error) {
	d := NewDraft(uuid.NewString(), owner, s.now())
	gender := req.Gender
	if gender == "" {
		gender = DefaultGender
	}
	update := UpdateDraftRequest{
		FirstName:    &req.FirstName,
		LastName:     &req.LastName,
		DateOfBirth:  &req.DateOfBirth,
		CNIC:         &req.CNIC,
		Email:        &req.Email,
		Address:      &req.Address,
		Gender:       &gender,
		DepartmentID: &req.DepartmentID,
		Designation:  &req.Designation,
	}
	// A value sent for a designation without an extra field is dropped.
	if req.SpecialValue != "" && designation.KindOf(req.Designation).IsSpecial() {
		update.SpecialValue = &req.SpecialValue
	}
	if err := s.applyUpdate(ctx, d, update); err != nil {
		return SubmitResponse{}, err
	}
	return s.submit(ctx, d)
}

func (s *service) submit(ctx context.Context, d *Draft) (SubmitResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger).With(zap.String("draft_id", d.ID))

	now := s.now()
	if err := d.BeginSubmit(now); err != nil {
		return SubmitResponse{}, err
	}
	d.UpdatedAt = now
	if err := s.drafts.Save(ctx, d); err != nil {
		logger.Error("save submitting draft failed", zap.Error(err))
		return SubmitResponse{}, err
	}

	var submitErr error
	if d.EmployeeID != 0 && d.RepairID != "" && s.repairs != nil {
		submitErr = s.retryRepair(ctx, d)
	} else {
		submitErr = s.submitter.submit(ctx, d)
	}

	// The backend may already hold the employee, so the outcome is recorded even if the caller left.
	saveCtx := context.WithoutCancel(ctx)
	d.UpdatedAt = s.now()

	if submitErr != nil {
		var se *SubmitError
		if !errors.As(submitErr, &se) {
			se = &SubmitError{Step: StepEmployee, Err: submitErr}
		}
		d.fail(se.Err)
		// Without the new ID a resubmit could create the employee a second time.
		if errors.Is(se.Err, employeeerrors.ErrMissingCreatedID) {
			d.OutcomeUnknown = true
		}
		logger.Warn("employee submit failed",
			zap.String("step", se.Step),
			zap.Int64("employee_id", d.EmployeeID),
			zap.Error(se.Err),
		)
		if se.Step == StepSubtype && d.RepairID == "" {
			s.recordRepair(saveCtx, d, se.Err)
		}
		if err := s.drafts.Save(saveCtx, d); err != nil {
			logger.Error("save failed draft failed", zap.Error(err))
		}
		return SubmitResponse{}, submitFailure(se, d)
	}

	d.complete()
	if err := s.drafts.Save(saveCtx, d); err != nil {
		logger.Error("save completed draft failed", zap.Error(err))
	}
	s.publishCreated(saveCtx, d)

	logger.Info("employee submitted", zap.Int64("employee_id", d.EmployeeID))
	return SubmitResponse{
		Message:    SuccessMessage,
		Redirect:   SuccessRedirect,
		EmployeeID: d.EmployeeID,
		Draft:      mapDraftToResponse(*d),
	}, nil
}

// retryRepair creates the missing subtype through its repair record. The record
// is claimed first, so the repair consumer and a resubmit never both send it.
func (s *service) retryRepair(ctx context.Context, d *Draft) error {
	rec, err := s.repairs.RetryWithValue(ctx, d.RepairID, d.SpecialValue)
	if errors.Is(err, repairerrors.ErrRepairNotFound) {
		contextutil.GetLogger(ctx, s.logger).Warn("repair record missing, sending subtype directly",
			zap.String("draft_id", d.ID),
			zap.String("repair_id", d.RepairID),
		)
		d.RepairID = ""
		return s.submitter.submit(ctx, d)
	}
	if err != nil {
		return &SubmitError{Step: StepSubtype, EmployeeID: d.EmployeeID, Err: err}
	}
	contextutil.GetLogger(ctx, s.logger).Info("employee subtype created through repair",
		zap.String("draft_id", d.ID),
		zap.String("repair_id", rec.ID),
		zap.Int("attempts", rec.Attempts),
	)
	return nil
}

func (s *service) recordRepair(ctx context.Context, d *Draft, cause error) {
	if s.repairs == nil {
		return
	}
	rec, err := s.repairs.Record(ctx, repair.RecordRequest{
		EmployeeID:  d.EmployeeID,
		Kind:        string(d.Kind()),
		Value:       d.SpecialValue,
		DraftID:     d.ID,
		RequestedBy: d.Owner,
		Reason:      cause.Error(),
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("record subtype repair failed",
			zap.String("draft_id", d.ID),
			zap.Int64("employee_id", d.EmployeeID),
			zap.Error(err),
		)
		return
	}
	d.RepairID = rec.ID
}

func (s *service) publishCreated(ctx context.Context, d *Draft) {
	if s.outbox == nil {
		return
	}
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	event := events.EmployeeCreatedEvent{
		EventType:   "employee_created",
		RequestID:   rid,
		EmployeeID:  d.EmployeeID,
		Designation: d.Designation,
		Kind:        string(d.Kind()),
		CreatedBy:   d.Owner,
		OccurredAt:  s.now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("marshal employee created event failed", zap.Error(err))
		return
	}
	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(d.EmployeeID, 10),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		logger.Error("persist employee created event failed",
			zap.Int64("employee_id", d.EmployeeID),
			zap.Error(err),
		)
	}
}

// submitFailure keeps the backend status and attaches the draft so the form can be redisplayed.
func submitFailure(se *SubmitError, d *Draft) error {
	httpErr := apperror.ToHTTP(se.Err)
	message := httpErr.Message
	if se.Step == StepSubtype {
		label := string(d.Kind())
		if field, ok := d.SpecialField(); ok {
			label = field.Label
		}
		message = fmt.Sprintf("Employee %d was created but saving %s failed: %s", d.EmployeeID, label, httpErr.Message)
	}
	return apperror.Wrap(se, httpErr.Code, message, httpErr.Status).WithDetails(map[string]any{
		"step":  se.Step,
		"draft": mapDraftToResponse(*d),
	})
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	if id <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.gateway.GetEmployee(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(e), nil
}

// Update overlays the request on the current record so absences and leaves survive.
func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	if id <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	dept, err := s.departments.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	d := Draft{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		CNIC:        req.CNIC,
		Email:       req.Email,
		Address:     req.Address,
		Gender:      req.Gender,
		Department:  DepartmentRef{ID: dept.ID, Name: dept.Name},
		Designation: req.Designation,
	}
	if err := d.ValidateBase(); err != nil {
		return EmployeeResponse{}, err
	}

	key := strconv.FormatInt(id, 10)
	current, err := s.gateway.GetEmployee(ctx, key)
	if err != nil {
		return EmployeeResponse{}, err
	}

	next := d.Payload()
	next.ID = current.ID
	next.Absences = current.Absences
	next.Leaves = current.Leaves

	updated, err := s.gateway.UpdateEmployee(ctx, key, next)
	if err != nil {
		logger.Warn("update employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if updated.ID == 0 {
		updated.ID = id
	}
	return mapEmployeeToResponse(updated), nil
}

var _ Gateway = (*erpclient.Client)(nil)
