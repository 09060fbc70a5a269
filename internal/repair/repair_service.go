package repair

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"grainsync-console/internal/designation"
	"grainsync-console/internal/events"
	"grainsync-console/internal/messaging/kafka"
	repairerrors "grainsync-console/internal/repair/errors"
	"grainsync-console/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 5
	listLimit          = 100
	maxErrorLength     = 500

	// claimTTL bounds how long a crashed caller can keep a repair from being retried.
	claimTTL = 2 * time.Minute
)

// Gateway creates subtype records in the ERP backend.
type Gateway interface {
	CreateSubtype(ctx context.Context, collection, field string, employeeID int64, value string) (json.RawMessage, error)
}

//go:generate mockgen -source=repair_service.go -destination=mock/repair_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordRequest) (RepairResponse, error)
	ListPending(ctx context.Context) ([]RepairResponse, error)
	GetByID(ctx context.Context, id string) (RepairResponse, error)
	Retry(ctx context.Context, id string) (RepairResponse, error)
	RetryWithValue(ctx context.Context, id, value string) (RepairResponse, error)
	AutoRetry(ctx context.Context, id string) (RepairResponse, error)
	Resolve(ctx context.Context, id string) (RepairResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	gateway     Gateway
	maxAttempts int
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	gateway Gateway,
	maxAttempts int,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("repair.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("repair.service")
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &service{
		db:          db,
		repo:        repo,
		outbox:      outboxRepo,
		gateway:     gateway,
		maxAttempts: maxAttempts,
		logger:      l,
	}
}

func (s *service) Record(ctx context.Context, req RecordRequest) (RepairResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	if _, ok := designation.ParseKind(req.Kind); !ok {
		return RepairResponse{}, repairerrors.ErrInvalidKind
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("record repair begin tx failed", zap.Error(err))
		return RepairResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindPendingByEmployee(ctx, req.EmployeeID)
	err = mapRepositoryError(err)
	switch {
	case errors.Is(err, repairerrors.ErrRepairNotFound):
		rec = &SubtypeRepair{
			ID:          uuid.New(),
			EmployeeID:  req.EmployeeID,
			Kind:        req.Kind,
			Value:       req.Value,
			DraftID:     req.DraftID,
			RequestedBy: req.RequestedBy,
			Status:      StatusPending,
			Attempts:    1,
			LastError:   truncate(req.Reason),
		}
		if err := qtx.Create(ctx, rec); err != nil {
			logger.Error("record repair persist failed", zap.Error(err))
			return RepairResponse{}, mapRepositoryError(err)
		}
	case err != nil:
		logger.Error("record repair lookup failed", zap.Error(err))
		return RepairResponse{}, err
	default:
		rec.Kind = req.Kind
		rec.Value = req.Value
		rec.Attempts++
		rec.LastError = truncate(req.Reason)
		if err := qtx.Save(ctx, rec); err != nil {
			logger.Error("record repair update failed", zap.Error(err))
			return RepairResponse{}, mapRepositoryError(err)
		}
	}

	if s.outbox != nil {
		event := events.EmployeeSubtypeFailedEvent{
			EventType:  "employee_subtype_failed",
			RequestID:  rid,
			RepairID:   rec.ID.String(),
			EmployeeID: rec.EmployeeID,
			Kind:       rec.Kind,
			Attempts:   rec.Attempts,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return RepairResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "subtype_repair",
			AggregateID:   rec.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeSubtypeFailedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			logger.Error("record repair outbox persist failed",
				zap.String("repair_id", rec.ID.String()),
				zap.Error(err),
			)
			return RepairResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("record repair commit failed", zap.Error(err))
		return RepairResponse{}, err
	}

	logger.Warn("subtype repair recorded",
		zap.String("repair_id", rec.ID.String()),
		zap.Int64("employee_id", rec.EmployeeID),
		zap.String("kind", rec.Kind),
		zap.Int("attempts", rec.Attempts),
	)
	return mapToResponse(*rec), nil
}

func (s *service) ListPending(ctx context.Context) ([]RepairResponse, error) {
	recs, err := s.repo.ListByStatus(ctx, StatusPending, listLimit)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RepairResponse, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return RepairResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) Retry(ctx context.Context, id string) (RepairResponse, error) {
	return s.RetryWithValue(ctx, id, "")
}

// RetryWithValue is Retry with a replacement special value, used when the draft
// owner corrected it before resubmitting. An empty value keeps the recorded one.
func (s *service) RetryWithValue(ctx context.Context, id, value string) (RepairResponse, error) {
	rec, err := s.claim(ctx, id)
	if err != nil {
		return RepairResponse{}, err
	}
	if rec.Status == StatusResolved {
		return mapToResponse(*rec), nil
	}
	if value != "" {
		rec.Value = value
	}
	return s.attempt(ctx, rec)
}

// AutoRetry is Retry bounded by the configured attempt limit.
func (s *service) AutoRetry(ctx context.Context, id string) (RepairResponse, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return RepairResponse{}, err
	}
	if rec.Status == StatusResolved {
		return mapToResponse(*rec), nil
	}
	if rec.Attempts >= s.maxAttempts {
		return mapToResponse(*rec), repairerrors.ErrRetryLimitReached
	}

	rec, err = s.claim(ctx, id)
	if err != nil {
		return RepairResponse{}, err
	}
	if rec.Status == StatusResolved {
		return mapToResponse(*rec), nil
	}
	return s.attempt(ctx, rec)
}

// claim makes the caller the only one allowed to send the subtype create for a
// repair. A resolved repair is returned as is. The record is re-read after the
// claim so the caller sees what other callers wrote before it.
func (s *service) claim(ctx context.Context, id string) (*SubtypeRepair, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == StatusResolved {
		return rec, nil
	}

	now := time.Now().UTC()
	claimed, err := s.repo.Claim(ctx, id, now, now.Add(claimTTL))
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("claim repair failed", zap.String("repair_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	rec, err = s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claimed && rec.Status != StatusResolved {
		return nil, repairerrors.ErrRepairInProgress
	}
	return rec, nil
}

func (s *service) Resolve(ctx context.Context, id string) (RepairResponse, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return RepairResponse{}, err
	}
	if rec.Status == StatusResolved {
		return mapToResponse(*rec), nil
	}

	now := time.Now().UTC()
	rec.Status = StatusResolved
	rec.ResolvedAt = &now
	rec.ClaimedUntil = nil
	if err := s.repo.Save(ctx, rec); err != nil {
		return RepairResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) find(ctx context.Context, id string) (*SubtypeRepair, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repairerrors.ErrInvalidRepairID
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rec, nil
}

func (s *service) attempt(ctx context.Context, rec *SubtypeRepair) (RepairResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	kind, ok := designation.ParseKind(rec.Kind)
	if !ok {
		return RepairResponse{}, repairerrors.ErrInvalidKind
	}
	field, _ := kind.Field()

	_, callErr := s.gateway.CreateSubtype(ctx, kind.Collection(), field.Name, rec.EmployeeID, rec.Value)
	rec.Attempts++
	rec.ClaimedUntil = nil
	if callErr != nil {
		rec.LastError = truncate(callErr.Error())
	} else {
		now := time.Now().UTC()
		rec.Status = StatusResolved
		rec.ResolvedAt = &now
		rec.LastError = ""
	}

	// The backend already has the outcome, so it is stored even if the caller left.
	if err := s.repo.Save(context.WithoutCancel(ctx), rec); err != nil {
		logger.Error("repair save failed", zap.String("repair_id", rec.ID.String()), zap.Error(err))
		return RepairResponse{}, mapRepositoryError(err)
	}

	if callErr != nil {
		logger.Warn("subtype repair attempt failed",
			zap.String("repair_id", rec.ID.String()),
			zap.Int("attempts", rec.Attempts),
			zap.Error(callErr),
		)
		return mapToResponse(*rec), callErr
	}

	logger.Info("subtype repair resolved",
		zap.String("repair_id", rec.ID.String()),
		zap.Int64("employee_id", rec.EmployeeID),
	)
	return mapToResponse(*rec), nil
}

// truncate cuts s to at most maxErrorLength bytes without splitting a UTF-8 sequence.
func truncate(s string) string {
	if len(s) <= maxErrorLength {
		return s
	}
	cut := maxErrorLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func mapToResponse(rec SubtypeRepair) RepairResponse {
	resp := RepairResponse{
		ID:          rec.ID.String(),
		EmployeeID:  rec.EmployeeID,
		Kind:        rec.Kind,
		Value:       rec.Value,
		DraftID:     rec.DraftID,
		RequestedBy: rec.RequestedBy,
		Status:      rec.Status,
		Attempts:    rec.Attempts,
		LastError:   rec.LastError,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.ResolvedAt != nil {
		ts := rec.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &ts
	}
	return resp
}

func mapToListResponse(recs []SubtypeRepair) []RepairResponse {
	res := make([]RepairResponse, len(recs))
	for i, r := range recs {
		res[i] = mapToResponse(r)
	}
	return res
}
