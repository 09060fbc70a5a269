package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"grainsync-console/internal/events"
	"grainsync-console/internal/repair"
	repairerrors "grainsync-console/internal/repair/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const maxRetryDelay = time.Minute

// ConsumeSubtypeFailed retries the subtype create for every employee_subtype_failed
// event until it succeeds or the repair runs out of automatic attempts.
func ConsumeSubtypeFailed(
	ctx context.Context,
	reader MessageReader,
	repairService repair.Service,
	retryDelay time.Duration,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.subtype_repair")
	log.Info("subtype repair consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("subtype repair consumer stopped")
				return
			}
			log.Error("fetch subtype repair message failed", zap.Error(err))
			continue
		}

		if !handleSubtypeFailed(ctx, msg, repairService, retryDelay, log) {
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit subtype repair message failed", zap.Error(err))
		}
	}
}

// handleSubtypeFailed returns false only when the context ended mid-retry,
// in which case the message stays uncommitted.
func handleSubtypeFailed(
	ctx context.Context,
	msg kafkago.Message,
	repairService repair.Service,
	retryDelay time.Duration,
	log *zap.Logger,
) bool {
	var event events.EmployeeSubtypeFailedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee_subtype_failed event failed", zap.Error(err))
		return true
	}

	log = log.With(
		zap.String("repair_id", event.RepairID),
		zap.Int64("employee_id", event.EmployeeID),
		zap.String("request_id", event.RequestID),
	)

	for {
		resp, err := repairService.AutoRetry(ctx, event.RepairID)
		switch {
		case err == nil:
			log.Info("subtype repair completed from event", zap.String("status", resp.Status))
			return true
		case errors.Is(err, repairerrors.ErrRetryLimitReached):
			log.Warn("subtype repair left for manual retry", zap.Int("attempts", resp.Attempts))
			return true
		case errors.Is(err, repairerrors.ErrRepairNotFound), errors.Is(err, repairerrors.ErrInvalidRepairID):
			log.Warn("subtype repair event references unknown repair", zap.Error(err))
			return true
		}

		log.Warn("subtype repair attempt failed", zap.Int("attempts", resp.Attempts), zap.Error(err))

		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff(retryDelay, resp.Attempts)):
		}
	}
}

func backoff(base time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := base * time.Duration(attempts)
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
