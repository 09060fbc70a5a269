package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/events"
	"grainsync-console/internal/repair"
	repairerrors "grainsync-console/internal/repair/errors"
	repairMock "grainsync-console/internal/repair/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func eventMessage(t *testing.T, repairID string) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(events.EmployeeSubtypeFailedEvent{
		EventType:  "employee_subtype_failed",
		RepairID:   repairID,
		EmployeeID: 42,
		Kind:       "driver",
	})
	assert.NoError(t, err)
	return kafkago.Message{Value: payload}
}

func TestHandleSubtypeFailed_RetriesUntilResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := repairMock.NewMockService(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		svc.EXPECT().AutoRetry(ctx, "r-1").Return(repair.RepairResponse{ID: "r-1", Attempts: 2}, &erpclient.ServerError{Status: 503}),
		svc.EXPECT().AutoRetry(ctx, "r-1").Return(repair.RepairResponse{ID: "r-1", Attempts: 3, Status: repair.StatusResolved}, nil),
	)

	ok := handleSubtypeFailed(ctx, eventMessage(t, "r-1"), svc, time.Millisecond, zap.NewNop())
	assert.True(t, ok)
}

func TestHandleSubtypeFailed_StopsAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := repairMock.NewMockService(ctrl)
	ctx := context.Background()

	svc.EXPECT().AutoRetry(ctx, "r-1").Return(repair.RepairResponse{ID: "r-1", Attempts: 5}, repairerrors.ErrRetryLimitReached)

	assert.True(t, handleSubtypeFailed(ctx, eventMessage(t, "r-1"), svc, time.Millisecond, zap.NewNop()))
}

func TestHandleSubtypeFailed_BadPayloadIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := repairMock.NewMockService(ctrl)

	assert.True(t, handleSubtypeFailed(context.Background(), kafkago.Message{Value: []byte("{")}, svc, time.Millisecond, zap.NewNop()))
}

func TestHandleSubtypeFailed_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := repairMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	svc.EXPECT().AutoRetry(gomock.Any(), "r-1").DoAndReturn(func(context.Context, string) (repair.RepairResponse, error) {
		cancel()
		return repair.RepairResponse{Attempts: 1}, errors.New("timeout")
	})

	assert.False(t, handleSubtypeFailed(ctx, eventMessage(t, "r-1"), svc, time.Hour, zap.NewNop()))
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed int
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(context.Context, ...kafkago.Message) error {
	f.committed++
	return nil
}

func TestConsumeSubtypeFailed_CommitsHandledMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := repairMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{msgs: []kafkago.Message{eventMessage(t, "r-1"), eventMessage(t, "r-2")}, cancel: cancel}
	svc.EXPECT().AutoRetry(gomock.Any(), "r-1").Return(repair.RepairResponse{Status: repair.StatusResolved}, nil)
	svc.EXPECT().AutoRetry(gomock.Any(), "r-2").Return(repair.RepairResponse{}, repairerrors.ErrRepairNotFound)

	ConsumeSubtypeFailed(ctx, reader, svc, time.Millisecond, zap.NewNop())

	assert.Equal(t, 2, reader.committed)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, backoff(time.Second, 0))
	assert.Equal(t, 3*time.Second, backoff(time.Second, 3))
	assert.Equal(t, maxRetryDelay, backoff(time.Second, 1000))
}
