// Package audit records administrative actions and lifecycle events.
package audit

import (
	"context"
	"time"

	"grainsync-console/internal/session"

	"go.uber.org/zap"
)

const (
	ActionServerShutdown = "SERVER_SHUTDOWN"
	ActionUserRegistered = "USER_REGISTERED"
	ActionUserDeleted    = "USER_DELETED"
	ActionUserPromoted   = "USER_PROMOTED"
)

type Entry struct {
	Action  string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

// ZapLogger writes entries through a named zap logger. The actor is taken from the
// session stored in ctx, if any.
type ZapLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapLogger(logger ...*zap.Logger) *ZapLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &ZapLogger{logger: l, now: time.Now}
}

func (l *ZapLogger) Log(ctx context.Context, entry Entry) {
	actor := "system"
	if sess, ok := session.From(ctx); ok && sess.Username != "" {
		actor = sess.Username
	}

	l.logger.Info(entry.Message,
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("actor", actor),
		zap.Any("meta", entry.Meta),
	)
}
