package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/jalon-pm/jalon/internal/audit"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeAuditRecord is the task type for persisting access-decision
	// audit entries.
	TaskTypeAuditRecord = "audit:record"
)

// NewAuditRecordTask constructs an Asynq task carrying one audit entry.
func NewAuditRecordTask(entry audit.Entry) (*asynq.Task, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeAuditRecord, data), nil
}

// AuditStore persists audit entries.
type AuditStore interface {
	Record(ctx context.Context, entry audit.Entry) error
}

// NewAuditRecordHandler returns the handler processing TaskTypeAuditRecord
// tasks. Malformed payloads are dropped rather than retried.
func NewAuditRecordHandler(store AuditStore, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var entry audit.Entry
		if err := json.Unmarshal(t.Payload(), &entry); err != nil {
			if logger != nil {
				logger.Error("decode audit task", slog.Any("error", err))
			}
			return asynq.SkipRetry
		}
		if err := entry.Validate(); err != nil {
			if logger != nil {
				logger.Error("invalid audit entry", slog.String("id", entry.ID), slog.Any("error", err))
			}
			return asynq.SkipRetry
		}
		if entry.OccurredAt.IsZero() {
			entry.OccurredAt = time.Now().UTC()
		}
		return store.Record(ctx, entry)
	}
}
