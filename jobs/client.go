package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/jalon-pm/jalon/internal/audit"
)

// Client submits jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt) (*Client, error) {
	client := asynq.NewClient(redisOpts)
	return &Client{client: client}, nil
}

// EnqueueAuditRecord enqueues an audit-record task.
func (c *Client) EnqueueAuditRecord(ctx context.Context, entry audit.Entry) (*asynq.TaskInfo, error) {
	task, err := NewAuditRecordTask(entry)
	if err != nil {
		return nil, err
	}
	return c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}

// Recorder is the fire-and-forget front of the audit trail. Enqueue
// failures are logged, never surfaced: an access check must not fail
// because the audit queue is down.
type Recorder struct {
	client *Client
	logger *slog.Logger
}

// NewRecorder constructs a Recorder.
func NewRecorder(client *Client, logger *slog.Logger) *Recorder {
	return &Recorder{client: client, logger: logger}
}

// RecordAccess enqueues one access decision.
func (r *Recorder) RecordAccess(ctx context.Context, actorID, projectID int64, permission string, allowed bool) {
	if r == nil || r.client == nil {
		return
	}
	decision := audit.DecisionDenied
	if allowed {
		decision = audit.DecisionGranted
	}
	entry := audit.Entry{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		ProjectID:  projectID,
		Permission: permission,
		Decision:   decision,
		OccurredAt: time.Now().UTC(),
	}
	if _, err := r.client.EnqueueAuditRecord(ctx, entry); err != nil && r.logger != nil {
		r.logger.Warn("enqueue audit record", slog.String("permission", permission), slog.Any("error", err))
	}
}
