package ports

import (
	"context"
	"time"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

// ActivityInput is the DTO passed from the services to the activity pipeline.
type ActivityInput struct {
	Actor      string
	Action     string // e.g. "event.created", "schedule.deleted"
	Resource   string // "event" or "schedule"
	ResourceID string
	// PartitionKey shards dispatcher workers so activity for one facility/day
	// stays ordered.
	PartitionKey string
	Detail       string
	Timestamp    time.Time
}

// ActivityRecorder enqueues activity records for asynchronous processing.
type ActivityRecorder interface {
	Enqueue(in ActivityInput)
}

// ActivityService processes enqueued activity records.
type ActivityService interface {
	Process(ctx context.Context, in ActivityInput) error
}

// ActivityRepository persists audit-trail entries.
type ActivityRepository interface {
	Insert(ctx context.Context, rec *domain.ActivityRecord) error
}
