package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/PrandiF/gevp-back/internal/api/metrics"
	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists audit-trail
// entries. Processing happens off the request path; failures are logged by
// the dispatcher, never surfaced to API callers.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	rec := &domain.ActivityRecord{
		Actor:      in.Actor,
		Action:     in.Action,
		Resource:   in.Resource,
		ResourceID: in.ResourceID,
		Detail:     in.Detail,
		Timestamp:  in.Timestamp,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityRecordedTotal.WithLabelValues(in.Action).Inc()
	s.log.Debug().
		Str("action", in.Action).
		Str("resource_id", in.ResourceID).
		Str("actor", in.Actor).
		Msg("activity recorded")
	return nil
}
