package ports

import (
	"context"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

// ScheduleCriteria carries the optional filters for schedule listing.
type ScheduleCriteria struct {
	Weekday   string
	Facility  string
	Sport     string
	Category  string
	StartTime string
	EndTime   string
}

// ScheduleRepository defines persistence operations for recurring weekly
// slots. Ordering and pagination semantics match EventRepository.
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	FindByID(ctx context.Context, id string) (*domain.Schedule, error)
	Update(ctx context.Context, s *domain.Schedule) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]*domain.Schedule, int64, error)
	Filter(ctx context.Context, criteria ScheduleCriteria, page, pageSize int) ([]*domain.Schedule, int64, error)
	FindOverlapping(ctx context.Context, facility, weekday, start, end, excludeID string) ([]*domain.Schedule, error)
}
