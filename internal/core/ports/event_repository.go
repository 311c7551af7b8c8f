package ports

import (
	"context"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

// EventCriteria carries the optional filters for event listing. Text fields
// match as case-insensitive substrings, Date matches the exact day, and the
// time bounds follow the overlap/contains semantics documented on Filter.
type EventCriteria struct {
	Facility  string
	Sport     string
	Date      string
	StartTime string
	EndTime   string
}

// EventRepository defines persistence operations for one-off reservations.
// List and Filter return records in creation order (_id ascending) together
// with the total match count.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]*domain.Event, int64, error)
	Filter(ctx context.Context, criteria EventCriteria, page, pageSize int) ([]*domain.Event, int64, error)
	// FindOverlapping returns every event in the (facility, date) partition
	// whose [start,end) range intersects the given one. excludeID, when
	// non-empty, removes one record from consideration (used on update).
	FindOverlapping(ctx context.Context, facility, date, start, end, excludeID string) ([]*domain.Event, error)
}
