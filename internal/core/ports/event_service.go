package ports

import (
	"context"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

// CreateEventInput carries all data needed to create a one-off reservation.
// Actor is the authenticated username performing the request.
type CreateEventInput struct {
	Facility   string
	Sport      string
	Date       string
	MemberName string
	Title      string
	LoadedBy   string
	StartTime  string
	EndTime    string
	Actor      string
}

// UpdateEventInput is a full replacement of an event's mutable fields.
type UpdateEventInput struct {
	ID         string
	Facility   string
	Sport      string
	Date       string
	MemberName string
	Title      string
	LoadedBy   string
	StartTime  string
	EndTime    string
	Actor      string
}

// AvailabilityInput identifies a partition and a proposed time range.
// Day is a date (YYYY-MM-DD) for events and a weekday for schedules.
type AvailabilityInput struct {
	Facility  string
	Day       string
	StartTime string
	EndTime   string
}

// ListInput carries pagination parameters; zero values select the defaults.
type ListInput struct {
	Page     int
	PageSize int
}

// EventPage is one page of events plus the pagination envelope values.
type EventPage struct {
	Items      []*domain.Event
	TotalItems int64
	TotalPages int
	Page       int
	PageSize   int
}

// EventService defines use-case operations for one-off reservations.
type EventService interface {
	Create(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, in UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id, actor string) (*domain.Event, error)
	List(ctx context.Context, in ListInput) (*EventPage, error)
	Filter(ctx context.Context, criteria EventCriteria, in ListInput) (*EventPage, error)
	CheckAvailability(ctx context.Context, in AvailabilityInput) (bool, error)
}
