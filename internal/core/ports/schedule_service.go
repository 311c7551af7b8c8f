package ports

import (
	"context"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

// CreateScheduleInput carries all data needed to create a recurring slot.
type CreateScheduleInput struct {
	Weekday   string
	Facility  string
	Sport     string
	Category  string
	LoadedBy  string
	StartTime string
	EndTime   string
	Actor     string
}

// UpdateScheduleInput is a full replacement of a schedule's mutable fields.
type UpdateScheduleInput struct {
	ID        string
	Weekday   string
	Facility  string
	Sport     string
	Category  string
	LoadedBy  string
	StartTime string
	EndTime   string
	Actor     string
}

// SchedulePage is one page of schedules plus the pagination envelope values.
type SchedulePage struct {
	Items      []*domain.Schedule
	TotalItems int64
	TotalPages int
	Page       int
	PageSize   int
}

// ScheduleService defines use-case operations for recurring weekly slots.
type ScheduleService interface {
	Create(ctx context.Context, in CreateScheduleInput) (*domain.Schedule, error)
	Get(ctx context.Context, id string) (*domain.Schedule, error)
	Update(ctx context.Context, in UpdateScheduleInput) (*domain.Schedule, error)
	Delete(ctx context.Context, id, actor string) (*domain.Schedule, error)
	List(ctx context.Context, in ListInput) (*SchedulePage, error)
	Filter(ctx context.Context, criteria ScheduleCriteria, in ListInput) (*SchedulePage, error)
	CheckAvailability(ctx context.Context, in AvailabilityInput) (bool, error)
}
