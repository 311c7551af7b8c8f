package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/PrandiF/gevp-back/internal/api/metrics"
	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
)

const (
	defaultEventPageSize = 6
	maxPageSize          = 100
)

type eventService struct {
	repo     ports.EventRepository
	recorder ports.ActivityRecorder
	locks    *slotLock
	logger   zerolog.Logger
}

// NewEventService returns an EventService implementation backed by repo.
// Booking mutations are reported to recorder asynchronously.
func NewEventService(repo ports.EventRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) ports.EventService {
	return &eventService{
		repo:     repo,
		recorder: recorder,
		locks:    &slotLock{},
		logger:   logger,
	}
}

// Create validates the proposed slot against every event sharing the
// (facility, date) partition and inserts it when free. The check and the
// insert run under the partition lock, so concurrent creates for the same
// slot serialize instead of double-booking.
func (s *eventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	e, err := eventFromInput(in)
	if err != nil {
		return nil, err
	}

	mu := s.locks.lock(e.Facility + "|" + e.Date)
	defer mu.Unlock()

	free, err := s.available(ctx, e.Facility, e.Date, e.StartTime, e.EndTime, "")
	if err != nil {
		return nil, err
	}
	if !free {
		metrics.BookingConflictsTotal.WithLabelValues("event").Inc()
		return nil, domain.ErrSlotConflict
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create event")
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues("event").Inc()
	s.record(in.Actor, "event.created", created.ID, created.Facility+"|"+created.Date,
		created.Facility+" "+created.Date+" "+created.StartTime+"-"+created.EndTime)
	s.logger.Info().Str("event_id", created.ID).Str("facility", created.Facility).Str("date", created.Date).Msg("event created")
	return created, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

// Update fully replaces the mutable fields of an event. The new time range is
// re-validated against the partition, excluding the record itself.
func (s *eventService) Update(ctx context.Context, in ports.UpdateEventInput) (*domain.Event, error) {
	e, err := eventFromInput(ports.CreateEventInput{
		Facility:   in.Facility,
		Sport:      in.Sport,
		Date:       in.Date,
		MemberName: in.MemberName,
		Title:      in.Title,
		LoadedBy:   in.LoadedBy,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
	})
	if err != nil {
		return nil, err
	}
	e.ID = in.ID

	if _, err := s.repo.FindByID(ctx, in.ID); err != nil {
		return nil, err
	}

	mu := s.locks.lock(e.Facility + "|" + e.Date)
	defer mu.Unlock()

	free, err := s.available(ctx, e.Facility, e.Date, e.StartTime, e.EndTime, e.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		metrics.BookingConflictsTotal.WithLabelValues("event").Inc()
		return nil, domain.ErrSlotConflict
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	s.record(in.Actor, "event.updated", e.ID, e.Facility+"|"+e.Date, "")
	return e, nil
}

// Delete removes an event and returns the removed record.
func (s *eventService) Delete(ctx context.Context, id, actor string) (*domain.Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.record(actor, "event.deleted", e.ID, e.Facility+"|"+e.Date, "")
	s.logger.Info().Str("event_id", id).Msg("event deleted")
	return e, nil
}

func (s *eventService) List(ctx context.Context, in ports.ListInput) (*ports.EventPage, error) {
	page, size := normalizePage(in, defaultEventPageSize)
	items, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return eventPage(items, total, page, size), nil
}

func (s *eventService) Filter(ctx context.Context, criteria ports.EventCriteria, in ports.ListInput) (*ports.EventPage, error) {
	criteria, err := normalizeEventCriteria(criteria)
	if err != nil {
		return nil, err
	}
	page, size := normalizePage(in, defaultEventPageSize)
	items, total, err := s.repo.Filter(ctx, criteria, page, size)
	if err != nil {
		return nil, err
	}
	return eventPage(items, total, page, size), nil
}

// CheckAvailability reports whether the proposed range is free in the
// (facility, date) partition. Read-only: no lock is taken.
func (s *eventService) CheckAvailability(ctx context.Context, in ports.AvailabilityInput) (bool, error) {
	start, err := domain.NormalizeClock(in.StartTime)
	if err != nil {
		return false, err
	}
	end, err := domain.NormalizeClock(in.EndTime)
	if err != nil {
		return false, err
	}
	if in.Facility == "" || !domain.ValidDate(in.Day) || start >= end {
		return false, domain.ErrValidation
	}

	free, err := s.available(ctx, in.Facility, in.Day, start, end, "")
	if err != nil {
		return false, err
	}
	result := "free"
	if !free {
		result = "occupied"
	}
	metrics.AvailabilityChecksTotal.WithLabelValues("event", result).Inc()
	return free, nil
}

func (s *eventService) available(ctx context.Context, facility, date, start, end, excludeID string) (bool, error) {
	overlapping, err := s.repo.FindOverlapping(ctx, facility, date, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

func (s *eventService) record(actor, action, id, partition, detail string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		Actor:        actor,
		Action:       action,
		Resource:     "event",
		ResourceID:   id,
		PartitionKey: partition,
		Detail:       detail,
		Timestamp:    time.Now().UTC(),
	})
}

// eventFromInput validates and normalizes a create/update payload.
func eventFromInput(in ports.CreateEventInput) (*domain.Event, error) {
	start, err := domain.NormalizeClock(in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.NormalizeClock(in.EndTime)
	if err != nil {
		return nil, err
	}
	if in.Facility == "" || in.Sport == "" || in.MemberName == "" || in.Title == "" {
		return nil, domain.ErrValidation
	}
	if !domain.ValidDate(in.Date) || start >= end {
		return nil, domain.ErrValidation
	}
	return &domain.Event{
		Facility:   in.Facility,
		Sport:      in.Sport,
		Date:       in.Date,
		MemberName: in.MemberName,
		Title:      in.Title,
		LoadedBy:   in.LoadedBy,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

func normalizeEventCriteria(c ports.EventCriteria) (ports.EventCriteria, error) {
	var err error
	if c.StartTime != "" {
		if c.StartTime, err = domain.NormalizeClock(c.StartTime); err != nil {
			return c, err
		}
	}
	if c.EndTime != "" {
		if c.EndTime, err = domain.NormalizeClock(c.EndTime); err != nil {
			return c, err
		}
	}
	if c.Date != "" && !domain.ValidDate(c.Date) {
		return c, domain.ErrValidation
	}
	return c, nil
}

func eventPage(items []*domain.Event, total int64, page, size int) *ports.EventPage {
	if items == nil {
		items = []*domain.Event{}
	}
	return &ports.EventPage{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages(total, size),
		Page:       page,
		PageSize:   size,
	}
}

func normalizePage(in ports.ListInput, defaultSize int) (page, size int) {
	page = in.Page
	if page < 1 {
		page = 1
	}
	size = in.PageSize
	if size <= 0 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func totalPages(total int64, size int) int {
	return int(math.Ceil(float64(total) / float64(size)))
}
