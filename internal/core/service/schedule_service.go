package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/PrandiF/gevp-back/internal/api/metrics"
	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
)

const defaultSchedulePageSize = 5

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

type scheduleService struct {
	repo     ports.ScheduleRepository
	recorder ports.ActivityRecorder
	locks    *slotLock
	logger   zerolog.Logger
}

// NewScheduleService returns a ScheduleService implementation backed by repo.
func NewScheduleService(repo ports.ScheduleRepository, recorder ports.ActivityRecorder, logger zerolog.Logger) ports.ScheduleService {
	return &scheduleService{
		repo:     repo,
		recorder: recorder,
		locks:    &slotLock{},
		logger:   logger,
	}
}

// Create validates the proposed slot against every schedule sharing the
// (facility, weekday) partition and inserts it when free, under the partition
// lock like event creation.
func (s *scheduleService) Create(ctx context.Context, in ports.CreateScheduleInput) (*domain.Schedule, error) {
	sc, err := scheduleFromInput(in)
	if err != nil {
		return nil, err
	}

	mu := s.locks.lock(sc.Facility + "|" + sc.Weekday)
	defer mu.Unlock()

	free, err := s.available(ctx, sc.Facility, sc.Weekday, sc.StartTime, sc.EndTime, "")
	if err != nil {
		return nil, err
	}
	if !free {
		metrics.BookingConflictsTotal.WithLabelValues("schedule").Inc()
		return nil, domain.ErrSlotConflict
	}

	created, err := s.repo.Create(ctx, sc)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create schedule")
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues("schedule").Inc()
	s.record(in.Actor, "schedule.created", created.ID, created.Facility+"|"+created.Weekday,
		created.Facility+" "+created.Weekday+" "+created.StartTime+"-"+created.EndTime)
	s.logger.Info().Str("schedule_id", created.ID).Str("facility", created.Facility).Str("weekday", created.Weekday).Msg("schedule created")
	return created, nil
}

func (s *scheduleService) Get(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.repo.FindByID(ctx, id)
}

// Update fully replaces the mutable fields, re-validating the time range
// against the partition excluding the record itself.
func (s *scheduleService) Update(ctx context.Context, in ports.UpdateScheduleInput) (*domain.Schedule, error) {
	sc, err := scheduleFromInput(ports.CreateScheduleInput{
		Weekday:   in.Weekday,
		Facility:  in.Facility,
		Sport:     in.Sport,
		Category:  in.Category,
		LoadedBy:  in.LoadedBy,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	})
	if err != nil {
		return nil, err
	}
	sc.ID = in.ID

	if _, err := s.repo.FindByID(ctx, in.ID); err != nil {
		return nil, err
	}

	mu := s.locks.lock(sc.Facility + "|" + sc.Weekday)
	defer mu.Unlock()

	free, err := s.available(ctx, sc.Facility, sc.Weekday, sc.StartTime, sc.EndTime, sc.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		metrics.BookingConflictsTotal.WithLabelValues("schedule").Inc()
		return nil, domain.ErrSlotConflict
	}

	if err := s.repo.Update(ctx, sc); err != nil {
		return nil, err
	}

	s.record(in.Actor, "schedule.updated", sc.ID, sc.Facility+"|"+sc.Weekday, "")
	return sc, nil
}

// Delete removes a schedule and returns the removed record.
func (s *scheduleService) Delete(ctx context.Context, id, actor string) (*domain.Schedule, error) {
	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.record(actor, "schedule.deleted", sc.ID, sc.Facility+"|"+sc.Weekday, "")
	s.logger.Info().Str("schedule_id", id).Msg("schedule deleted")
	return sc, nil
}

func (s *scheduleService) List(ctx context.Context, in ports.ListInput) (*ports.SchedulePage, error) {
	page, size := normalizePage(in, defaultSchedulePageSize)
	items, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return schedulePage(items, total, page, size), nil
}

func (s *scheduleService) Filter(ctx context.Context, criteria ports.ScheduleCriteria, in ports.ListInput) (*ports.SchedulePage, error) {
	// Stored weekdays are lowercased, so the criterion must be too.
	criteria.Weekday = strings.ToLower(criteria.Weekday)

	var err error
	if criteria.StartTime != "" {
		if criteria.StartTime, err = domain.NormalizeClock(criteria.StartTime); err != nil {
			return nil, err
		}
	}
	if criteria.EndTime != "" {
		if criteria.EndTime, err = domain.NormalizeClock(criteria.EndTime); err != nil {
			return nil, err
		}
	}
	page, size := normalizePage(in, defaultSchedulePageSize)
	items, total, err := s.repo.Filter(ctx, criteria, page, size)
	if err != nil {
		return nil, err
	}
	return schedulePage(items, total, page, size), nil
}

// CheckAvailability reports whether the proposed range is free in the
// (facility, weekday) partition.
func (s *scheduleService) CheckAvailability(ctx context.Context, in ports.AvailabilityInput) (bool, error) {
	start, err := domain.NormalizeClock(in.StartTime)
	if err != nil {
		return false, err
	}
	end, err := domain.NormalizeClock(in.EndTime)
	if err != nil {
		return false, err
	}
	weekday := strings.ToLower(in.Day)
	if in.Facility == "" || !weekdays[weekday] || start >= end {
		return false, domain.ErrValidation
	}

	free, err := s.available(ctx, in.Facility, weekday, start, end, "")
	if err != nil {
		return false, err
	}
	result := "free"
	if !free {
		result = "occupied"
	}
	metrics.AvailabilityChecksTotal.WithLabelValues("schedule", result).Inc()
	return free, nil
}

func (s *scheduleService) available(ctx context.Context, facility, weekday, start, end, excludeID string) (bool, error) {
	overlapping, err := s.repo.FindOverlapping(ctx, facility, weekday, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

func (s *scheduleService) record(actor, action, id, partition, detail string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		Actor:        actor,
		Action:       action,
		Resource:     "schedule",
		ResourceID:   id,
		PartitionKey: partition,
		Detail:       detail,
		Timestamp:    time.Now().UTC(),
	})
}

func scheduleFromInput(in ports.CreateScheduleInput) (*domain.Schedule, error) {
	start, err := domain.NormalizeClock(in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.NormalizeClock(in.EndTime)
	if err != nil {
		return nil, err
	}
	weekday := strings.ToLower(in.Weekday)
	if in.Facility == "" || in.Sport == "" || in.Category == "" {
		return nil, domain.ErrValidation
	}
	if !weekdays[weekday] || start >= end {
		return nil, domain.ErrValidation
	}
	return &domain.Schedule{
		Weekday:   weekday,
		Facility:  in.Facility,
		Sport:     in.Sport,
		Category:  in.Category,
		LoadedBy:  in.LoadedBy,
		StartTime: start,
		EndTime:   end,
	}, nil
}

func schedulePage(items []*domain.Schedule, total int64, page, size int) *ports.SchedulePage {
	if items == nil {
		items = []*domain.Schedule{}
	}
	return &ports.SchedulePage{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages(total, size),
		Page:       page,
		PageSize:   size,
	}
}
