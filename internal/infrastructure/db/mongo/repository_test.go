package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

// Ids are validated before any collection access, so these run without a
// database: a malformed hex id must surface as a validation error, never as
// not-found.
func TestEventRepository_MalformedID(t *testing.T) {
	ctx := context.Background()
	repo := &EventRepository{}

	if _, err := repo.FindByID(ctx, "not-a-hex-id"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("FindByID: expected ErrValidation, got %v", err)
	}
	if err := repo.Update(ctx, &domain.Event{ID: "zz"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Update: expected ErrValidation, got %v", err)
	}
	if err := repo.Delete(ctx, "123"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Delete: expected ErrValidation, got %v", err)
	}
	if _, err := repo.FindOverlapping(ctx, "Gym A", "2024-06-01", "10:00", "11:00", "bad"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("FindOverlapping: expected ErrValidation, got %v", err)
	}
}

func TestScheduleRepository_MalformedID(t *testing.T) {
	ctx := context.Background()
	repo := &ScheduleRepository{}

	if _, err := repo.FindByID(ctx, "not-a-hex-id"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("FindByID: expected ErrValidation, got %v", err)
	}
	if err := repo.Update(ctx, &domain.Schedule{ID: "zz"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Update: expected ErrValidation, got %v", err)
	}
	if err := repo.Delete(ctx, "123"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Delete: expected ErrValidation, got %v", err)
	}
	if _, err := repo.FindOverlapping(ctx, "Gym A", "monday", "10:00", "11:00", "bad"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("FindOverlapping: expected ErrValidation, got %v", err)
	}
}

func TestUserRepository_MalformedID(t *testing.T) {
	repo := &UserRepository{}

	if err := repo.Delete(context.Background(), "not-a-hex-id"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Delete: expected ErrValidation, got %v", err)
	}
}
