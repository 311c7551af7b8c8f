package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
)

type stubActivityRepo struct {
	inserted []*domain.ActivityRecord
	err      error
}

func (r *stubActivityRepo) Insert(_ context.Context, rec *domain.ActivityRecord) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, rec)
	return nil
}

func TestActivityService_Process(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	in := ports.ActivityInput{
		Actor:      "gevp",
		Action:     "event.created",
		Resource:   "event",
		ResourceID: "ev1",
		Detail:     "Gym A 2024-06-01 10:00-11:00",
		Timestamp:  time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 inserted record, got %d", len(repo.inserted))
	}
	rec := repo.inserted[0]
	if rec.Actor != "gevp" || rec.Action != "event.created" || rec.ResourceID != "ev1" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestActivityService_Process_InsertError(t *testing.T) {
	repo := &stubActivityRepo{err: errors.New("write failed")}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), ports.ActivityInput{Action: "event.created"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, repo.err) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}
