package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/repository"
	"ocs_dashboard/internal/twin"
)

// ---- shared stubs ----

// eventRepoStub records appends and the last query it was asked for.
// Like database/sql, Append refuses a done context.
type eventRepoStub struct {
	mu      sync.Mutex
	appends []models.AssetEvent
	gotQ    repository.EventQuery
	events  []models.AssetEvent

	appendErr error
	listErr   error

	pruneBefore time.Time
	pruneKeep   int
	pruned      int64
	pruneErr    error
}

func (s *eventRepoStub) Append(ctx context.Context, e models.AssetEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appends = append(s.appends, e)
	return nil
}

func (s *eventRepoStub) List(ctx context.Context, q repository.EventQuery) ([]models.AssetEvent, error) {
	s.gotQ = q
	return s.events, s.listErr
}

func (s *eventRepoStub) Prune(ctx context.Context, before time.Time, keep int) (int64, error) {
	s.pruneBefore = before
	s.pruneKeep = keep
	return s.pruned, s.pruneErr
}

func (s *eventRepoStub) appended() []models.AssetEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AssetEvent, len(s.appends))
	copy(out, s.appends)
	return out
}

// midRand centres every noise term; IntN always returns 0.
type midRand struct{}

func (midRand) Float64() float64 { return 0.5 }
func (midRand) IntN(int) int     { return 0 }

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestFleet(t *testing.T) *twin.Fleet {
	t.Helper()
	f, err := twin.NewFleet(twin.DefaultSpecs(), midRand{}, fixedClock)
	if err != nil {
		t.Fatalf("NewFleet: %v", err)
	}
	return f
}

var errBoom = errors.New("boom")
