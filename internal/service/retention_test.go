package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetentionService_Prune(t *testing.T) {
	repo := &eventRepoStub{pruned: 3}
	svc := NewRetentionService(repo, fixedClock, time.Hour, 500, nil)

	n, err := svc.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 3 {
		t.Fatalf("removed = %d", n)
	}
	if !repo.pruneBefore.Equal(testNow.Add(-time.Hour)) || repo.pruneKeep != 500 {
		t.Fatalf("unexpected prune args before=%v keep=%d", repo.pruneBefore, repo.pruneKeep)
	}
}

func TestRetentionService_ZeroAgeDisablesAgeRule(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewRetentionService(repo, fixedClock, 0, 0, nil)

	if _, err := svc.Prune(context.Background()); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if !repo.pruneBefore.IsZero() || repo.pruneKeep != 0 {
		t.Fatalf("unexpected prune args before=%v keep=%d", repo.pruneBefore, repo.pruneKeep)
	}
}

func TestRetentionService_Error(t *testing.T) {
	svc := NewRetentionService(&eventRepoStub{pruneErr: errBoom}, fixedClock, time.Hour, 0, nil)
	if _, err := svc.Prune(context.Background()); !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom, got %v", err)
	}
}
