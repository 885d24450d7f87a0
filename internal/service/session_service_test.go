package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdesk/internal/apperr"
	"taskdesk/internal/repository"
)

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := newUser(t, db, "a@example.com")
	svc := NewSessionService(repository.NewSessionRepository(db), repository.NewUserRepository(db), time.Hour)
	ctx := context.Background()

	start := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	session, err := svc.Issue(ctx, user, start)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	resolved, err := svc.Resolve(ctx, session.Token, start.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved wrong user: %d", resolved.ID)
	}

	// Past the TTL the token stops resolving.
	if _, err := svc.Resolve(ctx, session.Token, start.Add(2*time.Hour)); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("expired resolve: expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Resolve(ctx, "no-such-token", start); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("unknown token: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionRevoke(t *testing.T) {
	db := newTestDB(t)
	user := newUser(t, db, "a@example.com")
	svc := NewSessionService(repository.NewSessionRepository(db), repository.NewUserRepository(db), time.Hour)
	ctx := context.Background()

	start := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	session, err := svc.Issue(ctx, user, start)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := svc.Revoke(ctx, session.Token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := svc.Resolve(ctx, session.Token, start); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("revoked resolve: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDeleteExpiredSweepsOnlyStaleSessions(t *testing.T) {
	db := newTestDB(t)
	user := newUser(t, db, "a@example.com")
	svc := NewSessionService(repository.NewSessionRepository(db), repository.NewUserRepository(db), time.Hour)
	ctx := context.Background()

	start := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	stale, err := svc.Issue(ctx, user, start)
	if err != nil {
		t.Fatalf("issue stale: %v", err)
	}
	fresh, err := svc.Issue(ctx, user, start.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("issue fresh: %v", err)
	}

	swept, err := svc.DeleteExpired(ctx, start.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if swept != 1 {
		t.Fatalf("swept = %d, want 1", swept)
	}
	if _, err := svc.Resolve(ctx, stale.Token, start.Add(30*time.Minute)); err == nil {
		t.Fatal("stale session should be gone")
	}
	if _, err := svc.Resolve(ctx, fresh.Token, start.Add(3*time.Hour+30*time.Minute)); err != nil {
		t.Fatalf("fresh session should survive the sweep: %v", err)
	}
}
