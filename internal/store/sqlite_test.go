package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/me/shopadmin/pkg/model"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func testSession(id string, expiresAt time.Time) *model.Session {
	now := time.Now()
	return &model.Session{
		ID:        id,
		UserID:    "u1",
		Email:     "admin@example.com",
		Name:      "Ada",
		Role:      string(model.RoleAdmin),
		Token:     "tok",
		TokenExp:  now.Add(24 * time.Hour),
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	sess := testSession("sess_1", time.Now().Add(time.Hour))
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := st.GetSession(ctx, "sess_1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got == nil {
		t.Fatal("expected session")
	}
	if got.Email != sess.Email || got.Role != sess.Role || got.Token != sess.Token {
		t.Errorf("round trip mismatch: %+v", got)
	}
	// Unix storage truncates to seconds.
	if got.ExpiresAt.Unix() != sess.ExpiresAt.Unix() {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, sess.ExpiresAt)
	}
}

func TestGetSession_Missing(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	got, err := st.GetSession(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing session, got %+v", got)
	}
}

func TestDeleteSession(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	if err := st.CreateSession(ctx, testSession("sess_del", time.Now().Add(time.Hour))); err != nil {
		t.Fatal(err)
	}
	if err := st.DeleteSession(ctx, "sess_del"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	got, _ := st.GetSession(ctx, "sess_del")
	if got != nil {
		t.Error("session still present after delete")
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	st.CreateSession(ctx, testSession("sess_live", time.Now().Add(time.Hour)))
	st.CreateSession(ctx, testSession("sess_dead", time.Now().Add(-time.Hour)))

	n, err := st.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d sessions, want 1", n)
	}
	if got, _ := st.GetSession(ctx, "sess_live"); got == nil {
		t.Error("live session should survive cleanup")
	}
}

func TestDeleteSessionsByUserID(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	st.CreateSession(ctx, testSession("sess_a", time.Now().Add(time.Hour)))
	st.CreateSession(ctx, testSession("sess_b", time.Now().Add(time.Hour)))

	n, err := st.DeleteSessionsByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("DeleteSessionsByUserID: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d sessions, want 2", n)
	}
}
