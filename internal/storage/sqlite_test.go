package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestMigrationsIdempotent runs Open twice on the same database and verifies
// the schema_version count stays correct (migration not re-applied).
func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}

	v1, err := s1.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}
	s1.Close()

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()

	v2, err := s2.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}

	if len(v1) != len(v2) {
		t.Errorf("migration count changed: %d -> %d", len(v1), len(v2))
	}
}

// TestMigrationsOrdered verifies migrations are applied in ascending numeric order.
func TestMigrationsOrdered(t *testing.T) {
	s := openTestStore(t)

	versions, err := s.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}

	if len(versions) == 0 {
		t.Fatal("expected at least one applied migration")
	}

	for i := 1; i < len(versions); i++ {
		if versions[i] <= versions[i-1] {
			t.Errorf("migrations not in ascending order: %v", versions)
			break
		}
	}
}

// TestIndexesExist verifies the events indexes are created by the migration.
func TestIndexesExist(t *testing.T) {
	s := openTestStore(t)

	indexes := []string{"idx_events_user_created", "idx_events_created"}
	for _, idx := range indexes {
		var count int
		err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name=?", idx).Scan(&count)
		if err != nil {
			t.Fatalf("querying sqlite_master: %v", err)
		}
		if count != 1 {
			t.Errorf("index %s not found", idx)
		}
	}
}

func TestSaveAndGetEvent(t *testing.T) {
	s := openTestStore(t)

	e := Event{
		ID:        uuid.NewString(),
		UserID:    "u-1",
		Kind:      KindRecommend,
		Query:     "Python, React",
		TopResult: "alice/widget",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := s.SaveEvent(e); err != nil {
		t.Fatalf("SaveEvent: %v", err)
	}

	got, err := s.GetEvent(e.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.UserID != e.UserID || got.Kind != e.Kind || got.Query != e.Query || got.TopResult != e.TopResult {
		t.Errorf("got %+v, want %+v", got, e)
	}
	if !got.CreatedAt.Equal(e.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, e.CreatedAt)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetEvent("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveEvent_DefaultsCreatedAt(t *testing.T) {
	s := openTestStore(t)

	id := uuid.NewString()
	if err := s.SaveEvent(Event{ID: id, Kind: KindGuide}); err != nil {
		t.Fatalf("SaveEvent: %v", err)
	}
	got, err := s.GetEvent(id)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("createdAt not defaulted")
	}
}

func TestListEvents(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		userID := "u-1"
		if i%2 == 1 {
			userID = "u-2"
		}
		err := s.SaveEvent(Event{
			ID:        uuid.NewString(),
			UserID:    userID,
			Kind:      KindRecommend,
			Query:     fmt.Sprintf("query-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveEvent %d: %v", i, err)
		}
	}

	all, err := s.ListEvents("", 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d events, want 5", len(all))
	}
	if all[0].Query != "query-4" {
		t.Errorf("newest first: got %q", all[0].Query)
	}

	forUser, err := s.ListEvents("u-2", 10)
	if err != nil {
		t.Fatalf("ListEvents(u-2): %v", err)
	}
	if len(forUser) != 2 {
		t.Errorf("got %d events for u-2, want 2", len(forUser))
	}
	for _, e := range forUser {
		if e.UserID != "u-2" {
			t.Errorf("event %s belongs to %q", e.ID, e.UserID)
		}
	}

	limited, err := s.ListEvents("", 2)
	if err != nil {
		t.Fatalf("ListEvents limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d events with limit 2", len(limited))
	}
}
