package store

import (
	"testing"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/keyring"
	"github.com/julianstephens/habitkit/internal/kv"
)

// setupTestStore returns a store over an in-memory backend with the OS
// keyring mocked out.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	keyring.MockInit()

	backend, err := kv.OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("failed to open in-memory backend: %v", err)
	}
	t.Cleanup(func() { backend.Close() })

	return New(backend, t.TempDir())
}

func TestEraseAll(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.Register("alice@example.com", "Sup3rSecret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	habit, err := s.AddHabit("Meditate", "🧘", constants.FrequencyDaily)
	if err != nil {
		t.Fatalf("add habit failed: %v", err)
	}
	if _, err := s.LogCompletion(habit.ID, "2026-08-31"); err != nil {
		t.Fatalf("log completion failed: %v", err)
	}
	if _, err := s.LogProductivity("writing", 25, "2026-08-31"); err != nil {
		t.Fatalf("log productivity failed: %v", err)
	}

	if err := s.EraseAll(); err != nil {
		t.Fatalf("erase failed: %v", err)
	}

	if got := s.Habits(); len(got) != 0 {
		t.Errorf("expected no habits after erase, got %d", len(got))
	}
	if got := s.CompletionLogs(); len(got) != 0 {
		t.Errorf("expected no completion logs after erase, got %d", len(got))
	}
	if got := s.ProductivityLogs(); len(got) != 0 {
		t.Errorf("expected no productivity logs after erase, got %d", len(got))
	}
	if got := s.Users(); len(got) != 0 {
		t.Errorf("expected no users after erase, got %d", len(got))
	}
	user, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if user != nil {
		t.Error("expected no current user after erase")
	}
}

func TestCorruptRecordSkipped(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.AddHabit("Read", "", constants.FrequencyDaily); err != nil {
		t.Fatalf("add habit failed: %v", err)
	}
	// A corrupt record must not poison the whole collection read.
	if err := s.Backend().Set(constants.KeyPrefixHabit+"broken", "{not json"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	habits := s.Habits()
	if len(habits) != 1 {
		t.Fatalf("expected 1 readable habit, got %d", len(habits))
	}
	if habits[0].Name != "Read" {
		t.Errorf("unexpected habit %q", habits[0].Name)
	}
}
