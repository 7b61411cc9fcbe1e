package store

import (
	"errors"
	"testing"

	"github.com/julianstephens/habitkit/internal/errs"
	"github.com/julianstephens/habitkit/internal/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	s := setupTestStore(t)

	user, err := s.Register("Alice@Example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "Sup3rSecret" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if user.Points != 0 || user.Level() != 1 {
		t.Errorf("expected fresh account at level 1, got %d points level %d", user.Points, user.Level())
	}

	// Registration logs the account in.
	current, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if current == nil || current.ID != user.ID {
		t.Fatal("expected registration to set the active session")
	}

	// Duplicate email, any casing, is rejected.
	if _, err := s.Register("ALICE@example.com", "0therPassw0rd"); !errors.Is(err, errs.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	authed, err := s.Authenticate("alice@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if authed.ID != user.ID {
		t.Error("authenticated as the wrong user")
	}

	if _, err := s.Authenticate("alice@example.com", "wrong"); !errors.Is(err, errs.ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := s.Authenticate("nobody@example.com", "Sup3rSecret"); !errors.Is(err, errs.ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for unknown email, got %v", err)
	}
}

func TestLogOut(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.Register("bob@example.com", "Sup3rSecret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := s.LogOut(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	current, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if current != nil {
		t.Error("expected no current user after logout")
	}
}

func TestAddPoints(t *testing.T) {
	s := setupTestStore(t)

	user, err := s.Register("carol@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := s.AddPoints(user.ID, 520)
	if err != nil {
		t.Fatalf("add points failed: %v", err)
	}
	if updated.Points != 520 {
		t.Errorf("expected 520 points, got %d", updated.Points)
	}
	if updated.Level() != 2 {
		t.Errorf("expected level 2 at 520 points, got %d", updated.Level())
	}

	// Persisted, not just returned.
	stored, err := s.User(user.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if stored.Points != 520 {
		t.Errorf("expected persisted points 520, got %d", stored.Points)
	}

	if _, err := s.AddPoints("missing", 10); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSolvedPuzzles(t *testing.T) {
	s := setupTestStore(t)

	user, err := s.Register("dave@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if solved := s.SolvedPuzzles(user.ID); len(solved) != 0 {
		t.Errorf("expected empty solved set, got %v", solved)
	}

	for _, id := range []int{3, 1, 3} { // 3 twice: append-only but deduped
		if err := s.MarkPuzzleSolved(user.ID, id); err != nil {
			t.Fatalf("mark solved failed: %v", err)
		}
	}

	solved := s.SolvedPuzzles(user.ID)
	if len(solved) != 2 {
		t.Fatalf("expected 2 solved puzzles, got %v", solved)
	}
	if solved[0] != 3 || solved[1] != 1 {
		t.Errorf("expected insertion order [3 1], got %v", solved)
	}
}

func TestRemindersDefaults(t *testing.T) {
	s := setupTestStore(t)

	user, err := s.Register("erin@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	prefs := s.Reminders(user.ID)
	if !prefs.Enabled || prefs.Time != "08:00" || !prefs.Sound || !prefs.DailyChallenge {
		t.Errorf("unexpected defaults %+v", prefs)
	}

	prefs.Time = "21:30"
	prefs.Sound = false
	if err := s.SaveReminders(user.ID, prefs); err != nil {
		t.Fatalf("save reminders failed: %v", err)
	}

	saved := s.Reminders(user.ID)
	if saved.Time != "21:30" || saved.Sound {
		t.Errorf("unexpected saved prefs %+v", saved)
	}

	// Another user still sees defaults.
	other := models.DefaultReminders()
	if got := s.Reminders("someone-else"); got != other {
		t.Errorf("expected defaults for other user, got %+v", got)
	}
}
