package store

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/errs"
	"github.com/julianstephens/habitkit/internal/keyring"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
)

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Users returns every account ordered by creation time.
func (s *Store) Users() []models.User {
	var users []models.User
	s.scan(constants.KeyPrefixUser, func(key, raw string) {
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			logger.Warn("Skipping corrupt user record", "key", key, "error", err)
			return
		}
		users = append(users, u)
	})
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users
}

// User returns one account by ID.
func (s *Store) User(id string) (models.User, error) {
	var u models.User
	ok, err := s.getJSON(constants.KeyPrefixUser+id, &u)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, errs.ErrNotFound
	}
	return u, nil
}

// UserByEmail returns the account registered under the normalized email.
func (s *Store) UserByEmail(email string) (models.User, error) {
	email = NormalizeEmail(email)
	for _, u := range s.Users() {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, errs.ErrNotFound
}

// Register creates an account and makes it the active session. The password
// is bcrypt-hashed before it is stored. Registering an email that already
// has an account fails with ErrEmailTaken.
func (s *Store) Register(email, password string) (models.User, error) {
	email = NormalizeEmail(email)
	if _, err := s.UserByEmail(email); err == nil {
		return models.User{}, errs.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		Points:       0,
	}
	if err := s.putJSON(constants.KeyPrefixUser+user.ID, user); err != nil {
		return models.User{}, err
	}
	if err := s.SetCurrentUser(user.ID); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks credentials and, on success, makes the account the
// active session. A wrong email or password yields ErrBadCredentials; the
// caller cannot tell which was wrong.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	user, err := s.UserByEmail(email)
	if err != nil {
		return models.User{}, errs.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, errs.ErrBadCredentials
	}
	if err := s.SetCurrentUser(user.ID); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CurrentUser returns the account of the active session, or nil when nobody
// is logged in. The session pointer lives under its own key, mirrored into
// the OS keyring when one is available.
func (s *Store) CurrentUser() (*models.User, error) {
	id, err := keyring.GetSession()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring unavailable, falling back to stored session", "error", err)
		}
		raw, ok, getErr := s.backend.Get(constants.KeySession)
		if getErr != nil {
			return nil, getErr
		}
		if !ok || raw == "" {
			return nil, nil
		}
		id = raw
	}

	user, err := s.User(id)
	if errors.Is(err, errs.ErrNotFound) {
		// Stale session pointing at an erased account.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetCurrentUser makes the account the active session.
func (s *Store) SetCurrentUser(id string) error {
	if _, err := s.User(id); err != nil {
		return err
	}
	if err := s.backend.Set(constants.KeySession, id); err != nil {
		return err
	}
	if err := keyring.SetSession(id); err != nil {
		logger.Debug("Failed to mirror session into keyring", "error", err)
	}
	return nil
}

// LogOut tears down the active session.
func (s *Store) LogOut() error {
	s.clearSessionMirror()
	return s.backend.Delete(constants.KeySession)
}

func (s *Store) clearSessionMirror() {
	if err := keyring.DeleteSession(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Failed to clear keyring session", "error", err)
	}
}

// AddPoints credits reward points to an account.
func (s *Store) AddPoints(userID string, points int) (models.User, error) {
	user, err := s.User(userID)
	if err != nil {
		return models.User{}, err
	}
	user.Points += points
	if err := s.putJSON(constants.KeyPrefixUser+user.ID, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SolvedPuzzles returns the IDs of puzzles the user has answered correctly.
func (s *Store) SolvedPuzzles(userID string) []int {
	var solved []int
	ok, err := s.getJSON(constants.KeyPrefixSolved+userID, &solved)
	if err != nil {
		logger.Warn("Failed to read solved puzzles, returning empty set", "user", userID, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return solved
}

// MarkPuzzleSolved appends a puzzle to the user's solved set. The set is
// append-only; marking an already-solved puzzle is a no-op.
func (s *Store) MarkPuzzleSolved(userID string, puzzleID int) error {
	solved := s.SolvedPuzzles(userID)
	for _, id := range solved {
		if id == puzzleID {
			return nil
		}
	}
	return s.putJSON(constants.KeyPrefixSolved+userID, append(solved, puzzleID))
}

// Reminders returns the user's reminder preferences, with defaults supplied
// when none are stored or the record is unreadable.
func (s *Store) Reminders(userID string) models.Reminders {
	var prefs models.Reminders
	ok, err := s.getJSON(constants.KeyPrefixReminders+userID, &prefs)
	if err != nil {
		logger.Warn("Failed to read reminders, using defaults", "user", userID, "error", err)
		return models.DefaultReminders()
	}
	if !ok {
		return models.DefaultReminders()
	}
	return prefs
}

// SaveReminders stores the user's reminder preferences.
func (s *Store) SaveReminders(userID string, prefs models.Reminders) error {
	return s.putJSON(constants.KeyPrefixReminders+userID, prefs)
}
