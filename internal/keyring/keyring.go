package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/habitkit/internal/constants"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetSession retrieves the active session user ID from the OS keyring.
// Returns ErrNotFound if no session is stored.
func GetSession() (string, error) {
	userID, err := keyring.Get(constants.AppName, constants.DefaultKeyringKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		// Wrap other keyring errors as unavailable
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return userID, nil
}

// SetSession stores the active session user ID in the OS keyring.
func SetSession(userID string) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringKey, userID); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// DeleteSession removes the active session from the OS keyring.
func DeleteSession() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	return nil
}

// MockInit swaps the OS keyring for an in-memory mock. Tests only.
func MockInit() {
	keyring.MockInit()
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is available but empty; any other error
	// likely means it is not usable.
	return err == nil || err == keyring.ErrNotFound
}
