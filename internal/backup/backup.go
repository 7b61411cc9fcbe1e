// Package backup creates and restores timestamped snapshots of the key
// space. A snapshot is a JSON map of every key to its stored value, taken
// through the kv contract so it works identically for every backend.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/kv"
)

// Info contains information about a backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for one data path.
type Manager struct {
	dataPath  string
	backupDir string
}

// NewManager creates a backup manager. Backups live in a sibling directory
// of the data path.
func NewManager(dataPath string) *Manager {
	configDir := filepath.Dir(strings.TrimRight(dataPath, string(os.PathSeparator)))
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path
func (m *Manager) BackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// Create snapshots every key in the backend into a new backup file and
// rotates old backups past the retention limit.
func (m *Manager) Create(backend kv.Backend) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	keys, err := backend.Keys("")
	if err != nil {
		return "", fmt.Errorf("failed to enumerate keys: %w", err)
	}
	snapshot := make(map[string]string, len(keys))
	for _, key := range keys {
		value, ok, err := backend.Get(key)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", key, err)
		}
		if ok {
			snapshot[key] = value
		}
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(backupPath, raw, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		return backupPath, fmt.Errorf("backup created but rotation failed: %w", err)
	}
	return backupPath, nil
}

// Restore clears the backend and loads every key from the backup file.
func (m *Manager) Restore(backend kv.Backend, backupPath string) error {
	raw, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	var snapshot map[string]string
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}

	keys, err := backend.Keys("")
	if err != nil {
		return fmt.Errorf("failed to enumerate keys: %w", err)
	}
	for _, key := range keys {
		if err := backend.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	for key, value := range snapshot {
		if err := backend.Set(key, value); err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}
	return nil
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) ||
			!strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// nextBackupPath generates a unique timestamped backup filename.
func (m *Manager) nextBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir,
		constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	// Same minute as an existing backup, add seconds then a counter.
	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir,
		constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s",
			constants.BackupFilePrefix, timestamp, counter, constants.BackupFileSuffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

// rotate deletes the oldest backups past the retention limit.
func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}
