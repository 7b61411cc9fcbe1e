package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitkit/internal/kv"
)

func setupBackend(t *testing.T) kv.Backend {
	t.Helper()
	backend, err := kv.OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("failed to open backend: %v", err)
	}
	t.Cleanup(func() {
		if err := backend.Close(); err != nil {
			t.Errorf("failed to close backend: %v", err)
		}
	})
	return backend
}

func setupManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(filepath.Join(t.TempDir(), "habitkit"))
}

func TestCreateAndRestore(t *testing.T) {
	backend := setupBackend(t)
	m := setupManager(t)

	seed := map[string]string{
		"habit/1":               `{"name":"Read"}`,
		"habitlog/1/2026-01-01": `{"day":"2026-01-01"}`,
		"user/abc":              `{"email":"a@b.com"}`,
	}
	for key, value := range seed {
		if err := backend.Set(key, value); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	path, err := m.Create(backend)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	// Mutate after the snapshot: one key changed, one added, one removed.
	if err := backend.Set("habit/1", `{"name":"Changed"}`); err != nil {
		t.Fatal(err)
	}
	if err := backend.Set("habit/2", `{"name":"Extra"}`); err != nil {
		t.Fatal(err)
	}
	if err := backend.Delete("user/abc"); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(backend, path); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	keys, err := backend.Keys("")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != len(seed) {
		t.Errorf("expected %d keys after restore, got %d: %v", len(seed), len(keys), keys)
	}
	for key, want := range seed {
		got, ok, err := backend.Get(key)
		if err != nil || !ok {
			t.Errorf("key %s missing after restore (ok=%v err=%v)", key, ok, err)
			continue
		}
		if got != want {
			t.Errorf("key %s = %q, want %q", key, got, want)
		}
	}
	if _, ok, _ := backend.Get("habit/2"); ok {
		t.Error("key added after snapshot survived restore")
	}
}

func TestRestoreMissingFile(t *testing.T) {
	backend := setupBackend(t)
	m := setupManager(t)

	if err := m.Restore(backend, filepath.Join(m.BackupDir(), "nope.bak")); err == nil {
		t.Error("expected error restoring a missing backup")
	}
}

func TestListNewestFirst(t *testing.T) {
	backend := setupBackend(t)
	m := setupManager(t)

	if backups, err := m.List(); err != nil || len(backups) != 0 {
		t.Fatalf("expected empty list before any backup, got %v, %v", backups, err)
	}

	var paths []string
	for i := 0; i < 3; i++ {
		path, err := m.Create(backend)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		paths = append(paths, path)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
}

func TestUniqueFilenamesWithinMinute(t *testing.T) {
	backend := setupBackend(t)
	m := setupManager(t)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		path, err := m.Create(backend)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}
}
