package kv

import (
	"path/filepath"
	"testing"
)

// backends returns one of each backend, all rooted in temp storage.
func backends(t *testing.T) map[string]Backend {
	t.Helper()

	badger, err := OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("failed to open badger backend: %v", err)
	}

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite backend: %v", err)
	}

	file, err := OpenFile(filepath.Join(t.TempDir(), "kv.json"))
	if err != nil {
		t.Fatalf("failed to open file backend: %v", err)
	}

	return map[string]Backend{
		"badger": badger,
		"sqlite": sqlite,
		"file":   file,
	}
}

func TestBackendContract(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()

			// Missing key is not an error.
			if _, ok, err := backend.Get("missing"); err != nil || ok {
				t.Fatalf("missing key: ok=%v err=%v", ok, err)
			}

			if err := backend.Set("habit/1", `{"name":"read"}`); err != nil {
				t.Fatalf("set failed: %v", err)
			}
			value, ok, err := backend.Get("habit/1")
			if err != nil || !ok {
				t.Fatalf("get failed: ok=%v err=%v", ok, err)
			}
			if value != `{"name":"read"}` {
				t.Errorf("unexpected value %q", value)
			}

			// Overwrite in place.
			if err := backend.Set("habit/1", `{"name":"write"}`); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}
			value, _, _ = backend.Get("habit/1")
			if value != `{"name":"write"}` {
				t.Errorf("expected overwritten value, got %q", value)
			}

			if err := backend.Delete("habit/1"); err != nil {
				t.Fatalf("delete failed: %v", err)
			}
			if _, ok, _ := backend.Get("habit/1"); ok {
				t.Error("key still present after delete")
			}

			// Deleting a missing key is a no-op.
			if err := backend.Delete("habit/1"); err != nil {
				t.Errorf("deleting missing key failed: %v", err)
			}
		})
	}
}

func TestBackendKeysPrefix(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()

			records := map[string]string{
				"habit/1":               "a",
				"habit/2":               "b",
				"habitlog/1/2026-01-01": "c",
				"user/1":                "d",
			}
			for key, value := range records {
				if err := backend.Set(key, value); err != nil {
					t.Fatalf("set %s failed: %v", key, err)
				}
			}

			keys, err := backend.Keys("habit/")
			if err != nil {
				t.Fatalf("keys failed: %v", err)
			}
			if len(keys) != 2 {
				t.Errorf("expected 2 habit keys, got %v", keys)
			}

			all, err := backend.Keys("")
			if err != nil {
				t.Fatalf("keys failed: %v", err)
			}
			if len(all) != len(records) {
				t.Errorf("expected %d keys, got %v", len(records), all)
			}

			none, err := backend.Keys("prodlog/")
			if err != nil {
				t.Fatalf("keys failed: %v", err)
			}
			if len(none) != 0 {
				t.Errorf("expected no prodlog keys, got %v", none)
			}
		})
	}
}

func TestBackendKeysPrefixLiteral(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()

			// % and _ in a prefix must match themselves, not act as
			// wildcards.
			records := []string{"a%b/1", "aXb/1", "c_d/1", "cXd/1"}
			for _, key := range records {
				if err := backend.Set(key, "v"); err != nil {
					t.Fatalf("set %s failed: %v", key, err)
				}
			}

			keys, err := backend.Keys("a%b/")
			if err != nil {
				t.Fatalf("keys failed: %v", err)
			}
			if len(keys) != 1 || keys[0] != "a%b/1" {
				t.Errorf("expected only the literal %%-prefixed key, got %v", keys)
			}

			keys, err = backend.Keys("c_d/")
			if err != nil {
				t.Fatalf("keys failed: %v", err)
			}
			if len(keys) != 1 || keys[0] != "c_d/1" {
				t.Errorf("expected only the literal _-prefixed key, got %v", keys)
			}
		})
	}
}

func TestOpenDispatch(t *testing.T) {
	dir := t.TempDir()

	backend, err := Open(filepath.Join(dir, "data.db"))
	if err != nil {
		t.Fatalf("failed to open .db path: %v", err)
	}
	if _, ok := backend.(*SQLiteBackend); !ok {
		t.Errorf("expected sqlite backend for .db path, got %T", backend)
	}
	backend.Close()

	backend, err = Open(filepath.Join(dir, "data.json"))
	if err != nil {
		t.Fatalf("failed to open .json path: %v", err)
	}
	if _, ok := backend.(*FileBackend); !ok {
		t.Errorf("expected file backend for .json path, got %T", backend)
	}
	backend.Close()

	backend, err = Open(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("failed to open directory path: %v", err)
	}
	if _, ok := backend.(*BadgerBackend); !ok {
		t.Errorf("expected badger backend for directory path, got %T", backend)
	}
	backend.Close()
}

func TestFileBackendPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")

	first, err := OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open file backend: %v", err)
	}
	if err := first.Set("user/1", "alice"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	first.Close()

	second, err := OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen file backend: %v", err)
	}
	defer second.Close()

	value, ok, err := second.Get("user/1")
	if err != nil || !ok {
		t.Fatalf("get after reopen failed: ok=%v err=%v", ok, err)
	}
	if value != "alice" {
		t.Errorf("unexpected value %q", value)
	}
}
