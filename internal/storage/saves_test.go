package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionMissingSlot(t *testing.T) {
	store := openTestStore(t)

	data, err := store.LoadSession("nobody")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if data != nil {
		t.Errorf("LoadSession() = %v, expected nil", data)
	}
}

func TestSessionSaveLoadReplace(t *testing.T) {
	store := openTestStore(t)

	first := []byte{1, 0, 0, 0, 0xFF}
	if err := store.SaveSession("matchem", first); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	got, err := store.LoadSession("matchem")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Errorf("LoadSession() = %v, expected %v", got, first)
	}

	second := []byte{2, 3}
	if err := store.SaveSession("matchem", second); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	got, err = store.LoadSession("matchem")
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if !bytes.Equal(got, second) {
		t.Errorf("LoadSession() after replace = %v, expected %v", got, second)
	}

	infos, err := store.Sessions()
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(infos) != 1 || infos[0].Slot != "matchem" || infos[0].Size != 2 {
		t.Errorf("Sessions() = %+v", infos)
	}
}

func TestSessionSlotsAreSeparate(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSession("matchem:alice", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSession("matchem:bob", []byte("b")); err != nil {
		t.Fatal(err)
	}

	got, _ := store.LoadSession("matchem:alice")
	if string(got) != "a" {
		t.Errorf("alice = %q", got)
	}

	if err := store.DeleteSession("matchem:alice"); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	got, _ = store.LoadSession("matchem:alice")
	if got != nil {
		t.Errorf("deleted slot = %q, expected nil", got)
	}
	got, _ = store.LoadSession("matchem:bob")
	if string(got) != "b" {
		t.Errorf("bob = %q after deleting alice", got)
	}
}

func TestSessionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveSession("matchem", []byte{9, 8, 7}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.LoadSession("matchem")
	if err != nil || !bytes.Equal(got, []byte{9, 8, 7}) {
		t.Errorf("LoadSession() = %v, %v", got, err)
	}
}
