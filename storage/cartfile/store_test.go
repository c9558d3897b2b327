package cartfile

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir, err := ioutil.TempDir("", "cartfile")
	if err != nil {
		t.Fatalf("TempDir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	store, err := Open(filepath.Join(dir, "cart.json"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func awaitChange(t *testing.T, store *Store) {
	t.Helper()
	select {
	case <-store.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification within 2s")
	}
}

func TestStore_missingDocument(t *testing.T) {
	store := openTestStore(t)

	payload, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if payload != nil {
		t.Errorf("Read() = %s, want nil for missing document", payload)
	}
}

func TestStore_writeReadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	doc := []byte(`[{"id":"7","name":"CCNA 200-301","unit_price":299.99,"quantity":1}]`)
	if err := store.Write(doc); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("Read() = %s, want %s", got, doc)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	got, err = store.Read()
	if err != nil || got != nil {
		t.Errorf("Read() after Clear = (%s, %v), want (nil, nil)", got, err)
	}
	// clearing an already-missing document still succeeds
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on missing document failed: %v", err)
	}
}

func TestStore_changeNotifications(t *testing.T) {
	store := openTestStore(t)

	// unrelated files in the directory are ignored
	if err := ioutil.WriteFile(filepath.Join(filepath.Dir(store.path), "other.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	select {
	case <-store.Changes():
		t.Error("unexpected notification for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	if err := store.Write([]byte(`[]`)); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	awaitChange(t, store)

	// a sibling process writing the same path is observed too
	if err := ioutil.WriteFile(store.path, []byte(`[{"id":"7"}]`), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	awaitChange(t, store)
}
