package driver

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func testStore() (*Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	return NewStore(fs, "/state/safari-cli/session.json"), fs
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, _ := testStore()
	want := &Session{
		Port:      9515,
		SessionID: "abc123",
		PID:       4242,
		StartedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store, _ := testStore()
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Load = %v, want ErrNoSession", err)
	}
}

func TestStoreLoadCorruptRecord(t *testing.T) {
	store, fs := testStore()
	if err := afero.WriteFile(fs, store.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	_, err := store.Load()
	if err == nil {
		t.Fatal("expected an error for a corrupt record")
	}
	if errors.Is(err, ErrNoSession) {
		t.Fatal("a corrupt record must not look like an absent one")
	}
}

func TestStoreLoadIncompleteRecord(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero port", `{"port":0,"sessionId":"abc","pid":12}`},
		{"empty session id", `{"port":9515,"sessionId":"","pid":12}`},
		{"zero pid", `{"port":9515,"sessionId":"abc","pid":0}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, fs := testStore()
			if err := afero.WriteFile(fs, store.Path(), []byte(tc.body), 0o600); err != nil {
				t.Fatalf("seed file: %v", err)
			}
			_, err := store.Load()
			if err == nil || errors.Is(err, ErrNoSession) {
				t.Fatalf("Load = %v, want an incomplete-record error", err)
			}
			if !strings.Contains(err.Error(), "incomplete") {
				t.Fatalf("error = %v", err)
			}
		})
	}
}

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	store, fs := testStore()
	err := store.Save(&Session{Port: 9515, SessionID: "abc", PID: 1, StartedAt: time.Now()})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ok, _ := afero.Exists(fs, store.Path()+".tmp"); ok {
		t.Fatal("temporary file left behind after a successful save")
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	store, _ := testStore()
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on absent record: %v", err)
	}
	if err := store.Save(&Session{Port: 1, SessionID: "s", PID: 2, StartedAt: time.Now()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Load after Clear = %v, want ErrNoSession", err)
	}
}

func TestStoreSaveRejectsWhenReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := NewStore(fs, "/state/session.json")
	err := store.Save(&Session{Port: 1, SessionID: "s", PID: 2, StartedAt: time.Now()})
	if err == nil {
		t.Fatal("expected Save to fail on a read-only filesystem")
	}
}
