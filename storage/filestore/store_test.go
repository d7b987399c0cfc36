package filestore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core/session"
	"github.com/trezcool/shule/core/user"
)

func setup(t *testing.T) *Store {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return store
}

func testSession() session.Session {
	return session.Session{
		Token: "abc123",
		Profile: user.Profile{
			ID:        1,
			Name:      "Asha",
			Role:      "Teacher",
			Email:     null.StringFrom("asha@test.cd"),
			ClassName: null.StringFrom("P4"),
		},
		Role:    user.RoleTeacher,
		SavedAt: time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestStore_roundTrip(t *testing.T) {
	store := setup(t)
	want := testSession()

	if err := store.Write(want); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	assert.Equal(t, want, got)

	// overwritten on every login
	want.Token = "def456"
	want.Role = user.RoleStudent
	if err := store.Write(want); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	got, err = store.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	assert.Equal(t, want, got)
}

func TestStore_freshStore(t *testing.T) {
	store := setup(t)

	sess, err := store.Read()
	if err != session.ErrNoSession {
		t.Fatalf("Read() error = %v, want ErrNoSession", err)
	}
	// launch decision on a fresh store: login, not a crash
	if route := sess.LaunchRoute(); route != user.RouteLogin {
		t.Errorf("LaunchRoute() = %q, want %q", route, user.RouteLogin)
	}
}

func TestStore_clearIdempotent(t *testing.T) {
	store := setup(t)

	if err := store.Write(testSession()); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	// clearing twice leaves the same empty state as clearing once
	for i := 0; i < 2; i++ {
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() #%d failed: %v", i+1, err)
		}
		if _, err := store.Read(); err != session.ErrNoSession {
			t.Errorf("Read() after Clear() #%d error = %v, want ErrNoSession", i+1, err)
		}
	}
}

func TestStore_corruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, sessionFile), []byte("{not json"), 0600); err != nil {
		t.Fatalf("writing corrupt file failed: %v", err)
	}

	// corrupt local state reads as logged out and is wiped
	if _, err := store.Read(); err != session.ErrNoSession {
		t.Fatalf("Read() error = %v, want ErrNoSession", err)
	}
	if _, err := os.Stat(filepath.Join(dir, sessionFile)); !os.IsNotExist(err) {
		t.Error("corrupt session file was not removed")
	}
}

func TestStore_fileMode(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Write(testSession()); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	fi, err := os.Stat(filepath.Join(dir, sessionFile))
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if mode := fi.Mode().Perm(); mode != 0600 {
		t.Errorf("session file mode = %v, want 0600", mode)
	}
}

func TestStore_DeviceID(t *testing.T) {
	store := setup(t)

	id, err := store.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID() failed: %v", err)
	}
	if id == "" {
		t.Fatal("DeviceID() returned empty id")
	}

	// stable across calls and across logout
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	id2, err := store.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID() failed: %v", err)
	}
	assert.Equal(t, id, id2)
}
