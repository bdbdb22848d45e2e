package session

import (
	"path/filepath"
	"testing"

	"trackadmin/console/client"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok := store.Session(); ok {
		t.Fatal("new store must not hold a session")
	}

	want := client.Session{
		Token: "abc123",
		User:  client.User{ID: 1, UserName: "admin", Name: "Admin", Email: "admin@example.com"},
	}
	if err := store.Set(want); err != nil {
		t.Fatalf("set session: %v", err)
	}

	got, ok := store.Session()
	if !ok {
		t.Fatal("expected stored session")
	}
	if got.Token != want.Token || got.User.UserName != want.User.UserName {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	if err := store.Set(client.Session{Token: "abc123"}); err != nil {
		t.Fatalf("set session: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	if _, ok := store.Session(); ok {
		t.Fatal("session should be gone after clear")
	}
}

func TestStoreIgnoresEmptyToken(t *testing.T) {
	store := openTestStore(t)
	if err := store.Set(client.Session{}); err != nil {
		t.Fatalf("set session: %v", err)
	}
	if _, ok := store.Session(); ok {
		t.Fatal("a session without a token must not count as logged in")
	}
}
