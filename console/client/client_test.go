package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type staticSession struct {
	session Session
	ok      bool
}

func (s *staticSession) Session() (Session, bool) { return s.session, s.ok }

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": 200, "body": []Category{{ID: 1, Name: "Admin"}}})
	}))
	t.Cleanup(ts.Close)

	provider := &staticSession{session: Session{Token: "abc123"}, ok: true}
	c := New(ts.URL, provider)
	items, err := NewUserTypeRepository(c).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if len(items) != 1 || items[0].Name != "Admin" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestClientSkipsAuthWithoutSession(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": 200, "body": []Category{}})
	}))
	t.Cleanup(ts.Close)

	c := New(ts.URL, &staticSession{})
	if _, err := NewUserTypeRepository(c).Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no authorization header, got %q", gotAuth)
	}
}

func TestClientBusinessErrorsBecomeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": 200, "errors": []string{"Row in use"}})
	}))
	t.Cleanup(ts.Close)

	c := New(ts.URL, &staticSession{session: Session{Token: "abc"}, ok: true})
	err := NewBugSystemTypeRepository(c).Delete(context.Background(), 5)
	if err == nil || err.Error() != "Row in use" {
		t.Fatalf("expected business error, got %v", err)
	}
}

func TestClientConnectivityError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	t.Cleanup(ts.Close)

	c := New(ts.URL, &staticSession{})
	_, err := NewUserTypeRepository(c).Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "Error status: 401") {
		t.Fatalf("expected connectivity error, got %v", err)
	}
}

func TestClientLogin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/Login/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode credentials: %v", err)
		}
		if creds.UserName != "admin" || creds.Password != "Admin123!" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": 200,
			"body":   Session{Token: "tok", User: User{ID: 1, UserName: "admin"}},
		})
	}))
	t.Cleanup(ts.Close)

	c := New(ts.URL, &staticSession{})
	session, err := c.Login(context.Background(), "admin", "Admin123!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Token != "tok" || session.User.UserName != "admin" {
		t.Fatalf("unexpected session: %+v", session)
	}
}
