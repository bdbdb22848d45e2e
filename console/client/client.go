package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Session is the client-side login state, as returned by the server
// and persisted between runs.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionProvider supplies the current session, if any. Each request
// reads a fresh snapshot so a re-login is picked up without rebuilding
// the client.
type SessionProvider interface {
	Session() (Session, bool)
}

// Client speaks the admin API: every response is an envelope with a
// status and either a body or a list of error messages. A non-2xx
// response means the server could not be reached properly and is
// reported as a connectivity error.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionProvider
}

func New(baseURL string, session SessionProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

type envelope struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
	Errors []string        `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/"+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		if session, ok := c.session.Session(); ok {
			req.Header.Set("Authorization", "Bearer "+session.Token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Error when contacting the server. Error status: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if len(env.Errors) > 0 {
		return errors.New(strings.Join(env.Errors, " "))
	}
	if out != nil && len(env.Body) > 0 {
		return json.Unmarshal(env.Body, out)
	}
	return nil
}
