package client

import (
	"context"
	"net/http"
)

type credentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Login authenticates and returns the new session. Persisting it is
// the caller's job; the session provider supplies it on later calls.
func (c *Client) Login(ctx context.Context, userName, password string) (Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "Login/login", credentials{UserName: userName, Password: password}, &session)
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// Logout invalidates the current session token on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "Login/logout", nil, nil)
}
