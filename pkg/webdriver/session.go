package webdriver

import (
	"context"
	"net/http"
	"strings"
)

// Status is the driver's readiness report.
type Status struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`
}

// Status asks the driver whether it can accept a new session.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var st Status
	if err := c.call(ctx, http.MethodGet, "/status", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// sessionResponse is the value member of a successful session creation.
type sessionResponse struct {
	SessionID    string         `json:"sessionId"`
	Capabilities map[string]any `json:"capabilities"`
}

// newSessionBody carries the fixed capability set: Safari with its
// automation inspection and profiling extensions switched on. The vendor
// keys are opaque passthrough configuration for the driver.
func newSessionBody() map[string]any {
	return map[string]any{
		"capabilities": map[string]any{
			"alwaysMatch": map[string]any{
				"browserName":                "safari",
				"safari:automaticInspection": true,
				"safari:automaticProfiling":  true,
			},
		},
	}
}

// NewSession negotiates a browser session and returns a handle bound to
// its id.
func (c *Client) NewSession(ctx context.Context) (*Session, error) {
	var resp sessionResponse
	if err := c.call(ctx, http.MethodPost, "/session", newSessionBody(), &resp); err != nil {
		return nil, err
	}
	return &Session{c: c, id: resp.SessionID}, nil
}

// Session addresses one browser session on the driver. It carries no
// state beyond the id, so handles are cheap to rebuild from persisted
// session records.
type Session struct {
	c  *Client
	id string
}

// Session returns a handle for an already-negotiated session id.
func (c *Client) Session(id string) *Session {
	return &Session{c: c, id: id}
}

// ID returns the driver-assigned session id.
func (s *Session) ID() string { return s.id }

// Delete ends the session on the driver side. The browser window closes
// but the driver process keeps running.
func (s *Session) Delete(ctx context.Context) error {
	return s.c.call(ctx, http.MethodDelete, "/session/"+s.id, nil, nil)
}

func (s *Session) path(parts ...string) string {
	return "/session/" + s.id + "/" + strings.Join(parts, "/")
}
