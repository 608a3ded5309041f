package webdriver

import (
	"context"
	"net/http"

	"gopkg.in/guregu/null.v3"
)

// Rect is a window or element bounding box. Coordinates are CSS pixels
// relative to the screen for windows and to the page for elements.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectChange is a partial window geometry update. Null members keep their
// current values on the driver side, so they must reach the wire as null
// rather than zero.
type RectChange struct {
	X      null.Int `json:"x"`
	Y      null.Int `json:"y"`
	Width  null.Int `json:"width"`
	Height null.Int `json:"height"`
}

// WindowHandle returns the handle of the current window.
func (s *Session) WindowHandle(ctx context.Context) (string, error) {
	var handle string
	err := s.c.call(ctx, http.MethodGet, s.path("window"), nil, &handle)
	return handle, err
}

// WindowHandles returns the handles of every window in the session.
func (s *Session) WindowHandles(ctx context.Context) ([]string, error) {
	var handles []string
	err := s.c.call(ctx, http.MethodGet, s.path("window", "handles"), nil, &handles)
	return handles, err
}

// SwitchToWindow makes the given window the session's current one.
func (s *Session) SwitchToWindow(ctx context.Context, handle string) error {
	return s.c.call(ctx, http.MethodPost, s.path("window"), map[string]string{"handle": handle}, nil)
}

// CloseWindow closes the current window and returns the handles still
// open. Closing the last window usually invalidates the session.
func (s *Session) CloseWindow(ctx context.Context) ([]string, error) {
	var handles []string
	err := s.c.call(ctx, http.MethodDelete, s.path("window"), nil, &handles)
	return handles, err
}

// WindowRect returns the current window geometry.
func (s *Session) WindowRect(ctx context.Context) (Rect, error) {
	var r Rect
	err := s.c.call(ctx, http.MethodGet, s.path("window", "rect"), nil, &r)
	return r, err
}

// SetWindowRect applies a geometry change and returns the resulting rect.
func (s *Session) SetWindowRect(ctx context.Context, change RectChange) (Rect, error) {
	var r Rect
	err := s.c.call(ctx, http.MethodPost, s.path("window", "rect"), change, &r)
	return r, err
}

// Maximize grows the window to the available screen space.
func (s *Session) Maximize(ctx context.Context) (Rect, error) {
	var r Rect
	err := s.c.call(ctx, http.MethodPost, s.path("window", "maximize"), emptyBody, &r)
	return r, err
}

// Minimize hides the window.
func (s *Session) Minimize(ctx context.Context) (Rect, error) {
	var r Rect
	err := s.c.call(ctx, http.MethodPost, s.path("window", "minimize"), emptyBody, &r)
	return r, err
}

// Fullscreen puts the window into fullscreen mode.
func (s *Session) Fullscreen(ctx context.Context) (Rect, error) {
	var r Rect
	err := s.c.call(ctx, http.MethodPost, s.path("window", "fullscreen"), emptyBody, &r)
	return r, err
}
