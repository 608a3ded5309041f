package webdriver

import (
	"context"
	"net/http"
)

// Navigate loads targetURL in the session's window and blocks until the
// driver considers the page load complete.
func (s *Session) Navigate(ctx context.Context, targetURL string) error {
	return s.c.call(ctx, http.MethodPost, s.path("url"), map[string]string{"url": targetURL}, nil)
}

// CurrentURL returns the URL of the current top-level browsing context.
func (s *Session) CurrentURL(ctx context.Context) (string, error) {
	var u string
	err := s.c.call(ctx, http.MethodGet, s.path("url"), nil, &u)
	return u, err
}

// Back navigates one step back in the session history.
func (s *Session) Back(ctx context.Context) error {
	return s.c.call(ctx, http.MethodPost, s.path("back"), emptyBody, nil)
}

// Forward navigates one step forward in the session history.
func (s *Session) Forward(ctx context.Context) error {
	return s.c.call(ctx, http.MethodPost, s.path("forward"), emptyBody, nil)
}

// Refresh reloads the current page.
func (s *Session) Refresh(ctx context.Context) error {
	return s.c.call(ctx, http.MethodPost, s.path("refresh"), emptyBody, nil)
}

// Title returns the current page title.
func (s *Session) Title(ctx context.Context) (string, error) {
	var title string
	err := s.c.call(ctx, http.MethodGet, s.path("title"), nil, &title)
	return title, err
}
