package webdriver

import (
	"context"
	"net/http"
)

// AlertText returns the message of the currently displayed dialog. With
// no dialog open the driver answers with code "no such alert".
func (s *Session) AlertText(ctx context.Context) (string, error) {
	var text string
	err := s.c.call(ctx, http.MethodGet, s.path("alert", "text"), nil, &text)
	return text, err
}

// AcceptAlert accepts the currently displayed dialog.
func (s *Session) AcceptAlert(ctx context.Context) error {
	return s.c.call(ctx, http.MethodPost, s.path("alert", "accept"), emptyBody, nil)
}

// DismissAlert dismisses the currently displayed dialog.
func (s *Session) DismissAlert(ctx context.Context) error {
	return s.c.call(ctx, http.MethodPost, s.path("alert", "dismiss"), emptyBody, nil)
}

// SendAlertText types text into the currently displayed prompt.
func (s *Session) SendAlertText(ctx context.Context, text string) error {
	return s.c.call(ctx, http.MethodPost, s.path("alert", "text"), map[string]string{"text": text}, nil)
}
