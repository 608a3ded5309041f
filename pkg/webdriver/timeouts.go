package webdriver

import (
	"context"
	"net/http"

	"gopkg.in/guregu/null.v3"
)

// Timeouts mirrors the session timeouts object. Values are milliseconds.
// Script is nullable on the wire: null disables the script timeout
// entirely, which is distinct from zero.
type Timeouts struct {
	Script   null.Int `json:"script"`
	PageLoad null.Int `json:"pageLoad"`
	Implicit null.Int `json:"implicit"`
}

// Timeouts returns the session's current timeout settings.
func (s *Session) Timeouts(ctx context.Context) (Timeouts, error) {
	var t Timeouts
	err := s.c.call(ctx, http.MethodGet, s.path("timeouts"), nil, &t)
	return t, err
}

// SetTimeouts replaces the session timeouts. The full object goes on the
// wire so a null script member arrives as an explicit null.
func (s *Session) SetTimeouts(ctx context.Context, t Timeouts) error {
	return s.c.call(ctx, http.MethodPost, s.path("timeouts"), t, nil)
}
