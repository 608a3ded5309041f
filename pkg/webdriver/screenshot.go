package webdriver

import (
	"context"
	"net/http"
)

// Screenshot captures the visible page as a base64-encoded PNG. The
// payload comes back undecoded; callers decide where the bytes go.
func (s *Session) Screenshot(ctx context.Context) (string, error) {
	var data string
	err := s.c.call(ctx, http.MethodGet, s.path("screenshot"), nil, &data)
	return data, err
}
