package webdriver

import (
	"context"
	"encoding/json"
	"net/http"

	"gopkg.in/guregu/null.v3"
)

// Cookie mirrors the protocol's cookie object. Expiry is epoch seconds;
// null marks a session cookie with no fixed lifetime.
type Cookie struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Path     string   `json:"path,omitempty"`
	Domain   string   `json:"domain,omitempty"`
	Secure   bool     `json:"secure,omitempty"`
	HTTPOnly bool     `json:"httpOnly,omitempty"`
	SameSite string   `json:"sameSite,omitempty"`
	Expiry   null.Int `json:"expiry"`
}

// MarshalJSON drops a null expiry from the wire form. The endpoint
// rejects "expiry":null; leaving the field out is how a session cookie
// is requested.
func (c Cookie) MarshalJSON() ([]byte, error) {
	type wire struct {
		Name     string `json:"name"`
		Value    string `json:"value"`
		Path     string `json:"path,omitempty"`
		Domain   string `json:"domain,omitempty"`
		Secure   bool   `json:"secure,omitempty"`
		HTTPOnly bool   `json:"httpOnly,omitempty"`
		SameSite string `json:"sameSite,omitempty"`
		Expiry   *int64 `json:"expiry,omitempty"`
	}
	w := wire{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: c.SameSite,
	}
	if c.Expiry.Valid {
		w.Expiry = &c.Expiry.Int64
	}
	return json.Marshal(w)
}

// Cookies returns every cookie visible to the current page.
func (s *Session) Cookies(ctx context.Context) ([]Cookie, error) {
	var cookies []Cookie
	err := s.c.call(ctx, http.MethodGet, s.path("cookie"), nil, &cookies)
	return cookies, err
}

// Cookie returns the named cookie. A missing name is a protocol error
// with code "no such cookie".
func (s *Session) Cookie(ctx context.Context, name string) (Cookie, error) {
	var cookie Cookie
	err := s.c.call(ctx, http.MethodGet, s.path("cookie", name), nil, &cookie)
	return cookie, err
}

// AddCookie sets a cookie in the current page's cookie store.
func (s *Session) AddCookie(ctx context.Context, cookie Cookie) error {
	return s.c.call(ctx, http.MethodPost, s.path("cookie"), map[string]Cookie{"cookie": cookie}, nil)
}

// DeleteCookie removes the named cookie. Deleting a cookie that does not
// exist succeeds.
func (s *Session) DeleteCookie(ctx context.Context, name string) error {
	return s.c.call(ctx, http.MethodDelete, s.path("cookie", name), nil, nil)
}

// DeleteAllCookies clears the current page's cookie store.
func (s *Session) DeleteAllCookies(ctx context.Context) error {
	return s.c.call(ctx, http.MethodDelete, s.path("cookie"), nil, nil)
}
