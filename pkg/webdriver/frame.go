package webdriver

import (
	"context"
	"net/http"
)

// SwitchToFrame selects the frame at index within the current browsing
// context.
func (s *Session) SwitchToFrame(ctx context.Context, index int) error {
	return s.c.call(ctx, http.MethodPost, s.path("frame"), map[string]any{"id": index}, nil)
}

// SwitchToFrameElement selects the frame owned by a previously located
// frame or iframe element.
func (s *Session) SwitchToFrameElement(ctx context.Context, el *Element) error {
	ref := map[string]string{w3cElementKey: el.id}
	return s.c.call(ctx, http.MethodPost, s.path("frame"), map[string]any{"id": ref}, nil)
}

// SwitchToTopFrame returns to the top-level browsing context. The wire
// form is a frame switch with a null id.
func (s *Session) SwitchToTopFrame(ctx context.Context) error {
	return s.c.call(ctx, http.MethodPost, s.path("frame"), map[string]any{"id": nil}, nil)
}

// SwitchToParentFrame moves one level up from the current frame.
func (s *Session) SwitchToParentFrame(ctx context.Context) error {
	return s.c.call(ctx, http.MethodPost, s.path("frame", "parent"), emptyBody, nil)
}
