package webdriver

import (
	"context"
	"fmt"
	"net/http"

	"gopkg.in/guregu/null.v3"
)

// Selector pairs a location strategy with its expression, exactly as it
// goes on the wire.
type Selector struct {
	Using string `json:"using"`
	Value string `json:"value"`
}

// Historical key names for element references on the wire. The W3C key
// wins when a response carries both.
const (
	w3cElementKey    = "element-6066-11e4-a52e-4f735466cecf"
	legacyElementKey = "ELEMENT"
)

// refID reads the reference id out of an element reference object. The
// protocol has used more than one key name for the same concept over
// time, so when the well-known keys are absent the sole present key is
// accepted rather than one fixed name.
func refID(ref map[string]string) (string, error) {
	if id, ok := ref[w3cElementKey]; ok && id != "" {
		return id, nil
	}
	if len(ref) == 1 {
		for _, id := range ref {
			if id != "" {
				return id, nil
			}
		}
	}
	if id, ok := ref[legacyElementKey]; ok && id != "" {
		return id, nil
	}
	return "", fmt.Errorf("webdriver: unrecognized element reference %v", ref)
}

// Element addresses one located element within a session.
type Element struct {
	s  *Session
	id string
}

// ID returns the driver-assigned element reference id.
func (e *Element) ID() string { return e.id }

// Element rebuilds a handle from a previously obtained reference id.
func (s *Session) Element(id string) *Element {
	return &Element{s: s, id: id}
}

// FindElement locates the first element matching sel. A no-match is a
// protocol error with code "no such element".
func (s *Session) FindElement(ctx context.Context, sel Selector) (*Element, error) {
	var ref map[string]string
	if err := s.c.call(ctx, http.MethodPost, s.path("element"), sel, &ref); err != nil {
		return nil, err
	}
	id, err := refID(ref)
	if err != nil {
		return nil, err
	}
	return &Element{s: s, id: id}, nil
}

// FindElements locates every element matching sel. No matches is not an
// error; the slice is just empty.
func (s *Session) FindElements(ctx context.Context, sel Selector) ([]*Element, error) {
	var refs []map[string]string
	if err := s.c.call(ctx, http.MethodPost, s.path("elements"), sel, &refs); err != nil {
		return nil, err
	}
	els := make([]*Element, 0, len(refs))
	for _, ref := range refs {
		id, err := refID(ref)
		if err != nil {
			return nil, err
		}
		els = append(els, &Element{s: s, id: id})
	}
	return els, nil
}

func (e *Element) path(parts ...string) string {
	return e.s.path(append([]string{"element", e.id}, parts...)...)
}

// Click dispatches a click to the element.
func (e *Element) Click(ctx context.Context) error {
	return e.s.c.call(ctx, http.MethodPost, e.path("click"), emptyBody, nil)
}

// Text returns the element's rendered text.
func (e *Element) Text(ctx context.Context) (string, error) {
	var text string
	err := e.s.c.call(ctx, http.MethodGet, e.path("text"), nil, &text)
	return text, err
}

// TagName returns the element's lowercase tag name.
func (e *Element) TagName(ctx context.Context) (string, error) {
	var name string
	err := e.s.c.call(ctx, http.MethodGet, e.path("name"), nil, &name)
	return name, err
}

// Attribute returns the element's attribute value. Absent attributes come
// back null rather than as an empty string, so callers can tell the two
// apart.
func (e *Element) Attribute(ctx context.Context, name string) (null.String, error) {
	var value null.String
	err := e.s.c.call(ctx, http.MethodGet, e.path("attribute", name), nil, &value)
	return value, err
}

// Property returns the element's live DOM property value, which may be of
// any JSON type.
func (e *Element) Property(ctx context.Context, name string) (any, error) {
	return e.s.c.Do(ctx, http.MethodGet, e.path("property", name), nil)
}

// Rect returns the element's bounding box in CSS pixels.
func (e *Element) Rect(ctx context.Context) (Rect, error) {
	var r Rect
	err := e.s.c.call(ctx, http.MethodGet, e.path("rect"), nil, &r)
	return r, err
}

// Displayed reports whether the element is rendered visible.
func (e *Element) Displayed(ctx context.Context) (bool, error) {
	var displayed bool
	err := e.s.c.call(ctx, http.MethodGet, e.path("displayed"), nil, &displayed)
	return displayed, err
}

// Enabled reports whether the element accepts interaction.
func (e *Element) Enabled(ctx context.Context) (bool, error) {
	var enabled bool
	err := e.s.c.call(ctx, http.MethodGet, e.path("enabled"), nil, &enabled)
	return enabled, err
}

// Screenshot captures just this element as a base64-encoded PNG.
func (e *Element) Screenshot(ctx context.Context) (string, error) {
	var data string
	err := e.s.c.call(ctx, http.MethodGet, e.path("screenshot"), nil, &data)
	return data, err
}
