package webdriver

import (
	"context"
	"net/http"
	"testing"
)

func TestRefID(t *testing.T) {
	cases := []struct {
		name    string
		ref     map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "w3c key",
			ref:  map[string]string{w3cElementKey: "node-1"},
			want: "node-1",
		},
		{
			name: "legacy key only",
			ref:  map[string]string{legacyElementKey: "node-2"},
			want: "node-2",
		},
		{
			name: "both keys prefers w3c",
			ref:  map[string]string{w3cElementKey: "w3c", legacyElementKey: "old"},
			want: "w3c",
		},
		{
			name: "unknown sole key",
			ref:  map[string]string{"element-some-future-id": "node-3"},
			want: "node-3",
		},
		{
			name:    "empty object",
			ref:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "sole key with empty id",
			ref:     map[string]string{"k": ""},
			wantErr: true,
		},
		{
			name:    "two unknown keys",
			ref:     map[string]string{"a": "1", "b": "2"},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := refID(tc.ref)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("refID = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("refID: %v", err)
			}
			if got != tc.want {
				t.Fatalf("refID = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFindElement(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK,
		`{"value":{"element-6066-11e4-a52e-4f735466cecf":"node-9"}}`)
	s := c.Session("sess")

	el, err := s.FindElement(context.Background(), Selector{Using: "css selector", Value: "#main"})
	if err != nil {
		t.Fatalf("FindElement: %v", err)
	}
	if el.ID() != "node-9" {
		t.Fatalf("ID = %q", el.ID())
	}
	if rec.method != http.MethodPost || rec.path != "/session/sess/element" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
	if rec.body != `{"using":"css selector","value":"#main"}` {
		t.Fatalf("body = %s", rec.body)
	}
}

func TestFindElementsEmptyResult(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{"value":[]}`)
	els, err := c.Session("sess").FindElements(context.Background(),
		Selector{Using: "css selector", Value: ".none"})
	if err != nil {
		t.Fatalf("FindElements: %v", err)
	}
	if len(els) != 0 {
		t.Fatalf("got %d elements, want 0", len(els))
	}
}

func TestFindElementsMixedKeyNames(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK,
		`{"value":[{"element-6066-11e4-a52e-4f735466cecf":"a"},{"ELEMENT":"b"}]}`)
	els, err := c.Session("sess").FindElements(context.Background(),
		Selector{Using: "css selector", Value: "li"})
	if err != nil {
		t.Fatalf("FindElements: %v", err)
	}
	if len(els) != 2 || els[0].ID() != "a" || els[1].ID() != "b" {
		t.Fatalf("elements = %v, %v", els[0].ID(), els[1].ID())
	}
}

func TestAttributeNullVersusEmpty(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{"value":null}`)
	el := c.Session("sess").Element("node-1")

	attr, err := el.Attribute(context.Background(), "href")
	if err != nil {
		t.Fatalf("Attribute: %v", err)
	}
	if attr.Valid {
		t.Fatalf("absent attribute decoded as %q, want null", attr.String)
	}

	c2, _ := newTestServer(t, http.StatusOK, `{"value":""}`)
	attr, err = c2.Session("sess").Element("node-1").Attribute(context.Background(), "href")
	if err != nil {
		t.Fatalf("Attribute: %v", err)
	}
	if !attr.Valid || attr.String != "" {
		t.Fatalf("empty attribute decoded as %#v", attr)
	}
}
