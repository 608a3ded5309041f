package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestValuePlainString(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false, true)
	if err := p.Value("https://example.com"); err != nil {
		t.Fatalf("Value: %v", err)
	}
	if out.String() != "https://example.com\n" {
		t.Fatalf("out = %q", out.String())
	}
}

func TestValueNil(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, false, true)
	if err := p.Value(nil); err != nil {
		t.Fatalf("Value: %v", err)
	}
	if out.String() != "null\n" {
		t.Fatalf("out = %q", out.String())
	}
}

func TestValueStructuredInTextMode(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, false, true)
	if err := p.Value(map[string]any{"a": 1}); err != nil {
		t.Fatalf("Value: %v", err)
	}
	if !strings.Contains(out.String(), `"a": 1`) {
		t.Fatalf("out = %q", out.String())
	}
}

func TestValueJSONMode(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, true, true)
	if err := p.Value("hello"); err != nil {
		t.Fatalf("Value: %v", err)
	}
	var got string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not JSON: %q", out.String())
	}
	if got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestFieldsTextAlignment(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, false, true)
	err := p.Fields([]Field{
		{Key: "sessionId", Label: "Session", Value: "abc123"},
		{Key: "pid", Label: "PID", Value: 4242},
	})
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	want := "Session: abc123\nPID:     4242\n"
	if out.String() != want {
		t.Fatalf("out = %q, want %q", out.String(), want)
	}
}

func TestFieldsJSONMode(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, true, true)
	err := p.Fields([]Field{
		{Key: "sessionId", Label: "Session", Value: "abc123"},
		{Key: "pid", Label: "PID", Value: 4242},
	})
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(out.Bytes(), &obj); err != nil {
		t.Fatalf("stdout is not JSON: %q", out.String())
	}
	if obj["sessionId"] != "abc123" || obj["pid"] != float64(4242) {
		t.Fatalf("obj = %v", obj)
	}
}

func TestListModes(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, false, true)
	if err := p.List([]string{"h1", "h2"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.String() != "h1\nh2\n" {
		t.Fatalf("out = %q", out.String())
	}

	out.Reset()
	p = NewPrinter(&out, &bytes.Buffer{}, true, true)
	if err := p.List([]string{"h1", "h2"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	var arr []string
	if err := json.Unmarshal(out.Bytes(), &arr); err != nil {
		t.Fatalf("stdout is not JSON: %q", out.String())
	}
	if len(arr) != 2 || arr[0] != "h1" {
		t.Fatalf("arr = %v", arr)
	}
}

func TestNoticeStaysOffStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true, true)
	p.Noticef("reusing session %s", "abc")
	if out.Len() != 0 {
		t.Fatalf("notice leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "reusing session abc") {
		t.Fatalf("errOut = %q", errOut.String())
	}
}

func TestBuffersAreNeverStyled(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, false, false)
	if p.styled {
		t.Fatal("a bytes.Buffer is not a terminal")
	}
}
