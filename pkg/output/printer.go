// Package output renders command results. Results go to stdout, in
// either human or JSON form; notices go to stderr so piped output stays
// parseable.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Field is one labeled value in a result block. Key is the JSON object
// key; Label is what humans see.
type Field struct {
	Key   string
	Label string
	Value any
}

// Printer renders results for one invocation.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
	styled bool

	labelStyle  lipgloss.Style
	noticeStyle lipgloss.Style
}

// NewPrinter builds a printer. Styling applies only when out is a
// terminal, color is not disabled, and JSON mode is off.
func NewPrinter(out, errOut io.Writer, jsonMode, noColor bool) *Printer {
	p := &Printer{out: out, errOut: errOut, json: jsonMode}
	p.styled = !jsonMode && !noColor && isTerminal(out)
	if p.styled {
		p.labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
		p.noticeStyle = lipgloss.NewStyle().Faint(true)
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Value prints a single result. JSON mode emits the JSON encoding;
// otherwise strings print bare and everything else prints as indented
// JSON, which reads well for script results of arbitrary shape.
func (p *Printer) Value(v any) error {
	if p.json {
		return p.encode(v)
	}
	switch tv := v.(type) {
	case nil:
		_, err := fmt.Fprintln(p.out, "null")
		return err
	case string:
		_, err := fmt.Fprintln(p.out, tv)
		return err
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.out, string(data))
		return err
	}
}

// Fields prints labeled values, one per line, labels aligned. JSON mode
// emits one object keyed by each field's Key.
func (p *Printer) Fields(fields []Field) error {
	if p.json {
		obj := make(map[string]any, len(fields))
		for _, f := range fields {
			obj[f.Key] = f.Value
		}
		return p.encode(obj)
	}
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range fields {
		label := f.Label + ":"
		padding := strings.Repeat(" ", width-len(f.Label)+1)
		if p.styled {
			label = p.labelStyle.Render(label)
		}
		if _, err := fmt.Fprintf(p.out, "%s%s%v\n", label, padding, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// List prints items one per line, or as a JSON array in JSON mode.
func (p *Printer) List(items []string) error {
	if p.json {
		return p.encode(items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(p.out, item); err != nil {
			return err
		}
	}
	return nil
}

// Noticef prints a progress note to stderr. Notices never land on
// stdout, so they cannot corrupt piped results.
func (p *Printer) Noticef(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		msg = p.noticeStyle.Render(msg)
	}
	fmt.Fprintln(p.errOut, msg)
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
