package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/TamasNo1/safari-cli/pkg/driver"
	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

func TestReportErrorExitCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", errors.New("boom"), 1},
		{"usage error", withExitCode(errors.New("bad flag"), exitUsage), exitUsage},
		{"no session", fmt.Errorf("load record: %w", driver.ErrNoSession), exitNoSession},
		{"startup timeout", fmt.Errorf("%w: last probe failed", driver.ErrStartupTimeout), exitStartupTimeout},
		{
			"invalid session id",
			&webdriver.Error{
				Kind:    webdriver.KindProtocol,
				Code:    webdriver.CodeInvalidSessionID,
				Message: "Session not found",
			},
			exitInvalidSession,
		},
		{
			"other protocol error",
			&webdriver.Error{
				Kind:    webdriver.KindProtocol,
				Code:    "no such element",
				Message: "not there",
			},
			1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &appState{stderr: &bytes.Buffer{}}
			if got := st.reportError(tc.err); got != tc.want {
				t.Fatalf("expected exit %d, got %d", tc.want, got)
			}
		})
	}
}

func TestReportErrorMentionsRestartOnInvalidSession(t *testing.T) {
	stderr := &bytes.Buffer{}
	st := &appState{stderr: stderr}
	st.reportError(&webdriver.Error{
		Kind:    webdriver.KindProtocol,
		Code:    webdriver.CodeInvalidSessionID,
		Message: "Session not found",
	})
	if got := stderr.String(); got == "" || !bytes.Contains(stderr.Bytes(), []byte("safari-cli start")) {
		t.Fatalf("expected restart instruction, got: %s", got)
	}
}

func TestExitCodeForError(t *testing.T) {
	if got := exitCodeForError(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %d", got)
	}
	if got := exitCodeForError(errors.New("x")); got != 1 {
		t.Fatalf("expected 1 for plain error, got %d", got)
	}
	wrapped := fmt.Errorf("context: %w", withExitCode(errors.New("x"), 64))
	if got := exitCodeForError(wrapped); got != 64 {
		t.Fatalf("expected 64 for wrapped coded error, got %d", got)
	}
}
