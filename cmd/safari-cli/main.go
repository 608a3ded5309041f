package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/TamasNo1/safari-cli/pkg/driver"
	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

// Version information, set via ldflags at build time.
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Exit codes beyond plain failure, so scripts can branch on them.
const (
	exitNoSession      = 2
	exitInvalidSession = 3
	exitStartupTimeout = 4
	exitUsage          = 64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := newAppState()
	code := st.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func (st *appState) run(ctx context.Context, args []string) int {
	root := newRootCmd(st)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return st.reportError(err)
	}
	return 0
}

// reportError prints a failure and picks the exit code. This is the one
// place that reacts to the driver forgetting our session: the stale
// record is cleared here so the next start is clean.
func (st *appState) reportError(err error) int {
	switch {
	case webdriver.IsInvalidSessionID(err):
		if st.mgr != nil {
			if cerr := st.mgr.Invalidate(); cerr != nil {
				fmt.Fprintf(st.stderr, "Error: %v\n", cerr)
			}
		}
		fmt.Fprintf(st.stderr, "Error: %v\n", err)
		fmt.Fprintln(st.stderr, "The driver no longer recognizes this session; its record has been cleared.")
		fmt.Fprintln(st.stderr, "Run 'safari-cli start' to begin a new one.")
		return exitInvalidSession
	case errors.Is(err, driver.ErrNoSession):
		fmt.Fprintln(st.stderr, "Error: no active session.")
		fmt.Fprintln(st.stderr, "Run 'safari-cli start' first.")
		return exitNoSession
	case errors.Is(err, driver.ErrStartupTimeout):
		fmt.Fprintf(st.stderr, "Error: %v\n", err)
		return exitStartupTimeout
	default:
		fmt.Fprintf(st.stderr, "Error: %v\n", err)
		return exitCodeForError(err)
	}
}
