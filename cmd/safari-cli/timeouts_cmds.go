package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"

	"github.com/TamasNo1/safari-cli/pkg/output"
	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

// nullableMS renders a nullable millisecond setting as "none" for humans
// while keeping the JSON encoding a number or null.
type nullableMS struct {
	null.Int
}

func (n nullableMS) String() string {
	if !n.Valid {
		return "none"
	}
	return strconv.FormatInt(n.Int64, 10)
}

func timeoutFields(t webdriver.Timeouts) []output.Field {
	return []output.Field{
		{Key: "script", Label: "Script", Value: nullableMS{t.Script}},
		{Key: "pageLoad", Label: "Page load", Value: nullableMS{t.PageLoad}},
		{Key: "implicit", Label: "Implicit", Value: nullableMS{t.Implicit}},
	}
}

func getCmdTimeouts(st *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeouts",
		Short: "Show the session's timeout settings in milliseconds",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			t, err := s.Timeouts(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Fields(timeoutFields(t))
		},
	}
	cmd.AddCommand(getCmdTimeoutsSet(st))
	return cmd
}

func getCmdTimeoutsSet(st *appState) *cobra.Command {
	var (
		script   string
		pageLoad int64
		implicit int64
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change timeout settings, leaving unmentioned ones alone",
		Long: `Change one or more session timeouts. Values are milliseconds. The
script timeout also accepts "none", which disables it entirely; that is
what lets a long-running async script finish on its own terms.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("script") && !flags.Changed("page-load") && !flags.Changed("implicit") {
				return withExitCode(errors.New("nothing to set, pass --script, --page-load, or --implicit"), exitUsage)
			}

			_, s, err := st.session()
			if err != nil {
				return err
			}
			t, err := s.Timeouts(cmd.Context())
			if err != nil {
				return err
			}

			if flags.Changed("script") {
				switch script {
				case "none", "null":
					t.Script = null.Int{}
				default:
					ms, perr := strconv.ParseInt(script, 10, 64)
					if perr != nil || ms < 0 {
						return withExitCode(fmt.Errorf("script timeout %q must be milliseconds or \"none\"", script), exitUsage)
					}
					t.Script = null.IntFrom(ms)
				}
			}
			if flags.Changed("page-load") {
				if pageLoad < 0 {
					return withExitCode(fmt.Errorf("page load timeout must not be negative"), exitUsage)
				}
				t.PageLoad = null.IntFrom(pageLoad)
			}
			if flags.Changed("implicit") {
				if implicit < 0 {
					return withExitCode(fmt.Errorf("implicit wait must not be negative"), exitUsage)
				}
				t.Implicit = null.IntFrom(implicit)
			}

			if err := s.SetTimeouts(cmd.Context(), t); err != nil {
				return err
			}
			return st.printer.Fields(timeoutFields(t))
		},
	}
	cmd.Flags().StringVar(&script, "script", "", `script timeout in ms, or "none" to disable`)
	cmd.Flags().Int64Var(&pageLoad, "page-load", 0, "page load timeout in ms")
	cmd.Flags().Int64Var(&implicit, "implicit", 0, "implicit element wait in ms")
	return cmd
}
