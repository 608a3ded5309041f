package main

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/TamasNo1/safari-cli/pkg/output"
)

func getCmdStart(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the driver and open a browser session",
		Long: `Start launches safaridriver, waits for it to answer, and negotiates a
browser session. With a session already active this is a no-op that
reports the existing one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, reused, err := st.mgr.StartOrReuse(cmd.Context(), st.cfg.Driver.Port)
			if err != nil {
				return err
			}
			if reused {
				st.printer.Noticef("Session already active, reusing it.")
			}
			return st.printer.Fields([]output.Field{
				{Key: "sessionId", Label: "Session", Value: sess.SessionID},
				{Key: "port", Label: "Port", Value: sess.Port},
				{Key: "pid", Label: "PID", Value: sess.PID},
				{Key: "reused", Label: "Reused", Value: reused},
			})
		},
	}
}

func getCmdStop(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "End the browser session and stop the driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := st.mgr.Teardown(cmd.Context())
			if err != nil {
				return err
			}
			if sess == nil {
				st.printer.Noticef("Discarded an unreadable session record.")
				return nil
			}
			return st.printer.Fields([]output.Field{
				{Key: "sessionId", Label: "Stopped", Value: sess.SessionID},
				{Key: "pid", Label: "PID", Value: sess.PID},
			})
		},
	}
}

func getCmdStatus(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report the session, driver process, and current page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := st.mgr.Status(cmd.Context())
			if err != nil {
				return err
			}
			fields := []output.Field{
				{Key: "sessionId", Label: "Session", Value: h.Session.SessionID},
				{Key: "port", Label: "Port", Value: h.Session.Port},
				{Key: "pid", Label: "PID", Value: h.Session.PID},
				{Key: "startedAt", Label: "Started", Value: h.Session.StartedAt.Format(time.RFC3339)},
				{Key: "processAlive", Label: "Process alive", Value: h.ProcessAlive},
				{Key: "driverReady", Label: "Driver reachable", Value: h.DriverReady},
			}
			if h.DriverMessage != "" {
				fields = append(fields, output.Field{Key: "driverMessage", Label: "Driver message", Value: h.DriverMessage})
			}

			if h.ProcessAlive && h.DriverReady {
				// Two independent reads; the endpoint serializes them
				// against the single session.
				s := st.newClient(h.Session.Port).Session(h.Session.SessionID)
				var pageURL, pageTitle string
				g, gctx := errgroup.WithContext(cmd.Context())
				g.Go(func() error {
					var gerr error
					pageURL, gerr = s.CurrentURL(gctx)
					return gerr
				})
				g.Go(func() error {
					var gerr error
					pageTitle, gerr = s.Title(gctx)
					return gerr
				})
				if err := g.Wait(); err != nil {
					return err
				}
				fields = append(fields,
					output.Field{Key: "url", Label: "URL", Value: pageURL},
					output.Field{Key: "title", Label: "Title", Value: pageTitle},
				)
			}
			return st.printer.Fields(fields)
		},
	}
}
