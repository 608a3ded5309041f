package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TamasNo1/safari-cli/pkg/inject"
)

func getCmdConsole(st *appState) *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Print console output captured in the page",
		Long: `Print console calls made by the page since capture began. The first
run installs a console hook and reports nothing; calls made after that
are buffered in the page and printed by later runs. Navigation resets
the buffer along with the rest of the page's scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			installed, err := s.Execute(ctx, inject.ConsoleInstall)
			if err != nil {
				return err
			}
			if present, ok := installed.(bool); ok && !present {
				st.printer.Noticef("Console capture installed; entries accumulate from now on.")
			}

			result, err := s.Execute(ctx, inject.ConsoleCollect, clear)
			if err != nil {
				return err
			}
			entries, err := inject.DecodeConsole(result)
			if err != nil {
				return err
			}
			if st.cfg.Output.JSON {
				return st.printer.Value(entries)
			}
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				at := time.UnixMilli(int64(e.Timestamp)).Format("15:04:05.000")
				lines = append(lines, fmt.Sprintf("%s [%s] %s", at, e.Level, e.Text))
			}
			return st.printer.List(lines)
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "drain the buffer after reading")
	return cmd
}

func getCmdNetlog(st *appState) *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "netlog",
		Short: "Print the page's resource timing log",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			result, err := s.Execute(cmd.Context(), inject.NetworkCollect, clear)
			if err != nil {
				return err
			}
			entries, err := inject.DecodeNetwork(result)
			if err != nil {
				return err
			}
			if st.cfg.Output.JSON {
				return st.printer.Value(entries)
			}
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				lines = append(lines, fmt.Sprintf("%9.1fms %9.0fB %-12s %s",
					e.Duration, e.TransferSize, e.InitiatorType, e.URL))
			}
			return st.printer.List(lines)
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "clear the timing buffer after reading")
	return cmd
}
