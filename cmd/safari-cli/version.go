package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/TamasNo1/safari-cli/pkg/output"
)

func getCmdVersion(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if st.cfg.Output.JSON {
				return st.printer.Fields([]output.Field{
					{Key: "version", Label: "Version", Value: version},
					{Key: "commit", Label: "Commit", Value: commit},
					{Key: "buildDate", Label: "Built", Value: buildDate},
					{Key: "goVersion", Label: "Go version", Value: runtime.Version()},
				})
			}
			fmt.Fprintf(st.stdout, "safari-cli %s\n", version)
			if commit != "unknown" {
				fmt.Fprintf(st.stdout, "  Commit:     %s\n", commit)
			}
			if buildDate != "unknown" {
				fmt.Fprintf(st.stdout, "  Built:      %s\n", buildDate)
			}
			fmt.Fprintf(st.stdout, "  Go version: %s\n", runtime.Version())
			return nil
		},
	}
}
