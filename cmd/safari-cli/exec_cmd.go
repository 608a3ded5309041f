package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// parseScriptArgs decodes each argument as JSON, falling back to the raw
// string when it does not parse. "42" becomes a number, "[1,2]" an array,
// and "hello" stays a string without requiring shell-quoted quotes.
func parseScriptArgs(raw []string) []any {
	args := make([]any, 0, len(raw))
	for _, a := range raw {
		var v any
		if err := json.Unmarshal([]byte(a), &v); err != nil {
			args = append(args, a)
			continue
		}
		args = append(args, v)
	}
	return args
}

func getCmdExec(st *appState) *cobra.Command {
	var async bool
	cmd := &cobra.Command{
		Use:   "exec <script> [arg...]",
		Short: "Run JavaScript in the page and print its return value",
		Long: `Run JavaScript in the current browsing context. The script body is a
function body; use "return" to produce a value and "arguments" to read
the extra args. With --async the script receives a callback as its final
argument and must invoke it to resolve.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			scriptArgs := parseScriptArgs(args[1:])
			var result any
			if async {
				result, err = s.ExecuteAsync(cmd.Context(), args[0], scriptArgs...)
			} else {
				result, err = s.Execute(cmd.Context(), args[0], scriptArgs...)
			}
			if err != nil {
				return err
			}
			return st.printer.Value(result)
		},
	}
	cmd.Flags().BoolVar(&async, "async", false, "run as an async script resolved via callback")
	return cmd
}
