package main

import (
	"github.com/spf13/cobra"
)

func getCmdAlert(st *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Read and answer the open JavaScript dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			text, err := s.AlertText(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(text)
		},
	}
	cmd.AddCommand(
		getCmdAlertAccept(st),
		getCmdAlertDismiss(st),
		getCmdAlertType(st),
	)
	return cmd
}

func getCmdAlertAccept(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "accept",
		Short: "Accept the open dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.AcceptAlert(cmd.Context())
		},
	}
}

func getCmdAlertDismiss(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss",
		Short: "Dismiss the open dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.DismissAlert(cmd.Context())
		},
	}
}

func getCmdAlertType(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "type <text>",
		Short: "Type into the open prompt dialog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.SendAlertText(cmd.Context(), args[0])
		},
	}
}
