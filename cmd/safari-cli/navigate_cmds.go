package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func getCmdNavigate(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "navigate <url>",
		Aliases: []string{"open", "goto"},
		Short:   "Load a URL and wait for the page",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			target := args[0]
			if !strings.Contains(target, "://") {
				target = "https://" + target
			}
			return s.Navigate(cmd.Context(), target)
		},
	}
}

func getCmdBack(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Go back in session history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.Back(cmd.Context())
		},
	}
}

func getCmdForward(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "forward",
		Short: "Go forward in session history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.Forward(cmd.Context())
		},
	}
}

func getCmdRefresh(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "refresh",
		Aliases: []string{"reload"},
		Short:   "Reload the current page",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.Refresh(cmd.Context())
		},
	}
}

func getCmdURL(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the current page URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			u, err := s.CurrentURL(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(u)
		},
	}
}

func getCmdTitle(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "title",
		Short: "Print the current page title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			title, err := s.Title(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(title)
		},
	}
}

const pageSourceScript = "return document.documentElement.outerHTML"

func getCmdSource(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "source",
		Short: "Print the current page markup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			markup, err := s.Execute(cmd.Context(), pageSourceScript)
			if err != nil {
				return err
			}
			return st.printer.Value(markup)
		},
	}
}
