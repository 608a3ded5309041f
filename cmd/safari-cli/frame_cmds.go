package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func getCmdFrame(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "frame <index|selector>",
		Short: "Switch into a frame by index or by element selector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			if idx, ierr := strconv.Atoi(args[0]); ierr == nil {
				return s.SwitchToFrame(cmd.Context(), idx)
			}
			sel, err := selectorFor(using, args[0])
			if err != nil {
				return err
			}
			el, err := s.FindElement(cmd.Context(), sel)
			if err != nil {
				return err
			}
			return s.SwitchToFrameElement(cmd.Context(), el)
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func getCmdParentFrame(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "parent-frame",
		Short: "Switch to the parent of the current frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.SwitchToParentFrame(cmd.Context())
		},
	}
}

func getCmdTopFrame(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "top-frame",
		Short: "Switch back to the page's top-level browsing context",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.SwitchToTopFrame(cmd.Context())
		},
	}
}
