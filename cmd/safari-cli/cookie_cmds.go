package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"

	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

func getCmdCookies(st *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cookies",
		Short: "Inspect and edit the page's cookies",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			cookies, err := s.Cookies(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(cookies)
		},
	}
	cmd.AddCommand(
		getCmdCookieGet(st),
		getCmdCookieAdd(st),
		getCmdCookieDelete(st),
		getCmdCookieClear(st),
	)
	return cmd
}

func getCmdCookieGet(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print one cookie by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			cookie, err := s.Cookie(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return st.printer.Value(cookie)
		},
	}
}

func getCmdCookieAdd(st *appState) *cobra.Command {
	var (
		path     string
		domain   string
		secure   bool
		httpOnly bool
		sameSite string
		expiry   int64
	)
	cmd := &cobra.Command{
		Use:   "add <name> <value>",
		Short: "Set a cookie in the current page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			cookie := webdriver.Cookie{
				Name:     args[0],
				Value:    args[1],
				Path:     path,
				Domain:   domain,
				Secure:   secure,
				HTTPOnly: httpOnly,
				SameSite: sameSite,
			}
			if cmd.Flags().Changed("expiry") {
				cookie.Expiry = null.IntFrom(expiry)
			}
			return s.AddCookie(cmd.Context(), cookie)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "cookie path")
	cmd.Flags().StringVar(&domain, "domain", "", "cookie domain")
	cmd.Flags().BoolVar(&secure, "secure", false, "send only over HTTPS")
	cmd.Flags().BoolVar(&httpOnly, "http-only", false, "hide from page scripts")
	cmd.Flags().StringVar(&sameSite, "same-site", "", "SameSite policy (Strict, Lax, None)")
	cmd.Flags().Int64Var(&expiry, "expiry", 0, "expiry as Unix seconds (omit for a session cookie)")
	return cmd
}

func getCmdCookieDelete(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete one cookie by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.DeleteCookie(cmd.Context(), args[0])
		},
	}
}

func getCmdCookieClear(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every cookie visible to the page",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.DeleteAllCookies(cmd.Context())
		},
	}
}
