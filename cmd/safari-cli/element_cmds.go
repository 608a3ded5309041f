package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TamasNo1/safari-cli/pkg/output"
	"github.com/TamasNo1/safari-cli/pkg/retry"
	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

// strategyAliases maps the short names the flags accept onto the wire
// strategy strings.
var strategyAliases = map[string]string{
	"css":          "css selector",
	"xpath":        "xpath",
	"link":         "link text",
	"partial-link": "partial link text",
	"tag":          "tag name",
}

func resolveStrategy(name string) (string, error) {
	if s, ok := strategyAliases[name]; ok {
		return s, nil
	}
	switch name {
	case "css selector", "xpath", "link text", "partial link text", "tag name":
		return name, nil
	}
	return "", withExitCode(fmt.Errorf("unknown selector strategy %q", name), exitUsage)
}

func selectorFor(using, value string) (webdriver.Selector, error) {
	strategy, err := resolveStrategy(using)
	if err != nil {
		return webdriver.Selector{}, err
	}
	return webdriver.Selector{Using: strategy, Value: value}, nil
}

// addUsingFlag attaches the shared selector-strategy flag.
func addUsingFlag(cmd *cobra.Command, using *string) {
	cmd.Flags().StringVarP(using, "using", "u", "css", "selector strategy (css, xpath, link, partial-link, tag)")
}

// elementFor locates the element a DOM command operates on.
func (st *appState) elementFor(ctx context.Context, using, value string) (*webdriver.Element, error) {
	sel, err := selectorFor(using, value)
	if err != nil {
		return nil, err
	}
	_, s, err := st.session()
	if err != nil {
		return nil, err
	}
	return s.FindElement(ctx, sel)
}

func getCmdFind(st *appState) *cobra.Command {
	var (
		using string
		all   bool
		wait  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "find <selector>",
		Short: "Locate elements and print their reference ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selectorFor(using, args[0])
			if err != nil {
				return err
			}
			_, s, err := st.session()
			if err != nil {
				return err
			}

			var ids []string
			locate := func(ctx context.Context) error {
				ids = ids[:0]
				if all {
					els, ferr := s.FindElements(ctx, sel)
					if ferr != nil {
						return ferr
					}
					if len(els) == 0 {
						return fmt.Errorf("no elements match %q", args[0])
					}
					for _, el := range els {
						ids = append(ids, el.ID())
					}
					return nil
				}
				el, ferr := s.FindElement(ctx, sel)
				if ferr != nil {
					return ferr
				}
				ids = append(ids, el.ID())
				return nil
			}

			if wait > 0 {
				err = retry.Poll(cmd.Context(), st.cfg.Driver.PollInterval, wait, locate)
			} else {
				err = locate(cmd.Context())
			}
			if err != nil {
				return err
			}
			if all {
				return st.printer.List(ids)
			}
			return st.printer.Value(ids[0])
		},
	}
	addUsingFlag(cmd, &using)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every match instead of the first")
	cmd.Flags().DurationVarP(&wait, "wait", "w", 0, "poll until a match appears or the duration elapses")
	return cmd
}

func getCmdClick(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "click <selector>",
		Short: "Click the first matching element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			return el.Click(cmd.Context())
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func getCmdText(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "text <selector>",
		Short: "Print an element's rendered text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			text, err := el.Text(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(text)
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func getCmdTag(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "tag <selector>",
		Short: "Print an element's tag name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			name, err := el.TagName(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(name)
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func getCmdRect(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "rect <selector>",
		Short: "Print an element's bounding box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			r, err := el.Rect(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Fields(rectFields(r))
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func rectFields(r webdriver.Rect) []output.Field {
	return []output.Field{
		{Key: "x", Label: "X", Value: r.X},
		{Key: "y", Label: "Y", Value: r.Y},
		{Key: "width", Label: "Width", Value: r.Width},
		{Key: "height", Label: "Height", Value: r.Height},
	}
}

func getCmdAttr(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "attr <selector> <name>",
		Short: "Print an element attribute, null when absent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			value, err := el.Attribute(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			if !value.Valid {
				return st.printer.Value(nil)
			}
			return st.printer.Value(value.String)
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func getCmdProp(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "prop <selector> <name>",
		Short: "Print a live DOM property of an element",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			value, err := el.Property(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return st.printer.Value(value)
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func getCmdVisible(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "visible <selector>",
		Short: "Print whether an element is rendered visible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			displayed, err := el.Displayed(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(displayed)
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}

func getCmdEnabled(st *appState) *cobra.Command {
	var using string
	cmd := &cobra.Command{
		Use:   "enabled <selector>",
		Short: "Print whether an element accepts interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := st.elementFor(cmd.Context(), using, args[0])
			if err != nil {
				return err
			}
			enabled, err := el.Enabled(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(enabled)
		},
	}
	addUsingFlag(cmd, &using)
	return cmd
}
