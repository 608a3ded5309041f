package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"

	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

func getCmdWindow(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Print the current window handle",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			handle, err := s.WindowHandle(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.Value(handle)
		},
	}
}

func getCmdWindows(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List every open window handle",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			handles, err := s.WindowHandles(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.List(handles)
		},
	}
}

func getCmdSwitchWindow(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "switch-window <handle>",
		Short: "Make another window the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			return s.SwitchToWindow(cmd.Context(), args[0])
		},
	}
}

func getCmdCloseWindow(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "close-window",
		Short: "Close the current window and list the remaining handles",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			remaining, err := s.CloseWindow(cmd.Context())
			if err != nil {
				return err
			}
			return st.printer.List(remaining)
		},
	}
}

// parseGeometry reads "WxH" with an optional "@X,Y" suffix into a rect
// change. Fields left out stay null so the driver keeps them as-is.
func parseGeometry(raw string) (webdriver.RectChange, error) {
	var change webdriver.RectChange
	size := raw
	if at := strings.IndexByte(raw, '@'); at >= 0 {
		size = raw[:at]
		pos := raw[at+1:]
		xs, ys, ok := strings.Cut(pos, ",")
		if !ok {
			return change, fmt.Errorf("position %q must look like X,Y", pos)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
		if err != nil {
			return change, fmt.Errorf("bad X coordinate %q", xs)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
		if err != nil {
			return change, fmt.Errorf("bad Y coordinate %q", ys)
		}
		change.X = null.IntFrom(x)
		change.Y = null.IntFrom(y)
	}
	if size != "" {
		ws, hs, ok := strings.Cut(size, "x")
		if !ok {
			return change, fmt.Errorf("size %q must look like WIDTHxHEIGHT", size)
		}
		w, err := strconv.ParseInt(strings.TrimSpace(ws), 10, 64)
		if err != nil || w <= 0 {
			return change, fmt.Errorf("bad width %q", ws)
		}
		h, err := strconv.ParseInt(strings.TrimSpace(hs), 10, 64)
		if err != nil || h <= 0 {
			return change, fmt.Errorf("bad height %q", hs)
		}
		change.Width = null.IntFrom(w)
		change.Height = null.IntFrom(h)
	}
	if !change.Width.Valid && !change.X.Valid {
		return change, fmt.Errorf("geometry %q changes nothing", raw)
	}
	return change, nil
}

func getCmdResize(st *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize [WxH[@X,Y]]",
		Short: "Show or change the current window's rect",
		Long: `Resize the current window. The argument is WIDTHxHEIGHT, optionally
followed by @X,Y to move the window as well. "@X,Y" alone moves without
resizing. Without an argument the current rect is printed unchanged.
Prints the rect the driver settled on.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				rect, rerr := s.WindowRect(cmd.Context())
				if rerr != nil {
					return rerr
				}
				return st.printer.Fields(rectFields(rect))
			}
			change, err := parseGeometry(args[0])
			if err != nil {
				return withExitCode(err, exitUsage)
			}
			rect, err := s.SetWindowRect(cmd.Context(), change)
			if err != nil {
				return err
			}
			return st.printer.Fields(rectFields(rect))
		},
	}
	return cmd
}

func windowRectCmd(st *appState, use, short string,
	op func(context.Context, *webdriver.Session) (webdriver.Rect, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := st.session()
			if err != nil {
				return err
			}
			rect, err := op(cmd.Context(), s)
			if err != nil {
				return err
			}
			return st.printer.Fields(rectFields(rect))
		},
	}
}

func getCmdMaximize(st *appState) *cobra.Command {
	return windowRectCmd(st, "maximize", "Maximize the current window",
		func(ctx context.Context, s *webdriver.Session) (webdriver.Rect, error) {
			return s.Maximize(ctx)
		})
}

func getCmdMinimize(st *appState) *cobra.Command {
	return windowRectCmd(st, "minimize", "Minimize the current window",
		func(ctx context.Context, s *webdriver.Session) (webdriver.Rect, error) {
			return s.Minimize(ctx)
		})
}

func getCmdFullscreen(st *appState) *cobra.Command {
	return windowRectCmd(st, "fullscreen", "Make the current window full screen",
		func(ctx context.Context, s *webdriver.Session) (webdriver.Rect, error) {
			return s.Fullscreen(ctx)
		})
}
