package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/TamasNo1/safari-cli/pkg/imaging"
	"github.com/TamasNo1/safari-cli/pkg/paths"
)

func getCmdScreenshot(st *appState) *cobra.Command {
	var (
		selector string
		using    string
		crop     bool
		resize   int
	)
	cmd := &cobra.Command{
		Use:   "screenshot [path]",
		Short: "Capture the page or an element to a PNG file",
		Long: `Capture a screenshot and print the path it was written to. Without a
path argument the capture lands in the screenshot directory under a
generated name. --selector captures just that element; --crop instead
captures the full page and crops it to the element's box, which keeps
fixed-position overlays out of the frame.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if crop && selector == "" {
				return withExitCode(errors.New("--crop requires --selector"), exitUsage)
			}

			_, s, err := st.session()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var data string
			if selector != "" && !crop {
				el, ferr := st.elementFor(ctx, using, selector)
				if ferr != nil {
					return ferr
				}
				data, err = el.Screenshot(ctx)
			} else {
				data, err = s.Screenshot(ctx)
			}
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				path = filepath.Join(paths.ScreenshotsDir(st.cfg.Screenshots.Dir),
					imaging.DefaultName(time.Now()))
			}

			proc := st.imaging()
			saved, err := proc.Save(data, path)
			if err != nil {
				return err
			}

			if crop {
				el, ferr := st.elementFor(ctx, using, selector)
				if ferr != nil {
					return ferr
				}
				rect, rerr := el.Rect(ctx)
				if rerr != nil {
					return rerr
				}
				if err := proc.CropToRect(ctx, saved, rect); err != nil {
					return err
				}
			}
			if resize > 0 {
				if err := proc.Resize(ctx, saved, resize); err != nil {
					return err
				}
			}
			return st.printer.Value(saved)
		},
	}
	cmd.Flags().StringVarP(&selector, "selector", "s", "", "capture only the element matching this selector")
	addUsingFlag(cmd, &using)
	cmd.Flags().BoolVar(&crop, "crop", false, "capture the full page, then crop to the selected element")
	cmd.Flags().IntVar(&resize, "resize", 0, "scale the result so its longest side is this many pixels")
	return cmd
}
