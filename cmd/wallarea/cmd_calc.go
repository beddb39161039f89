package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wallarea/internal/area"
	"wallarea/internal/report"
)

func (a *app) calcCmd() *cobra.Command {
	var (
		height            string
		segments          []string
		openings          []string
		output            string
		checkOpeningWidth bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the net wall area once and exit",
		Long: `Validates the given wall and opening sizes and prints the net wall area.
Every invalid field is reported; the command exits non-zero if any is found.

Example:
  wallarea calc --height 2.7 --segment 5 --segment 3.2 --opening 0.9x2.1 --opening 1.2x1.4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}

			check := a.cfg.Calculator.CheckOpeningWidth
			if cmd.Flags().Changed("check-opening-width") {
				check = checkOpeningWidth
			}

			form := buildForm(height, segments, openings)
			a.logger.Debug("calculating",
				zap.String("height", form.Height),
				zap.Int("segments", len(form.Segments)),
				zap.Int("openings", len(form.Openings)),
				zap.Bool("check_opening_width", check),
			)

			result, calcErr := area.New(area.WithOpeningWidthCheck(check)).Calculate(form)
			r := report.New(result, calcErr, a.cfg.Calculator.Unit)
			opts := report.Options{
				Unit:      a.cfg.Calculator.Unit,
				Precision: a.cfg.Calculator.Precision,
				Style:     glamourStyle(a.cfg.UI.Theme),
			}
			if err := report.Render(cmd.OutOrStdout(), format, r, opts); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}

			var verrs area.ValidationErrors
			if errors.As(calcErr, &verrs) {
				a.logger.Debug("calculation rejected", zap.Int("errors", len(verrs)))
				return fmt.Errorf("calculation rejected: %d invalid field(s)", len(verrs))
			}
			a.logger.Debug("calculation succeeded", zap.Float64("net_area", result.NetArea))
			return calcErr
		},
	}

	cmd.Flags().StringVar(&height, "height", area.DefaultWallHeight, "Wall height")
	cmd.Flags().StringArrayVarP(&segments, "segment", "s", nil, "Wall segment length (repeatable)")
	cmd.Flags().StringArrayVarP(&openings, "opening", "d", nil, "Door/window as WIDTHxHEIGHT (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", string(report.FormatText), "Output format: text, json, yaml, markdown")
	cmd.Flags().BoolVar(&checkOpeningWidth, "check-opening-width", false, "Reject openings wider in total than the wall")

	return cmd
}

// buildForm turns flag values into a raw form. Values are kept as text so the
// calculator reports malformed numbers the same way the interactive form does.
func buildForm(height string, segments, openings []string) area.Form {
	f := area.Form{Height: height}
	for _, s := range segments {
		f.AddSegment(s)
	}
	for _, o := range openings {
		w, h := splitOpening(o)
		f.AddOpening(w, h)
	}
	return f
}

// splitOpening splits "0.9x2.1" (also "X" or "×") into width and height. A value
// without a separator is treated as a width with a missing height.
func splitOpening(s string) (width, height string) {
	s = strings.ReplaceAll(s, "×", "x")
	s = strings.ReplaceAll(s, "X", "x")
	width, height, _ = strings.Cut(s, "x")
	return strings.TrimSpace(width), strings.TrimSpace(height)
}

func glamourStyle(theme string) string {
	switch theme {
	case "dark", "light":
		return theme
	}
	return "notty"
}
