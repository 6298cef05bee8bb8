package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/probtable/internal/domain"
	"github.com/aalvaropc/probtable/internal/render"
)

type outputFlags struct {
	format    string
	precision int
	save      bool
}

func (f *outputFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.format, "format", render.FormatPretty, "Output format: pretty|json (defaults to workspace config)")
	c.Flags().IntVar(&f.precision, "precision", render.DefaultPrecision, "Decimal places in pretty output (defaults to workspace config)")
	c.Flags().BoolVar(&f.save, "save", false, "Save the report under reports/")
}

// options applies workspace defaults to flags the user did not set and
// checks the result before anything is computed or saved.
func (f *outputFlags) options(c *cobra.Command, cfg domain.Config, noColor bool) (render.Options, error) {
	opts := render.Options{Format: f.format, Precision: f.precision, NoColor: noColor}
	if !c.Flags().Changed("format") && cfg.Defaults.Format != "" {
		opts.Format = cfg.Defaults.Format
	}
	if !c.Flags().Changed("precision") && cfg.Defaults.Precision > 0 {
		opts.Precision = cfg.Defaults.Precision
	}

	if err := render.ValidateFormat(opts.Format); err != nil {
		return render.Options{}, err
	}
	if opts.Precision < 1 || opts.Precision > render.MaxPrecision {
		return render.Options{}, fmt.Errorf("--precision %d must lie in [1,%d]", opts.Precision, render.MaxPrecision)
	}
	return opts, nil
}
