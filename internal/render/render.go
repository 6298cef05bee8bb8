// Package render turns domain reports into console text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/probtable/internal/domain"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"

	DefaultPrecision = 6
	MaxPrecision     = 15
)

type Options struct {
	Format    string
	Precision int
	NoColor   bool
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r domain.Report, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatPretty, "":
		theme := DefaultTheme()
		if opts.NoColor {
			theme = PlainTheme()
		}
		return Pretty(w, r, theme, opts.Precision)
	default:
		return ValidateFormat(opts.Format)
	}
}

// ValidateFormat rejects formats Render cannot write. "" means pretty.
func ValidateFormat(format string) error {
	switch format {
	case FormatPretty, FormatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// Pretty prints the hand-calculation table for r.
func Pretty(w io.Writer, r domain.Report, theme Theme, precision int) error {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	switch {
	case r.Binomial != nil:
		printBinomial(w, r, theme, precision)
	case r.Discrete != nil:
		printDiscrete(w, r, theme, precision)
	default:
		return fmt.Errorf("report %q has no data", r.Kind)
	}
	return nil
}

func printBinomial(w io.Writer, r domain.Report, t Theme, prec int) {
	b := r.Binomial
	rule := strings.Repeat("-", 50)

	fmt.Fprintln(w, t.Title.Render(r.Title))
	fmt.Fprintln(w, t.Subtitle.Render(fmt.Sprintf("Trials (n)           = %d", b.N)))
	fmt.Fprintln(w, t.Subtitle.Render(fmt.Sprintf("Success prob. (p)    = %g", b.P)))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, t.Header.Render(fmt.Sprintf(" %-15s | %s", "X (successes)", "P(X = x)")))
	fmt.Fprintln(w, "-----------------|--------------")

	for x, p := range b.Probabilities {
		fmt.Fprintf(w, " %-15d | %s\n", x, fixed(p, prec))
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, t.Total.Render("Total probability = "+fixed(b.Total, prec)))
	fmt.Fprintf(w, "Mean = %s  Variance = %s  Std. deviation = %s\n",
		fixed(b.Mean, prec), fixed(b.Variance, prec), fixed(b.StdDev, prec))
	fmt.Fprintln(w, rule)
}

func printDiscrete(w io.Writer, r domain.Report, t Theme, prec int) {
	d := r.Discrete
	rule := strings.Repeat("-", 86)

	fmt.Fprintln(w, t.Title.Render(r.Title))
	fmt.Fprintln(w, t.Subtitle.Render("Table: "+d.TableName))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, t.Header.Render(fmt.Sprintf(" %-8s | %-10s | %-10s | %-10s | %-10s | %s",
		"x", "P(x)", "x*P(x)", "x - mu", "(x - mu)^2", "(x - mu)^2 * P(x)")))
	fmt.Fprintln(w, rule)

	for _, row := range d.Rows {
		fmt.Fprintf(w, " %-8g | %-10s | %-10s | %-10s | %-10s | %s\n",
			row.X,
			fixed(row.P, prec),
			fixed(row.XP, prec),
			fixed(row.Deviation, prec),
			fixed(row.DevSq, prec),
			fixed(row.Term, prec),
		)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, t.Total.Render("Expected value E(X) = mu = "+fixed(d.ExpectedValue, prec)))
	fmt.Fprintln(w, t.Total.Render("Variance Var(X)        = "+fixed(d.Variance, prec)))
	fmt.Fprintln(w, t.Total.Render("Std. deviation sigma   = "+fixed(d.StdDev, prec)))
	fmt.Fprintln(w, rule)
}

func fixed(v float64, prec int) string {
	return fmt.Sprintf("%.*f", prec, v)
}
