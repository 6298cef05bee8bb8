package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/probtable/internal/infra/logger"
	"github.com/aalvaropc/probtable/internal/render"
	"github.com/aalvaropc/probtable/internal/usecase"
)

func binomialCmd(root *rootOptions) *cobra.Command {
	var trials int
	var probability float64
	var out outputFlags

	c := &cobra.Command{
		Use:   "binomial",
		Short: "Print the probability distribution of a binomial variable",
		Long: "Print P(X = x) for x = 0..n successes in n independent trials with success probability p.\n" +
			"When --trials is omitted the trial count is read from stdin.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			opts, err := out.options(cmd, ws.cfg, root.noColor)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("probability") {
				probability = ws.cfg.Defaults.Probability
			}
			if !cmd.Flags().Changed("trials") {
				trials, err = promptTrials(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			store, err := ws.storeFor(out.save)
			if err != nil {
				return err
			}

			uc := usecase.NewComputeBinomial(
				usecase.WithStore(store),
				usecase.WithLogger(logger.L()),
			)

			report, id, err := uc.Execute(cmd.Context(), trials, probability)
			if err != nil && report.Binomial == nil {
				return err
			}

			if rerr := render.Render(cmd.OutOrStdout(), report, opts); rerr != nil {
				return rerr
			}
			if err != nil {
				return err
			}
			if id != "" && opts.Format != render.FormatJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved report: %s\n", id)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&trials, "trials", "n", 0, "Number of trials n (prompted if omitted)")
	c.Flags().Float64VarP(&probability, "probability", "p", 0.5, "Success probability p in [0,1] (defaults to workspace config)")
	out.register(c)
	return c
}
