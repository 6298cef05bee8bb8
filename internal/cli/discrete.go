package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/probtable/internal/infra/logger"
	"github.com/aalvaropc/probtable/internal/render"
	"github.com/aalvaropc/probtable/internal/usecase"
)

func discreteCmd(root *rootOptions) *cobra.Command {
	var table string
	var out outputFlags

	c := &cobra.Command{
		Use:   "discrete",
		Short: "Expected value, variance and standard deviation of a probability table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			opts, err := out.options(cmd, ws.cfg, root.noColor)
			if err != nil {
				return err
			}

			store, err := ws.storeFor(out.save)
			if err != nil {
				return err
			}

			uc := usecase.NewDescribeDiscrete(ws.tables,
				usecase.WithStore(store),
				usecase.WithLogger(logger.L()),
			)

			report, id, err := uc.Execute(cmd.Context(), table)
			if err != nil && report.Discrete == nil {
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

	c.Flags().StringVarP(&table, "table", "t", "", "Table name or path (required)")
	out.register(c)

	_ = c.MarkFlagRequired("table")
	return c
}
