package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/probtable/internal/infra/logger"
	"github.com/aalvaropc/probtable/internal/ui/tui"
	"github.com/aalvaropc/probtable/internal/usecase"
)

func tuiCmd(root *rootOptions) *cobra.Command {
	var save bool

	c := &cobra.Command{
		Use:   "tui",
		Short: "Interactive binomial table",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}
			store, err := ws.storeFor(save)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Computer: usecase.NewComputeBinomial(
					usecase.WithStore(store),
					usecase.WithLogger(logger.L()),
				),
				DefaultProbability: ws.cfg.Defaults.Probability,
				Precision:          ws.cfg.Defaults.Precision,
				Logger:             logger.L(),
				Debug:              root.debug,
			})
		},
	}

	c.Flags().BoolVar(&save, "save", false, "Save every computed report under reports/")
	return c
}
