package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/probtable/internal/infra/logger"
	"github.com/aalvaropc/probtable/internal/infra/workspacefinder"
)

type rootOptions struct {
	workspace string
	debug     bool
	noColor   bool

	cleanup func() error
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "probtable",
		Short:        "probtable: binomial and discrete probability tables",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			opts.setupLogger()
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.cleanup != nil {
				return opts.cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .probtable/logs/probtable.log")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	cmd.AddCommand(
		binomialCmd(opts),
		discreteCmd(opts),
		tablesCmd(opts),
		initCmd(),
		tuiCmd(opts),
		versionCmd(),
	)
	return cmd
}

// setupLogger logs into the workspace when there is one; otherwise logs are discarded.
func (o *rootOptions) setupLogger() {
	root, err := resolveWorkspaceRoot(o.workspace)
	if err != nil {
		return
	}
	if _, err := os.Stat(filepath.Join(root, workspacefinder.ConfigFileName)); err != nil {
		return
	}
	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: o.debug})
	o.cleanup = cleanup
}
