package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func tablesCmd(root *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "tables",
		Short: "Manage probability tables in a workspace",
	}

	c.AddCommand(tablesListCmd(root))
	return c
}

func tablesListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}
			if ws.root == "" {
				return errNoWorkspace
			}

			refs, err := ws.catalog.ListTables(ws.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no tables found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}
