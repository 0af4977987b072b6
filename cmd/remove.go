package cmd

import (
	"github.com/inovacc/projtrack/internal/core"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a project",
	Long: `Delete a project. Requires the edit password, then a [y/N] confirmation
unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := app.service.ViewProject(id)
	if err != nil {
		return err
	}

	password, err := resolvePassword()
	if err != nil {
		return err
	}

	skip, _ := cmd.Flags().GetBool("yes")

	if err := app.service.DeleteProject(cmd.Context(), id, password, confirmer(skip)); err != nil {
		return err
	}

	printf(cmd, "Project %q deleted\n", p.Name)

	return nil
}

// confirmer returns the confirmation used for interactive deletes.
func confirmer(skip bool) core.Confirmer {
	if skip {
		return func(string) bool { return true }
	}

	return confirmPrompt
}
