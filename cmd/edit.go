package cmd

import (
	"github.com/inovacc/projtrack/internal/core"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project",
	Long: `Edit an existing project. Requires the edit password.

Only the flags given are changed; the other fields keep their current values.
Pass --days 0 to derive the duration from the dates again.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	addProjectFlags(editCmd.Flags())
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	current, err := app.service.ViewProject(id)
	if err != nil {
		return err
	}

	in := projectInput(cmd.Flags(), core.FromProject(current))

	if _, err := in.Build(); err != nil {
		return err
	}

	password, err := resolvePassword()
	if err != nil {
		return err
	}

	p, err := app.service.EditProject(cmd.Context(), id, in, password)
	if err != nil {
		return err
	}

	printf(cmd, "Project %q updated\n", p.Name)

	return nil
}
