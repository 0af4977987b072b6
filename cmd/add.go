package cmd

import (
	"github.com/inovacc/projtrack/internal/core"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Long: `Add a new project. Requires the edit password.

Dates use YYYY-MM-DD. When --days is omitted or 0 and both dates are given,
the duration is derived from the dates, counting both ends.

Examples:
  projtrack add --name "Website" --start 2024-01-01 --end 2024-01-31
  projtrack add --name "Logo" --status completed --payment 350`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addProjectFlags(addCmd.Flags())
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	in := projectInput(cmd.Flags(), core.ProjectInput{})

	// Reject bad input before asking for the password.
	if _, err := in.Build(); err != nil {
		return err
	}

	password, err := resolvePassword()
	if err != nil {
		return err
	}

	p, err := app.service.CreateProject(cmd.Context(), in, password)
	if err != nil {
		return err
	}

	printf(cmd, "Project %q added (id %d)\n", p.Name, p.ID)

	return nil
}
