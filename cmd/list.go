package cmd

import (
	"fmt"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/projtrack/internal/cli"
	"github.com/inovacc/projtrack/internal/model"
	"github.com/inovacc/projtrack/internal/project"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects, newest first",
	Long: `List all projects, newest first, followed by the project count and the
total payment. No password is needed.

With --interactive the list opens in a filterable terminal UI. Press Enter to
view a project, e to see how to edit it and d to delete it.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().Bool("json", false, "Output as JSON")
	listCmd.Flags().BoolP("interactive", "i", false, "Open the interactive list")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	interactive, _ := cmd.Flags().GetBool("interactive")

	projects := app.service.ListProjects()
	summary := app.service.Summary()

	switch {
	case jsonOutput:
		doc, err := project.EncodeDocument(projects)
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", doc)

		return nil

	case interactive:
		return runListInteractive(cmd, projects, summary)
	}

	if len(projects) == 0 {
		printf(cmd, "No projects yet.\n")
		printf(cmd, "Create one with: %s add --name <name>\n", rootCmd.Name())

		return nil
	}

	printProjectTable(cmd, projects)
	printf(cmd, "\n%s\n", cli.SummaryLine(summary))

	return nil
}

func printProjectTable(cmd *cobra.Command, projects []model.Project) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTART\tEND\tDAYS\tSTATUS\tPAYMENT\tPAID ON")

	for _, p := range projects {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%.2f\t%s\n",
			p.ID,
			p.Name,
			model.DateString(p.StartDate, "-"),
			model.DateString(p.EndDate, "-"),
			p.Days,
			p.Status,
			p.Payment,
			model.DateString(p.PaymentDate, "-"))
	}

	_ = w.Flush()
}

func runListInteractive(cmd *cobra.Command, projects []model.Project, summary model.Summary) error {
	final, err := tea.NewProgram(cli.NewProjectList(projects, summary), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	selected, action := final.(cli.ProjectListModel).Selection()
	if selected == nil {
		return nil
	}

	switch action {
	case cli.ActionView:
		printf(cmd, "%s\n", cli.RenderProject(*selected))

	case cli.ActionEdit:
		printf(cmd, "%s\n\nEdit with: %s edit %d --name ... --status ...\n",
			cli.RenderProject(*selected), rootCmd.Name(), selected.ID)

	case cli.ActionDelete:
		pending, err := app.service.BeginDelete(cmd.Context(), selected.ID, confirmPrompt)
		if err != nil {
			return err
		}

		app.logger.Debug("delete requested", "request", pending.ID(), "project", selected.ID)

		err = cli.Settle(cmd.Context(), pending, func() (string, error) {
			return resolvePasswordWith(func() (string, error) {
				return cli.PromptPassword(fmt.Sprintf("Password to delete %q", selected.Name))
			})
		})
		if err != nil {
			return err
		}

		printf(cmd, "Project %q deleted\n", selected.Name)
	}

	return nil
}
