package cmd

import (
	"github.com/inovacc/projtrack/internal/cli"
	"github.com/inovacc/projtrack/internal/encoding"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project",
	Long:  `Show every field of a project. No password is needed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := app.service.ViewProject(id)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := encoding.ToJSONIndent(p)
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", data)

		return nil
	}

	printf(cmd, "%s\n", cli.RenderProject(p))

	return nil
}
