package cmd

import (
	"github.com/inovacc/projtrack/internal/cli"
	"github.com/inovacc/projtrack/internal/encoding"
	"github.com/inovacc/projtrack/internal/model"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the project count and payment total",
	Long: `Show how many projects are tracked, the sum of their payments and how many
projects are in each status.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}

type statsOutput struct {
	model.Summary

	ByStatus map[model.Status]int `json:"byStatus"`
}

func runStats(cmd *cobra.Command, args []string) error {
	out := statsOutput{
		Summary:  app.service.Summary(),
		ByStatus: make(map[model.Status]int),
	}

	for _, p := range app.service.ListProjects() {
		out.ByStatus[p.Status]++
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := encoding.ToJSONIndent(out)
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", data)

		return nil
	}

	printf(cmd, "%s\n", cli.SummaryLine(out.Summary))

	for _, st := range model.Statuses() {
		printf(cmd, "  %-10s %d\n", st, out.ByStatus[st])
	}

	return nil
}
