package cmd

import (
	"github.com/inovacc/projtrack/internal/encoding"
	"github.com/inovacc/projtrack/internal/security"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all projects to a JSON file",
	Long: `Write every project to a pretty-printed JSON document. Requires the edit
password. The file is plain text; do not put secrets in project fields.

The document is scanned for credentials before it is written and a warning is
printed for each finding.

Examples:
  projtrack export                      # writes projects_backup.json
  projtrack export -o backup.json
  projtrack export -o - | jq length     # write to stdout`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file, - for stdout (default from export.file)")
	exportCmd.Flags().Bool("no-scan", false, "Skip the credential scan")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = app.cfg.Export.File
	}

	password, err := resolvePassword()
	if err != nil {
		return err
	}

	doc, err := app.service.ExportProjects(cmd.Context(), password)
	if err != nil {
		return err
	}

	if noScan, _ := cmd.Flags().GetBool("no-scan"); !noScan {
		scanExport(cmd, doc)
	}

	if output == "-" {
		printf(cmd, "%s\n", doc)
		return nil
	}

	if err := encoding.WriteFile(output, append(doc, '\n'), 0o644); err != nil {
		return err
	}

	printf(cmd, "Exported %d projects to %s\n", app.service.Summary().Count, output)

	return nil
}

func scanExport(cmd *cobra.Command, doc []byte) {
	scanner, err := security.NewLeakScanner()
	if err != nil {
		app.logger.Warn("credential scan unavailable", "error", err)
		return
	}

	if findings := scanner.ScanDocument(doc); len(findings) > 0 {
		warnf(cmd, "%s", security.FormatFindings(findings))
	}
}
