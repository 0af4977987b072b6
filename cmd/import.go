package cmd

import (
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all projects with the contents of a JSON file",
	Long: `Load a JSON array of projects, as written by export, and replace the whole
collection with it. Requires the edit password.

WARNING: this is not a merge. Every existing project is discarded.

Use - to read the document from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	doc, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	password, err := resolvePassword()
	if err != nil {
		return err
	}

	n, err := app.service.ImportProjects(cmd.Context(), doc, password)
	if err != nil {
		return err
	}

	printf(cmd, "Imported %d projects\n", n)

	return nil
}
