package cmd

import (
	"fmt"

	"github.com/inovacc/projtrack/internal/config"
	"github.com/inovacc/projtrack/internal/encoding"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective configuration",
	Long:        `Print the configuration after defaults, the config file, environment and flags are applied.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStore: "true"},
	RunE:        runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with the default settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStore: "true"},
	RunE:        runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := app.cfg.Marshal()
	if err != nil {
		return err
	}

	printf(cmd, "%s", data)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}

		path = p
	}

	if force, _ := cmd.Flags().GetBool("force"); !force && encoding.FileExists(path) {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	data, err := app.cfg.Marshal()
	if err != nil {
		return err
	}

	if err := encoding.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	printf(cmd, "Wrote %s\n", path)

	return nil
}
