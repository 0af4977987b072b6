package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newPasswordPrompt reads the password being set. Replaced in tests.
var newPasswordPrompt = readNewPassword

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Manage the edit password",
}

var passwordSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set or replace the edit password",
	Long: `Set the password that protects add, edit, remove, export and import.

The current password is not asked for, so anyone with access to the data
directory can replace it. Surrounding whitespace is trimmed.`,
	Args: cobra.NoArgs,
	RunE: runPasswordSet,
}

func init() {
	passwordCmd.AddCommand(passwordSetCmd)
	rootCmd.AddCommand(passwordCmd)
}

func runPasswordSet(cmd *cobra.Command, args []string) error {
	password, err := newPasswordPrompt()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := app.service.SetPassword(cmd.Context(), password); err != nil {
		return err
	}

	printf(cmd, "Password saved.\n")

	return nil
}

// readNewPassword asks twice on a terminal and once when input is piped.
func readNewPassword() (string, error) {
	password, err := readPassword("New password: ")
	if err != nil {
		return "", err
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return password, nil
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}

	return password, nil
}
