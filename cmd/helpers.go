package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/inovacc/projtrack/internal/application"
	"github.com/inovacc/projtrack/internal/auth"
	"github.com/inovacc/projtrack/internal/core"
	"github.com/inovacc/projtrack/internal/encoding"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const envPassword = application.EnvPrefix + "PASSWORD"

// Prompts are variables so tests can answer them.
var (
	passwordPrompt = func() (string, error) {
		return readPassword("Password: ")
	}

	confirmPrompt core.Confirmer = promptConfirm
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this file? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// readPassword reads a line without echo when stdin is a terminal and a
// plain line otherwise.
func readPassword(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr)

		if err != nil {
			return "", err
		}

		return string(password), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}

	return "", fmt.Errorf("failed to read password")
}

// resolvePassword returns the edit password from --password, the
// environment or the prompt, in that order.
func resolvePassword() (string, error) {
	return resolvePasswordWith(passwordPrompt)
}

// resolvePasswordWith is resolvePassword with a different prompt.
func resolvePasswordWith(prompt func() (string, error)) (string, error) {
	attempt, err := auth.NewResolver().
		WithFlagValue(flagPassword).
		WithEnv(envPassword).
		WithPrompt(prompt).
		Resolve()
	if err != nil {
		return "", err
	}

	app.logger.Debug("password resolved", "source", attempt.Source)

	return attempt.Password, nil
}

// parseID parses a project id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", s)
	}

	return id, nil
}

// Project field flags shared by add and edit. Values stay raw strings, the
// way a form submits them; core.ProjectInput does the parsing.
const (
	flagName        = "name"
	flagStart       = "start"
	flagEnd         = "end"
	flagDays        = "days"
	flagStatus      = "status"
	flagPayment     = "payment"
	flagPaymentDate = "payment-date"
)

func addProjectFlags(fs *pflag.FlagSet) {
	fs.String(flagName, "", "Project name")
	fs.String(flagStart, "", "Start date (YYYY-MM-DD)")
	fs.String(flagEnd, "", "End date (YYYY-MM-DD)")
	fs.String(flagDays, "", "Duration in days (derived from the dates when 0 or empty)")
	fs.String(flagStatus, "", "Status: ongoing, completed, cancelled or paused")
	fs.String(flagPayment, "", "Payment amount")
	fs.String(flagPaymentDate, "", "Payment date (YYYY-MM-DD)")
}

// projectInput overlays the flags that were set on base.
func projectInput(fs *pflag.FlagSet, base core.ProjectInput) core.ProjectInput {
	fields := map[string]*string{
		flagName:        &base.Name,
		flagStart:       &base.StartDate,
		flagEnd:         &base.EndDate,
		flagDays:        &base.Days,
		flagStatus:      &base.Status,
		flagPayment:     &base.Payment,
		flagPaymentDate: &base.PaymentDate,
	}

	for name, field := range fields {
		if fs.Changed(name) {
			*field, _ = fs.GetString(name)
		}
	}

	return base
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

func printf(cmd *cobra.Command, format string, a ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}

func warnf(cmd *cobra.Command, format string, a ...any) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format, a...)
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return encoding.ReadFile(path)
}
