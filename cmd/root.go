package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/projtrack/internal/application"
	"github.com/inovacc/projtrack/internal/auth"
	"github.com/inovacc/projtrack/internal/config"
	"github.com/inovacc/projtrack/internal/core"
	"github.com/inovacc/projtrack/internal/logging"
	"github.com/inovacc/projtrack/internal/model"
	"github.com/inovacc/projtrack/internal/project"
	"github.com/inovacc/projtrack/internal/store"
	"github.com/spf13/cobra"
)

// annotationNoStore marks commands that run without opening the slots.
const annotationNoStore = "projtrack/no-store"

var (
	flagConfig    string
	flagBackend   string
	flagDataDir   string
	flagEphemeral bool
	flagPassword  string
	flagLogLevel  string

	app *appContext
)

// appContext holds everything a command needs once flags are parsed.
type appContext struct {
	cfg     *config.Config
	logger  *slog.Logger
	slots   store.Slots
	service *core.Service
}

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A password-gated project tracker",
	Long: `projtrack keeps a list of projects with dates, status and payments.

Reading is open to anyone with access to the data directory. Adding, editing,
deleting, exporting and importing projects require the edit password, which is
set with "projtrack password set".

The password can be passed with --password or PROJTRACK_PASSWORD for scripting;
otherwise it is prompted for without echo.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupApp(cmd)
	},
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()

	closeApp()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, core.Message(err))
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default <appdir>/config.ini)")
	pf.StringVar(&flagBackend, "backend", "", "Storage backend: bolt, sqlite or memory")
	pf.StringVar(&flagDataDir, "data-dir", "", "Directory holding the data file")
	pf.BoolVar(&flagEphemeral, "ephemeral", false, "Keep data in memory only (same as --backend memory)")
	pf.StringVar(&flagPassword, "password", "", "Edit password (prefer "+envPassword+" or the prompt)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// setupApp loads configuration, applies flag overrides and opens the store.
// A preset app is kept, which is how tests inject an in-memory one.
func setupApp(cmd *cobra.Command) error {
	if app != nil {
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}

	if flagEphemeral {
		cfg.Storage.Backend = store.BackendMemory
	}

	if flagDataDir != "" {
		path, err := expandPath(flagDataDir)
		if err != nil {
			return err
		}

		cfg.Storage.Dir = path
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := &appContext{cfg: cfg, logger: logger}

	if cmd.Annotations[annotationNoStore] == "" {
		if err := ctx.open(cmd.Context()); err != nil {
			return err
		}
	}

	app = ctx

	return nil
}

func (a *appContext) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	slots, err := store.Open(a.cfg.Storage.Backend, a.cfg.Storage.Dir)
	if err != nil {
		return err
	}

	if err := store.Ping(slots); err != nil {
		_ = slots.Close()
		return err
	}

	projects := project.New(slots,
		project.WithLogger(a.logger),
		project.WithRenderer(func(_ []model.Project, s model.Summary) {
			a.logger.Debug("collection changed", "count", s.Count, "total", s.TotalFormatted())
		}),
	)

	if err := projects.Load(ctx); err != nil {
		_ = slots.Close()
		return fmt.Errorf("failed to load projects: %w", err)
	}

	a.slots = slots
	a.service = core.NewService(projects, auth.NewGate(slots, auth.WithLogger(a.logger)), core.WithLogger(a.logger))

	a.logger.Debug("store opened", "backend", a.cfg.Storage.Backend, "dir", a.cfg.Storage.Dir)

	return nil
}

func closeApp() {
	if app == nil {
		return
	}

	if app.slots != nil {
		if err := app.slots.Close(); err != nil {
			app.logger.Warn("failed to close store", "error", err)
		}
	}

	app = nil
}
