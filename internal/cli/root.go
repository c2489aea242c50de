// Package cli implements the flavorscape command-line interface: the
// terminal UI (the default), a line shell, and init and version commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/flavorscape/internal/config"
	"github.com/mesh-intelligence/flavorscape/internal/logger"
	"github.com/mesh-intelligence/flavorscape/internal/paths"
	"github.com/mesh-intelligence/flavorscape/pkg/menu"
	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	logFile   string
	envFile   string
	jsonMode  bool
}

// env is the state resolved once per invocation before a subcommand runs.
type env struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by the root command to a process exit
// code. Errors without an explicit code are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "flavorscape" command with global flags
// and all subcommands registered. Running it without a subcommand starts the
// terminal UI.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "flavorscape",
		Short: "Build tonight's menu from the terminal",
		Long: "FlavorScape lets a chef add dishes to a menu, see the item count and the\n" +
			"average price per course, and browse the menu one course at a time.\n" +
			"The menu lives only as long as the program runs.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: e.setup,
		RunE:              e.runTUI,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/flavorscape)")
	pf.StringVar(&e.flags.backend, "backend", "", "menu store backend: memory or sqlite (overrides config)")
	pf.StringVar(&e.flags.logFile, "log-file", "", "write JSON logs to this file (or stdout/stderr)")
	pf.StringVar(&e.flags.envFile, "env-file", ".env", "dotenv file loaded before reading configuration")
	pf.BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newTUICmd(e))
	root.AddCommand(newShellCmd(e))
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newVersionCmd(e))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	stop()
	os.Exit(exitCode(err))
}

// setup loads the dotenv file and configuration and applies flag overrides.
func (e *env) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	if e.flags.envFile != "" {
		if err := config.LoadDotEnv(e.flags.envFile); err != nil {
			return userError(err)
		}
	}

	dir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	e.configDir = dir

	cfg, err := config.Load(dir)
	if err != nil {
		return userError(err)
	}
	if e.flags.backend != "" {
		cfg.Backend = strings.ToLower(strings.TrimSpace(e.flags.backend))
		if err := cfg.Validate(); err != nil {
			return userError(fmt.Errorf("--backend: %w", err))
		}
	}

	logFile, err := paths.ResolveLogFile(e.flags.logFile, cfg.Log.File)
	if err != nil {
		return sysError(fmt.Errorf("resolve log file: %w", err))
	}
	cfg.Log.File = logFile

	e.cfg = cfg
	return nil
}

// openSession builds the logger and an attached menu session. fallbackLog
// is used when no log file is configured. The returned cleanup closes the
// session and flushes the logger.
func (e *env) openSession(fallbackLog string) (*menu.Session, *zap.SugaredLogger, func(), error) {
	log, err := logger.New(e.cfg.Log, fallbackLog)
	if err != nil {
		return nil, nil, nil, userError(err)
	}

	store, err := menu.NewStore(e.cfg)
	if err != nil {
		logger.Sync(log)
		return nil, nil, nil, sysError(fmt.Errorf("open menu store: %w", err))
	}
	session := menu.NewSession(store, menu.WithLogger(log))
	log.Debugw("session opened", "backend", e.cfg.Backend, "config_dir", e.configDir)

	cleanup := func() {
		if err := session.Close(); err != nil {
			log.Warnw("close session", "error", err)
		}
		logger.Sync(log)
	}
	return session, log, cleanup, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
