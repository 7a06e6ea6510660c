package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/notch/internal/config"
	"github.com/example/notch/internal/dispatch"
	"github.com/example/notch/internal/logging"
	"github.com/example/notch/internal/menu"
	"github.com/example/notch/internal/shell"
)

type globalFlags struct {
	debug    bool
	trace    bool
	traceLog string
	shell    string
}

type appState struct {
	flags globalFlags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	state := &appState{}

	root := &cobra.Command{
		Use:           "notch",
		Short:         "Notch desktop note-taking shell",
		Long:          `Start the Notch native shell. The application menu forwards each command to the active note view.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.runShell(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&state.flags.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&state.flags.trace, "trace", false, "write structured trace events")
	flags.StringVar(&state.flags.traceLog, "trace-log", "", "trace log path (implies --trace)")
	flags.StringVar(&state.flags.shell, "shell", "", "native surface: window or tray")

	root.AddCommand(
		newMenuCmd(state),
		newCommandsCmd(state),
		newDispatchCmd(state),
	)
	return root
}

// load reads the environment and applies flag overrides.
func (s *appState) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if s.flags.debug {
		cfg.Debug = true
	}
	if s.flags.trace {
		cfg.Trace = true
	}
	if s.flags.traceLog != "" {
		cfg.Trace = true
		cfg.TraceLog = s.flags.traceLog
	}
	if s.flags.shell != "" {
		cfg.Shell = config.ShellKind(s.flags.shell)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetOutput(cmd.ErrOrStderr())
	if cfg.Debug {
		logging.EnableDebug()
	}
	path, err := cfg.TraceLogPath()
	if err != nil {
		return err
	}
	if err := logging.Configure(path); err != nil {
		return err
	}
	if logging.TraceEnabled() {
		logging.Debugf("tracing to %s", path)
	}

	s.cfg = cfg
	return nil
}

// buildMenu builds the static menu and checks it against the mapping table.
// Failures here are programming errors and abort startup.
func (s *appState) buildMenu() (*menu.Tree, dispatch.Table, error) {
	tree, err := menu.Build(menu.DefaultDeclaration(s.cfg.AppName))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid menu declaration: %w", err)
	}
	table := dispatch.DefaultTable()
	if err := table.Check(tree, dispatch.Reserved...); err != nil {
		return nil, nil, fmt.Errorf("menu and command table disagree: %w", err)
	}
	return tree, table, nil
}

func (s *appState) runShell(ctx context.Context) error {
	_, table, err := s.buildMenu()
	if err != nil {
		return err
	}

	sh, err := shell.New(s.cfg, menu.DefaultDeclaration(s.cfg.AppName), table)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Printf("%s %s starting (%s shell)", s.cfg.AppName, config.Version, s.cfg.Shell)
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("shell exited with error: %w", err)
	}
	return nil
}
