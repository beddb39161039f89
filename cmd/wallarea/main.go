package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wallarea/internal/config"
	"wallarea/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// app carries the state shared by every command: global flags, the resolved config
// and the stderr logger used by non-interactive commands.
type app struct {
	configPath  string
	verbose     bool
	watchConfig bool

	cfg    *config.Config
	logger *zap.Logger
	closed bool
}

func newApp() (*app, *cobra.Command) {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "wallarea",
		Short:   "Wall area calculator",
		Version: version,
		Long: `wallarea computes the net paintable area of a wall: wall height times the
total length of its segments, minus the area of every door and window.

Run without arguments to open the interactive form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.resolvedConfigPath())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", a.resolvedConfigPath(), err)
			}
			a.cfg = cfg

			if err := logging.Initialize(cfg.Logging); err != nil {
				return err
			}

			// Interactive mode owns the terminal and logs to files only
			if cmd == cmd.Root() {
				return nil
			}

			a.logger, err = logging.NewCLILogger(a.verbose)
			return err
		},
		RunE: a.runInteractive,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ~/.wallarea/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.Flags().BoolVar(&a.watchConfig, "watch-config", true, "Apply config file changes while the form is open")

	root.AddCommand(a.calcCmd(), a.defaultsCmd(), a.configCmd())
	return a, root
}

// execute runs the command tree and always flushes loggers afterwards. Cobra skips
// post-run hooks when RunE fails, so cleanup lives here.
func execute(a *app, root *cobra.Command) error {
	defer a.close()
	return root.Execute()
}

func (a *app) close() {
	if a.closed {
		return
	}
	a.closed = true
	_ = a.logger.Sync()
	logging.CloseAll()
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultPath()
}

func main() {
	if err := execute(newApp()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
