package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wallarea/cmd/wallarea/ui"
	"wallarea/internal/config"
	"wallarea/internal/logging"
)

// runInteractive opens the terminal form and, unless disabled, applies config file
// changes to it while it runs.
func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	boot := logging.Get(logging.CategoryBoot)
	boot.Info("starting interactive form",
		zap.String("config", a.resolvedConfigPath()),
		zap.Bool("watch_config", a.watchConfig),
	)

	var opts []tea.ProgramOption
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(ui.NewFormModel(a.cfg), opts...)

	if a.watchConfig {
		cfgLog := logging.Get(logging.CategoryConfig)
		w, err := config.Watch(a.resolvedConfigPath(),
			func(c *config.Config) {
				if err := logging.SetLevel(c.Logging.Level); err != nil {
					cfgLog.Warn("ignoring log level", zap.Error(err))
				}
				cfgLog.Info("config reloaded")
				p.Send(ui.ConfigReloadedMsg{Config: c})
			},
			func(err error) {
				cfgLog.Warn("config reload failed", zap.Error(err))
			},
		)
		if err != nil {
			// The form works without live reload, e.g. before `config init`.
			boot.Warn("config watcher disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form exited with error: %w", err)
	}
	return nil
}
