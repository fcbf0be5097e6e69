// Package commands holds the launcher's command line surface.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kei-portfolio/internal/app"
	"kei-portfolio/internal/config"
	"kei-portfolio/internal/logger"
)

// RunFunc starts the app with a loaded config and a ready logger.
type RunFunc func(cfg config.Config, log logger.Logger) error

func Execute() error {
	return NewRootCommand(runApplication).Execute()
}

// NewRootCommand builds the root command. Flags override the config file and
// KEI_PORTFOLIO_* environment variables.
func NewRootCommand(run RunFunc) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "kei-portfolio",
		Short:         "Personal portfolio app with an animated intro",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.NewViper(configPath)
			if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}
			if err := v.BindPFlag("log.json", cmd.Flags().Lookup("json-logs")); err != nil {
				return err
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			log := logger.New(level, cfg.Log.JSON)
			if used := v.ConfigFileUsed(); used != "" {
				log.Debug("Launcher", "config loaded", map[string]interface{}{"file": used})
			}

			return run(cfg, log)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "config file (default $KEI_PORTFOLIO_CONFIG or <user config dir>/kei-portfolio/config.toml)")
	root.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	root.Flags().Bool("json-logs", false, "write logs as JSON instead of console output")

	return root
}

func runApplication(cfg config.Config, log logger.Logger) error {
	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Launcher", err, nil)
		return fmt.Errorf("application initialization failed: %w", err)
	}
	if err := application.Run(); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}
	log.Info("Launcher", "application terminated", nil)
	return nil
}
