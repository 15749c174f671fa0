package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/runlog/internal/config"
	"github.com/raphi011/runlog/internal/output"
	"github.com/raphi011/runlog/internal/storage"
	"github.com/raphi011/runlog/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage runlog configuration.

Config file: ~/.config/runlog/config.toml
Env file:    ~/.config/runlog/.env`,
		Example: `  runlog config init          # Create default config
  runlog config init --force  # Overwrite existing config
  runlog config show          # Show effective config
  runlog config path          # Print config and data locations`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			output.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  "Show the configuration after applying the config file, .env file and environment overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return output.FromContext(cmd.Context()).TOML(cfg)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config and data file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := config.Path()
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir, err := storage.DataDir(cfg.DataDir)
			if err != nil {
				return err
			}

			output.FromContext(cmd.Context()).Fields(
				"config", cfgPath,
				"data", dir,
				"database", storage.DBPath(dir),
				"themes", fmt.Sprint(styles.PresetNames()),
			)
			return nil
		},
	}
}
