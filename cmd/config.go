package cmd

import (
	"errors"
	"fmt"

	configtoml "github.com/bnema/mlops-panel/internal/adapters/config/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(
		newConfigInitCmd(cfg),
		newConfigShowCmd(cfg, opts),
	)

	return cmd
}

func newConfigInitCmd(cfg *viper.Viper) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := cfg.GetString(configtoml.KeyConfigFile)
			if path == "" {
				defaultPath, err := configtoml.DefaultPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			if err := configtoml.WriteDefault(path, force); err != nil {
				if errors.Is(err, configtoml.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return fmt.Errorf("write config: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(opts.output)
			if err != nil {
				return err
			}

			config, err := configtoml.Load(cfg)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if format != outputText {
				return encode(cmd.OutOrStdout(), format, config.File())
			}

			data, err := configtoml.Encode(config.File())
			if err != nil {
				return err
			}

			source := config.Path
			if source == "" {
				source = "defaults (no config file)"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
			return err
		},
	}
}
