package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	configtoml "github.com/bnema/mlops-panel/internal/adapters/config/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

// rootOptions holds the persistent flags that are not configuration keys.
type rootOptions struct {
	output   string
	activity bool
	logFile  string
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "mlp",
		Short:         "MLOps pipeline control panel",
		Long:          "mlp drives a remote ML pipeline service: check service health, collect and store data batches, train a model and request predictions, from an interactive dashboard or one command at a time.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			_, err := parseOutputFormat(opts.output)
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ~/.config/mlp/config.toml)")
	flags.String("api-root", "", "Pipeline API root (default "+configtoml.DefaultAPIRoot+")")
	flags.StringVarP(&opts.output, "output", "o", string(outputText), "Output format: text, json or yaml")
	flags.BoolVar(&opts.activity, "activity", false, "Print the activity log after the results")
	flags.StringVar(&opts.logFile, "log-file", "", "Append JSON diagnostics to this file")

	_ = cfg.BindPFlag(configtoml.KeyConfigFile, flags.Lookup("config"))
	_ = cfg.BindPFlag(configtoml.KeyAPIRoot, flags.Lookup("api-root"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newDashboardCmd(cfg, opts),
		newHealthCmd(cfg, opts),
		newCollectCmd(cfg, opts),
		newStorageCmd(cfg, opts),
		newModelCmd(cfg, opts),
		newConfigCmd(cfg, opts),
	)

	return rootCmd
}
