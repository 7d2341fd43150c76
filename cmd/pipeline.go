package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bnema/mlops-panel/internal/adapters/logging"
	"github.com/bnema/mlops-panel/internal/adapters/render/dashboard"
	"github.com/bnema/mlops-panel/internal/application"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDashboardCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive control panel",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := wireApp(cfg, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.closeLog() }()

			level, err := logging.ParseLevel(a.config.LogLevel)
			if err != nil {
				return err
			}

			sink := dashboard.NewSink()
			a.useLogHandler(sink.LogHandler(max(slog.Level(level), slog.LevelWarn)))

			orchestrator, err := a.newOrchestrator(sink, sink)
			if err != nil {
				return err
			}

			return dashboard.Run(cmd.Context(), orchestrator, sink, dashboard.Options{
				HealthInterval:   a.config.HealthInterval,
				DefaultBatchSize: a.config.DefaultBatchSize,
			})
		},
	}
}

func newHealthCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show the health of every pipeline service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return runHealthWatch(cmd, cfg, opts, interval)
			}

			return runOneShot(cmd, cfg, opts, oneShot{
				label: "Checking system health...",
				run: func(ctx context.Context, _ *app, o *application.Orchestrator) error {
					return o.CheckHealth(ctx)
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep checking until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Time between checks with --watch (default from config)")

	return cmd
}

func runHealthWatch(cmd *cobra.Command, cfg *viper.Viper, opts *rootOptions, interval time.Duration) error {
	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	a, err := wireApp(cfg, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = a.closeLog() }()

	if interval <= 0 {
		interval = a.config.HealthInterval
	}

	view := &streamView{out: cmd.OutOrStdout(), format: format}
	orchestrator, err := a.newOrchestrator(view, nil)
	if err != nil {
		return err
	}

	orchestrator.RunHealthPoll(cmd.Context(), interval)
	return view.Err()
}

func newCollectCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	var batchSize string
	var save bool

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect a batch of records and chart it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOneShot(cmd, cfg, opts, oneShot{
				label: "Collecting data...",
				run: func(ctx context.Context, a *app, o *application.Orchestrator) error {
					size := batchSize
					if !cmd.Flags().Changed("batch-size") {
						size = a.config.DefaultBatchSize
					}

					if err := o.Collect(ctx, size); err != nil {
						return err
					}
					if save {
						return o.Save(ctx)
					}
					return nil
				},
			})
		},
	}

	cmd.Flags().StringVarP(&batchSize, "batch-size", "n", "", "Number of records to request (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the collected batch")

	return cmd
}

func newStorageCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect or clear stored records",
	}

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Show the stored records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOneShot(cmd, cfg, opts, oneShot{
				label: "Loading stored data...",
				run: func(ctx context.Context, _ *app, o *application.Orchestrator) error {
					return o.Load(ctx)
				},
			})
		},
	}

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// no spinner: the confirmation question shares the terminal
			return runOneShot(cmd, cfg, opts, oneShot{
				assumeYes: yes,
				run: func(ctx context.Context, _ *app, o *application.Orchestrator) error {
					return o.Clear(ctx)
				},
			})
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	cmd.AddCommand(loadCmd, clearCmd)
	return cmd
}

var errFeatureCount = errors.New("predict needs exactly 4 feature values")

func newModelCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Train the model, inspect it or request predictions",
	}

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train the model on the stored records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOneShot(cmd, cfg, opts, oneShot{
				label: "Training model...",
				run: func(ctx context.Context, _ *app, o *application.Orchestrator) error {
					return o.Train(ctx)
				},
			})
		},
	}

	predictCmd := &cobra.Command{
		Use:   "predict FEATURE1 FEATURE2 FEATURE3 FEATURE4",
		Short: "Predict the class of one sample",
		Long:  "Predict the class of one sample. Values that are not numbers are sent as null.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 4 {
				return errFeatureCount
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := [4]string{args[0], args[1], args[2], args[3]}
			return runOneShot(cmd, cfg, opts, oneShot{
				label: "Making prediction...",
				run: func(ctx context.Context, _ *app, o *application.Orchestrator) error {
					return o.Predict(ctx, raw)
				},
			})
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the trained model's metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOneShot(cmd, cfg, opts, oneShot{
				label: "Loading model info...",
				run: func(ctx context.Context, _ *app, o *application.Orchestrator) error {
					return o.ModelInfo(ctx)
				},
			})
		},
	}

	cmd.AddCommand(trainCmd, predictCmd, infoCmd)
	return cmd
}
