package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mlops-panel/internal/adapters/render/panels"
	"github.com/bnema/mlops-panel/internal/application"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type oneShot struct {
	// label is shown next to the spinner; empty disables the spinner.
	label     string
	assumeYes bool
	run       func(ctx context.Context, a *app, o *application.Orchestrator) error
}

// runOneShot performs one action against a fresh board, prints whatever
// the action showed and then returns the action's failure, if any, so the
// process exits non-zero after the results are on screen.
func runOneShot(cmd *cobra.Command, cfg *viper.Viper, opts *rootOptions, action oneShot) error {
	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	a, err := wireApp(cfg, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = a.closeLog() }()

	board := panels.NewBoard()
	prompt := newLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), action.assumeYes)
	orchestrator, err := a.newOrchestrator(board, prompt)
	if err != nil {
		return err
	}

	label := action.label
	if format != outputText {
		label = ""
	}
	actionErr := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		return action.run(ctx, a, orchestrator)
	})

	if errors.Is(actionErr, application.ErrNotConfirmed) {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return err
	}

	if err := writeSnapshot(cmd.OutOrStdout(), board.Snapshot(), format, opts.activity); err != nil {
		return err
	}
	return actionErr
}
