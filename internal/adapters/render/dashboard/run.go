package dashboard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboard until the user quits. sink must be the view and
// prompter the actions were built with.
func Run(ctx context.Context, actions Actions, sink *Sink, opts Options, programOpts ...tea.ProgramOption) error {
	model := NewModel(ctx, actions, opts)

	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, programOpts...)
	program := tea.NewProgram(model, programOpts...)
	sink.SetProgram(program)
	defer sink.SetProgram(nil)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
