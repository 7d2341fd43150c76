package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var spinnerLabelStyle = lipgloss.NewStyle().Faint(true)

// actionFinishedMsg stops the spinner once the action has returned.
type actionFinishedMsg struct{}

// waitingModel only animates; the action runs outside the program and
// reports back through Program.Send.
type waitingModel struct {
	spinner  spinner.Model
	label    string
	finished bool
}

func (m waitingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m waitingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(actionFinishedMsg); ok {
		m.finished = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m waitingModel) View() string {
	if m.finished {
		return ""
	}
	return m.spinner.View() + " " + spinnerLabelStyle.Render(m.label)
}

// runWithSpinner runs action while a labelled spinner animates on output.
// Without a label, or when output is not a terminal, action runs directly.
func runWithSpinner(ctx context.Context, output io.Writer, label string, action func(context.Context) error) error {
	if label == "" || !isTerminal(output) {
		return action(ctx)
	}

	program := tea.NewProgram(
		waitingModel{
			spinner: spinner.New(
				spinner.WithSpinner(spinner.MiniDot),
				spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
			),
			label: label,
		},
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	result := make(chan error, 1)
	go func() {
		result <- action(ctx)
		program.Send(actionFinishedMsg{})
	}()

	_, runErr := program.Run()
	if err := <-result; err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
