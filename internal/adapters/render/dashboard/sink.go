package dashboard

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"

	"github.com/bnema/mlops-panel/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNotRunning = errors.New("dashboard is not running")

type panelMsg struct {
	view domain.PanelView
}

type chartsMsg struct {
	charts []domain.ChartSpec
}

type activityMsg struct {
	lines []domain.ActivityLine
}

type noticeMsg struct {
	message string
}

// confirmRequestMsg asks the user a yes/no question. The answer is sent on
// reply, which must be buffered.
type confirmRequestMsg struct {
	question string
	reply    chan bool
}

// Sink forwards view updates and prompts from action goroutines into the
// running program as messages, so panel state only changes on the update
// loop. Updates sent before SetProgram are dropped.
type Sink struct {
	program *atomic.Pointer[tea.Program]
}

func NewSink() *Sink {
	return &Sink{program: &atomic.Pointer[tea.Program]{}}
}

func (s *Sink) SetProgram(program *tea.Program) {
	s.program.Store(program)
}

func (s *Sink) send(msg tea.Msg) bool {
	program := s.program.Load()
	if program == nil {
		return false
	}
	program.Send(msg)
	return true
}

func (s *Sink) ShowPanel(view domain.PanelView) {
	s.send(panelMsg{view: view})
}

func (s *Sink) ShowCharts(charts []domain.ChartSpec) {
	s.send(chartsMsg{charts: slices.Clone(charts)})
}

func (s *Sink) ShowActivity(lines []domain.ActivityLine) {
	s.send(activityMsg{lines: slices.Clone(lines)})
}

func (s *Sink) Notify(message string) {
	s.send(noticeMsg{message: message})
}

// Confirm shows question in the status bar and blocks until the user
// answers or ctx ends.
func (s *Sink) Confirm(ctx context.Context, question string) (bool, error) {
	reply := make(chan bool, 1)
	if !s.send(confirmRequestMsg{question: question, reply: reply}) {
		return false, ErrNotRunning
	}

	select {
	case answer := <-reply:
		return answer, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
