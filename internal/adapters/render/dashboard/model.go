// Package dashboard is the interactive control panel. Every user intent
// runs as its own command, so several requests can be in flight at once;
// their view updates arrive as messages and are applied in the update
// loop in arrival order.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bnema/mlops-panel/internal/adapters/render/panels"
	"github.com/bnema/mlops-panel/internal/application"
	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Actions is the set of user intents the dashboard can trigger.
type Actions interface {
	Start(ctx context.Context)
	CheckHealth(ctx context.Context) error
	Collect(ctx context.Context, batchSize string) error
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	Clear(ctx context.Context) error
	Train(ctx context.Context) error
	Predict(ctx context.Context, raw [4]string) error
	ModelInfo(ctx context.Context) error
	RefreshCharts()
}

type Options struct {
	HealthInterval   time.Duration
	DefaultBatchSize string
}

const (
	batchSizeInput = 0
	inputCount     = 1 + len(domain.FeatureNames)
	noFocus        = -1
)

type actionDoneMsg struct {
	action string
	err    error
}

type healthTickMsg struct{}

type statusKind int

const (
	statusNone statusKind = iota
	statusNotice
	statusWarning
	statusError
)

type Model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	actions Actions
	opts    Options
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	styles  styles

	panels   map[domain.Panel][]domain.PanelView
	charts   []domain.ChartSpec
	activity []domain.ActivityLine

	inputs         []textinput.Model
	focus          int
	batchSizeFocus string

	pending    int
	confirm    *confirmRequestMsg
	status     string
	statusKind statusKind
	statusSeq  int

	width  int
	height int
}

func NewModel(ctx context.Context, actions Actions, opts Options) Model {
	if opts.HealthInterval <= 0 {
		opts.HealthInterval = application.DefaultHealthInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	s := newStyles()

	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 16
		input.Width = 8
		if i == batchSizeInput {
			input.Placeholder = "batch"
			input.SetValue(opts.DefaultBatchSize)
		} else {
			input.Placeholder = domain.FeatureNames[i-1]
		}
		inputs[i] = input
	}

	return Model{
		ctx:     ctx,
		cancel:  cancel,
		actions: actions,
		opts:    opts,
		keys:    DefaultKeyMap,
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.spinner)),
		styles:  s,
		panels:  map[domain.Panel][]domain.PanelView{},
		inputs:  inputs,
		focus:   noFocus,
		pending: 1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			m.actions.Start(m.ctx)
			return actionDoneMsg{action: "start"}
		},
		m.scheduleHealth(),
	)
}

func (m Model) scheduleHealth() tea.Cmd {
	return tea.Tick(m.opts.HealthInterval, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case panelMsg:
		m.panels[msg.view.Panel] = panels.Apply(m.panels[msg.view.Panel], msg.view)
		return m, nil

	case chartsMsg:
		m.charts = msg.charts
		return m, nil

	case activityMsg:
		m.activity = msg.lines
		return m, nil

	case noticeMsg:
		cmd := m.setStatus(msg.message, statusWarning)
		return m, cmd

	case logRecordMsg:
		kind := statusWarning
		if msg.level >= slog.LevelError {
			kind = statusError
		}
		cmd := m.setStatus(msg.summary, kind)
		return m, cmd

	case logRecordFadeMsg:
		if msg.seq == m.statusSeq && m.confirm == nil {
			m.status = ""
			m.statusKind = statusNone
		}
		return m, nil

	case confirmRequestMsg:
		if m.confirm != nil {
			msg.reply <- false
			return m, nil
		}
		m.confirm = &msg
		return m, nil

	case actionDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		if errors.Is(msg.err, application.ErrNotConfirmed) {
			cmd := m.setStatus("Clear storage cancelled.", statusNotice)
			return m, cmd
		}
		return m, nil

	case healthTickMsg:
		cmd := m.run("health", m.actions.CheckHealth)
		return m, tea.Batch(cmd, m.scheduleHealth())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m.answer(true)
		case key.Matches(msg, m.keys.Decline):
			return m.answer(false)
		}
		return m, nil
	}

	if m.focus != noFocus {
		return m.handleInputKey(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Health):
		cmd = m.run("health", m.actions.CheckHealth)
	case key.Matches(msg, m.keys.Collect):
		batchSize := m.inputs[batchSizeInput].Value()
		cmd = m.run("collect", func(ctx context.Context) error {
			return m.actions.Collect(ctx, batchSize)
		})
	case key.Matches(msg, m.keys.Save):
		cmd = m.run("save", m.actions.Save)
	case key.Matches(msg, m.keys.Load):
		cmd = m.run("load", m.actions.Load)
	case key.Matches(msg, m.keys.Clear):
		cmd = m.run("clear", m.actions.Clear)
	case key.Matches(msg, m.keys.Train):
		cmd = m.run("train", m.actions.Train)
	case key.Matches(msg, m.keys.Predict):
		raw := m.featureValues()
		cmd = m.run("predict", func(ctx context.Context) error {
			return m.actions.Predict(ctx, raw)
		})
	case key.Matches(msg, m.keys.ModelInfo):
		cmd = m.run("model-info", m.actions.ModelInfo)
	case key.Matches(msg, m.keys.RefreshChart):
		cmd = m.refreshCharts()
	case key.Matches(msg, m.keys.NextInput):
		cmd = m.focusInput(batchSizeInput)
	}

	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Blur):
		cmd = m.blurInputs()
	case key.Matches(msg, m.keys.NextInput):
		if next := m.focus + 1; next < len(m.inputs) {
			cmd = m.focusInput(next)
		} else {
			cmd = m.blurInputs()
		}
	default:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}

	return m, cmd
}

func (m *Model) focusInput(index int) tea.Cmd {
	var edited tea.Cmd
	if m.focus == batchSizeInput {
		edited = m.batchSizeEdited()
	}
	if m.focus != noFocus {
		m.inputs[m.focus].Blur()
	}
	if index == batchSizeInput {
		m.batchSizeFocus = m.inputs[batchSizeInput].Value()
	}

	m.focus = index
	return tea.Batch(edited, m.inputs[index].Focus())
}

func (m *Model) blurInputs() tea.Cmd {
	var cmd tea.Cmd
	if m.focus == batchSizeInput {
		cmd = m.batchSizeEdited()
	}
	if m.focus != noFocus {
		m.inputs[m.focus].Blur()
	}
	m.focus = noFocus
	return cmd
}

// batchSizeEdited redraws the charts when the batch size field changed
// while it had focus.
func (m *Model) batchSizeEdited() tea.Cmd {
	if m.inputs[batchSizeInput].Value() == m.batchSizeFocus {
		return nil
	}
	return m.refreshCharts()
}

func (m *Model) refreshCharts() tea.Cmd {
	return m.run("charts", func(context.Context) error {
		m.actions.RefreshCharts()
		return nil
	})
}

func (m *Model) run(action string, fn func(context.Context) error) tea.Cmd {
	m.pending++
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m Model) answer(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirm.reply <- confirmed
	m.confirm = nil
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		m.confirm.reply <- false
		m.confirm = nil
	}
	m.cancel()
	return m, tea.Quit
}

func (m *Model) setStatus(text string, kind statusKind) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusKind = kind

	seq := m.statusSeq
	return tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
		return logRecordFadeMsg{seq: seq}
	})
}

func (m Model) featureValues() [4]string {
	var raw [4]string
	for i := range raw {
		raw[i] = m.inputs[i+1].Value()
	}
	return raw
}
