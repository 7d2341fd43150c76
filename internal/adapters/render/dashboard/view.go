package dashboard

import (
	"strings"

	"github.com/bnema/mlops-panel/internal/adapters/render/chart"
	"github.com/bnema/mlops-panel/internal/adapters/render/panels"
	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultColumnWidth = 56
	dashboardTitle     = "MLOps Pipeline Control Panel"
)

var (
	leftColumn  = []domain.Panel{domain.PanelHealth, domain.PanelCollector, domain.PanelStorageInfo, domain.PanelStorageData}
	rightColumn = []domain.Panel{domain.PanelModel, domain.PanelPrediction}
)

func (m Model) View() string {
	columnWidth := defaultColumnWidth
	if m.width > 0 {
		columnWidth = max(m.width/2-1, 24)
	}

	header := m.styles.title.Render(dashboardTitle)
	if m.pending > 0 {
		header += " " + m.spinner.View()
	}

	grid := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.column(leftColumn, columnWidth),
		" ",
		lipgloss.JoinVertical(
			lipgloss.Left,
			m.column(rightColumn, columnWidth),
			m.box("Activity", panels.FormatActivity(m.activity), columnWidth),
		),
	)

	sections := []string{header, grid}
	if len(m.charts) > 0 {
		sections = append(sections, m.box("Charts", chart.Format(m.charts, max(columnWidth-30, 10)), columnWidth*2+1))
	}
	sections = append(sections, m.inputsView(), m.statusView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) column(order []domain.Panel, width int) string {
	boxes := make([]string, 0, len(order))
	for _, panel := range order {
		boxes = append(boxes, m.box(panels.Heading(panel), panels.FormatBlocks(m.panels[panel]), width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m Model) box(title, body string, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left, m.styles.heading.Render(title), body)
	return m.styles.box.Width(width - 2).Render(content)
}

func (m Model) inputsView() string {
	fields := make([]string, 0, len(m.inputs))
	for i, input := range m.inputs {
		label := "batch size"
		if i != batchSizeInput {
			label = domain.FeatureNames[i-1]
		}

		labelStyle := m.styles.label
		if i == m.focus {
			labelStyle = m.styles.focused
		}
		fields = append(fields, labelStyle.Render(label+":")+" "+input.View())
	}
	return strings.Join(fields, "  ")
}

func (m Model) statusView() string {
	if m.confirm != nil {
		return m.styles.confirm.Render(m.confirm.question + " (y/n)")
	}

	switch m.statusKind {
	case statusNotice:
		return m.styles.notice.Render(m.status)
	case statusWarning:
		return m.styles.warning.Render(m.status)
	case statusError:
		return m.styles.danger.Render(m.status)
	}

	return m.help.View(m.keys)
}
