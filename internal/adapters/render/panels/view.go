package panels

import (
	"strings"

	"github.com/bnema/mlops-panel/internal/adapters/render/chart"
	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type RenderOptions struct {
	Title        string
	ShowActivity bool
	ChartWidth   int
}

var headings = map[domain.Panel]string{
	domain.PanelHealth:      "System Health",
	domain.PanelCollector:   "Data Collection",
	domain.PanelStorageInfo: "Storage",
	domain.PanelStorageData: "Stored Data",
	domain.PanelModel:       "Model",
	domain.PanelPrediction:  "Prediction",
}

// Heading is the display title of a panel.
func Heading(panel domain.Panel) string {
	if heading, ok := headings[panel]; ok {
		return heading
	}
	return string(panel)
}

// Render lays out a board snapshot as one printable block of text.
func Render(snapshot Snapshot, opts RenderOptions) string {
	s := newStyles()
	lines := make([]string, 0, len(snapshot.Sections)+3)
	if opts.Title != "" {
		lines = append(lines, s.title.Render(opts.Title))
	}

	for i, section := range snapshot.Sections {
		block := renderSection(section, s)
		if i > 0 || opts.Title != "" {
			block = s.section.Render(block)
		}
		lines = append(lines, block)
	}

	if len(snapshot.Charts) > 0 {
		lines = append(lines, s.section.Render(chart.Format(snapshot.Charts, opts.ChartWidth)))
	}

	if opts.ShowActivity {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.heading.Render("Activity"),
			formatActivity(snapshot.Activity, s),
		)))
	}

	if len(lines) == 0 {
		return s.empty.Render("Nothing to show.")
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSection(section Section, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.heading.Render(Heading(section.Panel)),
		formatBlocks(section.Blocks, s),
	)
}

// FormatBlocks renders the content of one panel without its heading.
func FormatBlocks(blocks []domain.PanelView) string {
	return formatBlocks(blocks, newStyles())
}

// FormatActivity renders activity lines, newest first as given.
func FormatActivity(lines []domain.ActivityLine) string {
	return formatActivity(lines, newStyles())
}

func formatBlocks(blocks []domain.PanelView, s styles) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.IsEmpty() {
			continue
		}
		parts = append(parts, formatBlock(block, s))
	}

	if len(parts) == 0 {
		return s.empty.Render("-")
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatBlock(view domain.PanelView, s styles) string {
	tone := s.tone(view.Tone)
	parts := make([]string, 0, len(view.Lines)+len(view.Items)+2)

	if view.Title != "" {
		parts = append(parts, tone.Bold(true).Render(view.Title))
	}
	for _, line := range view.Lines {
		parts = append(parts, tone.Render(line))
	}
	for _, item := range view.Items {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.itemKey.Render(item.Label+":"),
			" ",
			s.tone(item.Tone).Render(item.Value),
		))
	}
	if view.Table != nil {
		parts = append(parts, formatTable(*view.Table, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatTable(tbl domain.Table, s styles) string {
	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.header).
		Headers(tbl.Header...).
		Rows(tbl.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.tableHeader
			}
			return s.tableCell
		}).
		Render()

	if tbl.Footer == "" {
		return rendered
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered, s.footer.Render(tbl.Footer))
}

func formatActivity(lines []domain.ActivityLine, s styles) string {
	if len(lines) == 0 {
		return s.empty.Render("No activity yet.")
	}

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Join([]string{
			s.timestamp.Render("[" + line.Timestamp + "]"),
			s.severity(line.Severity).Render(line.Message),
		}, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
