// Package chart draws chart specs as plain terminal text: box plots as
// five-number whisker lines and pie charts as share bars.
package chart

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const DefaultWidth = 32

type styles struct {
	title      lipgloss.Style
	label      lipgloss.Style
	meta       lipgloss.Style
	empty      lipgloss.Style
	whisker    lipgloss.Style
	box        lipgloss.Style
	median     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:      lipgloss.NewStyle().Faint(true),
		whisker:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		box:        lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		median:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// Summary is the five-number summary drawn by a box plot.
type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes quartiles with linear interpolation between closest
// ranks. It reports false for an empty series.
func Summarize(values []float64) (Summary, bool) {
	finite := make([]float64, 0, len(values))
	for _, value := range values {
		if !math.IsNaN(value) && !math.IsInf(value, 0) {
			finite = append(finite, value)
		}
	}
	if len(finite) == 0 {
		return Summary{}, false
	}

	slices.Sort(finite)
	return Summary{
		Min:    finite[0],
		Q1:     quantile(finite, 0.25),
		Median: quantile(finite, 0.5),
		Q3:     quantile(finite, 0.75),
		Max:    finite[len(finite)-1],
	}, true
}

func quantile(sorted []float64, q float64) float64 {
	position := q * float64(len(sorted)-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))
	if lower == upper {
		return sorted[lower]
	}
	fraction := position - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*fraction
}

// Format draws every chart, one block per chart. width is the size of
// the plot area in cells; zero or less uses DefaultWidth.
func Format(charts []domain.ChartSpec, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	s := newStyles()
	blocks := make([]string, 0, len(charts))
	for _, spec := range charts {
		switch spec.Kind {
		case domain.ChartBox:
			blocks = append(blocks, formatBox(spec, width, s))
		case domain.ChartPie:
			blocks = append(blocks, formatPie(spec, width, s))
		}
	}

	return strings.Join(blocks, "\n\n")
}

func formatBox(spec domain.ChartSpec, width int, s styles) string {
	summaries := make([]Summary, len(spec.Series))
	present := make([]bool, len(spec.Series))
	low, high := math.Inf(1), math.Inf(-1)
	labelWidth := 0
	for i, series := range spec.Series {
		summaries[i], present[i] = Summarize(series.Values)
		if present[i] {
			low = math.Min(low, summaries[i].Min)
			high = math.Max(high, summaries[i].Max)
		}
		labelWidth = max(labelWidth, lipgloss.Width(series.Name))
	}

	lines := []string{s.title.Render(spec.Title)}
	for i, series := range spec.Series {
		label := s.label.Render(padRight(series.Name, labelWidth))
		if !present[i] {
			lines = append(lines, label+" "+s.empty.Render("no data"))
			continue
		}

		summary := summaries[i]
		meta := s.meta.Render(fmt.Sprintf(
			"min %.2f  q1 %.2f  med %.2f  q3 %.2f  max %.2f",
			summary.Min, summary.Q1, summary.Median, summary.Q3, summary.Max,
		))
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			label, " ", renderWhisker(summary, low, high, width, s), " ", meta,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWhisker(summary Summary, low, high float64, width int, s styles) string {
	cell := func(value float64) int {
		if high == low {
			return width / 2
		}
		position := int(math.Round((value - low) / (high - low) * float64(width-1)))
		return min(max(position, 0), width-1)
	}

	minCell, q1Cell, medianCell := cell(summary.Min), cell(summary.Q1), cell(summary.Median)
	q3Cell, maxCell := cell(summary.Q3), cell(summary.Max)

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == medianCell:
			b.WriteString(s.median.Render("┃"))
		case i >= q1Cell && i <= q3Cell:
			b.WriteString(s.box.Render("█"))
		case i >= minCell && i <= maxCell:
			b.WriteString(s.whisker.Render("─"))
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

func formatPie(spec domain.ChartSpec, width int, s styles) string {
	lines := []string{s.title.Render(spec.Title)}
	if len(spec.Series) == 0 || len(spec.Series[0].Labels) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("no data"))...)
	}

	series := spec.Series[0]
	total := 0.0
	labelWidth := 0
	for i, label := range series.Labels {
		if i < len(series.Values) {
			total += series.Values[i]
		}
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}

	for i, label := range series.Labels {
		value := 0.0
		if i < len(series.Values) {
			value = series.Values[i]
		}
		share := 0.0
		if total > 0 {
			share = value / total * 100
		}

		percentStyle := lipgloss.NewStyle().Foreground(interpolateColor(share, 0, 100))
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.label.Render(padRight(label, labelWidth)),
			" ",
			renderShareBar(share, width, s),
			" ",
			percentStyle.Render(fmt.Sprintf("%5.1f%%", share)),
			" ",
			s.meta.Render(fmt.Sprintf("(%s)", formatCount(value))),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderShareBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp, so larger
// shares read brighter.
func interpolateColor(value, low, high float64) lipgloss.Color {
	if high == low {
		return lipgloss.Color("255")
	}

	normalized := (value - low) / (high - low)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}

func formatCount(value float64) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("%.0f", value)
	}
	return fmt.Sprintf("%.2f", value)
}

func padRight(text string, width int) string {
	if gap := width - lipgloss.Width(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
