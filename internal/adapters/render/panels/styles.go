package panels

import (
	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	heading     lipgloss.Style
	detail      lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	itemKey     lipgloss.Style
	tableHeader lipgloss.Style
	tableCell   lipgloss.Style
	footer      lipgloss.Style
	timestamp   lipgloss.Style
	tones       map[domain.Tone]lipgloss.Style
	severities  map[domain.Severity]lipgloss.Style
}

func newStyles() styles {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	info := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warning := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	danger := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	detail := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:      detail,
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		itemKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).Padding(0, 1),
		tableCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		timestamp:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		tones: map[domain.Tone]lipgloss.Style{
			domain.ToneNeutral: detail,
			domain.ToneSuccess: success,
			domain.ToneInfo:    info,
			domain.ToneWarning: warning,
			domain.ToneDanger:  danger,
		},
		severities: map[domain.Severity]lipgloss.Style{
			domain.SeverityInfo:   info,
			domain.SeverityDanger: danger,
		},
	}
}

func (s styles) tone(tone domain.Tone) lipgloss.Style {
	if style, ok := s.tones[tone]; ok {
		return style
	}
	return s.detail
}

func (s styles) severity(severity domain.Severity) lipgloss.Style {
	if style, ok := s.severities[severity]; ok {
		return style
	}
	return s.detail
}
