package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/muesli/termenv"
)

// Styles groups the lipgloss styles used by the CLI.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
}

// NewStyles builds styles for w. Without a terminal all styling is plain.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		Header1:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:  lr.NewStyle().Bold(true),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("2")),
		Error:    lr.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("3")),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("6")),
		FilePath: lr.NewStyle().Underline(true),
	}
}

// SeverityStyle returns the style for a diagnostic severity.
func (s *Styles) SeverityStyle(sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return s.Error
	case core.SeverityWarning:
		return s.Warning
	case core.SeverityInfo:
		return s.Info
	default:
		return s.Muted
	}
}
