package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/nextstep/internal/config"
	"github.com/kingrea/nextstep/internal/decision"
)

// palette holds the colors for one theme. Auto uses adaptive colors so the
// terminal background decides.
type palette struct {
	accent  lipgloss.TerminalColor
	brand   lipgloss.TerminalColor
	text    lipgloss.TerminalColor
	muted   lipgloss.TerminalColor
	border  lipgloss.TerminalColor
	success lipgloss.TerminalColor
	warning lipgloss.TerminalColor
	danger  lipgloss.TerminalColor
}

func paletteFor(theme config.Theme) palette {
	pick := func(light, dark string) lipgloss.TerminalColor {
		switch theme {
		case config.ThemeDark:
			return lipgloss.Color(dark)
		case config.ThemeLight:
			return lipgloss.Color(light)
		}
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
	return palette{
		accent:  pick("#1F5FD1", "#5B8DEF"),
		brand:   pick("#C0392B", "#FF6B6B"),
		text:    pick("#222222", "#CCCCCC"),
		muted:   pick("#666666", "#888888"),
		border:  pick("#BBBBBB", "#444444"),
		success: pick("#2E7D32", "#4CAF50"),
		warning: pick("#B7791F", "#F7B801"),
		danger:  pick("#C0392B", "#FF6B6B"),
	}
}

type styles struct {
	header    lipgloss.Style
	title     lipgloss.Style
	subtitle  lipgloss.Style
	body      lipgloss.Style
	muted     lipgloss.Style
	hint      lipgloss.Style
	errorText lipgloss.Style
	warn      lipgloss.Style
	box       lipgloss.Style
	card      lipgloss.Style
	banner    lipgloss.Style
	selected  lipgloss.Style
	logHead   lipgloss.Style
	pills     map[decision.StepState]lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(p.brand).MarginBottom(1),
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		subtitle:  lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		body:      lipgloss.NewStyle().Foreground(p.text),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		hint:      lipgloss.NewStyle().Foreground(p.muted).MarginTop(1),
		errorText: lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		warn:      lipgloss.NewStyle().Foreground(p.warning).Bold(true),
		box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
		banner:    lipgloss.NewStyle().Bold(true).Foreground(p.success).Border(lipgloss.DoubleBorder()).BorderForeground(p.success).Padding(0, 2),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		logHead:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		pills: map[decision.StepState]lipgloss.Style{
			decision.StateActive:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
			decision.StatePending:   lipgloss.NewStyle().Foreground(p.text),
			decision.StateCompleted: lipgloss.NewStyle().Foreground(p.success),
			decision.StateSkipped:   lipgloss.NewStyle().Foreground(p.muted),
		},
	}
}

var pillLabels = map[decision.StepState]string{
	decision.StateActive:    "◷ Active",
	decision.StatePending:   "○ Next",
	decision.StateCompleted: "✔ Completed",
	decision.StateSkipped:   "⏸ Skipped",
}

func (s styles) pill(state decision.StepState) string {
	label, ok := pillLabels[state]
	if !ok {
		label = string(state)
	}
	style, ok := s.pills[state]
	if !ok {
		style = s.body
	}
	return style.Width(12).Render(label)
}

// MarkdownRenderer turns Markdown into terminal output wrapped at width.
type MarkdownRenderer func(markdown string, width int) (string, error)

// GlamourRenderer renders Markdown with glamour using the configured theme.
func GlamourRenderer(theme config.Theme) MarkdownRenderer {
	return func(markdown string, width int) (string, error) {
		style := glamour.WithAutoStyle()
		switch theme {
		case config.ThemeDark:
			style = glamour.WithStandardStyle("dark")
		case config.ThemeLight:
			style = glamour.WithStandardStyle("light")
		}
		if width <= 0 {
			width = 80
		}
		r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
}
