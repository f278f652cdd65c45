package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/nextstep/internal/decision"
)

// detailView is the Learn more overlay for a single step.
type detailView struct {
	app      *App
	step     decision.StepRecord
	markdown string
	port     viewport.Model
}

func newDetailView(app *App, step decision.StepRecord, width, height int) *detailView {
	v := &detailView{
		app:      app,
		step:     step,
		markdown: decision.DetailMarkdown(step.StepDefinition),
		port:     viewport.New(width, height),
	}
	v.refresh()
	return v
}

func (v *detailView) refresh() {
	rendered, err := v.app.render(v.markdown, v.port.Width)
	if err != nil {
		v.app.logger.Warnf("render detail for %s: %v", v.step.ID, err)
		rendered = v.markdown
	}
	v.port.SetContent(rendered)
}

func (v *detailView) resize(width, height int) {
	v.port.Width = width
	v.port.Height = height
	v.refresh()
}

// Update scrolls the overlay; c completes the step when it is the active one.
func (v *detailView) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "backspace":
		_, cmd := v.app.closeDetail()
		return cmd
	case "c":
		if v.step.State == decision.StateActive && v.app.results != nil {
			v.app.results.complete()
			_, cmd := v.app.closeDetail()
			return cmd
		}
		return nil
	}
	var cmd tea.Cmd
	v.port, cmd = v.port.Update(msg)
	return cmd
}

func (v *detailView) View() string {
	s := v.app.styles
	hint := "↑/↓ scroll    Esc → back"
	if v.step.State == decision.StateActive {
		hint = "↑/↓ scroll    c → mark complete    Esc → back"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.pill(v.step.State),
		v.port.View(),
		s.hint.Render(hint),
	)
}
