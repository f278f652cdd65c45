package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/nextstep/internal/decision"
)

// resultsView shows the active step card above the full roadmap. The cursor
// selects a roadmap row for Learn more and Unskip.
type resultsView struct {
	app         *App
	cursor      int
	bar         progress.Model
	celebrating bool
}

func newResultsView(app *App) *resultsView {
	return &resultsView{
		app: app,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// syncCursor parks the cursor on the active step, or keeps it in range.
func (v *resultsView) syncCursor() {
	steps := v.app.store.Steps()
	if id := v.app.store.ActiveStepID(); id != "" {
		for i, step := range steps {
			if step.ID == id {
				v.cursor = i
				return
			}
		}
	}
	v.cursor = clamp(v.cursor, 0, max(0, len(steps)-1))
}

func (v *resultsView) selected() (decision.StepRecord, bool) {
	steps := v.app.store.Steps()
	if v.cursor < 0 || v.cursor >= len(steps) {
		return decision.StepRecord{}, false
	}
	return steps[v.cursor], true
}

// Update handles roadmap actions.
func (v *resultsView) Update(msg tea.KeyMsg) tea.Cmd {
	steps := v.app.store.Steps()
	switch msg.String() {
	case "esc", "q":
		_, cmd := v.app.returnToLanding()
		return cmd
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(steps)-1 {
			v.cursor++
		}
	case "a":
		v.syncCursor()
	case "c":
		v.complete()
	case "s":
		v.skip()
	case "u":
		v.unskip()
	case "enter", "l":
		if step, ok := v.selected(); ok {
			_, cmd := v.app.openDetail(step)
			return cmd
		}
	case "r":
		v.app.logInfo("Retake quiz selected")
		v.app.results = nil
		_, cmd := v.app.startIntake()
		return cmd
	}
	return nil
}

func (v *resultsView) complete() {
	active, ok := v.app.store.ActiveStep()
	if !ok {
		v.app.statusMsg = "No active step. Unskip a step to keep going."
		return
	}
	v.celebrating = false
	celebrate, err := v.app.store.CompleteActive()
	v.app.logInfo("Completed · %s", active.Title)
	v.app.announce()
	if err != nil {
		v.app.reportError("Saving progress", err)
	}
	if celebrate && v.app.celebrate() {
		v.celebrating = true
	}
	v.syncCursor()
}

func (v *resultsView) skip() {
	active, ok := v.app.store.ActiveStep()
	if !ok {
		v.app.statusMsg = "No active step. Unskip a step to keep going."
		return
	}
	v.celebrating = false
	err := v.app.store.SkipActive()
	v.app.logInfo("Skipped · %s", active.Title)
	v.app.announce()
	if err != nil {
		v.app.reportError("Saving progress", err)
	}
	v.syncCursor()
}

func (v *resultsView) unskip() {
	step, ok := v.selected()
	if !ok {
		return
	}
	if step.State == decision.StateActive {
		v.app.statusMsg = fmt.Sprintf("%s is already active.", step.Title)
		return
	}
	v.celebrating = false
	err := v.app.store.Unskip(step.ID)
	v.app.logInfo("Unskipped · %s (was %s)", step.Title, step.State)
	v.app.announce()
	if err != nil {
		v.app.reportError("Saving progress", err)
	}
	v.syncCursor()
}

// View renders the results screen.
func (v *resultsView) View(width int) string {
	s := v.app.styles
	steps := v.app.store.Steps()
	p := v.app.store.Progress()

	sections := []string{
		s.title.Render("Your Financial Roadmap"),
		s.subtitle.Render("Guided by the NextStep Money playbook"),
		"",
		v.renderSummary(),
		"",
		v.bar.ViewAs(float64(p.Percent) / 100),
		s.muted.Render(fmt.Sprintf("%d of %d done · %d skipped", p.Completed, p.Total, p.Skipped)),
	}
	if v.celebrating {
		sections = append(sections, "", s.banner.Render("🎉 First step done! Momentum is everything. Keep going."))
	}
	sections = append(sections, "", v.renderActiveCard(width), "", s.title.Render("Roadmap"))
	for i, step := range steps {
		sections = append(sections, v.renderRow(step, i == v.cursor))
	}
	sections = append(sections, s.hint.Render(
		"c → complete    s → skip    u → unskip selected    Enter → learn more    r → retake quiz    Esc → menu"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *resultsView) renderSummary() string {
	s := v.app.styles
	income := "Update intake"
	if estimate, ok := v.app.store.MonthlyIncomeEstimate(); ok {
		income = formatDollars(estimate) + " / month"
	} else if in, ok := v.app.store.Intake(); ok {
		income = bandLabel(in.TakeHomeBand)
	}
	fund := "Add in intake"
	if in, ok := v.app.store.Intake(); ok && in.EFMonths != nil {
		fund = monthsLabel(*in.EFMonths, 6)
	}
	return s.body.Render(fmt.Sprintf("Monthly income: %s    Emergency fund: %s", income, fund))
}

func (v *resultsView) renderActiveCard(width int) string {
	s := v.app.styles
	active, ok := v.app.store.ActiveStep()
	if !ok {
		body := "🏁 Roadmap complete\n\nEvery step is resolved. Select a step and press u to revisit it."
		return s.card.Width(max(20, width-4)).Render(body)
	}
	total := len(v.app.store.Steps())
	lines := []string{
		s.muted.Render(fmt.Sprintf("STEP %d OF %d · ACTIVE", active.Order+1, total)),
		s.title.Render(fmt.Sprintf("%s %s", decision.Icon(active.ID), active.Title)),
		s.body.Render(active.Why),
	}
	for _, bullet := range active.HowBullets {
		lines = append(lines, s.body.Render("• "+bullet))
	}
	return s.card.Width(max(20, width-4)).Render(strings.Join(lines, "\n"))
}

func (v *resultsView) renderRow(step decision.StepRecord, selected bool) string {
	s := v.app.styles
	marker := "  "
	title := s.body.Render(fmt.Sprintf("%d. %s %s", step.Order+1, decision.Icon(step.ID), step.Title))
	if selected {
		marker = s.selected.Render("› ")
		title = s.selected.Render(fmt.Sprintf("%d. %s %s", step.Order+1, decision.Icon(step.ID), step.Title))
	}
	return marker + s.pill(step.State) + " " + title
}

