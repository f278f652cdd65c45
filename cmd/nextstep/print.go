package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kingrea/nextstep/internal/decision"
	"github.com/kingrea/nextstep/internal/roadmap"
)

var stateLabels = map[decision.StepState]string{
	decision.StateActive:    "▶ active",
	decision.StatePending:   "· next",
	decision.StateCompleted: "✔ done",
	decision.StateSkipped:   "⏸ skipped",
}

func printRoadmap(w io.Writer, r decision.Roadmap) {
	p := roadmap.Measure(r)
	fmt.Fprintf(w, "Your Financial Roadmap (%d of %d done, %d skipped, %d%%)\n\n", p.Completed, p.Total, p.Skipped, p.Percent)
	rows := make([][]string, 0, len(r))
	for _, step := range r {
		rows = append(rows, []string{stateLabels[step.State], strconv.Itoa(step.Order + 1), step.Title, string(step.ID)})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("STATE", "#", "STEP", "ID").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func printActive(w io.Writer, a *app) {
	if active, ok := a.store.ActiveStep(); ok {
		fmt.Fprintf(w, "Now active: %s (%s)\n", active.Title, active.ID)
		return
	}
	if roadmap.Resolved(a.store.Steps()) {
		fmt.Fprintln(w, "All steps are resolved. Celebrate your progress!")
	}
}
