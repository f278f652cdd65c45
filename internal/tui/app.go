// internal/tui/app.go
//
// The terminal front end for nextstep. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: the App and its screen views
// 2. Update: keys and window events change state
// 3. View: state renders to a string
//
// All roadmap changes go through the session store, so the state machine
// never sees the UI.

package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/nextstep/internal/config"
	"github.com/kingrea/nextstep/internal/decision"
	"github.com/kingrea/nextstep/internal/intake"
	"github.com/kingrea/nextstep/internal/logbook"
	"github.com/kingrea/nextstep/internal/logging"
	"github.com/kingrea/nextstep/internal/roadmap"
	"github.com/kingrea/nextstep/internal/session"
)

// appState represents which screen is showing
type appState int

const (
	stateLanding appState = iota // menu: start, resume, privacy, reset, exit
	stateIntake                  // six-question wizard
	stateResults                 // roadmap with actions
	stateDetail                  // learn-more overlay for one step
	statePrivacy                 // privacy notice
)

const logTailLines = 6

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook attaches the journey log shown under the results screen.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *logging.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// WithMarkdownRenderer overrides the glamour renderer used for step details.
func WithMarkdownRenderer(r MarkdownRenderer) AppOption {
	return func(a *App) {
		if r != nil {
			a.render = r
		}
	}
}

type menuAction int

const (
	actionResume menuAction = iota
	actionStart
	actionPrivacy
	actionReset
	actionExit
)

// menuItem implements list.Item for the landing menu
type menuItem struct {
	action menuAction
	title  string
	desc   string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the root bubbletea model.
type App struct {
	state   appState
	config  *config.Config
	store   *session.Store
	logbook *logbook.Logbook
	logger  *logging.Logger
	render  MarkdownRenderer
	styles  styles

	menu         list.Model
	intake       *intakeView
	results      *resultsView
	detail       *detailView
	confirmReset bool

	statusMsg string

	width  int
	height int
}

// NewApp creates the TUI around an opened session store.
func NewApp(cfg *config.Config, store *session.Store, opts ...AppOption) (*App, error) {
	if store == nil {
		return nil, errors.New("tui: session store is required")
	}
	theme := config.ThemeAuto
	if cfg != nil {
		theme = cfg.Theme()
	}

	menu := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	menu.Title = "Main Menu"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	app := &App{
		state:  stateLanding,
		config: cfg,
		store:  store,
		render: GlamourRenderer(theme),
		styles: newStyles(paletteFor(theme)),
		menu:   menu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.refreshMenu()
	if store.HasPlan() {
		p := store.Progress()
		app.logInfo("Session opened · %d of %d steps completed", p.Completed, p.Total)
	} else {
		app.logInfo("Session opened · no roadmap yet")
	}
	return app, nil
}

func buildLandingMenu(store *session.Store) []list.Item {
	items := []list.Item{}
	hasPlan := store.HasPlan()
	if hasPlan {
		desc := "Every step is resolved"
		if active, ok := store.ActiveStep(); ok {
			desc = fmt.Sprintf("Pick up at: %s", active.Title)
		}
		items = append(items, menuItem{action: actionResume, title: "Resume Roadmap", desc: desc})
	}
	start := menuItem{action: actionStart, title: "Start Quiz", desc: "Six quick questions, about two minutes"}
	if hasPlan {
		start.title = "Retake Quiz"
		start.desc = "Update your answers and rebuild the roadmap"
	}
	items = append(items,
		start,
		menuItem{action: actionPrivacy, title: "Privacy", desc: "What nextstep keeps and where"},
	)
	if hasPlan || store.Draft() != (intake.Draft{}) {
		items = append(items, menuItem{action: actionReset, title: "Reset Session", desc: "Clear your answers and roadmap"})
	}
	items = append(items, menuItem{action: actionExit, title: "Exit", desc: "Quit nextstep"})
	return items
}

func (a *App) refreshMenu() {
	a.menu.SetItems(buildLandingMenu(a.store))
	a.menu.Select(0)
}

func (a *App) celebrate() bool {
	if a.config == nil {
		return true
	}
	return a.config.Celebrate()
}

func (a *App) logInfo(format string, args ...any) {
	a.logger.Infof(format, args...)
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	a.logger.Warnf(format, args...)
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

// reportError keeps the UI running after a failed save. The in-memory
// session stays authoritative.
func (a *App) reportError(action string, err error) {
	if err == nil {
		return
	}
	a.statusMsg = fmt.Sprintf("%s failed: %v", action, err)
	a.logger.Errorf("%s: %v", strings.ToLower(action), err)
	if a.logbook != nil {
		a.logbook.Error("%s failed: %v", action, err)
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(max(20, msg.Width-6), max(8, msg.Height-10))
		if a.detail != nil {
			a.detail.resize(a.contentWidth(), a.contentHeight())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state {
		case stateLanding:
			return a.updateLanding(msg)
		case stateIntake:
			return a, a.intake.Update(msg)
		case stateResults:
			return a, a.results.Update(msg)
		case stateDetail:
			return a, a.detail.Update(msg)
		case statePrivacy:
			switch msg.String() {
			case "esc", "q", "enter", "backspace":
				return a.returnToLanding()
			}
		}
		return a, nil
	}

	if a.state == stateIntake && a.intake != nil {
		return a, a.intake.Update(msg)
	}
	return a, nil
}

func (a *App) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if a.confirmReset {
		a.confirmReset = false
		if key == "y" || key == "Y" {
			return a.resetSession()
		}
		a.statusMsg = "Reset cancelled."
		return a, nil
	}
	switch key {
	case "q", "esc":
		return a, tea.Quit
	case "enter":
		return a.handleMenuSelection()
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

// handleMenuSelection processes menu item selection
func (a *App) handleMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.menu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.action {
	case actionResume:
		a.logInfo("Menu · Resume Roadmap selected")
		return a.showResults()
	case actionStart:
		a.logInfo("Menu · %s selected", item.title)
		return a.startIntake()
	case actionPrivacy:
		a.state = statePrivacy
		a.statusMsg = ""
		return a, nil
	case actionReset:
		a.confirmReset = true
		a.statusMsg = "Clear your answers and roadmap? Press y to confirm."
		return a, nil
	case actionExit:
		a.logInfo("Menu · Exit selected")
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) startIntake() (tea.Model, tea.Cmd) {
	a.state = stateIntake
	a.statusMsg = ""
	a.intake = newIntakeView(a)
	return a, a.intake.Init()
}

// finishIntake builds the roadmap from a validated intake.
func (a *App) finishIntake(in decision.Intake) (tea.Model, tea.Cmd) {
	if err := a.store.RecomputePlan(in); err != nil {
		a.reportError("Saving plan", err)
	}
	active, _ := a.store.ActiveStep()
	a.logInfo("Plan built · %d steps · starting with %s", len(a.store.Steps()), active.Title)
	a.intake = nil
	return a.showResults()
}

func (a *App) showResults() (tea.Model, tea.Cmd) {
	if !a.store.HasPlan() {
		a.statusMsg = "Answer the quiz to build your roadmap."
		return a.startIntake()
	}
	if a.results == nil {
		a.results = newResultsView(a)
	}
	a.results.syncCursor()
	a.state = stateResults
	return a, nil
}

func (a *App) openDetail(step decision.StepRecord) (tea.Model, tea.Cmd) {
	a.detail = newDetailView(a, step, a.contentWidth(), a.contentHeight())
	a.state = stateDetail
	a.logInfo("Learn more · %s", step.Title)
	return a, nil
}

func (a *App) closeDetail() (tea.Model, tea.Cmd) {
	a.detail = nil
	return a.showResults()
}

func (a *App) resetSession() (tea.Model, tea.Cmd) {
	if err := a.store.Reset(); err != nil {
		a.reportError("Reset", err)
	} else {
		a.statusMsg = "Session cleared."
	}
	if a.logbook != nil {
		if err := a.logbook.Truncate(); err != nil {
			a.logger.Warnf("truncate journey log: %v", err)
		}
	}
	a.logInfo("Session reset")
	a.results = nil
	a.intake = nil
	a.refreshMenu()
	a.state = stateLanding
	return a, nil
}

// returnToLanding transitions back to the menu
func (a *App) returnToLanding() (tea.Model, tea.Cmd) {
	a.state = stateLanding
	a.detail = nil
	a.confirmReset = false
	a.refreshMenu()
	return a, nil
}

func (a *App) contentWidth() int {
	if a.width <= 0 {
		return 80
	}
	return max(30, a.width-6)
}

func (a *App) contentHeight() int {
	if a.height <= 0 {
		return 20
	}
	return max(8, a.height-12)
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.contentWidth()
	var content string
	switch a.state {
	case stateLanding:
		content = a.renderLanding()
	case stateIntake:
		content = a.intake.View(width)
	case stateResults:
		content = a.results.View(width)
	case stateDetail:
		content = a.detail.View()
	case statePrivacy:
		content = a.renderPrivacy(width)
	}

	sections := []string{
		a.styles.header.Render("⬡ NEXTSTEP MONEY"),
		a.styles.box.Width(width + 2).Render(content),
	}
	if a.state == stateResults {
		if panel := a.renderLogPanel(); panel != "" {
			sections = append(sections, panel)
		}
	}
	if a.statusMsg != "" {
		style := a.styles.hint
		if a.confirmReset {
			style = a.styles.warn.MarginTop(1)
		}
		sections = append(sections, style.Render(a.statusMsg))
	}
	return strings.Join(sections, "\n")
}

func (a *App) renderLanding() string {
	intro := a.styles.subtitle.Render("Your next best money move, one step at a time.")
	hint := a.styles.hint.Render("↑/↓ choose    Enter → select    q → quit")
	return lipgloss.JoinVertical(lipgloss.Left, a.menu.View(), intro, hint)
}

func (a *App) renderPrivacy(width int) string {
	lines := []string{
		a.styles.title.Render("Privacy Notice"),
		"",
		"nextstep keeps your answers on this machine only, in " + a.sessionLocation() + ".",
		"Nothing is sent anywhere. Reset the session to remove it.",
		"",
		"• No names, emails, or identifying accounts.",
		"• No tracking pixels, cookies, or analytics scripts.",
		"• No credit information, account numbers, or balances.",
	}
	body := a.styles.body.Width(width).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, body, a.styles.hint.Render("Esc → back"))
}

func (a *App) sessionLocation() string {
	if a.config == nil {
		return "memory for this run"
	}
	if !a.config.PersistSession() {
		return "memory for this run"
	}
	rel, err := filepath.Rel(a.config.ProjectDir, a.config.SessionPath())
	if err != nil {
		return a.config.SessionPath()
	}
	return rel
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logTailLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := a.styles.logHead.Render(fmt.Sprintf("LOG · %s (%d)", fileName, total))
	body := a.styles.muted.Render(strings.Join(lines, "\n"))
	return a.styles.box.Render(fmt.Sprintf("%s\n%s", head, body))
}

// announce mirrors the roadmap outcome into the status line.
func (a *App) announce() {
	if active, ok := a.store.ActiveStep(); ok {
		a.statusMsg = fmt.Sprintf("%s is now active.", active.Title)
		return
	}
	if roadmap.Resolved(a.store.Steps()) {
		a.statusMsg = "All steps are resolved. Celebrate your progress!"
		return
	}
	a.statusMsg = ""
}
