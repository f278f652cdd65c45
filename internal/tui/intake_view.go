package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/nextstep/internal/decision"
	"github.com/kingrea/nextstep/internal/intake"
)

const sliderWidth = 30

// intakeView walks the wizard one question at a time. Every accepted answer
// is merged into the session draft so a quit mid-quiz resumes where it left
// off.
type intakeView struct {
	app    *App
	index  int
	draft  intake.Draft
	input  textinput.Model
	choice int
	slider int
	err    string
}

func newIntakeView(app *App) *intakeView {
	input := textinput.New()
	input.Prompt = "ZIP › "
	input.CharLimit = 10
	input.Width = 12

	v := &intakeView{
		app:   app,
		draft: app.store.Draft(),
		input: input,
	}
	v.load()
	return v
}

func (v *intakeView) Init() tea.Cmd {
	return v.focus()
}

func (v *intakeView) step() intake.StepConfig {
	step, _ := intake.StepAt(v.index)
	return step
}

func (v *intakeView) focus() tea.Cmd {
	if v.step().Input == intake.InputText {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// load primes the widget for the current question from the draft.
func (v *intakeView) load() {
	step := v.step()
	v.err = ""
	switch step.Key {
	case intake.KeyZip:
		v.input.Placeholder = step.Placeholder
		v.input.SetValue(v.draft.Zip)
		v.input.CursorEnd()
	case intake.KeyHouseholdSize:
		v.choice = 0
		if v.draft.HouseholdSize != nil {
			v.choice = optionIndex(step.Options, intake.HouseholdOption(*v.draft.HouseholdSize))
		}
	case intake.KeyHighAPRDebt:
		v.choice = optionIndex(step.Options, string(v.draft.HighAPRDebt))
	case intake.KeyEmployerMatch:
		v.choice = optionIndex(step.Options, string(v.draft.EmployerMatch))
	case intake.KeyTakeHomeBand:
		if estimate, ok := v.app.store.MonthlyIncomeEstimate(); ok {
			v.slider = estimate
		} else {
			v.slider = intake.SliderFromBand(v.draft.TakeHomeBand, intake.DefaultIncome)
		}
	case intake.KeyEFMonths:
		v.slider = step.Min
		if v.draft.EFMonths != nil {
			v.slider = *v.draft.EFMonths
		}
	}
	v.slider = clamp(v.slider, step.Min, step.Max)
}

func optionIndex(options []intake.Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}

func clamp(value, lo, hi int) int {
	if hi < lo {
		return value
	}
	return min(max(value, lo), hi)
}

// Update handles keys for the wizard.
func (v *intakeView) Update(msg tea.Msg) tea.Cmd {
	step := v.step()
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if step.Input == intake.InputText {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return cmd
		}
		return nil
	}

	switch key.String() {
	case "esc":
		_, cmd := v.app.returnToLanding()
		return cmd
	case "shift+tab":
		return v.back()
	case "enter", "tab":
		return v.submit()
	}

	switch step.Input {
	case intake.InputText:
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.err = ""
		return cmd
	case intake.InputRadio:
		switch key.String() {
		case "up", "k":
			if v.choice > 0 {
				v.choice--
			}
		case "down", "j":
			if v.choice < len(step.Options)-1 {
				v.choice++
			}
		default:
			if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= len(step.Options) {
				v.choice = n - 1
			}
		}
	case intake.InputSlider:
		stride := max(1, step.Step)
		switch key.String() {
		case "left", "h":
			v.slider -= stride
		case "right", "l":
			v.slider += stride
		case "pgdown", "down", "j":
			v.slider -= stride * 10
		case "pgup", "up", "k":
			v.slider += stride * 10
		case "home":
			v.slider = step.Min
		case "end":
			v.slider = step.Max
		}
		v.slider = clamp(v.slider, step.Min, step.Max)
	}
	return nil
}

func (v *intakeView) back() tea.Cmd {
	if v.index == 0 {
		return nil
	}
	v.index--
	v.load()
	return v.focus()
}

// answer writes the widget value for the current question into d.
func (v *intakeView) answer(d intake.Draft) intake.Draft {
	step := v.step()
	choice := ""
	if step.Input == intake.InputRadio && v.choice < len(step.Options) {
		choice = step.Options[v.choice].Value
	}
	switch step.Key {
	case intake.KeyZip:
		d.Zip = strings.TrimSpace(v.input.Value())
	case intake.KeyHouseholdSize:
		if size, ok := intake.HouseholdFromOption(choice); ok {
			d.HouseholdSize = &size
		}
	case intake.KeyTakeHomeBand:
		d.TakeHomeBand = intake.BandFromSlider(v.slider)
	case intake.KeyHighAPRDebt:
		d.HighAPRDebt = decision.Answer(choice)
	case intake.KeyEmployerMatch:
		d.EmployerMatch = decision.Answer(choice)
	case intake.KeyEFMonths:
		months := v.slider
		d.EFMonths = &months
	}
	return d
}

func (v *intakeView) submit() tea.Cmd {
	step := v.step()
	draft, msg := intake.CheckStep(v.answer(v.draft), step.Key)
	if msg != "" {
		v.err = msg
		return nil
	}
	v.draft = draft
	if err := v.app.store.UpdateIntakeDraft(draft); err != nil {
		v.app.reportError("Saving answers", err)
	}
	if step.Key == intake.KeyTakeHomeBand {
		if err := v.app.store.SetMonthlyIncomeEstimate(v.slider); err != nil {
			v.app.reportError("Saving income", err)
		}
	}

	if v.index < intake.TotalSteps-1 {
		v.index++
		v.load()
		return v.focus()
	}
	return v.finish()
}

// finish checks the whole draft before handing it to the plan builder. A
// missing answer sends the user back to its question.
func (v *intakeView) finish() tea.Cmd {
	in, ok := v.draft.Complete()
	if !ok {
		v.index = firstUnanswered(v.draft)
		v.load()
		v.err = "Please answer this question to build your roadmap."
		return v.focus()
	}
	if err := intake.Validate(in); err != nil {
		v.err = err.Error()
		v.app.logWarn("Intake rejected · %v", err)
		return nil
	}
	_, cmd := v.app.finishIntake(in)
	return cmd
}

func firstUnanswered(d intake.Draft) int {
	for i, step := range intake.Steps {
		if _, msg := intake.CheckStep(d, step.Key); msg != "" {
			return i
		}
	}
	return 0
}

// View renders the current question.
func (v *intakeView) View(width int) string {
	s := v.app.styles
	step := v.step()

	dots := make([]string, intake.TotalSteps)
	for i := range dots {
		if i <= v.index {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	progress := s.muted.Render(fmt.Sprintf("%s   Question %d of %d",
		strings.Join(dots, " "), v.index+1, intake.TotalSteps))

	lines := []string{
		progress,
		"",
		s.title.Render(step.Title),
		s.subtitle.Width(width).Render(step.Description),
		"",
		v.renderWidget(step),
	}
	if step.HelperText != "" {
		lines = append(lines, s.muted.Render(step.HelperText))
	}
	if v.err != "" {
		lines = append(lines, "", s.errorText.Render("⚠ "+v.err))
	}

	next := "Enter → next"
	if v.index == intake.TotalSteps-1 {
		next = "Enter → build my roadmap"
	}
	hints := []string{next}
	if v.index > 0 {
		hints = append(hints, "Shift+Tab → back")
	}
	switch step.Input {
	case intake.InputRadio:
		hints = append(hints, "↑/↓ choose")
	case intake.InputSlider:
		hints = append(hints, "←/→ adjust")
	}
	hints = append(hints, "Esc → menu")
	lines = append(lines, s.hint.Render(strings.Join(hints, "    ")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *intakeView) renderWidget(step intake.StepConfig) string {
	s := v.app.styles
	switch step.Input {
	case intake.InputText:
		return v.input.View()
	case intake.InputRadio:
		rows := make([]string, len(step.Options))
		for i, opt := range step.Options {
			if i == v.choice {
				rows[i] = s.selected.Render("◉ " + opt.Label)
			} else {
				rows[i] = s.body.Render("○ " + opt.Label)
			}
		}
		return strings.Join(rows, "\n")
	case intake.InputSlider:
		return v.renderSlider(step)
	}
	return ""
}

func (v *intakeView) renderSlider(step intake.StepConfig) string {
	s := v.app.styles
	filled := 0
	if span := step.Max - step.Min; span > 0 {
		filled = (v.slider - step.Min) * sliderWidth / span
	}
	filled = clamp(filled, 0, sliderWidth)
	bar := strings.Repeat("━", filled) + "●" + strings.Repeat("─", sliderWidth-filled)

	var label string
	switch step.Key {
	case intake.KeyTakeHomeBand:
		label = fmt.Sprintf("%s / month  (%s)", formatDollars(v.slider), bandLabel(intake.BandFromSlider(v.slider)))
	case intake.KeyEFMonths:
		label = monthsLabel(v.slider, step.Max)
	default:
		label = strconv.Itoa(v.slider)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.selected.Render(bar), s.body.Render(label))
}

func formatDollars(amount int) string {
	digits := strconv.Itoa(amount)
	if amount < 0 {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if amount < 0 {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func bandLabel(band decision.TakeHomeBand) string {
	switch band {
	case decision.BandLT2K:
		return "under $2k"
	case decision.Band2To3K:
		return "$2k to $3k"
	case decision.Band4To5K:
		return "$4k to $5k"
	case decision.Band6To9K:
		return "$6k to $9k"
	case decision.BandGTE10K:
		return "$10k or more"
	}
	return "not set"
}

func monthsLabel(months, ceiling int) string {
	switch {
	case months <= 0:
		return "Not started"
	case months == 1:
		return "1 month"
	case ceiling > 0 && months >= ceiling:
		return fmt.Sprintf("%d+ months", months)
	}
	return fmt.Sprintf("%d months", months)
}
