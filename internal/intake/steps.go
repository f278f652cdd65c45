package intake

// StepKey names the intake answer a wizard screen collects.
type StepKey string

const (
	KeyZip           StepKey = "zip"
	KeyHouseholdSize StepKey = "householdSize"
	KeyTakeHomeBand  StepKey = "takeHomeBand"
	KeyHighAPRDebt   StepKey = "highAprDebt"
	KeyEmployerMatch StepKey = "employerMatch"
	KeyEFMonths      StepKey = "efMonths"
)

// InputType selects the widget used to answer a question.
type InputType string

const (
	InputText   InputType = "text"
	InputRadio  InputType = "radio"
	InputSlider InputType = "slider"
)

// Option is one radio choice.
type Option struct {
	Value string
	Label string
}

// StepConfig describes one wizard screen.
type StepConfig struct {
	Index       int
	Key         StepKey
	Title       string
	Description string
	Input       InputType
	Placeholder string
	HelperText  string
	Options     []Option
	Min         int
	Max         int
	Step        int
	Required    bool
}

var yesNoUnsure = []Option{
	{Value: "yes", Label: "Yes"},
	{Value: "no", Label: "No"},
	{Value: "unsure", Label: "Not sure"},
}

// Steps is the ordered wizard definition.
var Steps = []StepConfig{
	{
		Index:       0,
		Key:         KeyZip,
		Title:       "What's your ZIP code?",
		Description: "This helps us understand your area's cost of living.",
		Input:       InputText,
		Placeholder: "12345",
		HelperText:  "5-digit ZIP code",
		Required:    true,
	},
	{
		Index:       1,
		Key:         KeyHouseholdSize,
		Title:       "Household size?",
		Description: "Including yourself and any dependents.",
		Input:       InputRadio,
		Options: []Option{
			{Value: "1", Label: "1 person"},
			{Value: "2", Label: "2 people"},
			{Value: "3", Label: "3 people"},
			{Value: "4", Label: "4 people"},
			{Value: "5+", Label: "5 or more"},
		},
		Required: true,
	},
	{
		Index:       2,
		Key:         KeyTakeHomeBand,
		Title:       "Monthly take-home income?",
		Description: "After taxes and deductions.",
		Input:       InputSlider,
		Min:         500,
		Max:         15000,
		Step:        100,
		HelperText:  "Slide to the closest amount.",
	},
	{
		Index:       3,
		Key:         KeyHighAPRDebt,
		Title:       "Do you have high-interest debt?",
		Description: "Credit cards, payday loans, or debt over 10% APR.",
		Input:       InputRadio,
		Options:     yesNoUnsure,
		Required:    true,
	},
	{
		Index:       4,
		Key:         KeyEmployerMatch,
		Title:       "Employer retirement match?",
		Description: "Does your employer match 401(k) or similar contributions?",
		Input:       InputRadio,
		Options:     yesNoUnsure,
		Required:    true,
	},
	{
		Index:       5,
		Key:         KeyEFMonths,
		Title:       "Emergency fund coverage?",
		Description: "How many months of expenses do you have saved?",
		Input:       InputSlider,
		Min:         0,
		Max:         6,
		Step:        1,
		HelperText:  "Update this anytime as your savings grows.",
	},
}

// TotalSteps is the number of wizard screens.
var TotalSteps = len(Steps)

// StepAt returns the wizard screen for a zero-based index.
func StepAt(index int) (StepConfig, bool) {
	if index < 0 || index >= len(Steps) {
		return StepConfig{}, false
	}
	return Steps[index], true
}

// ProgressPercent is the wizard completion shown after answering index.
func ProgressPercent(index int) int {
	if TotalSteps == 0 {
		return 0
	}
	return ((index+1)*100 + TotalSteps/2) / TotalSteps
}
