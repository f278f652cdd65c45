package decision

// StepID identifies one of the recommended financial actions.
type StepID string

const (
	StepBudget                      StepID = "step0_budget"
	StepEmergencyFund               StepID = "step1_emergency_fund"
	StepEmployerMatch               StepID = "step2_employer_match"
	StepHighAPRDebt                 StepID = "step3_high_apr_debt"
	StepIRA                         StepID = "step4_ira"
	StepIncreaseWorkplaceRetirement StepID = "step5_increase_workplace_retirement"
	StepHSA                         StepID = "step6a_hsa"
	Step529                         StepID = "step6b_529"
	StepDownPayment                 StepID = "step6c_down_payment"
	StepTaxable                     StepID = "step6d_taxable"
)

// AllStepIDs lists every StepID in reference order.
var AllStepIDs = []StepID{
	StepBudget,
	StepEmergencyFund,
	StepEmployerMatch,
	StepHighAPRDebt,
	StepIRA,
	StepIncreaseWorkplaceRetirement,
	StepHSA,
	Step529,
	StepDownPayment,
	StepTaxable,
}

// Valid reports whether id belongs to the closed step set.
func (id StepID) Valid() bool {
	for _, known := range AllStepIDs {
		if id == known {
			return true
		}
	}
	return false
}

func (id StepID) String() string {
	return string(id)
}

// StepState enumerates the lifecycle states of a roadmap step.
type StepState string

const (
	StateActive    StepState = "active"
	StatePending   StepState = "pending"
	StateCompleted StepState = "completed"
	StateSkipped   StepState = "skipped"
)

// Link is a labelled reference URL attached to a step.
type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// StepDefinition is the authored description of one recommended action.
type StepDefinition struct {
	ID         StepID   `json:"id" yaml:"id"`
	Order      int      `json:"order" yaml:"order"`
	Title      string   `json:"title" yaml:"title"`
	Why        string   `json:"why" yaml:"why"`
	HowBullets []string `json:"howBullets" yaml:"how_bullets"`
	Links      []Link   `json:"links" yaml:"links"`
}

// Clone returns a deep copy so callers never share bullet or link slices.
func (def StepDefinition) Clone() StepDefinition {
	clone := def
	if len(def.HowBullets) > 0 {
		clone.HowBullets = make([]string, len(def.HowBullets))
		copy(clone.HowBullets, def.HowBullets)
	}
	if len(def.Links) > 0 {
		clone.Links = make([]Link, len(def.Links))
		copy(clone.Links, def.Links)
	}
	return clone
}

// StepRecord is a StepDefinition plus its lifecycle state within a roadmap.
type StepRecord struct {
	StepDefinition
	State StepState `json:"state"`
}

// Roadmap is the ordered list of step records for one session.
type Roadmap []StepRecord

// Clone copies the roadmap. Records share bullet and link slices since those
// are never mutated after a plan is built.
func (r Roadmap) Clone() Roadmap {
	if r == nil {
		return nil
	}
	out := make(Roadmap, len(r))
	copy(out, r)
	return out
}

// TakeHomeBand buckets monthly take-home pay.
type TakeHomeBand string

const (
	BandLT2K   TakeHomeBand = "lt2k"
	Band2To3K  TakeHomeBand = "2to3k"
	Band4To5K  TakeHomeBand = "4to5k"
	Band6To9K  TakeHomeBand = "6to9k"
	BandGTE10K TakeHomeBand = "gte10k"
)

// Answer is a yes/no/unsure quiz answer.
type Answer string

const (
	AnswerYes    Answer = "yes"
	AnswerNo     Answer = "no"
	AnswerUnsure Answer = "unsure"
)

// Intake is the finalized set of quiz answers.
type Intake struct {
	Zip           string       `json:"zip" yaml:"zip" validate:"required,len=5,numeric"`
	HouseholdSize int          `json:"householdSize" yaml:"household_size" validate:"required,min=1"`
	TakeHomeBand  TakeHomeBand `json:"takeHomeBand" yaml:"take_home_band" validate:"required,oneof=lt2k 2to3k 4to5k 6to9k gte10k"`
	HighAPRDebt   Answer       `json:"highAprDebt" yaml:"high_apr_debt" validate:"required,oneof=yes no unsure"`
	EmployerMatch Answer       `json:"employerMatch" yaml:"employer_match" validate:"required,oneof=yes no unsure"`
	EFMonths      *int         `json:"efMonths,omitempty" yaml:"ef_months,omitempty" validate:"omitempty,min=0,max=6"`
}
