package intake

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/kingrea/nextstep/internal/decision"
)

// Draft holds partially answered intake questions. Zero values mean
// unanswered; pointer fields distinguish an explicit zero.
type Draft struct {
	Zip           string                `json:"zip,omitempty" yaml:"zip,omitempty"`
	HouseholdSize *int                  `json:"householdSize,omitempty" yaml:"household_size,omitempty"`
	TakeHomeBand  decision.TakeHomeBand `json:"takeHomeBand,omitempty" yaml:"take_home_band,omitempty"`
	HighAPRDebt   decision.Answer       `json:"highAprDebt,omitempty" yaml:"high_apr_debt,omitempty"`
	EmployerMatch decision.Answer       `json:"employerMatch,omitempty" yaml:"employer_match,omitempty"`
	EFMonths      *int                  `json:"efMonths,omitempty" yaml:"ef_months,omitempty"`
}

// Merge overlays every answered field of patch onto d.
func (d Draft) Merge(patch Draft) Draft {
	if patch.Zip != "" {
		d.Zip = patch.Zip
	}
	if patch.HouseholdSize != nil {
		d.HouseholdSize = intPtr(*patch.HouseholdSize)
	}
	if patch.TakeHomeBand != "" {
		d.TakeHomeBand = patch.TakeHomeBand
	}
	if patch.HighAPRDebt != "" {
		d.HighAPRDebt = patch.HighAPRDebt
	}
	if patch.EmployerMatch != "" {
		d.EmployerMatch = patch.EmployerMatch
	}
	if patch.EFMonths != nil {
		d.EFMonths = intPtr(*patch.EFMonths)
	}
	return d
}

// Complete reports whether the draft carries every required answer and
// returns it as a finalized intake.
func (d Draft) Complete() (decision.Intake, bool) {
	if len(d.Zip) != 5 || d.HouseholdSize == nil || *d.HouseholdSize < 1 {
		return decision.Intake{}, false
	}
	if d.TakeHomeBand == "" || d.HighAPRDebt == "" || d.EmployerMatch == "" {
		return decision.Intake{}, false
	}
	in := decision.Intake{
		Zip:           d.Zip,
		HouseholdSize: *d.HouseholdSize,
		TakeHomeBand:  d.TakeHomeBand,
		HighAPRDebt:   d.HighAPRDebt,
		EmployerMatch: d.EmployerMatch,
	}
	if d.EFMonths != nil {
		in.EFMonths = intPtr(*d.EFMonths)
	}
	return in, true
}

// FromIntake turns a finalized intake back into a draft.
func FromIntake(in decision.Intake) Draft {
	d := Draft{
		Zip:           in.Zip,
		HouseholdSize: intPtr(in.HouseholdSize),
		TakeHomeBand:  in.TakeHomeBand,
		HighAPRDebt:   in.HighAPRDebt,
		EmployerMatch: in.EmployerMatch,
	}
	if in.EFMonths != nil {
		d.EFMonths = intPtr(*in.EFMonths)
	}
	return d
}

// CheckStep validates the answer for a single wizard screen and returns the
// draft with that answer normalized. The message is empty when the step may
// advance.
func CheckStep(d Draft, key StepKey) (Draft, string) {
	switch key {
	case KeyZip:
		cleaned := CleanZip(d.Zip)
		if len(cleaned) != 5 {
			return d, "Enter a valid 5-digit ZIP code."
		}
		d.Zip = cleaned
	case KeyHouseholdSize:
		if d.HouseholdSize == nil {
			return d, "Select your household size."
		}
	case KeyTakeHomeBand:
		if d.TakeHomeBand == "" {
			return d, "Adjust the slider to the closest amount."
		}
	case KeyHighAPRDebt:
		if d.HighAPRDebt == "" {
			return d, "Select an answer."
		}
	case KeyEmployerMatch:
		if d.EmployerMatch == "" {
			return d, "Select an answer."
		}
	}
	return d, ""
}

// CleanZip keeps the first five digits of raw.
func CleanZip(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
		if b.Len() == 5 {
			break
		}
	}
	return b.String()
}

// HouseholdFromOption converts a radio value ("1".."4", "5+") to a size.
func HouseholdFromOption(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "5+" {
		return 5, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// HouseholdOption returns the radio value selected for a household size.
func HouseholdOption(size int) string {
	if size >= 5 {
		return "5+"
	}
	return strconv.Itoa(size)
}

// BandFromSlider maps a monthly take-home amount onto its band.
func BandFromSlider(value int) decision.TakeHomeBand {
	switch {
	case value < 2000:
		return decision.BandLT2K
	case value < 4000:
		return decision.Band2To3K
	case value < 6000:
		return decision.Band4To5K
	case value < 10000:
		return decision.Band6To9K
	default:
		return decision.BandGTE10K
	}
}

// SliderFromBand returns a representative slider amount for band, or
// fallback when no band is set.
func SliderFromBand(band decision.TakeHomeBand, fallback int) int {
	switch band {
	case decision.BandLT2K:
		return 1500
	case decision.Band2To3K:
		return 2500
	case decision.Band4To5K:
		return 4500
	case decision.Band6To9K:
		return 7500
	case decision.BandGTE10K:
		return 12000
	default:
		return fallback
	}
}

// DefaultIncome is the slider starting point before any answer.
const DefaultIncome = 3000

func intPtr(v int) *int {
	return &v
}
