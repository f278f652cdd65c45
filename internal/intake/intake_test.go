package intake

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/nextstep/internal/decision"
)

func completeDraft() Draft {
	return Draft{
		Zip:           "98101",
		HouseholdSize: intPtr(2),
		TakeHomeBand:  decision.Band4To5K,
		HighAPRDebt:   decision.AnswerYes,
		EmployerMatch: decision.AnswerNo,
	}
}

func TestDraftCompleteRequiresEveryAnswer(t *testing.T) {
	in, ok := completeDraft().Complete()
	require.True(t, ok)
	assert.Equal(t, "98101", in.Zip)
	assert.Equal(t, 2, in.HouseholdSize)
	assert.Nil(t, in.EFMonths)

	cases := map[string]func(*Draft){
		"short zip":      func(d *Draft) { d.Zip = "981" },
		"no household":   func(d *Draft) { d.HouseholdSize = nil },
		"zero household": func(d *Draft) { d.HouseholdSize = intPtr(0) },
		"no band":        func(d *Draft) { d.TakeHomeBand = "" },
		"no debt":        func(d *Draft) { d.HighAPRDebt = "" },
		"no match":       func(d *Draft) { d.EmployerMatch = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := completeDraft()
			mutate(&d)
			_, ok := d.Complete()
			assert.False(t, ok)
		})
	}
}

func TestDraftMergeKeepsUnansweredFields(t *testing.T) {
	d := Draft{Zip: "10001"}
	d = d.Merge(Draft{HouseholdSize: intPtr(3)})
	d = d.Merge(Draft{EFMonths: intPtr(0)})
	assert.Equal(t, "10001", d.Zip)
	require.NotNil(t, d.HouseholdSize)
	assert.Equal(t, 3, *d.HouseholdSize)
	require.NotNil(t, d.EFMonths)
	assert.Equal(t, 0, *d.EFMonths)
}

func TestFromIntakeRoundTrip(t *testing.T) {
	in, ok := completeDraft().Merge(Draft{EFMonths: intPtr(4)}).Complete()
	require.True(t, ok)
	back, ok := FromIntake(in).Complete()
	require.True(t, ok)
	assert.Equal(t, in, back)
}

func TestCheckStepMessages(t *testing.T) {
	d, msg := CheckStep(Draft{Zip: "98-10"}, KeyZip)
	assert.Equal(t, "Enter a valid 5-digit ZIP code.", msg)
	assert.Equal(t, "98-10", d.Zip)

	d, msg = CheckStep(Draft{Zip: " 98101-1234"}, KeyZip)
	assert.Empty(t, msg)
	assert.Equal(t, "98101", d.Zip)

	_, msg = CheckStep(Draft{}, KeyHouseholdSize)
	assert.Equal(t, "Select your household size.", msg)
	_, msg = CheckStep(Draft{}, KeyTakeHomeBand)
	assert.Equal(t, "Adjust the slider to the closest amount.", msg)
	_, msg = CheckStep(Draft{}, KeyHighAPRDebt)
	assert.Equal(t, "Select an answer.", msg)
	_, msg = CheckStep(Draft{}, KeyEFMonths)
	assert.Empty(t, msg, "emergency fund months is optional")
}

func TestBandMapping(t *testing.T) {
	cases := []struct {
		value int
		want  decision.TakeHomeBand
	}{
		{500, decision.BandLT2K},
		{1999, decision.BandLT2K},
		{2000, decision.Band2To3K},
		{3999, decision.Band2To3K},
		{4000, decision.Band4To5K},
		{6000, decision.Band6To9K},
		{9999, decision.Band6To9K},
		{10000, decision.BandGTE10K},
		{15000, decision.BandGTE10K},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BandFromSlider(tc.value), "value %d", tc.value)
	}
	for _, band := range []decision.TakeHomeBand{decision.BandLT2K, decision.Band2To3K, decision.Band4To5K, decision.Band6To9K, decision.BandGTE10K} {
		assert.Equal(t, band, BandFromSlider(SliderFromBand(band, 0)))
	}
	assert.Equal(t, DefaultIncome, SliderFromBand("", DefaultIncome))
}

func TestHouseholdOptions(t *testing.T) {
	n, ok := HouseholdFromOption("5+")
	require.True(t, ok)
	assert.Equal(t, 5, n)
	n, ok = HouseholdFromOption("3")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = HouseholdFromOption("zero")
	assert.False(t, ok)
	assert.Equal(t, "5+", HouseholdOption(7))
	assert.Equal(t, "2", HouseholdOption(2))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 17, ProgressPercent(0))
	assert.Equal(t, 50, ProgressPercent(2))
	assert.Equal(t, 100, ProgressPercent(TotalSteps-1))
}

func TestValidateReportsFields(t *testing.T) {
	months := 9
	err := Validate(decision.Intake{
		Zip:           "9810a",
		HouseholdSize: 1,
		TakeHomeBand:  "lots",
		HighAPRDebt:   decision.AnswerYes,
		EmployerMatch: decision.AnswerYes,
		EFMonths:      &months,
	})
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "must contain only digits", fields["zip"])
	assert.Contains(t, fields["takeHomeBand"], "must be one of")
	assert.Equal(t, "must be at most 6", fields["efMonths"])
	assert.NotContains(t, fields, "householdSize")
}

func TestValidateAcceptsCompleteIntake(t *testing.T) {
	in, ok := completeDraft().Complete()
	require.True(t, ok)
	assert.NoError(t, Validate(in))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
zip: "98101"
household_size: 3
take_home_band: 6to9k
high_apr_debt: "no"
employer_match: unsure
ef_months: 2
`), 0o644))
	in, err := LoadFile(good)
	require.NoError(t, err)
	assert.Equal(t, decision.Band6To9K, in.TakeHomeBand)
	assert.Equal(t, decision.AnswerNo, in.HighAPRDebt)
	require.NotNil(t, in.EFMonths)
	assert.Equal(t, 2, *in.EFMonths)

	partial := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(partial, []byte("zip: \"98101\"\n"), 0o644))
	_, err = LoadFile(partial)
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadFile(empty)
	require.Error(t, err)
}
