package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIntake() Intake {
	months := 1
	return Intake{
		Zip:           "98101",
		HouseholdSize: 2,
		TakeHomeBand:  Band4To5K,
		HighAPRDebt:   AnswerYes,
		EmployerMatch: AnswerYes,
		EFMonths:      &months,
	}
}

func TestBuildPlanActivatesFirstStep(t *testing.T) {
	plan := BuildPlan(sampleIntake())
	require.Len(t, plan, 10)
	assert.Equal(t, StateActive, plan[0].State)
	assert.Equal(t, StepBudget, plan[0].ID)
	for _, step := range plan[1:] {
		assert.Equal(t, StatePending, step.State, "step %s", step.ID)
	}
	for idx, step := range plan {
		assert.Equal(t, idx, step.Order)
	}
}

func TestBuildPlanIgnoresIntakeAnswers(t *testing.T) {
	other := Intake{Zip: "10001", HouseholdSize: 5, TakeHomeBand: BandLT2K, HighAPRDebt: AnswerNo, EmployerMatch: AnswerUnsure}
	assert.Equal(t, BuildPlan(sampleIntake()), BuildPlan(other))
}

func TestBuildPlanFromSortsByOrder(t *testing.T) {
	defs := []StepDefinition{
		{ID: StepIRA, Order: 2, Title: "c"},
		{ID: StepBudget, Order: 0, Title: "a"},
		{ID: StepHSA, Order: 1, Title: "b"},
	}
	plan := BuildPlanFrom(defs, Intake{})
	require.Len(t, plan, 3)
	assert.Equal(t, []StepID{StepBudget, StepHSA, StepIRA}, []StepID{plan[0].ID, plan[1].ID, plan[2].ID})
	assert.Equal(t, StateActive, plan[0].State)
	assert.Equal(t, StatePending, plan[1].State)
	assert.Equal(t, StatePending, plan[2].State)
	assert.Equal(t, StepIRA, defs[0].ID, "input table must not be reordered")
}

func TestBuildPlanFromEmptyTable(t *testing.T) {
	plan := BuildPlanFrom(nil, sampleIntake())
	assert.Empty(t, plan)
}

func TestBuildPlanExactlyOneActiveAtMinimumOrder(t *testing.T) {
	for n := 1; n <= len(referenceDefinitions); n++ {
		defs := Definitions()[:n]
		plan := BuildPlanFrom(defs, sampleIntake())
		active := 0
		for _, step := range plan {
			if step.State == StateActive {
				active++
				assert.Equal(t, 0, step.Order)
			}
		}
		assert.Equal(t, 1, active, "table size %d", n)
	}
}

func TestBuildPlanDoesNotShareReferenceSlices(t *testing.T) {
	plan := BuildPlan(sampleIntake())
	plan[0].HowBullets[0] = "mutated"
	def, ok := Definition(StepBudget)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", def.HowBullets[0])
}

func TestReferenceTableOrdersAreDense(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, len(AllStepIDs))
	seen := map[StepID]bool{}
	for idx, def := range defs {
		assert.Equal(t, idx, def.Order)
		assert.Equal(t, AllStepIDs[idx], def.ID)
		assert.False(t, seen[def.ID], "duplicate id %s", def.ID)
		seen[def.ID] = true
		assert.NotEmpty(t, def.Title)
		assert.NotEmpty(t, def.HowBullets)
		assert.NotEmpty(t, def.Links)
	}
}

func TestStepIDValid(t *testing.T) {
	assert.True(t, StepTaxable.Valid())
	assert.False(t, StepID("step7_yacht").Valid())
}
