package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/nextstep/internal/decision"
	"github.com/kingrea/nextstep/internal/intake"
)

func sampleIntake() decision.Intake {
	months := 1
	return decision.Intake{
		Zip:           "98101",
		HouseholdSize: 2,
		TakeHomeBand:  decision.Band4To5K,
		HighAPRDebt:   decision.AnswerYes,
		EmployerMatch: decision.AnswerYes,
		EFMonths:      &months,
	}
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
}

func TestRecomputePlanSetsFirstStepActive(t *testing.T) {
	repo := NewMemoryRepository()
	s := New(repo, WithClock(fixedClock()))
	require.NoError(t, s.RecomputePlan(sampleIntake()))

	steps := s.Steps()
	require.Len(t, steps, 10)
	assert.Equal(t, decision.StateActive, steps[0].State)
	for _, step := range steps[1:] {
		assert.Equal(t, decision.StatePending, step.State)
	}
	assert.Equal(t, decision.StepBudget, s.ActiveStepID())
	in, ok := s.Intake()
	require.True(t, ok)
	assert.Equal(t, "98101", in.Zip)
	assert.Equal(t, "98101", s.Draft().Zip)
	assert.Equal(t, 1, repo.Saves())
}

func TestStoreActionsTrackActiveID(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.RecomputePlan(sampleIntake()))

	celebrate, err := s.CompleteActive()
	require.NoError(t, err)
	assert.True(t, celebrate)
	assert.True(t, s.HasCelebrated())
	assert.Equal(t, decision.StepEmergencyFund, s.ActiveStepID())

	require.NoError(t, s.SkipActive())
	assert.Equal(t, decision.StepEmployerMatch, s.ActiveStepID())

	require.NoError(t, s.Unskip(decision.StepEmergencyFund))
	steps := s.Steps()
	assert.Equal(t, decision.StateActive, steps[1].State)
	assert.Equal(t, decision.StatePending, steps[2].State)
	assert.Equal(t, decision.StepEmergencyFund, s.ActiveStepID())

	celebrate, err = s.CompleteActive()
	require.NoError(t, err)
	assert.False(t, celebrate, "celebration only fires once")
}

func TestUnskipUnknownIDDoesNotPersist(t *testing.T) {
	repo := NewMemoryRepository()
	s := New(repo)
	require.NoError(t, s.RecomputePlan(sampleIntake()))
	before := s.Snapshot()
	saves := repo.Saves()

	require.NoError(t, s.Unskip("step42_unknown"))
	if diff := cmp.Diff(before.Steps, s.Steps()); diff != "" {
		t.Fatalf("roadmap changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, before.ActiveStepID, s.ActiveStepID())
	assert.Equal(t, saves, repo.Saves())
}

func TestActionsOnEmptySessionAreNoOps(t *testing.T) {
	repo := NewMemoryRepository()
	s := New(repo)
	celebrate, err := s.CompleteActive()
	require.NoError(t, err)
	assert.False(t, celebrate)
	require.NoError(t, s.SkipActive())
	require.NoError(t, s.Unskip(decision.StepBudget))
	assert.False(t, s.HasPlan())
	assert.Zero(t, repo.Saves())
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	repo := NewFileRepository(path)
	s, err := Open(repo, WithClock(fixedClock()))
	require.NoError(t, err)
	require.False(t, s.HasPlan())

	require.NoError(t, s.UpdateIntakeDraft(intake.Draft{Zip: "10001"}))
	require.NoError(t, s.SetMonthlyIncomeEstimate(4500))
	require.NoError(t, s.RecomputePlan(sampleIntake()))
	_, err = s.CompleteActive()
	require.NoError(t, err)
	require.NoError(t, s.SkipActive())

	restored, err := Open(repo)
	require.NoError(t, err)
	assert.Equal(t, s.SessionID(), restored.SessionID())
	if diff := cmp.Diff(s.Steps(), restored.Steps()); diff != "" {
		t.Fatalf("restored roadmap differs (-want +got):\n%s", diff)
	}
	assert.Equal(t, decision.StepEmployerMatch, restored.ActiveStepID())
	income, ok := restored.MonthlyIncomeEstimate()
	require.True(t, ok)
	assert.Equal(t, 4500, income)
	assert.True(t, fixedClock()().Equal(restored.Snapshot().UpdatedAt))
	assert.False(t, restored.HasCelebrated(), "celebration flag is not persisted")
}

func TestOpenIgnoresForeignStoreName(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.Save(Snapshot{Name: "other-app", Steps: decision.BuildPlan(sampleIntake())}))
	s, err := Open(repo)
	require.NoError(t, err)
	assert.False(t, s.HasPlan())
}

func TestOpenSurfacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Open(NewFileRepository(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session: load")
}

func TestResetClearsStateAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileRepository(path)
	s := New(repo)
	require.NoError(t, s.RecomputePlan(sampleIntake()))
	_, err := s.CompleteActive()
	require.NoError(t, err)
	oldID := s.SessionID()

	require.NoError(t, s.Reset())
	assert.False(t, s.HasPlan())
	assert.Equal(t, decision.StepID(""), s.ActiveStepID())
	_, ok := s.Intake()
	assert.False(t, ok)
	assert.False(t, s.HasCelebrated())
	assert.NotEqual(t, oldID, s.SessionID())
	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = repo.Load()
	assert.ErrorIs(t, err, ErrNoSession)
	require.NoError(t, s.Reset(), "reset without a file is fine")
}

type failingRepo struct{ MemoryRepository }

func (failingRepo) Save(Snapshot) error { return errors.New("disk full") }

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	s := New(&failingRepo{})
	err := s.RecomputePlan(sampleIntake())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session: save")
	assert.True(t, s.HasPlan())
	assert.Equal(t, decision.StepBudget, s.ActiveStepID())
}

func TestWithDefinitionsUsesCustomTable(t *testing.T) {
	defs := []decision.StepDefinition{
		{ID: decision.StepIRA, Order: 1, Title: "IRA"},
		{ID: decision.StepBudget, Order: 0, Title: "Budget"},
	}
	s := New(nil, WithDefinitions(defs))
	require.NoError(t, s.RecomputePlan(sampleIntake()))
	steps := s.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, decision.StepBudget, steps[0].ID)
	assert.Equal(t, 0, s.Progress().Completed)
	assert.Len(t, s.Buckets().Pending, 1)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.RecomputePlan(sampleIntake()))
	snap := s.Snapshot()
	snap.Steps[0].State = decision.StateSkipped
	*snap.Intake.EFMonths = 6
	assert.Equal(t, decision.StateActive, s.Steps()[0].State)
	in, _ := s.Intake()
	assert.Equal(t, 1, *in.EFMonths)
}
