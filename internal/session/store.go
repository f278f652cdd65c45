package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kingrea/nextstep/internal/decision"
	"github.com/kingrea/nextstep/internal/intake"
	"github.com/kingrea/nextstep/internal/logging"
	"github.com/kingrea/nextstep/internal/roadmap"
)

// StoreName keys persisted snapshots; files written under another name are
// ignored on load.
const StoreName = "prime-directive-store"

// Snapshot is the persisted subset of a session.
type Snapshot struct {
	Name                  string           `json:"name"`
	SessionID             string           `json:"session_id"`
	IntakeDraft           intake.Draft     `json:"intakeDraft"`
	Intake                *decision.Intake `json:"intake"`
	Steps                 decision.Roadmap `json:"steps"`
	ActiveStepID          decision.StepID  `json:"activeStepId,omitempty"`
	MonthlyIncomeEstimate *int             `json:"monthlyIncomeEstimate,omitempty"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

func copyIntake(in decision.Intake) decision.Intake {
	if in.EFMonths != nil {
		months := *in.EFMonths
		in.EFMonths = &months
	}
	return in
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Steps = s.Steps.Clone()
	if s.Intake != nil {
		in := copyIntake(*s.Intake)
		out.Intake = &in
	}
	if s.MonthlyIncomeEstimate != nil {
		v := *s.MonthlyIncomeEstimate
		out.MonthlyIncomeEstimate = &v
	}
	out.IntakeDraft = intake.Draft{}.Merge(s.IntakeDraft)
	return out
}

// Option customizes Store construction.
type Option func(*Store)

// WithDefinitions overrides the step table used by RecomputePlan.
func WithDefinitions(defs []decision.StepDefinition) Option {
	return func(s *Store) {
		if defs != nil {
			s.defs = defs
		}
	}
}

// WithLogger attaches a diagnostic logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock overrides the time source stamped on snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store is the single owner of session state.
type Store struct {
	repo          StateStore
	defs          []decision.StepDefinition
	log           *logging.Logger
	now           func() time.Time
	snap          Snapshot
	hasCelebrated bool
}

// Open restores the session persisted in repo, or starts an empty one.
func Open(repo StateStore, opts ...Option) (*Store, error) {
	s := newStore(repo, opts...)
	if repo == nil {
		return s, nil
	}
	snap, err := repo.Load()
	switch {
	case errors.Is(err, ErrNoSession):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("session: load: %w", err)
	}
	if snap.Name != StoreName {
		s.log.Warnf("ignoring stored session with name %q", snap.Name)
		return s, nil
	}
	if snap.SessionID == "" {
		snap.SessionID = s.snap.SessionID
	}
	snap.ActiveStepID = roadmap.ActiveID(snap.Steps)
	s.snap = snap
	s.log.Debugf("restored session %s with %d steps", snap.SessionID, len(snap.Steps))
	return s, nil
}

// New returns an empty store without reading repo.
func New(repo StateStore, opts ...Option) *Store {
	return newStore(repo, opts...)
}

func newStore(repo StateStore, opts ...Option) *Store {
	s := &Store{
		repo: repo,
		defs: decision.Definitions(),
		now:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.snap = emptySnapshot()
	return s
}

func emptySnapshot() Snapshot {
	return Snapshot{Name: StoreName, SessionID: uuid.NewString()}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return s.snap.clone()
}

// SessionID identifies the current session.
func (s *Store) SessionID() string {
	return s.snap.SessionID
}

// Steps returns a copy of the roadmap.
func (s *Store) Steps() decision.Roadmap {
	return s.snap.Steps.Clone()
}

// HasPlan reports whether a roadmap has been built.
func (s *Store) HasPlan() bool {
	return len(s.snap.Steps) > 0
}

// Draft returns the in-progress intake answers.
func (s *Store) Draft() intake.Draft {
	return s.snap.IntakeDraft
}

// Intake returns the finalized intake, if any.
func (s *Store) Intake() (decision.Intake, bool) {
	if s.snap.Intake == nil {
		return decision.Intake{}, false
	}
	return copyIntake(*s.snap.Intake), true
}

// ActiveStepID returns the active step id, or "" when nothing is active.
func (s *Store) ActiveStepID() decision.StepID {
	return s.snap.ActiveStepID
}

// ActiveStep returns the active roadmap step.
func (s *Store) ActiveStep() (decision.StepRecord, bool) {
	return roadmap.ActiveStep(s.snap.Steps)
}

// Buckets groups the roadmap by state.
func (s *Store) Buckets() roadmap.StepBuckets {
	return roadmap.Buckets(s.snap.Steps)
}

// Progress reports roadmap completion.
func (s *Store) Progress() roadmap.Progress {
	return roadmap.Measure(s.snap.Steps)
}

// MonthlyIncomeEstimate returns the slider value the user last chose.
func (s *Store) MonthlyIncomeEstimate() (int, bool) {
	if s.snap.MonthlyIncomeEstimate == nil {
		return 0, false
	}
	return *s.snap.MonthlyIncomeEstimate, true
}

// HasCelebrated reports whether the first-completion celebration has shown.
func (s *Store) HasCelebrated() bool {
	return s.hasCelebrated
}

// UpdateIntakeDraft merges answered fields into the draft.
func (s *Store) UpdateIntakeDraft(patch intake.Draft) error {
	s.snap.IntakeDraft = s.snap.IntakeDraft.Merge(patch)
	return s.persist()
}

// SetMonthlyIncomeEstimate records the income slider value.
func (s *Store) SetMonthlyIncomeEstimate(value int) error {
	s.snap.MonthlyIncomeEstimate = &value
	return s.persist()
}

// RecomputePlan finalizes in and replaces the roadmap with a fresh plan.
func (s *Store) RecomputePlan(in decision.Intake) error {
	in = copyIntake(in)
	plan := decision.BuildPlanFrom(s.defs, in)
	s.snap.IntakeDraft = intake.FromIntake(in)
	s.snap.Intake = &in
	s.snap.Steps = plan
	s.snap.ActiveStepID = roadmap.ActiveID(plan)
	s.hasCelebrated = false
	s.log.Infof("plan built: %d steps, active %s", len(plan), s.snap.ActiveStepID)
	return s.persist()
}

// CompleteActive completes the active step. celebrate is true the first time
// a step is completed in this roadmap.
func (s *Store) CompleteActive() (celebrate bool, err error) {
	if len(s.snap.Steps) == 0 {
		return false, nil
	}
	alreadyCompleted := roadmap.HasCompleted(s.snap.Steps)
	s.apply(roadmap.CompleteActive(s.snap.Steps))
	if !alreadyCompleted && !s.hasCelebrated && roadmap.HasCompleted(s.snap.Steps) {
		s.hasCelebrated = true
		celebrate = true
	}
	return celebrate, s.persist()
}

// SkipActive skips the active step.
func (s *Store) SkipActive() error {
	if len(s.snap.Steps) == 0 {
		return nil
	}
	s.apply(roadmap.SkipActive(s.snap.Steps))
	return s.persist()
}

// Unskip makes id the active step.
func (s *Store) Unskip(id decision.StepID) error {
	if len(s.snap.Steps) == 0 {
		return nil
	}
	if _, ok := roadmap.Find(s.snap.Steps, id); !ok {
		s.log.Debugf("unskip ignored unknown step %s", id)
		return nil
	}
	s.apply(roadmap.Unskip(s.snap.Steps, id))
	return s.persist()
}

// Reset clears the session and starts a new one.
func (s *Store) Reset() error {
	old := s.snap.SessionID
	s.snap = emptySnapshot()
	s.hasCelebrated = false
	s.log.Infof("session %s reset", old)
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Clear(); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

func (s *Store) apply(next decision.Roadmap) {
	prev := s.snap.ActiveStepID
	s.snap.Steps = next
	s.snap.ActiveStepID = roadmap.ActiveID(next)
	if prev != s.snap.ActiveStepID {
		s.log.Debugf("active step %s -> %s", prev, s.snap.ActiveStepID)
	}
}

func (s *Store) persist() error {
	s.snap.UpdatedAt = s.now().UTC()
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(s.snap); err != nil {
		s.log.Errorf("session save failed: %v", err)
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}
