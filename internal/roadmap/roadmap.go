// Package roadmap applies user actions to a roadmap. Every operation returns a
// new roadmap and leaves its input untouched; at most one step is ever active.
package roadmap

import (
	"math"
	"sort"

	"github.com/kingrea/nextstep/internal/decision"
)

// CompleteActive marks the active step completed and promotes the next
// pending step. Without an active step the roadmap is returned unchanged.
func CompleteActive(r decision.Roadmap) decision.Roadmap {
	return resolveActive(r, decision.StateCompleted)
}

// SkipActive marks the active step skipped and promotes the next pending step.
func SkipActive(r decision.Roadmap) decision.Roadmap {
	return resolveActive(r, decision.StateSkipped)
}

// Unskip installs id as the sole active step, whatever its previous state,
// and demotes the current active step to pending. Unknown ids are a no-op.
// The promotion rule does not run.
func Unskip(r decision.Roadmap, id decision.StepID) decision.Roadmap {
	target := indexOf(r, id)
	if target < 0 {
		return r
	}
	next := r.Clone()
	for idx := range next {
		if idx != target && next[idx].State == decision.StateActive {
			next[idx].State = decision.StatePending
		}
	}
	next[target].State = decision.StateActive
	return next
}

func resolveActive(r decision.Roadmap, state decision.StepState) decision.Roadmap {
	active := activeIndex(r)
	if active < 0 {
		return r
	}
	next := r.Clone()
	next[active].State = state
	promote(next)
	return next
}

// promote activates the lowest-order pending step in place. A roadmap with no
// pending steps is left with nothing active.
func promote(r decision.Roadmap) {
	candidate := -1
	for idx, step := range r {
		if step.State != decision.StatePending {
			continue
		}
		if candidate < 0 || step.Order < r[candidate].Order {
			candidate = idx
		}
	}
	if candidate >= 0 {
		r[candidate].State = decision.StateActive
	}
}

func activeIndex(r decision.Roadmap) int {
	for idx, step := range r {
		if step.State == decision.StateActive {
			return idx
		}
	}
	return -1
}

func indexOf(r decision.Roadmap, id decision.StepID) int {
	for idx, step := range r {
		if step.ID == id {
			return idx
		}
	}
	return -1
}

// ActiveStep returns the active step, if any.
func ActiveStep(r decision.Roadmap) (decision.StepRecord, bool) {
	idx := activeIndex(r)
	if idx < 0 {
		return decision.StepRecord{}, false
	}
	return r[idx], true
}

// ActiveID returns the id of the active step, or "" when nothing is active.
func ActiveID(r decision.Roadmap) decision.StepID {
	if step, ok := ActiveStep(r); ok {
		return step.ID
	}
	return ""
}

// Find returns the step with the given id.
func Find(r decision.Roadmap, id decision.StepID) (decision.StepRecord, bool) {
	idx := indexOf(r, id)
	if idx < 0 {
		return decision.StepRecord{}, false
	}
	return r[idx], true
}

// StepBuckets partitions a roadmap by state.
type StepBuckets struct {
	Active    []decision.StepRecord
	Pending   []decision.StepRecord
	Completed []decision.StepRecord
	Skipped   []decision.StepRecord
}

// Buckets groups steps by state, each group sorted by order.
func Buckets(r decision.Roadmap) StepBuckets {
	var b StepBuckets
	for _, step := range r {
		switch step.State {
		case decision.StateActive:
			b.Active = append(b.Active, step)
		case decision.StatePending:
			b.Pending = append(b.Pending, step)
		case decision.StateCompleted:
			b.Completed = append(b.Completed, step)
		case decision.StateSkipped:
			b.Skipped = append(b.Skipped, step)
		}
	}
	for _, group := range [][]decision.StepRecord{b.Active, b.Pending, b.Completed, b.Skipped} {
		sortByOrder(group)
	}
	return b
}

func sortByOrder(steps []decision.StepRecord) {
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})
}

// Progress summarizes how much of the roadmap is completed.
type Progress struct {
	Completed int
	Skipped   int
	Total     int
	Percent   int
}

// Measure reports completion progress. Skipped steps do not count toward the
// percentage.
func Measure(r decision.Roadmap) Progress {
	p := Progress{Total: len(r)}
	for _, step := range r {
		switch step.State {
		case decision.StateCompleted:
			p.Completed++
		case decision.StateSkipped:
			p.Skipped++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

// Resolved reports whether every step is completed or skipped.
func Resolved(r decision.Roadmap) bool {
	if len(r) == 0 {
		return false
	}
	for _, step := range r {
		if step.State == decision.StateActive || step.State == decision.StatePending {
			return false
		}
	}
	return true
}

// HasCompleted reports whether any step has been completed.
func HasCompleted(r decision.Roadmap) bool {
	for _, step := range r {
		if step.State == decision.StateCompleted {
			return true
		}
	}
	return false
}
