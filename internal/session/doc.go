// Package session owns the quiz state for one user session: the intake draft,
// the finalized intake, the roadmap and the income estimate. A Store is
// created empty, populated by RecomputePlan, mutated by roadmap actions and
// cleared by Reset. Every mutation is written through to a StateStore.
package session
