// Package decision holds the static step definition table and the plan
// builder that turns a completed intake into the initial roadmap.
package decision
