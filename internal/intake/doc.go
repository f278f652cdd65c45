// Package intake describes the six-question quiz, normalizes raw answers and
// decides when a draft is complete enough to build a plan from.
package intake
