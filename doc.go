// Package bestfirst provides a generic best-first search engine with an A*
// variant.
//
// It exposes two main entry points:
//
//   - Search (and AStar): run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The problem is supplied as four callbacks: a goal test, an expander that
// lists successor states, a step cost and an optional heuristic. Candidates
// carry their whole path; the frontier deduplicates them by a canonical key
// derived from that path and decreases priorities by logical deletion.
// Each search owns its frontier and runs on the calling goroutine.
package bestfirst
