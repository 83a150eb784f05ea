// Package pipeline runs report generation as a sequence of steps.
//
// A run moves through load, require-findings, summarize, render and save.
// Each step is implemented as a Step that receives the shared Run and can
// fill in its fields for the steps after it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because it gives every stage the same logging and error handling, and the
// "nothing to report" case becomes an ordinary step that halts the run
// (ErrHalt) instead of a special case in the caller.
//
// Only load and save touch the filesystem. Summarize and render are pure,
// so a run with a fixed clock (WithClock) produces byte-identical documents.
package pipeline
