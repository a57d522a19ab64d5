// internal/importer/result.go
package importer

import "fmt"

// SkipReason records why one sheet row was left out of the submission. Rows
// are skipped independently; a skip never aborts the run.
type SkipReason struct {
	Line   int
	Reason string
}

// Result is the outcome of one import run. Skipped rows are surfaced here so
// callers can report them; the CLI still prints a single aggregate line by
// default, matching the console's one-alert behaviour.
type Result struct {
	Total     int
	Created   int
	ChildRows int
	Skipped   []SkipReason
}

func (r *Result) skip(line int, reason string) {
	r.Skipped = append(r.Skipped, SkipReason{Line: line, Reason: reason})
}

// Summary is the single aggregate line shown after a run.
func (r *Result) Summary() string {
	if r.ChildRows > 0 {
		return fmt.Sprintf("%d items uploaded (%d choice rows)", r.Created, r.ChildRows)
	}
	return fmt.Sprintf("%d items uploaded", r.Created)
}
