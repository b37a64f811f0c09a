package mdrsort

import (
	"fmt"
	"strings"
	"time"
)

// Stage names a step of the pipeline.
type Stage string

const (
	StageSplit    Stage = "split"
	StageRename   Stage = "rename"
	StageRead     Stage = "read"
	StageClassify Stage = "classify"
	StageMove     Stage = "move"
	StageExport   Stage = "export"
)

// Outcome is how a file left a stage.
type Outcome int

const (
	OutcomeProcessed Outcome = iota // stage completed
	OutcomeSkipped                  // file excluded from the rest of the run
	OutcomeFailed                   // stage failed; file state kept as before the stage
)

// String returns a lower-case outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeProcessed:
		return "processed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult records what one stage did to one file.
type FileResult struct {
	Path     string
	Stage    Stage
	Outcome  Outcome
	Category Category
	Reason   string
	Err      error
}

// String formats the result for the run summary.
func (r FileResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", r.Stage, r.Outcome, r.Path)
	if r.Category != Unclassified {
		fmt.Fprintf(&b, " [%s]", r.Category)
	}
	if r.Reason != "" {
		fmt.Fprintf(&b, " (%s)", r.Reason)
	}
	if r.Err != nil {
		fmt.Fprintf(&b, ": %v", r.Err)
	}
	return b.String()
}

// RunCounters are the totals reported at the end of a run.
type RunCounters struct {
	Processed int // files read and classified, matched or not
	Skipped   int // files that could not be renamed, read or classified
	Exported  int // text files written with their original deleted
}

// Report summarizes one pipeline run.
type Report struct {
	RunID    string
	Root     string
	Started  time.Time
	Finished time.Time
	RunCounters
	Results []FileResult
}

func (r *Report) add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Failures returns the results that ended in an error.
func (r *Report) Failures() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Summary renders the end-of-run report.
func (r *Report) Summary() string {
	var b strings.Builder
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "Processed files: %d\n", r.Processed)
	fmt.Fprintf(&b, "Skipped files: %d\n", r.Skipped)
	fmt.Fprintf(&b, "Exported files: %d\n", r.Exported)
	if failures := r.Failures(); len(failures) > 0 {
		fmt.Fprintf(&b, "Errors: %d\n", len(failures))
		for _, f := range failures {
			b.WriteString("  ")
			b.WriteString(f.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}
