package reconciler

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Result is the outcome of a reconciliation.
type Result struct {
	Dataset  *players.Dataset
	Metadata ResultMetadata

	collector *Collector
}

// ResultMetadata describes the run.
type ResultMetadata struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Sources in the order they ran.
	Sources []sources.ID
}

func newResult(c *Collector) *Result {
	return &Result{
		collector: c,
		Metadata: ResultMetadata{
			StartTime: time.Now(),
			Sources:   []sources.ID{},
		},
	}
}

func (r *Result) finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// Report returns the issues collected so far.
func (r *Result) Report() *Report {
	return r.collector.Snapshot()
}

// Report is the list of recoverable conditions seen during a run.
type Report struct {
	Issues []sources.Issue `json:"issues" yaml:"issues"`
}

// Len returns the number of issues.
func (r *Report) Len() int {
	return len(r.Issues)
}

// Count returns the number of issues of kind.
func (r *Report) Count(kind sources.IssueKind) int {
	n := 0
	for _, i := range r.Issues {
		if i.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the issues matching source and kind. Empty values match anything.
func (r *Report) Filter(source sources.ID, kind sources.IssueKind) []sources.Issue {
	var out []sources.Issue
	for _, i := range r.Issues {
		if (source == "" || i.Source == source) && (kind == "" || i.Kind == kind) {
			out = append(out, i)
		}
	}
	return out
}

// Summary returns a one-line count per kind, e.g. "3 issues: collision=1, unmatched=2".
func (r *Report) Summary() string {
	if len(r.Issues) == 0 {
		return "no issues"
	}
	var parts []string
	for _, kind := range sources.IssueKinds {
		if n := r.Count(kind); n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
		}
	}
	noun := "issues"
	if len(r.Issues) == 1 {
		noun = "issue"
	}
	return fmt.Sprintf("%d %s: %s", len(r.Issues), noun, strings.Join(parts, ", "))
}
