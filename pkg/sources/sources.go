// Package sources defines the contracts between data source ingestors and
// the merge engine.
//
// The primary source determines which players exist. Enrichers receive a
// read-only Target and can only attach fields to players already present.
package sources

import (
	"context"
	"fmt"

	"github.com/agentstation/draftboard/pkg/identity"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/players"
)

// ID identifies a data source.
type ID string

// Known source IDs.
const (
	ADPID        ID = "adp"
	RankingsID   ID = "rankings"
	DepthChartID ID = "depthchart"
	OrganizerID  ID = "organizer"
)

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// Primary fetches the universe of players. Any error it returns is fatal.
type Primary interface {
	ID() ID
	Fetch(ctx context.Context, settings league.Settings, reporter Reporter) (*players.Dataset, error)
}

// Enricher adds fields to players that already exist. Recoverable problems
// go to the reporter; a returned error aborts the run.
type Enricher interface {
	ID() ID
	Enrich(ctx context.Context, settings league.Settings, target Target, reporter Reporter) error
}

// Target is the view of the accumulating dataset given to enrichers.
// It has no way to add a player.
type Target interface {
	Get(key identity.Key) (*players.Player, bool)
}

// Reporter receives recoverable conditions.
type Reporter interface {
	Report(issue Issue)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Issue)

// Report implements Reporter.
func (f ReporterFunc) Report(issue Issue) {
	f(issue)
}

// IssueKind classifies a recoverable condition.
type IssueKind string

// Issue kinds.
const (
	IssueCollision            IssueKind = "collision"
	IssueUnmatched            IssueKind = "unmatched"
	IssueMissingFile          IssueKind = "missing_file"
	IssueParseFailure         IssueKind = "parse_failure"
	IssueSkipped              IssueKind = "skipped"
	IssueSourceFailure        IssueKind = "source_failure"
	IssueUnrecognizedPosition IssueKind = "unrecognized_position"
	IssueMissingADP           IssueKind = "missing_adp"
)

// IssueKinds lists every kind in report order.
var IssueKinds = []IssueKind{
	IssueCollision,
	IssueUnmatched,
	IssueMissingFile,
	IssueParseFailure,
	IssueSkipped,
	IssueSourceFailure,
	IssueUnrecognizedPosition,
	IssueMissingADP,
}

// Issue is one recoverable condition.
type Issue struct {
	Source  ID           `json:"source" yaml:"source"`
	Kind    IssueKind    `json:"kind" yaml:"kind"`
	Key     identity.Key `json:"key,omitempty" yaml:"key,omitempty"`
	Name    string       `json:"name,omitempty" yaml:"name,omitempty"`
	File    string       `json:"file,omitempty" yaml:"file,omitempty"`
	Message string       `json:"message" yaml:"message"`
	Err     error        `json:"-" yaml:"-"`
}

// String implements fmt.Stringer.
func (i Issue) String() string {
	s := fmt.Sprintf("[%s/%s]", i.Source, i.Kind)
	if i.Name != "" {
		s += " " + i.Name
	} else if i.Key != "" {
		s += " " + string(i.Key)
	}
	if i.File != "" {
		s += " (" + i.File + ")"
	}
	return s + ": " + i.Message
}

// DatasetTarget exposes a dataset as a read-only Target.
func DatasetTarget(ds *players.Dataset) Target {
	return datasetTarget{ds: ds}
}

type datasetTarget struct {
	ds *players.Dataset
}

func (t datasetTarget) Get(key identity.Key) (*players.Player, bool) {
	return t.ds.Get(key)
}
