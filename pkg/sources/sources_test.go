package sources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/sources"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		issue sources.Issue
		want  string
	}{
		{
			sources.Issue{Source: sources.ADPID, Kind: sources.IssueCollision, Key: "travis_etienne", Name: "Travis Etienne", Message: "duplicate key overwritten"},
			"[adp/collision] Travis Etienne: duplicate key overwritten",
		},
		{
			sources.Issue{Source: sources.RankingsID, Kind: sources.IssueMissingFile, File: "ffrd/ppr/qb.csv", Message: "file does not exist"},
			"[rankings/missing_file] (ffrd/ppr/qb.csv): file does not exist",
		},
		{
			sources.Issue{Source: sources.OrganizerID, Kind: sources.IssueMissingADP, Key: "joe", Message: "no adp"},
			"[organizer/missing_adp] joe: no adp",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.issue.String())
	}
}

func TestDatasetTargetIsReadOnlyView(t *testing.T) {
	ds := players.NewDataset()
	ds.Put("jalen_hurts", &players.Player{Name: "Jalen Hurts"})

	target := sources.DatasetTarget(ds)
	p, ok := target.Get("jalen_hurts")
	assert.True(t, ok)
	p.SetFavorite(true)

	_, ok = target.Get("nobody")
	assert.False(t, ok)

	got, _ := ds.Get("jalen_hurts")
	assert.True(t, got.IsFavorite(), "enrichment writes through to the dataset")
	assert.Equal(t, 1, ds.Len())
}

func TestReporterFunc(t *testing.T) {
	var got []sources.Issue
	r := sources.ReporterFunc(func(i sources.Issue) { got = append(got, i) })
	r.Report(sources.Issue{Kind: sources.IssueSkipped})
	assert.Len(t, got, 1)
}
