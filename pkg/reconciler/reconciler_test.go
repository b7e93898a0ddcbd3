package reconciler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/identity"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/reconciler"
	"github.com/agentstation/draftboard/pkg/sources"
)

var settings = league.Settings{Format: league.FormatPPR, Teams: 12, Year: 2023}

type fakePrimary struct {
	ds     *players.Dataset
	err    error
	issues []sources.Issue
}

func (f *fakePrimary) ID() sources.ID { return sources.ADPID }

func (f *fakePrimary) Fetch(_ context.Context, _ league.Settings, r sources.Reporter) (*players.Dataset, error) {
	for _, i := range f.issues {
		r.Report(i)
	}
	return f.ds, f.err
}

type fakeEnricher struct {
	id  sources.ID
	fn  func(target sources.Target, r sources.Reporter) error
	log *[]sources.ID
}

func (f *fakeEnricher) ID() sources.ID { return f.id }

func (f *fakeEnricher) Enrich(_ context.Context, _ league.Settings, target sources.Target, r sources.Reporter) error {
	if f.log != nil {
		*f.log = append(*f.log, f.id)
	}
	if f.fn == nil {
		return nil
	}
	return f.fn(target, r)
}

type countingObserver struct {
	kinds []sources.IssueKind
}

func (c *countingObserver) Observe(i sources.Issue) {
	c.kinds = append(c.kinds, i.Kind)
}

func primaryDataset() *players.Dataset {
	ds := players.NewDataset()
	ds.Put("jalen_hurts", &players.Player{Name: "Jalen Hurts", Position: "QB", ADP: 22})
	ds.Put("travis_etienne", &players.Player{Name: "Travis Etienne Jr.", Position: "RB", ADP: 14})
	return ds
}

func TestReconcileRunsEnrichersInOrder(t *testing.T) {
	var order []sources.ID
	rankings := &fakeEnricher{id: sources.RankingsID, log: &order, fn: func(target sources.Target, r sources.Reporter) error {
		p, ok := target.Get("jalen_hurts")
		require.True(t, ok)
		p.SetRankings(1, 2, 3, 4)
		p.SetFavorite(true)
		return nil
	}}
	depth := &fakeEnricher{id: sources.DepthChartID, log: &order, fn: func(target sources.Target, r sources.Reporter) error {
		p, _ := target.Get("jalen_hurts")
		assert.True(t, p.HasRankings(), "rankings ran first")
		one := 1
		p.SetDepth(&one, &one)
		return nil
	}}

	r, err := reconciler.New(&fakePrimary{ds: primaryDataset()}, reconciler.WithEnrichers(rankings, depth))
	require.NoError(t, err)

	result, err := r.Reconcile(context.Background(), settings)
	require.NoError(t, err)

	assert.Equal(t, []sources.ID{sources.RankingsID, sources.DepthChartID}, order)
	assert.Equal(t, []sources.ID{sources.ADPID, sources.RankingsID, sources.DepthChartID}, result.Metadata.Sources)
	assert.False(t, result.Metadata.EndTime.Before(result.Metadata.StartTime))

	hurts, _ := result.Dataset.Get("jalen_hurts")
	assert.Equal(t, 4, *hurts.Jason)
	assert.Equal(t, 1, *hurts.DepthOrder)
	assert.True(t, hurts.IsFavorite())
	assert.Equal(t, 0, result.Report().Len())
}

func TestReconcileIsPrimaryGated(t *testing.T) {
	enricher := &fakeEnricher{id: sources.RankingsID, fn: func(target sources.Target, r sources.Reporter) error {
		if _, ok := target.Get("nobody"); !ok {
			r.Report(sources.Issue{Source: sources.RankingsID, Kind: sources.IssueUnmatched, Key: "nobody", Name: "Nobody", Message: "no ADP record"})
		}
		return nil
	}}

	r, err := reconciler.New(&fakePrimary{ds: primaryDataset()}, reconciler.WithEnrichers(enricher))
	require.NoError(t, err)
	result, err := r.Reconcile(context.Background(), settings)
	require.NoError(t, err)

	assert.Equal(t, []identity.Key{"jalen_hurts", "travis_etienne"}, result.Dataset.Keys())
	assert.Equal(t, 1, result.Report().Count(sources.IssueUnmatched))
}

func TestReconcileLogsAndObservesIssues(t *testing.T) {
	tl := logging.NewTestLogger(t)
	obs := &countingObserver{}
	primary := &fakePrimary{
		ds: primaryDataset(),
		issues: []sources.Issue{{
			Source: sources.ADPID, Kind: sources.IssueCollision, Key: "travis_etienne",
			Name: "Travis Etienne", Message: "duplicate identity key, later record kept",
		}},
	}

	r, err := reconciler.New(primary, reconciler.WithObservers(obs))
	require.NoError(t, err)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	result, err := r.Reconcile(ctx, settings)
	require.NoError(t, err)

	warnings := tl.EntriesWith("level", "warn")
	require.Len(t, warnings, 1)
	assert.Equal(t, "adp", warnings[0]["source"])
	assert.Equal(t, "collision", warnings[0]["kind"])
	assert.Equal(t, "travis_etienne", warnings[0]["key"])
	assert.Equal(t, "Travis Etienne", warnings[0]["name"])

	assert.Equal(t, []sources.IssueKind{sources.IssueCollision}, obs.kinds)
	assert.Equal(t, "1 issue: collision=1", result.Report().Summary())
}

func TestReconcilePrimaryFailureIsFatal(t *testing.T) {
	var ran []sources.ID
	apiErr := &errors.APIError{Source: "adp", StatusCode: 200, Status: "Error", Message: "bad status"}
	r, err := reconciler.New(&fakePrimary{err: apiErr}, reconciler.WithEnrichers(&fakeEnricher{id: sources.RankingsID, log: &ran}))
	require.NoError(t, err)

	result, err := r.Reconcile(context.Background(), settings)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errors.ErrBadStatus)
	assert.Empty(t, ran, "enrichers never run after a primary failure")
}

func TestReconcileEnricherErrorAborts(t *testing.T) {
	enricher := &fakeEnricher{id: sources.DepthChartID, fn: func(sources.Target, sources.Reporter) error {
		return context.Canceled
	}}
	r, err := reconciler.New(&fakePrimary{ds: primaryDataset()}, reconciler.WithEnrichers(enricher))
	require.NoError(t, err)

	_, err = r.Reconcile(context.Background(), settings)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReconcileNilDataset(t *testing.T) {
	r, err := reconciler.New(&fakePrimary{})
	require.NoError(t, err)
	_, err = r.Reconcile(context.Background(), settings)
	assert.Error(t, err)
}

func TestReconcileRejectsInvalidSettings(t *testing.T) {
	r, err := reconciler.New(&fakePrimary{ds: primaryDataset()})
	require.NoError(t, err)
	_, err = r.Reconcile(context.Background(), league.Settings{Format: "ppr", Teams: 9, Year: 2023})
	assert.True(t, errors.IsValidationError(err))
}

func TestNewValidation(t *testing.T) {
	_, err := reconciler.New(nil)
	assert.True(t, errors.IsValidationError(err))

	_, err = reconciler.New(&fakePrimary{}, reconciler.WithEnrichers(nil))
	assert.True(t, errors.IsValidationError(err))

	_, err = reconciler.New(&fakePrimary{}, reconciler.WithEnrichers(
		&fakeEnricher{id: sources.RankingsID},
		&fakeEnricher{id: sources.RankingsID},
	))
	assert.True(t, errors.IsValidationError(err))

	_, err = reconciler.New(&fakePrimary{}, reconciler.WithCollector(nil))
	assert.True(t, errors.IsValidationError(err))
}

func TestSharedCollector(t *testing.T) {
	collector := reconciler.NewCollector(logging.NewNopLogger())
	r, err := reconciler.New(&fakePrimary{ds: primaryDataset()}, reconciler.WithCollector(collector))
	require.NoError(t, err)

	result, err := r.Reconcile(context.Background(), settings)
	require.NoError(t, err)

	collector.Report(sources.Issue{Source: sources.OrganizerID, Kind: sources.IssueMissingADP, Key: "x"})
	assert.Equal(t, 1, result.Report().Count(sources.IssueMissingADP))
	assert.Len(t, collector.Snapshot().Filter(sources.OrganizerID, ""), 1)
}

func TestReportSummary(t *testing.T) {
	report := &reconciler.Report{}
	assert.Equal(t, "no issues", report.Summary())

	report.Issues = []sources.Issue{
		{Source: sources.RankingsID, Kind: sources.IssueUnmatched},
		{Source: sources.ADPID, Kind: sources.IssueCollision},
		{Source: sources.RankingsID, Kind: sources.IssueUnmatched},
	}
	assert.Equal(t, "3 issues: collision=1, unmatched=2", report.Summary())
	assert.Len(t, report.Filter(sources.RankingsID, sources.IssueUnmatched), 2)
	assert.Len(t, report.Filter("", ""), 3)
}
