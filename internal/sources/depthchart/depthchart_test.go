package depthchart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/draftboard/internal/cache"
	"github.com/agentstation/draftboard/internal/sources/depthchart"
	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/sources"
)

type collector struct {
	issues []sources.Issue
}

func (c *collector) Report(i sources.Issue) {
	c.issues = append(c.issues, i)
}

var settings = league.Settings{Format: league.FormatPPR, Teams: 12, Year: 2023}

const body = `[
	{"PlayerID": 1, "Name": "Jalen Hurts", "Team": "PHI", "Position": "QB", "DepthOrder": 1, "DepthDisplayOrder": 1},
	{"PlayerID": 2, "Name": "Travis Etienne Jr.", "Team": "JAX", "Position": "RB", "DepthOrder": 1, "DepthDisplayOrder": 2},
	{"PlayerID": 3, "Name": "Backup Person", "Team": "JAX", "Position": "RB", "DepthOrder": 2, "DepthDisplayOrder": 3},
	{"PlayerID": 4, "Name": "Gabriel Davis", "Team": "BUF", "Position": "WR", "DepthOrder": null, "DepthDisplayOrder": null}
]`

func dataset() *players.Dataset {
	ds := players.NewDataset()
	ds.Put("jalen_hurts", &players.Player{Name: "Jalen Hurts", Position: "QB", ADP: 22})
	ds.Put("travis_etienne", &players.Player{Name: "Travis Etienne Jr.", Position: "RB", ADP: 14})
	ds.Put("gabe_davis", &players.Player{Name: "Gabe Davis", Position: "WR", ADP: 70})
	return ds
}

func upstream(t *testing.T, status int, payload string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v3/nfl/scores/json/Players", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Ocp-Apim-Subscription-Key"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestEnrichFetchesAndCaches(t *testing.T) {
	srv, calls := upstream(t, http.StatusOK, body)
	store := cache.New(t.TempDir())
	ds := dataset()
	rep := &collector{}

	src := depthchart.New(
		depthchart.WithBaseURL(srv.URL),
		depthchart.WithAPIKey("secret"),
		depthchart.WithStore(store),
	)
	require.NoError(t, src.Enrich(context.Background(), settings, sources.DatasetTarget(ds), rep))
	assert.Empty(t, rep.issues)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, sources.DepthChartID, src.ID())

	hurts, _ := ds.Get("jalen_hurts")
	assert.Equal(t, 1, *hurts.DepthOrder)
	etienne, _ := ds.Get("travis_etienne")
	assert.Equal(t, 2, *etienne.DepthDisplayOrder)
	davis, _ := ds.Get("gabe_davis")
	assert.Nil(t, davis.DepthOrder)
	assert.Equal(t, 3, ds.Len(), "unknown entries never create players")

	assert.FileExists(t, store.DepthChartPath())

	// Second run reads the snapshot.
	require.NoError(t, src.Enrich(context.Background(), settings, sources.DatasetTarget(dataset()), rep))
	assert.Equal(t, int32(1), calls.Load())

	// Refresh bypasses it.
	refreshing := depthchart.New(
		depthchart.WithBaseURL(srv.URL),
		depthchart.WithAPIKey("secret"),
		depthchart.WithStore(store),
		depthchart.WithRefresh(true),
	)
	require.NoError(t, refreshing.Enrich(context.Background(), settings, sources.DatasetTarget(dataset()), rep))
	assert.Equal(t, int32(2), calls.Load())
}

func TestEnrichWithoutCredential(t *testing.T) {
	srv, calls := upstream(t, http.StatusOK, body)
	store := cache.New(t.TempDir())
	require.NoError(t, store.SaveDepthChart([]byte(body)))
	ds := dataset()
	rep := &collector{}

	src := depthchart.New(depthchart.WithBaseURL(srv.URL), depthchart.WithStore(store), depthchart.WithAPIKey("  "))
	require.NoError(t, src.Enrich(context.Background(), settings, sources.DatasetTarget(ds), rep))

	assert.Zero(t, calls.Load())
	require.Len(t, rep.issues, 1)
	assert.Equal(t, sources.IssueSkipped, rep.issues[0].Kind)
	assert.True(t, errors.IsAPIKeyError(rep.issues[0].Err))

	hurts, _ := ds.Get("jalen_hurts")
	assert.Nil(t, hurts.DepthOrder, "cached snapshot is not used without a credential")
}

func TestEnrichUpstreamFailureIsRecoverable(t *testing.T) {
	srv, _ := upstream(t, http.StatusUnauthorized, `{"message":"bad key"}`)
	store := cache.New(t.TempDir())
	ds := dataset()
	rep := &collector{}

	src := depthchart.New(depthchart.WithBaseURL(srv.URL), depthchart.WithAPIKey("secret"), depthchart.WithStore(store))
	require.NoError(t, src.Enrich(context.Background(), settings, sources.DatasetTarget(ds), rep))

	require.Len(t, rep.issues, 1)
	assert.Equal(t, sources.IssueSourceFailure, rep.issues[0].Kind)
	assert.True(t, errors.IsBadStatus(rep.issues[0].Err))
	_, err := os.Stat(store.DepthChartPath())
	assert.True(t, os.IsNotExist(err))
}

func TestEnrichUndecodableResponse(t *testing.T) {
	srv, _ := upstream(t, http.StatusOK, `{"not":"a list"}`)
	rep := &collector{}
	src := depthchart.New(depthchart.WithBaseURL(srv.URL), depthchart.WithAPIKey("secret"), depthchart.WithStore(cache.New(t.TempDir())))
	require.NoError(t, src.Enrich(context.Background(), settings, sources.DatasetTarget(dataset()), rep))

	require.Len(t, rep.issues, 1)
	assert.Equal(t, sources.IssueParseFailure, rep.issues[0].Kind)
}

func TestEnrichCorruptSnapshotRefetches(t *testing.T) {
	srv, calls := upstream(t, http.StatusOK, body)
	store := cache.New(t.TempDir())
	require.NoError(t, os.WriteFile(store.DepthChartPath(), []byte("garbage"), 0o644))
	ds := dataset()
	rep := &collector{}

	src := depthchart.New(depthchart.WithBaseURL(srv.URL), depthchart.WithAPIKey("secret"), depthchart.WithStore(store))
	require.NoError(t, src.Enrich(context.Background(), settings, sources.DatasetTarget(ds), rep))

	assert.Equal(t, int32(1), calls.Load())
	require.Len(t, rep.issues, 1)
	assert.Equal(t, sources.IssueParseFailure, rep.issues[0].Kind)
	hurts, _ := ds.Get("jalen_hurts")
	assert.Equal(t, 1, *hurts.DepthOrder)
}
