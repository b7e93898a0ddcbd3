package build_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/draftboard/cmd/draftboard/cmd/build"
	"github.com/agentstation/draftboard/internal/appcontext"
	"github.com/agentstation/draftboard/internal/pipeline"
	"github.com/agentstation/draftboard/pkg/errors"
)

const adpBody = `{"status": "Success", "players": [
	{"player_id": 1, "name": "Christian McCaffrey", "position": "RB", "team": "SF", "adp": 1.3},
	{"player_id": 2, "name": "Jalen Hurts", "position": "QB", "team": "PHI", "adp": 22.0}
]}`

func newApp(t *testing.T) (*appcontext.Mock, string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/adp/ppr", r.URL.Path)
		_, _ = w.Write([]byte(adpBody))
	}))
	t.Cleanup(srv.Close)

	work := t.TempDir()
	return &appcontext.Mock{Options: pipeline.Options{
		RankingsDir: filepath.Join(work, "ffrd"),
		OutputDir:   filepath.Join(work, "files"),
		CacheDir:    filepath.Join(work, "files"),
		ADPBaseURL:  srv.URL + "/adp",
	}}, work
}

func run(t *testing.T, app *appcontext.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := build.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	app, work := newApp(t)
	outDir := filepath.Join(work, "boards")

	out, err := run(t, app, "-s", "ppr", "-t", "12", "--year", "2023", "--output-dir", outDir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, filepath.Join(outDir, "db_v1_2023_ppr_12.html"), lines[0])
	assert.Equal(t, "ppr/12 teams/2023: 2 players from fresh data, 5 issues: missing_file=4, skipped=1", lines[4])
	assert.FileExists(t, filepath.Join(work, "files", "draft_board_data_ppr_12_2023.json"))

	out, err = run(t, app, "-s", "ppr", "-t", "12", "--year", "2023", "--output-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "2 players from cached data, no issues")
}

func TestBuildValidation(t *testing.T) {
	app, _ := newApp(t)

	_, err := run(t, app, "-t", "12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scoring")

	_, err = run(t, app, "-s", "superflex", "-t", "12")
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, app, "-s", "ppr", "-t", "9")
	assert.True(t, errors.IsValidationError(err))
}
