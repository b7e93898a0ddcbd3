package show_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/draftboard/cmd/draftboard/cmd/show"
	"github.com/agentstation/draftboard/internal/appcontext"
	"github.com/agentstation/draftboard/internal/cmd/output"
	"github.com/agentstation/draftboard/internal/pipeline"
)

const adpBody = `{"status": "Success", "players": [
	{"player_id": 1, "name": "Christian McCaffrey", "position": "RB", "team": "SF", "adp": 1.3},
	{"player_id": 2, "name": "Jalen Hurts", "position": "QB", "team": "PHI", "adp": 22.0}
]}`

func TestShowJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(adpBody))
	}))
	defer srv.Close()

	work := t.TempDir()
	app := &appcontext.Mock{
		Format: "json",
		Options: pipeline.Options{
			RankingsDir: filepath.Join(work, "ffrd"),
			OutputDir:   filepath.Join(work, "boards"),
			CacheDir:    filepath.Join(work, "files"),
			ADPBaseURL:  srv.URL + "/adp",
			MetricsFile: filepath.Join(work, "run.prom"),
		},
	}

	cmd := show.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-s", "ppr", "-t", "10", "--year", "2023"})
	require.NoError(t, cmd.Execute())

	var doc output.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "ppr", doc.Scoring)
	assert.Equal(t, 10, doc.Teams)
	require.Len(t, doc.Positions, 4)
	require.Len(t, doc.Positions[0].Players, 1)
	assert.Equal(t, "Jalen Hurts", doc.Positions[0].Players[0].Name)
	require.Len(t, doc.Positions[1].Players, 1)
	assert.Equal(t, "Christian McCaffrey", doc.Positions[1].Players[0].Name)
	assert.Equal(t, "5 issues: missing_file=4, skipped=1", doc.Summary)

	assert.NoDirExists(t, filepath.Join(work, "boards"))
	assert.NoFileExists(t, filepath.Join(work, "run.prom"))
	assert.FileExists(t, filepath.Join(work, "files", "draft_board_data_ppr_10_2023.json"))
}

func TestShowRejectsFormat(t *testing.T) {
	cmd := show.NewCommand(&appcontext.Mock{Format: "csv"})
	cmd.SetArgs([]string{"-s", "ppr", "-t", "10"})
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
