// Package pipeline runs a complete draft board build: snapshot lookup,
// ingestion and merge, organization, rendering and run metrics.
package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/agentstation/draftboard/internal/cache"
	"github.com/agentstation/draftboard/internal/metrics"
	"github.com/agentstation/draftboard/internal/render"
	"github.com/agentstation/draftboard/internal/sources/adp"
	"github.com/agentstation/draftboard/internal/sources/depthchart"
	"github.com/agentstation/draftboard/internal/sources/rankings"
	"github.com/agentstation/draftboard/pkg/board"
	"github.com/agentstation/draftboard/pkg/constants"
	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/identity"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/reconciler"
)

// Options configures one run.
type Options struct {
	Settings league.Settings

	RankingsDir string
	OutputDir   string
	CacheDir    string

	ADPBaseURL        string
	SportsDataBaseURL string
	SportsDataKey     string

	// AliasesFile optionally extends or replaces the alias table and favorites.
	AliasesFile string
	// MetricsFile receives a Prometheus textfile when set.
	MetricsFile string

	// ClearCache ignores the dataset snapshot; a successful run replaces it.
	ClearCache bool
	// ClearDepthCache refetches the depth chart even when a snapshot exists.
	ClearDepthCache bool
	// SkipRender stops after organizing the board.
	SkipRender bool

	HTTPClient *http.Client
	Now        func() time.Time
}

func (o *Options) defaults() {
	if o.RankingsDir == "" {
		o.RankingsDir = constants.DefaultRankingsDir
	}
	if o.OutputDir == "" {
		o.OutputDir = constants.DefaultOutputDir
	}
	if o.CacheDir == "" {
		o.CacheDir = constants.DefaultCacheDir
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Outcome is what a run produced.
type Outcome struct {
	Board     *board.Board
	Report    *reconciler.Report
	FromCache bool
	Artifacts []string
}

// Run executes the build. Only fatal conditions are returned as errors;
// everything else is in Outcome.Report.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	// Step 1: Validate options
	opts.defaults()
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}
	signature := opts.Settings.Signature()
	ctx = logging.WithOperation(ctx, "build")
	ctx = logging.WithSignature(ctx, signature)
	logger := logging.FromContext(ctx)

	// Step 2: Load identity configuration
	normalizer, favorites, err := loadIdentity(opts.AliasesFile)
	if err != nil {
		return nil, err
	}

	// Step 3: Set up reporting
	var recorder *metrics.Recorder
	var observers []reconciler.Observer
	if opts.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		observers = append(observers, recorder)
	}
	collector := reconciler.NewCollector(logger, observers...)
	store := cache.New(opts.CacheDir)

	// Step 4: Use the dataset snapshot or rebuild it
	start := time.Now()
	ds, fromCache := lookupSnapshot(ctx, store, signature, opts.ClearCache)
	recorder.RecordSnapshot(fromCache)
	if !fromCache {
		ds, err = reconcile(ctx, opts, store, normalizer, favorites, collector)
		if err != nil {
			return nil, err
		}
		if err := store.SaveDataset(signature, ds); err != nil {
			return nil, errors.WrapResource("save", "snapshot", signature, err)
		}
		logger.Info().Str("file", store.DatasetPath(signature)).Msg("Dataset snapshot saved")
	}
	recorder.RecordStage("ingest", time.Since(start))

	// Step 5: Organize by position
	start = time.Now()
	b := board.Organize(ctx, ds, collector)
	recorder.RecordStage("organize", time.Since(start))

	outcome := &Outcome{Board: b, FromCache: fromCache}

	// Step 6: Render
	if !opts.SkipRender {
		start = time.Now()
		outcome.Artifacts, err = render.WriteAll(ctx, opts.OutputDir, b, opts.Settings, opts.Now())
		if err != nil {
			return nil, err
		}
		recorder.RecordStage("render", time.Since(start))
	}

	// Step 7: Report and metrics
	outcome.Report = collector.Snapshot()
	counts := make(map[string]int, len(board.Positions))
	for pos, n := range b.Counts() {
		counts[string(pos)] = n
	}
	recorder.RecordBoard(counts)
	recorder.MarkFinished(opts.Now())
	if err := recorder.WriteFile(opts.MetricsFile); err != nil {
		return nil, err
	}

	logger.Info().
		Bool("from_cache", fromCache).
		Int("players", b.Len()).
		Str("issues", outcome.Report.Summary()).
		Msg("Build complete")
	return outcome, nil
}

// lookupSnapshot returns the cached dataset when one is usable. A corrupt
// snapshot is logged and treated as a miss. On refresh the snapshot is left
// on disk until a successful run overwrites it.
func lookupSnapshot(ctx context.Context, store *cache.Store, signature string, refresh bool) (*players.Dataset, bool) {
	logger := logging.FromContext(ctx)
	if refresh {
		logger.Info().Str("file", store.DatasetPath(signature)).Msg("Ignoring dataset snapshot")
		return nil, false
	}

	ds, err := store.LoadDataset(signature)
	switch {
	case err == nil:
		logger.Info().
			Str("file", store.DatasetPath(signature)).
			Int("players", ds.Len()).
			Msg("Using dataset snapshot")
		return ds, true
	case errors.IsNotFound(err):
		logger.Debug().Msg("No dataset snapshot")
	default:
		logger.Warn().Err(err).Msg("Ignoring unreadable dataset snapshot")
	}
	return nil, false
}

func reconcile(ctx context.Context, opts Options, store *cache.Store, normalizer *identity.Normalizer, favorites identity.Set, collector *reconciler.Collector) (*players.Dataset, error) {
	primary := adp.New(
		adp.WithBaseURL(opts.ADPBaseURL),
		adp.WithNormalizer(normalizer),
		adp.WithHTTPClient(opts.HTTPClient),
	)
	ranks := rankings.New(
		rankings.WithDir(opts.RankingsDir),
		rankings.WithNormalizer(normalizer),
		rankings.WithFavorites(favorites),
	)
	depth := depthchart.New(
		depthchart.WithBaseURL(opts.SportsDataBaseURL),
		depthchart.WithAPIKey(opts.SportsDataKey),
		depthchart.WithRefresh(opts.ClearDepthCache),
		depthchart.WithStore(store),
		depthchart.WithNormalizer(normalizer),
		depthchart.WithHTTPClient(opts.HTTPClient),
	)

	r, err := reconciler.New(primary,
		reconciler.WithEnrichers(ranks, depth),
		reconciler.WithCollector(collector),
	)
	if err != nil {
		return nil, err
	}
	result, err := r.Reconcile(ctx, opts.Settings)
	if err != nil {
		return nil, err
	}
	return result.Dataset, nil
}

func loadIdentity(path string) (*identity.Normalizer, identity.Set, error) {
	if path == "" {
		return identity.NewDefaultNormalizer(), identity.DefaultFavorites(), nil
	}
	f, err := identity.LoadFile(path)
	if err != nil {
		return nil, identity.Set{}, errors.NewConfigError("aliases_file", "cannot load "+path, err)
	}
	return f.Normalizer(), f.FavoriteSet(), nil
}
