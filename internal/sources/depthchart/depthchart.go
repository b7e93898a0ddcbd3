// Package depthchart enriches players with NFL depth-chart positions from
// SportsData.io.
//
// The players document is cached on disk. A present snapshot is reused unless
// a refresh is requested. Without an API key the source is skipped entirely,
// cached snapshot or not. Every failure here is reported and the run goes on.
package depthchart

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/agentstation/draftboard/internal/cache"
	"github.com/agentstation/draftboard/internal/transport"
	"github.com/agentstation/draftboard/pkg/constants"
	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/identity"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Entry is the subset of a SportsData.io player the board uses.
type Entry struct {
	PlayerID          int    `json:"PlayerID"`
	Name              string `json:"Name"`
	Team              string `json:"Team"`
	Position          string `json:"Position"`
	DepthOrder        *int   `json:"DepthOrder"`
	DepthDisplayOrder *int   `json:"DepthDisplayOrder"`
}

// Source reads depth-chart data.
type Source struct {
	baseURL    string
	apiKey     string
	refresh    bool
	store      *cache.Store
	normalizer *identity.Normalizer
	httpClient *http.Client
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(s *Source) {
		if baseURL != "" {
			s.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithAPIKey sets the subscription key. An empty key disables the source.
func WithAPIKey(apiKey string) Option {
	return func(s *Source) {
		s.apiKey = strings.TrimSpace(apiKey)
	}
}

// WithRefresh ignores any cached snapshot and fetches fresh data.
func WithRefresh(refresh bool) Option {
	return func(s *Source) {
		s.refresh = refresh
	}
}

// WithStore sets the snapshot store.
func WithStore(store *cache.Store) Option {
	return func(s *Source) {
		if store != nil {
			s.store = store
		}
	}
}

// WithNormalizer sets the name normalizer.
func WithNormalizer(n *identity.Normalizer) Option {
	return func(s *Source) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Source) {
		s.httpClient = hc
	}
}

// New creates a depth-chart source.
func New(opts ...Option) *Source {
	s := &Source{
		baseURL:    constants.SportsDataBaseURL,
		store:      cache.New(constants.DefaultCacheDir),
		normalizer: identity.NewDefaultNormalizer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID implements sources.Enricher.
func (s *Source) ID() sources.ID {
	return sources.DepthChartID
}

// URL returns the players endpoint.
func (s *Source) URL() string {
	return s.baseURL + constants.SportsDataPlayersPath
}

// Enrich implements sources.Enricher. Only cancellation is returned as an error.
func (s *Source) Enrich(ctx context.Context, _ league.Settings, target sources.Target, reporter sources.Reporter) error {
	logger := logging.FromContext(ctx)

	if s.apiKey == "" {
		reporter.Report(sources.Issue{
			Source:  sources.DepthChartID,
			Kind:    sources.IssueSkipped,
			Message: constants.SportsDataKeyEnv + " is not set, depth chart skipped",
			Err:     &errors.AuthenticationError{Source: string(sources.DepthChartID), Method: "header", Message: "no API key"},
		})
		return nil
	}

	entries, err := s.load(ctx, reporter)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	}

	attached := 0
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		p, ok := target.Get(s.normalizer.Normalize(e.Name))
		if !ok {
			continue
		}
		p.SetDepth(e.DepthOrder, e.DepthDisplayOrder)
		attached++
	}

	logger.Info().
		Int("entries", len(entries)).
		Int("attached", attached).
		Msg("Depth chart applied")
	return nil
}

// load returns the depth-chart entries from the snapshot or the API. Failures
// are reported before being returned.
func (s *Source) load(ctx context.Context, reporter sources.Reporter) ([]Entry, error) {
	logger := logging.FromContext(ctx)

	if !s.refresh {
		raw, err := s.store.LoadDepthChart()
		switch {
		case err == nil:
			entries, err := decode(raw)
			if err == nil {
				logger.Info().Str("file", s.store.DepthChartPath()).Msg("Loading depth chart from cache")
				return entries, nil
			}
			reporter.Report(sources.Issue{
				Source: sources.DepthChartID, Kind: sources.IssueParseFailure, File: s.store.DepthChartPath(),
				Message: "cached depth chart unreadable, fetching fresh copy", Err: err,
			})
		case !errors.IsNotFound(err):
			reporter.Report(sources.Issue{
				Source: sources.DepthChartID, Kind: sources.IssueSourceFailure, File: s.store.DepthChartPath(),
				Message: "cached depth chart could not be read, fetching fresh copy", Err: err,
			})
		}
	}

	client := transport.New(string(sources.DepthChartID),
		&transport.HeaderAuth{Header: constants.SportsDataKeyHeader},
		transport.WithAPIKey(s.apiKey),
		transport.WithHTTPClient(s.httpClient),
	)
	logger.Info().Str("url", s.URL()).Msg("Fetching depth chart")

	raw, err := client.GetBytes(ctx, s.URL())
	if err != nil {
		reporter.Report(sources.Issue{
			Source: sources.DepthChartID, Kind: sources.IssueSourceFailure,
			Message: "depth chart request failed: " + err.Error(), Err: err,
		})
		return nil, err
	}

	entries, err := decode(raw)
	if err != nil {
		reporter.Report(sources.Issue{
			Source: sources.DepthChartID, Kind: sources.IssueParseFailure,
			Message: "depth chart response undecodable", Err: err,
		})
		return nil, err
	}

	if err := s.store.SaveDepthChart(raw); err != nil {
		reporter.Report(sources.Issue{
			Source: sources.DepthChartID, Kind: sources.IssueSourceFailure, File: s.store.DepthChartPath(),
			Message: "depth chart snapshot not saved", Err: err,
		})
	}
	return entries, nil
}

func decode(raw []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.WrapParse("json", constants.DepthChartSnapshotFile, err)
	}
	return entries, nil
}
