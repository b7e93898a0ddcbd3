// Package adp ingests average draft position data from the
// fantasyfootballcalculator API. It is the primary source: the players it
// returns are the only players a board can contain.
package adp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/draftboard/internal/transport"
	"github.com/agentstation/draftboard/pkg/constants"
	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/identity"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Response is the ADP API document.
type Response struct {
	Status  string           `json:"status"`
	Meta    Meta             `json:"meta"`
	Players []players.Player `json:"players"`
}

// Meta describes the mock drafts behind the ADP numbers.
type Meta struct {
	Type        string `json:"type"`
	Teams       int    `json:"teams"`
	Rounds      int    `json:"rounds"`
	TotalDrafts int    `json:"total_drafts"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Source fetches ADP data.
type Source struct {
	baseURL    string
	normalizer *identity.Normalizer
	client     *transport.Client
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
		s.client = transport.New(string(sources.ADPID), &transport.NoAuth{}, transport.WithHTTPClient(hc))
	}
}

// New creates an ADP source.
func New(opts ...Option) *Source {
	s := &Source{
		baseURL:    constants.ADPBaseURL,
		normalizer: identity.NewDefaultNormalizer(),
		client:     transport.New(string(sources.ADPID), &transport.NoAuth{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID implements sources.Primary.
func (s *Source) ID() sources.ID {
	return sources.ADPID
}

// URL returns the request URL for settings.
func (s *Source) URL(settings league.Settings) string {
	q := url.Values{}
	q.Set("position", "all")
	q.Set("teams", strconv.Itoa(settings.Teams))
	q.Set("year", strconv.Itoa(settings.Year))
	return fmt.Sprintf("%s/%s?%s", s.baseURL, url.PathEscape(string(settings.Format)), q.Encode())
}

// Fetch implements sources.Primary. Transport failures, non-2xx statuses,
// undecodable bodies and a body status other than "Success" are returned as
// errors. Duplicate keys are reported and the later record wins.
func (s *Source) Fetch(ctx context.Context, settings league.Settings, reporter sources.Reporter) (*players.Dataset, error) {
	endpoint := s.URL(settings)
	logger := logging.FromContext(ctx)
	logger.Info().Str("url", endpoint).Msg("Fetching ADP data")

	var resp Response
	if err := s.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Status != constants.ADPSuccessStatus {
		status := resp.Status
		if status == "" {
			status = "missing"
		}
		return nil, &errors.APIError{
			Source:     string(sources.ADPID),
			StatusCode: http.StatusOK,
			Status:     status,
			Endpoint:   endpoint,
			Message:    "ADP API did not report success",
		}
	}

	ds := players.NewDataset()
	for i := range resp.Players {
		p := resp.Players[i]
		if strings.TrimSpace(p.Name) == "" {
			reporter.Report(sources.Issue{
				Source:  sources.ADPID,
				Kind:    sources.IssueSkipped,
				Message: fmt.Sprintf("player %d has no name", p.PlayerID),
			})
			continue
		}
		key := s.normalizer.Normalize(p.Name)
		if ds.Put(key, &p) {
			reporter.Report(sources.Issue{
				Source:  sources.ADPID,
				Kind:    sources.IssueCollision,
				Key:     key,
				Name:    p.Name,
				Message: "duplicate identity key, later record kept",
			})
		}
	}

	logger.Info().
		Int("players", ds.Len()).
		Int("total_drafts", resp.Meta.TotalDrafts).
		Str("start_date", resp.Meta.StartDate).
		Str("end_date", resp.Meta.EndDate).
		Msg("ADP data fetched")

	return ds, nil
}
