// Package rankings enriches players with analyst rankings read from
// per-position CSV files: <dir>/<scoring>/{qb,rb,wr,te}.csv.
//
// Each file has a header row with Name, Rank, Andy, Mike and Jason columns.
// Rows are matched to existing players by identity key. Rows for unknown
// players are reported and skipped.
package rankings

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agentstation/draftboard/pkg/constants"
	"github.com/agentstation/draftboard/pkg/identity"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Positions are read in this order.
var Positions = []string{"qb", "rb", "wr", "te"}

// Column names.
const (
	ColumnName  = "Name"
	ColumnRank  = "Rank"
	ColumnAndy  = "Andy"
	ColumnMike  = "Mike"
	ColumnJason = "Jason"
)

var scoreColumns = []string{ColumnRank, ColumnAndy, ColumnMike, ColumnJason}

// Source reads ranking CSVs.
type Source struct {
	dir        string
	normalizer *identity.Normalizer
	favorites  identity.Set
}

// Option configures a Source.
type Option func(*Source)

// WithDir sets the rankings root directory.
func WithDir(dir string) Option {
	return func(s *Source) {
		if dir != "" {
			s.dir = dir
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

// WithFavorites sets the favorites used for the my_guy flag.
func WithFavorites(favorites identity.Set) Option {
	return func(s *Source) {
		s.favorites = favorites
	}
}

// New creates a rankings source.
func New(opts ...Option) *Source {
	s := &Source{
		dir:        constants.DefaultRankingsDir,
		normalizer: identity.NewDefaultNormalizer(),
		favorites:  identity.DefaultFavorites(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID implements sources.Enricher.
func (s *Source) ID() sources.ID {
	return sources.RankingsID
}

// Path returns the CSV path for a position.
func (s *Source) Path(format league.Format, position string) string {
	return filepath.Join(s.dir, string(format), position+".csv")
}

// Enrich implements sources.Enricher. It never fails on file contents; only
// cancellation is returned.
func (s *Source) Enrich(ctx context.Context, settings league.Settings, target sources.Target, reporter sources.Reporter) error {
	logger := logging.FromContext(ctx)
	for _, position := range Positions {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := s.Path(settings.Format, position)
		matched := s.readFile(path, target, reporter)
		logger.Debug().Str("file", path).Int("matched", matched).Msg("Rankings file processed")
	}
	return nil
}

func (s *Source) readFile(path string, target sources.Target, reporter sources.Reporter) int {
	f, err := os.Open(path)
	if err != nil {
		kind, msg := sources.IssueMissingFile, "ranking file does not exist"
		if !os.IsNotExist(err) {
			kind, msg = sources.IssueParseFailure, "ranking file could not be opened"
		}
		reporter.Report(sources.Issue{Source: sources.RankingsID, Kind: kind, File: path, Message: msg, Err: err})
		return 0
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		reporter.Report(sources.Issue{
			Source: sources.RankingsID, Kind: sources.IssueParseFailure, File: path,
			Message: "ranking file has no header row", Err: err,
		})
		return 0
	}
	cols := columnIndex(header)
	nameCol, ok := cols[ColumnName]
	if !ok {
		reporter.Report(sources.Issue{
			Source: sources.RankingsID, Kind: sources.IssueParseFailure, File: path,
			Message: "ranking file has no Name column",
		})
		return 0
	}

	matched := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Read consumes the offending line, so the next row is still usable.
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				reporter.Report(sources.Issue{
					Source: sources.RankingsID, Kind: sources.IssueParseFailure, File: path,
					Message: "ranking file could not be read, rest of file skipped", Err: err,
				})
				break
			}
			reporter.Report(sources.Issue{
				Source: sources.RankingsID, Kind: sources.IssueParseFailure, File: path,
				Message: fmt.Sprintf("unreadable row at line %d", perr.Line), Err: err,
			})
			continue
		}

		name := field(row, nameCol)
		if name == "" {
			continue
		}
		key := s.normalizer.Normalize(name)
		p, ok := target.Get(key)
		if !ok {
			reporter.Report(sources.Issue{
				Source: sources.RankingsID, Kind: sources.IssueUnmatched, Key: key, Name: name, File: path,
				Message: "no ADP record for ranked player",
			})
			continue
		}
		matched++

		p.SetFavorite(s.favorites.Contains(key))

		scores, err := parseScores(row, cols)
		if err != nil {
			reporter.Report(sources.Issue{
				Source: sources.RankingsID, Kind: sources.IssueParseFailure, Key: key, Name: name, File: path,
				Message: err.Error(), Err: err,
			})
			continue
		}
		p.SetRankings(scores[0], scores[1], scores[2], scores[3])
	}
	return matched
}

// parseScores parses Rank, Andy, Mike and Jason. It fails as a whole when any
// one of them is missing or not an integer.
func parseScores(row []string, cols map[string]int) ([4]int, error) {
	var scores [4]int
	for i, col := range scoreColumns {
		idx, ok := cols[col]
		if !ok {
			return scores, fmt.Errorf("missing %s column", col)
		}
		v, err := strconv.Atoi(field(row, idx))
		if err != nil {
			return scores, fmt.Errorf("bad %s value %q", col, field(row, idx))
		}
		scores[i] = v
	}
	return scores, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
