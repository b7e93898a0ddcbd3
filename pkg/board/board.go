// Package board organizes a merged dataset into a positional draft board.
package board

import (
	"context"
	"fmt"
	"sort"

	"github.com/agentstation/draftboard/pkg/identity"
	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Position is a board column.
type Position string

// Board positions, in display order.
const (
	QB Position = "qb"
	RB Position = "rb"
	WR Position = "wr"
	TE Position = "te"
)

// Positions lists every board position in display order.
var Positions = []Position{QB, RB, WR, TE}

// excluded positions are dropped without a report.
var excluded = map[string]bool{"k": true, "pk": true, "def": true, "dst": true}

// Board is an immutable position -> players mapping, each column sorted by ADP.
type Board struct {
	columns map[Position][]*players.Player
}

// Organize partitions ds by position and sorts each column by ascending ADP.
// Ties keep dataset order. Kickers and defenses are dropped silently; other
// unknown positions and players without a valid ADP are reported and dropped.
func Organize(ctx context.Context, ds *players.Dataset, reporter sources.Reporter) *Board {
	b := &Board{columns: make(map[Position][]*players.Player, len(Positions))}
	for _, pos := range Positions {
		b.columns[pos] = []*players.Player{}
	}

	excludedCount := 0
	ds.Each(func(key identity.Key, p *players.Player) bool {
		pos := p.PositionKey()
		if excluded[pos] {
			excludedCount++
			return true
		}
		column, ok := b.columns[Position(pos)]
		if !ok {
			report(reporter, sources.Issue{
				Source: sources.OrganizerID, Kind: sources.IssueUnrecognizedPosition,
				Key: key, Name: p.Name, Message: fmt.Sprintf("position %q not on board", p.Position),
			})
			return true
		}
		if !p.HasValidADP() {
			report(reporter, sources.Issue{
				Source: sources.OrganizerID, Kind: sources.IssueMissingADP,
				Key: key, Name: p.Name, Message: fmt.Sprintf("invalid ADP %v", p.ADP),
			})
			return true
		}
		b.columns[Position(pos)] = append(column, p.Clone())
		return true
	})

	for _, pos := range Positions {
		column := b.columns[pos]
		sort.SliceStable(column, func(i, j int) bool {
			return column[i].ADP < column[j].ADP
		})
	}

	logging.FromContext(ctx).Debug().
		Int("qb", len(b.columns[QB])).
		Int("rb", len(b.columns[RB])).
		Int("wr", len(b.columns[WR])).
		Int("te", len(b.columns[TE])).
		Int("excluded", excludedCount).
		Msg("Board organized")
	return b
}

func report(r sources.Reporter, issue sources.Issue) {
	if r != nil {
		r.Report(issue)
	}
}

// Get returns a copy of the column for pos. Unknown positions yield nil.
func (b *Board) Get(pos Position) []*players.Player {
	column, ok := b.columns[pos]
	if !ok {
		return nil
	}
	out := make([]*players.Player, len(column))
	for i, p := range column {
		out[i] = p.Clone()
	}
	return out
}

// Positions returns the board positions in display order.
func (b *Board) Positions() []Position {
	out := make([]Position, len(Positions))
	copy(out, Positions)
	return out
}

// Len returns the number of players on the board.
func (b *Board) Len() int {
	n := 0
	for _, column := range b.columns {
		n += len(column)
	}
	return n
}

// Rows returns the number of rows needed to show every column side by side.
func (b *Board) Rows() int {
	rows := 0
	for _, column := range b.columns {
		rows = max(rows, len(column))
	}
	return rows
}

// Counts returns the number of players per position.
func (b *Board) Counts() map[Position]int {
	counts := make(map[Position]int, len(b.columns))
	for pos, column := range b.columns {
		counts[pos] = len(column)
	}
	return counts
}

// Favorites returns the favorite players across all columns, ordered by ADP.
func (b *Board) Favorites() []*players.Player {
	var out []*players.Player
	for _, pos := range Positions {
		for _, p := range b.columns[pos] {
			if p.IsFavorite() {
				out = append(out, p.Clone())
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ADP < out[j].ADP })
	return out
}
