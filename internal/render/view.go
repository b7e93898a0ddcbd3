// Package render turns an organized board into the on-disk artifacts: the
// full HTML board, the printable PDF board with its HTML source, and a
// Markdown board.
package render

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/draftboard/pkg/board"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/players"
)

// View is the renderer-neutral form of a board.
type View struct {
	Title     string
	Subtitle  string
	Settings  league.Settings
	Generated time.Time
	Columns   []Column

	// Rows holds the columns side by side; short columns are padded with empty cells.
	Rows [][]Cell

	Favorites []Cell
}

// Column is one position.
type Column struct {
	Position board.Position
	Heading  string
	Players  []Cell
}

// Cell is one player as shown on the board.
type Cell struct {
	Empty    bool
	Slot     int
	Position string
	Name     string
	Team     string
	ADP      string
	Bye      int
	Favorite bool
	Rankings string
	Depth    string
}

// Label is the one-line text used by the PDF and Markdown boards.
func (c Cell) Label() string {
	if c.Empty {
		return ""
	}
	parts := []string{fmt.Sprintf("%d. %s", c.Slot, c.Name)}
	if c.Team != "" {
		parts = append(parts, c.Team)
	}
	parts = append(parts, c.ADP)
	return strings.Join(parts, " ")
}

// NewView builds a view of b.
func NewView(b *board.Board, settings league.Settings, generated time.Time) *View {
	upper := cases.Upper(language.English)
	v := &View{
		Title:     fmt.Sprintf("%d %s Draft Board", settings.Year, upper.String(string(settings.Format))),
		Subtitle:  fmt.Sprintf("%d-team league", settings.Teams),
		Settings:  settings,
		Generated: generated,
	}

	for _, pos := range b.Positions() {
		col := Column{Position: pos, Heading: upper.String(string(pos))}
		for i, p := range b.Get(pos) {
			cell := newCell(i+1, col.Heading, p)
			col.Players = append(col.Players, cell)
			if cell.Favorite {
				v.Favorites = append(v.Favorites, cell)
			}
		}
		v.Columns = append(v.Columns, col)
	}

	rows := b.Rows()
	v.Rows = make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		v.Rows[r] = make([]Cell, len(v.Columns))
		for c, col := range v.Columns {
			if r < len(col.Players) {
				v.Rows[r][c] = col.Players[r]
			} else {
				v.Rows[r][c] = Cell{Empty: true}
			}
		}
	}
	return v
}

func newCell(slot int, position string, p *players.Player) Cell {
	cell := Cell{
		Slot:     slot,
		Position: position,
		Name:     p.Name,
		Team:     p.Team,
		ADP:      formatADP(p),
		Bye:      p.Bye,
		Favorite: p.IsFavorite(),
	}
	if p.HasRankings() {
		cell.Rankings = fmt.Sprintf("#%d (A%d M%d J%d)", *p.Rank, *p.Andy, *p.Mike, *p.Jason)
	}
	if p.DepthOrder != nil {
		cell.Depth = fmt.Sprintf("%s%d", position, *p.DepthOrder)
	}
	return cell
}

func formatADP(p *players.Player) string {
	if p.ADPFormatted != "" {
		return p.ADPFormatted
	}
	return fmt.Sprintf("%.1f", p.ADP)
}

// FileKey is the <year>_<scoring>_<teams> suffix of every artifact name.
func FileKey(s league.Settings) string {
	return fmt.Sprintf("%d_%s_%d", s.Year, s.Format, s.Teams)
}
