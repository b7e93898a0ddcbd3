package output

import (
	"io"
	"strconv"
	"time"

	"github.com/agentstation/draftboard/internal/render"
	"github.com/agentstation/draftboard/pkg/board"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/players"
	"github.com/agentstation/draftboard/pkg/reconciler"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Document is the structured form of a board for JSON and YAML output.
type Document struct {
	Scoring   string       `json:"scoring" yaml:"scoring"`
	Teams     int          `json:"teams" yaml:"teams"`
	Year      int          `json:"year" yaml:"year"`
	Positions []Column     `json:"positions" yaml:"positions"`
	Issues    []IssueCount `json:"issues,omitempty" yaml:"issues,omitempty"`
	Summary   string       `json:"summary" yaml:"summary"`
}

// Column is one position of a Document.
type Column struct {
	Position string            `json:"position" yaml:"position"`
	Players  []*players.Player `json:"players" yaml:"players"`
}

// IssueCount is the number of reported issues of one kind.
type IssueCount struct {
	Kind  string `json:"kind" yaml:"kind"`
	Count int    `json:"count" yaml:"count"`
}

// NewDocument builds a Document. report may be nil.
func NewDocument(b *board.Board, s league.Settings, report *reconciler.Report) Document {
	doc := Document{
		Scoring: string(s.Format),
		Teams:   s.Teams,
		Year:    s.Year,
		Summary: "no issues",
	}
	for _, pos := range b.Positions() {
		col := Column{Position: string(pos), Players: b.Get(pos)}
		if col.Players == nil {
			col.Players = []*players.Player{}
		}
		doc.Positions = append(doc.Positions, col)
	}
	if report != nil {
		doc.Summary = report.Summary()
		for _, kind := range sources.IssueKinds {
			if n := report.Count(kind); n > 0 {
				doc.Issues = append(doc.Issues, IssueCount{Kind: string(kind), Count: n})
			}
		}
	}
	return doc
}

// BoardToTableData lists every board player, one row each. Wide output adds
// the rankings and depth-chart columns.
func BoardToTableData(b *board.Board, s league.Settings, wide bool) Data {
	view := render.NewView(b, s, time.Time{})

	headers := []string{"Pos", "#", "Player", "Team", "ADP", "Bye", "Fav"}
	align := []Align{AlignLeft, AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignCenter}
	if wide {
		headers = append(headers, "Rankings", "Depth")
		align = append(align, AlignLeft, AlignLeft)
	}

	var rows [][]string
	for _, col := range view.Columns {
		for _, cell := range col.Players {
			row := []string{
				cell.Position,
				strconv.Itoa(cell.Slot),
				cell.Name,
				dash(cell.Team),
				cell.ADP,
				bye(cell.Bye),
				favorite(cell.Favorite),
			}
			if wide {
				row = append(row, dash(cell.Rankings), dash(cell.Depth))
			}
			rows = append(rows, row)
		}
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// FormatBoard writes b to w in format.
func FormatBoard(w io.Writer, format Format, b *board.Board, s league.Settings, report *reconciler.Report) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, FormatWide, "":
		data = BoardToTableData(b, s, format == FormatWide)
	default:
		data = NewDocument(b, s, report)
	}
	return formatter.Format(w, data)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func bye(week int) string {
	if week <= 0 {
		return "-"
	}
	return strconv.Itoa(week)
}

func favorite(f bool) string {
	if f {
		return "*"
	}
	return ""
}
