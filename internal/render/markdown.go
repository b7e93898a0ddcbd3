package render

import (
	"io"

	md "github.com/nao1215/markdown"
)

// MarkdownRenderer writes the board as a Markdown table.
type MarkdownRenderer struct{}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render implements Renderer.
func (r *MarkdownRenderer) Render(w io.Writer, v *View) error {
	doc := md.NewMarkdown(w)
	doc.H1(v.Title)
	doc.PlainText(v.Subtitle).LF()

	header := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		header[i] = col.Heading
	}
	rows := make([][]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = markdownCell(cell)
		}
		rows = append(rows, cells)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows}).LF()

	if len(v.Favorites) > 0 {
		doc.H2("Favorites")
		items := make([]string, len(v.Favorites))
		for i, f := range v.Favorites {
			items[i] = f.Position + " " + f.Label()
		}
		doc.BulletList(items...)
	}
	return doc.Build()
}

func markdownCell(c Cell) string {
	if c.Empty {
		return ""
	}
	if c.Favorite {
		return md.Bold(c.Label())
	}
	return c.Label()
}
