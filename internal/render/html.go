package render

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// HTMLRenderer renders one of the embedded HTML templates.
type HTMLRenderer struct {
	template string
}

// NewBoardHTML renders the full board: every player with team, bye,
// depth and rankings.
func NewBoardHTML() *HTMLRenderer {
	return &HTMLRenderer{template: "board.html.tmpl"}
}

// NewPrintHTML renders the compact printable board, the HTML twin of the PDF.
func NewPrintHTML() *HTMLRenderer {
	return &HTMLRenderer{template: "print.html.tmpl"}
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(w io.Writer, v *View) error {
	return templates.ExecuteTemplate(w, r.template, v)
}
