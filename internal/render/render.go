package render

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agentstation/draftboard/pkg/board"
	"github.com/agentstation/draftboard/pkg/constants"
	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/league"
	"github.com/agentstation/draftboard/pkg/logging"
)

// Renderer writes a view in one format.
type Renderer interface {
	Render(w io.Writer, v *View) error
}

// Artifact is one output file.
type Artifact struct {
	Name     string
	Path     string
	Renderer Renderer
}

// Artifacts returns the files a build produces under dir:
//
//	db_v1_<key>.html      full board
//	db_v2_<key>.pdf       printable board
//	db_v2_<key>.pdf.html  printable board source
//	db_<key>.md           Markdown board
func Artifacts(dir string, s league.Settings) []Artifact {
	key := FileKey(s)
	pdfPath := filepath.Join(dir, "db_v2_"+key+".pdf")
	return []Artifact{
		{Name: "html", Path: filepath.Join(dir, "db_v1_"+key+".html"), Renderer: NewBoardHTML()},
		{Name: "pdf", Path: pdfPath, Renderer: NewPDF()},
		{Name: "pdf-html", Path: pdfPath + ".html", Renderer: NewPrintHTML()},
		{Name: "markdown", Path: filepath.Join(dir, "db_"+key+".md"), Renderer: NewMarkdown()},
	}
}

// WriteAll renders b into every artifact under dir and returns the paths written.
func WriteAll(ctx context.Context, dir string, b *board.Board, s league.Settings, generated time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}

	view := NewView(b, s, generated)
	logger := logging.FromContext(ctx)
	var written []string
	for _, a := range Artifacts(dir, s) {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := WriteFile(a.Path, a.Renderer, view); err != nil {
			return written, errors.WrapResource("render", "board", a.Name, err)
		}
		logger.Info().Str("format", a.Name).Str("file", a.Path).Msg("Board written")
		written = append(written, a.Path)
	}
	return written, nil
}

// WriteFile renders v in memory and writes it to path only when rendering succeeds.
func WriteFile(path string, r Renderer, v *View) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, v); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
