package render

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer draws the printable board: one column per position on
// landscape A4, favorites shaded.
type PDFRenderer struct {
	rowHeight float64
	fontSize  float64
}

// NewPDF creates a PDF renderer.
func NewPDF() *PDFRenderer {
	return &PDFRenderer{rowHeight: 5, fontSize: 7.5}
}

// Render implements Renderer.
func (r *PDFRenderer) Render(w io.Writer, v *View) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(v.Title, true)
	pdf.SetCreator("draftboard", true)
	pdf.SetCreationDate(v.Generated)
	pdf.SetModificationDate(v.Generated)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	cols := len(v.Columns)
	if cols == 0 {
		cols = 1
	}
	colW := (pageW - left - right) / float64(cols)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(31, 58, 95)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range v.Columns {
			pdf.CellFormat(colW, r.rowHeight+1, tr(col.Heading), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", r.fontSize)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(v.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(v.Subtitle), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for _, row := range v.Rows {
		if pdf.GetY()+r.rowHeight > pageH-bottom {
			pdf.AddPage()
			header()
		}
		for _, cell := range row {
			fill := false
			style := ""
			if cell.Favorite {
				pdf.SetFillColor(255, 243, 176)
				fill = true
				style = "B"
			}
			pdf.SetFont("Helvetica", style, r.fontSize)
			border := "1"
			if cell.Empty {
				border = ""
			}
			pdf.CellFormat(colW, r.rowHeight, tr(cell.Label()), border, 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
