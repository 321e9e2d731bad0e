package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/limaJavier/routine/pkg/model"
)

const (
	pageWidth      = 277.0 // A4 landscape minus margins
	timeColumn     = 35.0
	lineHeight     = 7.0
	titleHeight    = 10.0
	headerHeight   = 8.0
	linesPerCell   = 2
	pdfFontFamily  = "Arial"
	pdfOrientation = "L"
)

var (
	headerFill = [3]int{31, 78, 120}
	timeFill   = [3]int{217, 225, 242}
)

// PDFExporter renders one page per class
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (e *PDFExporter) Export(w io.Writer, routine model.Routine) error {
	pdf := gofpdf.New(pdfOrientation, "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for _, table := range Tables(routine) {
		pdf.AddPage()
		dayColumn := (pageWidth - timeColumn) / float64(len(table.Headers)-1)
		width := func(column int) float64 {
			if column == 0 {
				return timeColumn
			}
			return dayColumn
		}

		// Title
		pdf.SetFont(pdfFontFamily, "B", 14)
		pdf.SetTextColor(headerFill[0], headerFill[1], headerFill[2])
		pdf.CellFormat(0, titleHeight, translate(table.Title), "", 1, "C", false, 0, "")
		pdf.Ln(2)

		// Headers
		pdf.SetFont(pdfFontFamily, "B", 11)
		pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
		pdf.SetTextColor(255, 255, 255)
		for column, header := range table.Headers {
			pdf.CellFormat(width(column), headerHeight, translate(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		// Every cell spans two lines: the subject and the teacher
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(timeFill[0], timeFill[1], timeFill[2])
		for _, row := range table.Rows {
			for line := range linesPerCell {
				border := "LR"
				if line == 0 {
					border += "T"
				} else {
					border += "B"
				}
				for column, cell := range row {
					lines := strings.SplitN(cell, "\n", linesPerCell)
					text := ""
					if line < len(lines) {
						text = lines[line]
					}
					if column == 0 {
						pdf.SetFont(pdfFontFamily, "B", 10)
					} else {
						pdf.SetFont(pdfFontFamily, "", 10)
					}
					pdf.CellFormat(width(column), lineHeight, translate(text), border, 0, "C", column == 0, 0, "")
				}
				pdf.Ln(-1)
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
