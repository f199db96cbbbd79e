package encode

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/model"
	"cvbuilder-backend/docgen/render"
)

// PDFEncoder emits paginated A4 PDF documents.
type PDFEncoder struct{}

func (PDFEncoder) Format() string      { return catalog.FormatPDF }
func (PDFEncoder) ContentType() string { return "application/pdf" }
func (PDFEncoder) Extension() string   { return "pdf" }

const (
	pdfMargin       = 18.0
	pdfSidebarWidth = 58.0
	pdfGutter       = 7.0
)

// sidebarSections are placed in the narrow column under two-column layouts.
var sidebarSections = map[string]bool{
	"skills":         true,
	"education":      true,
	"certifications": true,
}

// Encode renders the block groups into PDF bytes.
func (e PDFEncoder) Encode(doc *render.RenderedDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	accentR, accentG, accentB := hexToRGB(doc.Accent)
	pageWidth, _ := pdf.GetPageSize()
	fullWidth := pageWidth - 2*pdfMargin

	if doc.Layout == catalog.LayoutTwoColumn && doc.Kind == model.KindResume {
		e.encodeTwoColumn(pdf, doc, fullWidth, accentR, accentG, accentB)
	} else {
		for _, group := range doc.Groups {
			for _, block := range group.Blocks {
				writePDFBlock(pdf, block, fullWidth, accentR, accentG, accentB)
			}
			pdf.Ln(3)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// encodeTwoColumn lays the header full-width, sidebar sections in a narrow
// left column and everything else to the right of it.
func (e PDFEncoder) encodeTwoColumn(pdf *fpdf.Fpdf, doc *render.RenderedDocument, fullWidth float64, r, g, b int) {
	var header, sidebar, main []render.BlockGroup
	for _, group := range doc.Groups {
		switch {
		case group.Section == "header":
			header = append(header, group)
		case sidebarSections[group.Section]:
			sidebar = append(sidebar, group)
		default:
			main = append(main, group)
		}
	}

	for _, group := range header {
		for _, block := range group.Blocks {
			writePDFBlock(pdf, block, fullWidth, r, g, b)
		}
		pdf.Ln(3)
	}
	columnsTop := pdf.GetY()

	mainX := pdfMargin + pdfSidebarWidth + pdfGutter
	mainWidth := fullWidth - pdfSidebarWidth - pdfGutter
	pdf.SetLeftMargin(mainX)
	pdf.SetXY(mainX, columnsTop)
	for _, group := range main {
		for _, block := range group.Blocks {
			writePDFBlock(pdf, block, mainWidth, r, g, b)
		}
		pdf.Ln(3)
	}

	pdf.SetLeftMargin(pdfMargin)
	pdf.SetXY(pdfMargin, columnsTop)
	for _, group := range sidebar {
		for _, block := range group.Blocks {
			writePDFBlock(pdf, block, pdfSidebarWidth, r, g, b)
		}
		pdf.Ln(3)
	}
}

func writePDFBlock(pdf *fpdf.Fpdf, block render.Block, width float64, r, g, b int) {
	switch block.Type {
	case render.BlockHeading:
		style := ""
		if block.Bold {
			style = "B"
		}
		size := 13.0
		lineHeight := 6.0
		if block.Scale == render.ScaleTitle {
			size = 19.0
			lineHeight = 8.5
		}
		pdf.SetFont("Helvetica", style, size)
		if block.Accent {
			pdf.SetTextColor(r, g, b)
		} else {
			pdf.SetTextColor(17, 24, 39)
		}
		pdf.MultiCell(width, lineHeight, block.Text, "", "L", false)
		pdf.SetTextColor(17, 24, 39)
	case render.BlockText:
		style := ""
		if block.Bold {
			style = "B"
		}
		size := 10.5
		color := [3]int{17, 24, 39}
		if block.Scale == render.ScaleSmall {
			size = 9.0
			color = [3]int{90, 98, 110}
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.SetTextColor(color[0], color[1], color[2])
		pdf.MultiCell(width, 5, block.Text, "", "L", false)
		pdf.SetTextColor(17, 24, 39)
	case render.BlockList:
		pdf.SetFont("Helvetica", "", 10.5)
		pdf.SetTextColor(17, 24, 39)
		for _, item := range block.Items {
			pdf.MultiCell(width, 5, "• "+item, "", "L", false)
		}
	case render.BlockRule:
		if block.Accent {
			pdf.SetDrawColor(r, g, b)
		} else {
			pdf.SetDrawColor(180, 186, 196)
		}
		pdf.SetLineWidth(0.5)
		y := pdf.GetY() + 1.5
		pdf.Line(pdf.GetX(), y, pdf.GetX()+width, y)
		pdf.SetY(y + 2)
	}
}

// hexToRGB parses a "#RRGGBB" accent into components, defaulting to near-black.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 17, 24, 39
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 17, 24, 39
	}
	return int(r), int(g), int(b)
}
