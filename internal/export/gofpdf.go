// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/pdiddy/doksofort/pkg/types"
)

// headingFont is the embedded UTF-8 face used for headings.
const headingFont = "GoBold"

const (
	pageMargin    = 1.0  // inches on every side
	headingHeight = 0.35 // inches
	blockGap      = 0.2  // blank line after each picture
)

// GofpdfExporter renders the document body natively: each heading above
// its picture at a fixed width, starting a new page when a pair does not
// fit. Headings are set in the Go Bold face, which covers Latin, Greek and
// Cyrillic; other scripts render as missing glyphs.
type GofpdfExporter struct {
	widthInches float64
}

// NewGofpdfExporter returns an exporter drawing pictures widthInches wide.
func NewGofpdfExporter(widthInches float64) *GofpdfExporter {
	return &GofpdfExporter{widthInches: widthInches}
}

func (g *GofpdfExporter) Name() string { return string(types.BackendGofpdf) }

// Export writes the PDF. Pictures taller than a page are scaled down to fit.
func (g *GofpdfExporter) Export(docxPath string, entries []types.Entry) (string, error) {
	out := PDFPath(docxPath)

	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetTitle(filepath.Base(docxPath), true)
	pdf.SetCreator("doksofort", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddUTF8FontFromBytes(headingFont, "", gobold.TTF)

	_, pageH := pdf.GetPageSize()
	bottom := pageH - pageMargin
	maxImageH := bottom - pageMargin - headingHeight

	pdf.AddPage()
	for i, e := range entries {
		img, err := loadPDFImage(e.Path)
		if err != nil {
			return "", err
		}

		w := g.widthInches
		h := w * float64(img.info.Height) / float64(img.info.Width)
		if h > maxImageH {
			w, h = w*maxImageH/h, maxImageH
		}

		if pdf.GetY()+headingHeight+h > bottom && pdf.GetY() > pageMargin {
			pdf.AddPage()
		}

		pdf.SetFont(headingFont, "", 13)
		pdf.CellFormat(0, headingHeight, e.Heading, "", 1, "L", false, 0, "")

		name := "img" + strconv.Itoa(i)
		opts := gofpdf.ImageOptions{ImageType: img.kind}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.data))
		pdf.ImageOptions(name, pageMargin, pdf.GetY(), w, h, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + h + blockGap)
	}

	if err := pdf.OutputFileAndClose(out); err != nil {
		return "", fmt.Errorf("writing %s: %w", filepath.Base(out), err)
	}
	return out, nil
}
