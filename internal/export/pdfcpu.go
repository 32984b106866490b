// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/pdiddy/doksofort/pkg/types"
)

// PdfcpuExporter imports the pictures one per page. Headings are not
// rendered; the result is an image-only PDF.
type PdfcpuExporter struct{}

// NewPdfcpuExporter returns a pdfcpu exporter. pdfcpu's on-disk
// configuration directory is disabled so nothing is written to the
// user's config folder.
func NewPdfcpuExporter() *PdfcpuExporter {
	pdfapi.DisableConfigDir()
	return &PdfcpuExporter{}
}

func (p *PdfcpuExporter) Name() string { return string(types.BackendPdfcpu) }

// Export writes the PDF, replacing an existing file of the same name.
func (p *PdfcpuExporter) Export(docxPath string, entries []types.Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("pdfcpu export needs at least one image")
	}
	out := PDFPath(docxPath)

	tmpDir, err := os.MkdirTemp("", "doksofort_pdf_*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	files := make([]string, 0, len(entries))
	for i, e := range entries {
		img, err := loadPDFImage(e.Path)
		if err != nil {
			return "", err
		}
		lp := filepath.Join(tmpDir, "p_"+strconv.Itoa(i)+"."+strings.ToLower(img.kind))
		if err := os.WriteFile(lp, img.data, 0o644); err != nil {
			return "", fmt.Errorf("staging image %s: %w", e.Name, err)
		}
		files = append(files, lp)
	}

	// ImportImagesFile appends to an existing file.
	if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("replacing %s: %w", filepath.Base(out), err)
	}

	if err := pdfapi.ImportImagesFile(files, out, pdfcpu.DefaultImportConfig(), nil); err != nil {
		return "", fmt.Errorf("importing images into %s: %w", filepath.Base(out), err)
	}
	return out, nil
}
