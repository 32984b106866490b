// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the secondary PDF rendition of a generated document
// with pluggable backends.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doksofort/internal/imaging"
	"github.com/pdiddy/doksofort/internal/launch"
	"github.com/pdiddy/doksofort/pkg/types"
)

// Exporter produces a PDF next to a saved .docx. Different backends
// (gofpdf, pdfcpu, soffice) implement this interface.
type Exporter interface {
	// Name identifies the backend.
	Name() string

	// Export writes the PDF for the document at docxPath, whose body holds
	// entries in order, and returns the PDF path.
	Export(docxPath string, entries []types.Entry) (string, error)
}

// PDFPath returns the export path for a document: same folder and base
// name, .pdf extension.
func PDFPath(docxPath string) string {
	return strings.TrimSuffix(docxPath, filepath.Ext(docxPath)) + ".pdf"
}

// New returns the exporter for backend. cfg supplies the picture width.
func New(backend types.ExportBackend, cfg types.GenerationConfig) (Exporter, error) {
	cfg = cfg.WithDefaults()
	switch backend {
	case types.BackendGofpdf, "":
		return NewGofpdfExporter(cfg.ImageWidthInches), nil
	case types.BackendPdfcpu:
		return NewPdfcpuExporter(), nil
	case types.BackendSoffice:
		office, err := launch.DetectOffice()
		if err != nil {
			return nil, err
		}
		return NewSofficeExporter(office), nil
	default:
		return nil, fmt.Errorf("unsupported export backend %q: use gofpdf, pdfcpu, or soffice", backend)
	}
}

// pdfImage is an image prepared for a PDF backend that reads JPEG and PNG
// only.
type pdfImage struct {
	data []byte
	info imaging.Info
	// kind is "JPG" or "PNG".
	kind string
}

// loadPDFImage reads path and re-encodes anything but JPEG as PNG.
func loadPDFImage(path string) (pdfImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pdfImage{}, fmt.Errorf("reading image %s: %w", path, err)
	}
	info, err := imaging.Probe(data)
	if err != nil {
		return pdfImage{}, fmt.Errorf("image %s: %w", path, err)
	}
	if info.Format == "jpeg" {
		return pdfImage{data: data, info: info, kind: "JPG"}, nil
	}
	png, err := imaging.ToPNG(data)
	if err != nil {
		return pdfImage{}, fmt.Errorf("image %s: %w", path, err)
	}
	info.Format = "png"
	return pdfImage{data: png, info: info, kind: "PNG"}, nil
}
