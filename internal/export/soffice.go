// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/doksofort/pkg/types"
)

// converter is the part of launch.Office the exporter needs.
type converter interface {
	Name() string
	ConvertToPDF(path, outDir string) error
}

// SofficeExporter converts the saved .docx itself with a headless office
// suite, so the PDF matches the document layout exactly.
type SofficeExporter struct {
	office converter
}

// NewSofficeExporter returns an exporter that runs office.
func NewSofficeExporter(office converter) *SofficeExporter {
	return &SofficeExporter{office: office}
}

func (s *SofficeExporter) Name() string { return string(types.BackendSoffice) }

// Export ignores entries; the document already contains them.
func (s *SofficeExporter) Export(docxPath string, _ []types.Entry) (string, error) {
	out := PDFPath(docxPath)
	if err := s.office.ConvertToPDF(docxPath, filepath.Dir(docxPath)); err != nil {
		return "", err
	}
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("%s produced no %s: %w", s.office.Name(), filepath.Base(out), err)
	}
	return out, nil
}
