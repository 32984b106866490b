// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/pdiddy/doksofort/pkg/types"
)

// writeImage encodes a w x h image in format and returns its Entry.
func writeImage(t *testing.T, dir, name, format string, w, h int) types.Entry {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{B: 200, A: 255})
	}
	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	case "bmp":
		require.NoError(t, bmp.Encode(&buf, img))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return types.Entry{Folder: dir, Name: name, Path: path, Heading: name[:len(name)-len(filepath.Ext(name))]}
}

func pageCount(t *testing.T, path string) int {
	t.Helper()
	pdfapi.DisableConfigDir()
	n, err := pdfapi.PageCountFile(path)
	require.NoError(t, err)
	return n
}

func TestPDFPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "DokSofort0919080503.pdf"),
		PDFPath(filepath.Join("out", "DokSofort0919080503.docx")))
}

func TestNew(t *testing.T) {
	tests := []struct {
		backend  types.ExportBackend
		wantName string
		wantErr  bool
	}{
		{backend: "", wantName: "gofpdf"},
		{backend: types.BackendGofpdf, wantName: "gofpdf"},
		{backend: types.BackendPdfcpu, wantName: "pdfcpu"},
		{backend: "docx2pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			e, err := New(tt.backend, types.GenerationConfig{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, e.Name())
		})
	}
}

func TestGofpdfExporter(t *testing.T) {
	dir := t.TempDir()
	entries := []types.Entry{
		writeImage(t, dir, "square one.png", "png", 40, 40),
		writeImage(t, dir, "Straße.jpg", "jpeg", 40, 40),
		writeImage(t, dir, "old.bmp", "bmp", 40, 40),
	}

	out, err := NewGofpdfExporter(5).Export(filepath.Join(dir, "Doc.docx"), entries)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Doc.pdf"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	// Three 5in square pictures with headings need three Letter pages.
	assert.Equal(t, 3, pageCount(t, out))
}

func TestGofpdfExporter_ScalesTallImages(t *testing.T) {
	dir := t.TempDir()
	entries := []types.Entry{writeImage(t, dir, "tall.png", "png", 10, 100)}

	out, err := NewGofpdfExporter(5).Export(filepath.Join(dir, "Doc.docx"), entries)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, out))
}

func TestGofpdfExporter_UnicodeHeadings(t *testing.T) {
	dir := t.TempDir()
	entries := []types.Entry{writeImage(t, dir, "Ωμέγα Привет.png", "png", 20, 20)}

	out, err := NewGofpdfExporter(5).Export(filepath.Join(dir, "Doc.docx"), entries)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/Identity-H", "headings use an embedded UTF-8 font")
	assert.NotContains(t, string(data), "/WinAnsiEncoding")
}

func TestGofpdfExporter_BadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.png")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	_, err := NewGofpdfExporter(5).Export(filepath.Join(dir, "Doc.docx"),
		[]types.Entry{{Name: "fake.png", Path: path, Heading: "fake"}})
	require.Error(t, err)
}

func TestPdfcpuExporter(t *testing.T) {
	dir := t.TempDir()
	entries := []types.Entry{
		writeImage(t, dir, "a.png", "png", 30, 20),
		writeImage(t, dir, "b.bmp", "bmp", 30, 20),
	}
	docxPath := filepath.Join(dir, "Doc.docx")

	out, err := NewPdfcpuExporter().Export(docxPath, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, pageCount(t, out))

	// A second export of the same name replaces the file instead of appending.
	out, err = NewPdfcpuExporter().Export(docxPath, entries[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, out))
}

func TestPdfcpuExporter_NoImages(t *testing.T) {
	_, err := NewPdfcpuExporter().Export(filepath.Join(t.TempDir(), "Doc.docx"), nil)
	require.Error(t, err)
}

// fakeOffice implements converter for testing.
type fakeOffice struct {
	write bool
	err   error
	calls []string
}

func (f *fakeOffice) Name() string { return "soffice" }

func (f *fakeOffice) ConvertToPDF(path, outDir string) error {
	f.calls = append(f.calls, path+" -> "+outDir)
	if f.err != nil {
		return f.err
	}
	if f.write {
		return os.WriteFile(PDFPath(path), []byte("%PDF-1.7"), 0o644)
	}
	return nil
}

func TestSofficeExporter(t *testing.T) {
	dir := t.TempDir()
	docxPath := filepath.Join(dir, "Doc.docx")

	tests := []struct {
		name    string
		office  *fakeOffice
		wantErr string
	}{
		{name: "converted", office: &fakeOffice{write: true}},
		{name: "no output", office: &fakeOffice{}, wantErr: "produced no Doc.pdf"},
		{name: "conversion fails", office: &fakeOffice{err: errors.New("crashed")}, wantErr: "crashed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Remove(PDFPath(docxPath))

			out, err := NewSofficeExporter(tt.office).Export(docxPath, nil)
			assert.Equal(t, []string{docxPath + " -> " + dir}, tt.office.calls)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PDFPath(docxPath), out)
		})
	}
}
