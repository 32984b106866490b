// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble turns the images of one or more folders into a single
// .docx document.
//
// Each image contributes a heading (its file name without the last
// extension), the picture at a fixed display width, and a blank paragraph.
// The document is saved once as <prefix><MMDDHHMMSS>.docx in the
// destination folder. Two runs within the same second produce the same
// name and the later run overwrites the earlier file.
package assemble

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/doksofort/internal/docx"
	"github.com/pdiddy/doksofort/internal/imaging"
	"github.com/pdiddy/doksofort/internal/scan"
	"github.com/pdiddy/doksofort/pkg/types"
)

// timestampLayout renders month, day, hour, minute and second.
const timestampLayout = "0102150405"

// ProgressFunc is called after each image with the number of images added
// so far and the total counted before the build started.
type ProgressFunc func(done, total int)

// Assembler builds documents according to a GenerationConfig.
type Assembler struct {
	cfg types.GenerationConfig
	w   io.Writer
	now func() time.Time
}

// New returns an Assembler that writes per-image status lines to w.
// Zero config fields take their defaults.
func New(cfg types.GenerationConfig, w io.Writer) *Assembler {
	if w == nil {
		w = io.Discard
	}
	return &Assembler{cfg: cfg.WithDefaults(), w: w, now: time.Now}
}

// OutputName returns the document file name for a run saved at t.
func OutputName(prefix string, t time.Time) string {
	return prefix + t.Format(timestampLayout) + ".docx"
}

// Assemble scans folders in order, appends every image found, and saves
// the document in dest. progress may be nil. Folders without images are
// not an error; with no images at all an empty document is saved.
func (a *Assembler) Assemble(folders []string, dest string, progress ProgressFunc) (types.Result, error) {
	result := types.Result{
		OutputDir: dest,
		Folders:   append([]string(nil), folders...),
		StartedAt: a.now(),
	}

	entries, err := scan.Folders(folders)
	if err != nil {
		return result, err
	}
	total := len(entries)

	doc := docx.New()
	doc.Created = result.StartedAt

	for i, e := range entries {
		if err := a.addImage(doc, e); err != nil {
			return result, err
		}
		result.Entries = append(result.Entries, e)

		fmt.Fprintf(a.w, "added: %s (%d/%d)\n", e.Heading, i+1, total)
		if progress != nil {
			progress(i+1, total)
		}
	}

	result.FinishedAt = a.now()
	result.DocumentPath = filepath.Join(dest, OutputName(a.cfg.Prefix, result.FinishedAt))
	if err := doc.Save(result.DocumentPath); err != nil {
		return result, fmt.Errorf("saving document: %w", err)
	}

	fmt.Fprintf(a.w, "Document saved at: %s (%d images)\n", result.DocumentPath, total)
	return result, nil
}

func (a *Assembler) addImage(doc *docx.Document, e types.Entry) error {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return fmt.Errorf("reading image %s: %w", e.Path, err)
	}

	info, err := imaging.Probe(data)
	if err != nil {
		return fmt.Errorf("image %s: %w", e.Path, err)
	}

	data, info, err = imaging.Downsample(data, info, a.cfg.MaxPixelWidth)
	if err != nil {
		return fmt.Errorf("downsampling %s: %w", e.Path, err)
	}

	if info.Format == "bmp" {
		if data, err = imaging.ToPNG(data); err != nil {
			return fmt.Errorf("converting %s: %w", e.Path, err)
		}
		info.Format = "png"
	}

	cx, cy := imaging.Extent(info, a.cfg.ImageWidthInches)

	doc.AddHeading(e.Heading, a.cfg.HeadingStyle)
	if err := doc.AddPicture(data, e.Name, cx, cy); err != nil {
		return err
	}
	doc.AddParagraph("")
	return nil
}
