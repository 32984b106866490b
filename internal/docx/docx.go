// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx writes WordprocessingML (.docx) documents made of styled
// paragraphs and inline pictures, and reads their outline back.
//
// Body content and media are handled by go-docx. The package supplies its
// own static parts (styles with the heading styles, content types, document
// properties) through the library's template hook.
package docx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	wml "github.com/fumiama/go-docx"
)

// Document accumulates body content in memory until it is written.
type Document struct {
	f       *wml.Docx
	Creator string
	Created time.Time
}

// New returns an empty document.
func New() *Document {
	return &Document{f: wml.New(), Creator: "doksofort", Created: time.Now()}
}

// AddParagraph appends a Normal paragraph. An empty text produces a blank line.
func (d *Document) AddParagraph(text string) {
	p := d.f.AddParagraph()
	if text != "" {
		p.AddText(text)
	}
}

// AddHeading appends a paragraph with the given style ID, e.g. "Heading2".
func (d *Document) AddHeading(text, style string) {
	d.f.AddParagraph().Style(style).AddText(text)
}

// AddPicture embeds data as an inline picture in its own paragraph, shown
// cx by cy EMU. data must be PNG, JPEG or GIF; name is recorded as the
// picture's title.
func (d *Document) AddPicture(data []byte, name string, cx, cy int64) error {
	run, err := d.f.AddParagraph().AddInlineDrawing(data)
	if err != nil {
		return fmt.Errorf("embedding picture %s: %w", name, err)
	}
	inline := run.Children[0].(*wml.Drawing).Inline
	inline.Size(cx, cy)
	inline.DocPr.Name = name
	inline.Graphic.GraphicData.Pic.NonVisualPicProperties.NonVisualDrawingProperties.Name = name
	return nil
}

// WriteTo writes the complete package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	parts, err := d.parts()
	if err != nil {
		return 0, err
	}
	d.f.UseTemplate("", parts.names(), parts)

	// The section must be the last body element.
	body := &d.f.Document.Body
	body.Items = append(body.Items, letterSection())
	defer func() { body.Items = body.Items[:len(body.Items)-1] }()

	cw := &countingWriter{w: w}
	if _, err := d.f.WriteTo(cw); err != nil {
		return cw.n, fmt.Errorf("writing package: %w", err)
	}
	return cw.n, nil
}

// Save writes the package to path, replacing any existing file.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", filepath.Base(path), err)
	}
	return nil
}

// letterSection is US Letter with one-inch margins, in twentieths of a point.
func letterSection() *wml.SectPr {
	return &wml.SectPr{
		PgSz: &wml.PgSz{W: 12240, H: 15840},
		PgMar: &wml.PgMar{
			Top: 1440, Right: 1440, Bottom: 1440, Left: 1440,
			Header: 720, Footer: 720,
		},
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
