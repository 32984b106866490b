// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"os"
	"strings"

	wml "github.com/fumiama/go-docx"
)

// BlockKind classifies a body paragraph.
type BlockKind string

const (
	BlockHeading BlockKind = "heading"
	BlockPicture BlockKind = "picture"
	BlockText    BlockKind = "text"
	BlockBlank   BlockKind = "blank"
)

// Block is one paragraph of a document body as seen by ReadOutline.
type Block struct {
	Kind  BlockKind
	Style string
	Text  string
	// RelID, CX and CY are set for pictures.
	RelID string
	CX    int64
	CY    int64
}

// ReadOutline opens a .docx package and returns its body paragraphs in
// order. Paragraphs with a heading style are BlockHeading; paragraphs
// holding a drawing are BlockPicture.
func ReadOutline(path string) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening package %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("opening package %s: %w", path, err)
	}
	doc, err := wml.Parse(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("parsing package %s: %w", path, err)
	}

	var blocks []Block
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*wml.Paragraph); ok {
			blocks = append(blocks, outline(p))
		}
	}
	return blocks, nil
}

func outline(p *wml.Paragraph) Block {
	var b Block
	if p.Properties != nil && p.Properties.Style != nil {
		b.Style = p.Properties.Style.Val
	}

	var text strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*wml.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch x := rc.(type) {
			case *wml.Text:
				text.WriteString(x.Text)
			case *wml.Drawing:
				picture(&b, x)
			}
		}
	}
	b.Text = text.String()

	switch {
	case b.RelID != "":
		b.Kind = BlockPicture
	case strings.HasPrefix(b.Style, "Heading"):
		b.Kind = BlockHeading
	case b.Text == "":
		b.Kind = BlockBlank
	default:
		b.Kind = BlockText
	}
	return b
}

func picture(b *Block, d *wml.Drawing) {
	in := d.Inline
	if in == nil {
		return
	}
	if in.Extent != nil {
		b.CX, b.CY = in.Extent.CX, in.Extent.CY
	}
	if g := in.Graphic; g != nil && g.GraphicData != nil && g.GraphicData.Pic != nil && g.GraphicData.Pic.BlipFill != nil {
		b.RelID = g.GraphicData.Pic.BlipFill.Blip.Embed
	}
}
