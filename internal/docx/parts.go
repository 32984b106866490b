// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	wml "github.com/fumiama/go-docx"

	"github.com/pdiddy/doksofort/internal/imaging"
)

// pictureFormats are the formats AddPicture accepts, as go-docx names
// their media parts.
var pictureFormats = []string{"png", "jpeg", "gif"}

// Parts reused from go-docx's embedded default template. Its document
// relationships always point at a theme and a font table.
var libraryParts = map[string]string{
	"word/theme/theme1.xml": "xml/default/word/theme/theme1.xml",
	"word/fontTable.xml":    "xml/default/word/fontTable.xml",
}

// parts returns every package part go-docx does not generate itself.
func (d *Document) parts() (partsFS, error) {
	p := partsFS{
		"[Content_Types].xml": []byte(contentTypesXML()),
		"_rels/.rels":         []byte(packageRelsXML),
		"docProps/core.xml":   []byte(d.coreXML()),
		"docProps/app.xml":    []byte(appXML),
		"word/styles.xml":     []byte(stylesXML),
	}
	for name, src := range libraryParts {
		data, err := fs.ReadFile(wml.TemplateXMLFS, src)
		if err != nil {
			return nil, fmt.Errorf("reading template part %s: %w", name, err)
		}
		p[name] = data
	}
	return p, nil
}

func (d *Document) coreXML() string {
	ts := d.Created.UTC().Format(time.RFC3339)
	return fmt.Sprintf(coreXMLFormat, escape(d.Creator), ts, ts)
}

func contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	for _, format := range pictureFormats {
		ext := imaging.Extension(format)
		fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, ext[1:], imaging.ContentType(ext))
	}
	b.WriteString(contentTypeOverrides)
	b.WriteString(`</Types>`)
	return b.String()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// partsFS serves in-memory parts to go-docx's template hook.
type partsFS map[string][]byte

func (p partsFS) names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open implements fs.FS.
func (p partsFS) Open(name string) (fs.File, error) {
	data, ok := p[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &part{Reader: bytes.NewReader(data), name: name}, nil
}

type part struct {
	*bytes.Reader
	name string
}

func (f *part) Stat() (fs.FileInfo, error) { return f, nil }
func (f *part) Close() error { return nil }
func (f *part) Name() string { return path.Base(f.name) }
func (f *part) Mode() fs.FileMode { return 0o444 }
func (f *part) ModTime() time.Time { return time.Time{} }
func (f *part) IsDir() bool { return false }
func (f *part) Sys() any { return nil }

const contentTypeOverrides = `<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>` +
	`<Override PartName="/word/fontTable.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const coreXMLFormat = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
	`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
	`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
	`<dc:creator>%s</dc:creator>` +
	`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>` +
	`<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>` +
	`</cp:coreProperties>`

const appXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
	`<Application>doksofort</Application>` +
	`</Properties>`

// stylesXML defines Normal plus the heading styles headings may reference.
const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/>` +
	`<w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>` +
	`<w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:spacing w:before="480"/><w:outlineLvl w:val="0"/></w:pPr>` +
	`<w:rPr><w:b/><w:color w:val="365F91"/><w:sz w:val="28"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>` +
	`<w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:spacing w:before="200"/><w:outlineLvl w:val="1"/></w:pPr>` +
	`<w:rPr><w:b/><w:color w:val="4F81BD"/><w:sz w:val="26"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/>` +
	`<w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:spacing w:before="200"/><w:outlineLvl w:val="2"/></w:pPr>` +
	`<w:rPr><w:b/><w:color w:val="4F81BD"/></w:rPr></w:style>` +
	`</w:styles>`
