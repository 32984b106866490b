// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Entry is one image selected for the document.
type Entry struct {
	// Folder is the source folder the image was listed from.
	Folder string `json:"folder" yaml:"folder"`

	// Name is the file name including its extension (e.g. "a.b.png").
	Name string `json:"name" yaml:"name"`

	// Path is the full path to the image file.
	Path string `json:"path" yaml:"path"`

	// Heading is Name with only the last extension removed (e.g. "a.b").
	Heading string `json:"heading" yaml:"heading"`
}

// Progress reports how many images have been added out of the total
// counted before the build started.
type Progress struct {
	Done  int `json:"done" yaml:"done"`
	Total int `json:"total" yaml:"total"`
}

// Fraction returns Done/Total in [0, 1]. An empty run reports 1.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}

// Result describes a finished generation.
type Result struct {
	// DocumentPath is the saved .docx file.
	DocumentPath string `json:"document_path" yaml:"document_path"`

	// ExportPath is the secondary export file, empty when export is off.
	ExportPath string `json:"export_path,omitempty" yaml:"export_path,omitempty"`

	// OutputDir is the destination folder.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Folders are the source folders in the order they were processed.
	Folders []string `json:"folders" yaml:"folders"`

	// Entries are the images added, in document order.
	Entries []Entry `json:"entries" yaml:"entries"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

// Images returns the number of heading+picture pairs in the document.
func (r Result) Images() int {
	return len(r.Entries)
}
