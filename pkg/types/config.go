// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MaxFolders is the number of source folder slots a generation accepts.
const MaxFolders = 5

// DefaultPrefix is the file name prefix of generated documents.
const DefaultPrefix = "DokSofort"

// DefaultImageWidthInches is the display width of every embedded picture.
const DefaultImageWidthInches = 5.0

// DefaultHeadingStyle is the paragraph style used for image headings.
const DefaultHeadingStyle = "Heading2"

// ExportBackend identifies the tool that produces the secondary PDF export.
type ExportBackend string

const (
	BackendGofpdf  ExportBackend = "gofpdf"
	BackendPdfcpu  ExportBackend = "pdfcpu"
	BackendSoffice ExportBackend = "soffice"
)

// ExportConfig holds settings for the optional PDF export step.
type ExportConfig struct {
	// Enabled turns the export step on.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Backend selects the exporter: gofpdf, pdfcpu, or soffice.
	Backend ExportBackend `json:"backend" yaml:"backend" mapstructure:"backend"`
}

// GenerationConfig holds settings for one document generation.
type GenerationConfig struct {
	// Folders lists the source folders in slot order (at most MaxFolders).
	Folders []string `json:"folders" yaml:"folders" mapstructure:"folders"`

	// OutputDir is the destination folder for the generated document.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Prefix is prepended to the timestamp in the output file name (default "DokSofort").
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`

	// ImageWidthInches is the display width of each picture (default 5).
	ImageWidthInches float64 `json:"image_width_inches" yaml:"image_width_inches" mapstructure:"image_width_inches"`

	// HeadingStyle is the style ID applied to heading paragraphs (default "Heading2").
	HeadingStyle string `json:"heading_style" yaml:"heading_style" mapstructure:"heading_style"`

	// MaxPixelWidth downsamples wider images before embedding. Zero embeds
	// the original bytes.
	MaxPixelWidth int `json:"max_pixel_width" yaml:"max_pixel_width" mapstructure:"max_pixel_width"`

	// Export configures the secondary PDF export.
	Export ExportConfig `json:"export" yaml:"export" mapstructure:"export"`
}

// WithDefaults returns a copy of c with zero fields set to their defaults.
func (c GenerationConfig) WithDefaults() GenerationConfig {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.ImageWidthInches <= 0 {
		c.ImageWidthInches = DefaultImageWidthInches
	}
	if c.HeadingStyle == "" {
		c.HeadingStyle = DefaultHeadingStyle
	}
	if c.Export.Backend == "" {
		c.Export.Backend = BackendGofpdf
	}
	return c
}

// HistoryConfig holds settings for the generation ledger.
type HistoryConfig struct {
	// Enabled records every successful generation.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding doksofort.db and export files.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// PublishConfig holds settings for uploading results to an S3-compatible bucket.
type PublishConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
	Region    string `json:"region" yaml:"region" mapstructure:"region"`
	Bucket    string `json:"bucket" yaml:"bucket" mapstructure:"bucket"`
	Prefix    string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty" mapstructure:"access_key"`
	SecretKey string `json:"secret_key,omitempty" yaml:"secret_key,omitempty" mapstructure:"secret_key"`
	UseSSL    bool   `json:"use_ssl" yaml:"use_ssl" mapstructure:"use_ssl"`
}

// Enabled reports whether a bucket is configured.
func (c PublishConfig) Enabled() bool {
	return c.Bucket != ""
}

// Config groups all settings read from doksofort.yaml.
type Config struct {
	Generation GenerationConfig `json:"generation" yaml:"generation" mapstructure:"generation"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
	Publish    PublishConfig    `json:"publish" yaml:"publish" mapstructure:"publish"`
}
