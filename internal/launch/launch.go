// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package launch starts external programs: the OS file browser that shows
// the output folder, and the office suite used for PDF export.
package launch

import (
	"fmt"
	"os/exec"
	"runtime"
)

const (
	binXdgOpen     = "xdg-open"
	binOpen        = "open"
	binExplorer    = "explorer"
	binSoffice     = "soffice"
	binLibreOffice = "libreoffice"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
	Start(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child in the background.
	go func() { _ = cmd.Wait() }()
	return nil
}

var defaultExec executor = &osExecutor{}

// Opener shows a folder in the platform file browser.
type Opener struct {
	bin  string
	exec executor
}

// NewOpener returns the Opener for the current platform.
func NewOpener() *Opener {
	return newOpener(runtime.GOOS, defaultExec)
}

func newOpener(goos string, exec executor) *Opener {
	switch goos {
	case "windows":
		return &Opener{bin: binExplorer, exec: exec}
	case "darwin":
		return &Opener{bin: binOpen, exec: exec}
	default:
		return &Opener{bin: binXdgOpen, exec: exec}
	}
}

// Name returns the command the Opener runs.
func (o *Opener) Name() string { return o.bin }

// Open starts the file browser on dir without waiting for it to exit.
func (o *Opener) Open(dir string) error {
	if _, err := o.exec.LookPath(o.bin); err != nil {
		return fmt.Errorf("file browser %s not available: %w", o.bin, err)
	}
	if err := o.exec.Start(o.bin, dir); err != nil {
		return fmt.Errorf("opening %s with %s: %w", dir, o.bin, err)
	}
	return nil
}

// Office converts documents with a headless office suite. LibreOffice ships
// as either soffice or libreoffice depending on the platform.
type Office struct {
	bin  string
	exec executor
}

// DetectOffice tries soffice first, falls back to libreoffice. Returns an
// error if neither is on PATH.
func DetectOffice() (*Office, error) {
	return detectOffice(defaultExec)
}

func detectOffice(exec executor) (*Office, error) {
	for _, bin := range []string{binSoffice, binLibreOffice} {
		if _, err := exec.LookPath(bin); err == nil {
			return &Office{bin: bin, exec: exec}, nil
		}
	}
	return nil, fmt.Errorf(
		"no office suite available: neither %s nor %s found on PATH",
		binSoffice, binLibreOffice,
	)
}

// Name returns the office binary in use.
func (o *Office) Name() string { return o.bin }

// ConvertToPDF writes <outDir>/<base>.pdf for the document at path.
func (o *Office) ConvertToPDF(path, outDir string) error {
	args := []string{"--headless", "--convert-to", "pdf", "--outdir", outDir, path}
	if err := o.exec.Run(o.bin, args...); err != nil {
		return fmt.Errorf("converting %s with %s: %w", path, o.bin, err)
	}
	return nil
}
