//go:build mage

// Package main contains Mage build targets for doksofort developer tooling.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"golang.org/x/image/bmp"
)

const (
	binDir    = "bin"
	binName   = "doksofort"
	cmdPkg    = "./cmd/doksofort"
	sampleDir = "sample"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Demo builds the binary and the sample folders, then generates a document
// with a PDF copy into sample/out.
func Demo() error {
	mg.Deps(Build, Sample)
	out := filepath.Join(sampleDir, "out")
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	return sh.RunV(filepath.Join(binDir, binName), "generate",
		"--folder", filepath.Join(sampleDir, "day1"),
		"--folder", filepath.Join(sampleDir, "day2"),
		"--out", out, "--pdf")
}

// sampleImage is one generated test picture.
type sampleImage struct {
	dir, name string
	w, h      int
	c         color.RGBA
}

var sampleImages = []sampleImage{
	{"day1", "entrance.png", 640, 480, color.RGBA{R: 200, G: 80, B: 60, A: 255}},
	{"day1", "hall.view.jpg", 800, 600, color.RGBA{R: 60, G: 160, B: 90, A: 255}},
	{"day1", "roof.gif", 300, 300, color.RGBA{R: 40, G: 40, B: 200, A: 255}},
	{"day2", "basement.bmp", 400, 300, color.RGBA{R: 120, G: 120, B: 120, A: 255}},
	{"day2", "stairs.jpeg", 480, 640, color.RGBA{R: 220, G: 200, B: 40, A: 255}},
	// Skipped: the whitelist is case-sensitive.
	{"day2", "UPPER.PNG", 200, 200, color.RGBA{R: 255, A: 255}},
}

// Sample writes two folders of test pictures under sample/. Each folder also
// holds a text file and a subdirectory that generation skips.
func Sample() error {
	for _, s := range sampleImages {
		dir := filepath.Join(sampleDir, s.dir)
		if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		if err := writeSample(filepath.Join(dir, s.name), s); err != nil {
			return err
		}
		fmt.Println("  ", filepath.Join(dir, s.name))
	}
	for _, d := range []string{"day1", "day2"} {
		notes := filepath.Join(sampleDir, d, "notes.txt")
		if err := os.WriteFile(notes, []byte("not an image\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", notes, err)
		}
	}
	fmt.Println("Sample folders written.")
	return nil
}

func writeSample(path string, s sampleImage) error {
	img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			c := s.c
			if (x/40+y/40)%2 == 0 {
				c = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
	case ".gif":
		err = gif.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		isTest := len(path) > 8 && path[len(path)-8:] == "_test.go"
		if testOnly != isTest {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range splitLines(data) {
			if len(line) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countDocWords counts words in the top-level Markdown files.
func countDocWords(root string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		total += countWords(data)
	}
	return total, nil
}

// skipDir reports directories Stats does not descend into.
func skipDir(name string) bool {
	return name == "_examples" || name == sampleDir || name == binDir || name[0] == '.'
}

// splitLines splits data by newline, returning each line as a trimmed string.
func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, trimSpace(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, trimSpace(data[start:]))
	}
	return lines
}

// trimSpace returns a string with leading and trailing whitespace removed.
func trimSpace(b []byte) string {
	start, end := 0, len(b)
	for start < end && (b[start] == ' ' || b[start] == '\t' || b[start] == '\r') {
		start++
	}
	for end > start && (b[end-1] == ' ' || b[end-1] == '\t' || b[end-1] == '\r') {
		end--
	}
	return string(b[start:end])
}

// countWords counts whitespace-separated tokens in data.
func countWords(data []byte) int {
	count := 0
	inWord := false
	for _, b := range data {
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}
