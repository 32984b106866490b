// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists image files in source folders.
//
// Listing is non-recursive and keeps the order the operating system returns
// directory entries in; nothing is sorted. Extensions are matched
// case-sensitively against a fixed whitelist, so "photo.PNG" is skipped.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doksofort/pkg/types"
)

// Extensions is the whitelist of image file suffixes.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}

// IsImage reports whether name ends in one of Extensions.
func IsImage(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Heading returns name with its last extension removed. Names without a
// dot are returned unchanged.
func Heading(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name
	}
	return name[:i]
}

// Folder lists the images directly inside dir in directory order.
// Subdirectories are never entered, even when their name matches.
func Folder(dir string) ([]types.Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening folder %s: %w", dir, err)
	}
	defer f.Close()

	// File.ReadDir returns entries unsorted, unlike os.ReadDir.
	dirents, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("listing folder %s: %w", dir, err)
	}

	var entries []types.Entry
	for _, d := range dirents {
		if d.IsDir() || !IsImage(d.Name()) {
			continue
		}
		entries = append(entries, types.Entry{
			Folder:  dir,
			Name:    d.Name(),
			Path:    filepath.Join(dir, d.Name()),
			Heading: Heading(d.Name()),
		})
	}
	return entries, nil
}

// Folders lists every folder in order and concatenates the results, so the
// total image count is known before any image is processed.
func Folders(dirs []string) ([]types.Entry, error) {
	var all []types.Entry
	for _, dir := range dirs {
		entries, err := Folder(dir)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}
