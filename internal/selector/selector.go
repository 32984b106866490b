// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector holds the interactive selection state: up to five source
// folder slots, one destination folder, and whether a generation is running.
// It decides which controls are enabled; rendering lives in internal/tui.
package selector

import (
	"errors"

	"github.com/pdiddy/doksofort/pkg/types"
)

// Blocking warnings shown before any work starts.
var (
	ErrNoFolders     = errors.New("Kein Bilder-Ordner selektiert!")
	ErrNoDestination = errors.New("Kein Speicher-Ordner selektiert!")
)

// Labels for slots and destinations without a folder.
const (
	NoFolderLabel      = "Kein Bilder-Ordner selektiert"
	NoDestinationLabel = "Kein Output Ordner selektiert"
)

// labelTail is the number of trailing path characters shown in a label.
const labelTail = 25

// State is the selection model. The zero value is not usable; call New.
type State struct {
	slots []string
	dest  string
	busy  bool
}

// New returns a state with a single empty slot.
func New() *State {
	return &State{slots: []string{""}}
}

// Slots returns a copy of every slot, empty ones included.
func (s *State) Slots() []string {
	return append([]string(nil), s.slots...)
}

// Destination returns the chosen output folder.
func (s *State) Destination() string { return s.dest }

// Busy reports whether a generation is running.
func (s *State) Busy() bool { return s.busy }

// CanAdd reports whether another slot may be added.
func (s *State) CanAdd() bool { return !s.busy && len(s.slots) < types.MaxFolders }

// CanRemove reports whether the last slot may be removed.
func (s *State) CanRemove() bool { return !s.busy && len(s.slots) > 1 }

// AddSlot appends an empty slot. It returns false when the cap is reached
// or a generation is running.
func (s *State) AddSlot() bool {
	if !s.CanAdd() {
		return false
	}
	s.slots = append(s.slots, "")
	return true
}

// RemoveLast drops the most recently added slot together with its folder.
// One slot always remains.
func (s *State) RemoveLast() bool {
	if !s.CanRemove() {
		return false
	}
	s.slots = s.slots[:len(s.slots)-1]
	return true
}

// SetFolder assigns path to slot i. An empty path, as returned by a
// cancelled picker, leaves the slot unchanged.
func (s *State) SetFolder(i int, path string) bool {
	if s.busy || path == "" || i < 0 || i >= len(s.slots) {
		return false
	}
	s.slots[i] = path
	return true
}

// SetDestination assigns the output folder. An empty path is ignored.
func (s *State) SetDestination(path string) bool {
	if s.busy || path == "" {
		return false
	}
	s.dest = path
	return true
}

// Folders returns the non-empty slots in slot order.
func (s *State) Folders() []string {
	var out []string
	for _, f := range s.slots {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Validate returns the warning that blocks generation, if any. Folders are
// checked before the destination.
func (s *State) Validate() error {
	if len(s.Folders()) == 0 {
		return ErrNoFolders
	}
	if s.dest == "" {
		return ErrNoDestination
	}
	return nil
}

// CanGenerate reports whether the generate control is enabled.
func (s *State) CanGenerate() bool {
	return !s.busy && s.Validate() == nil
}

// Begin marks a generation as running and returns the folders and
// destination it was started with. The returned slice is a copy.
func (s *State) Begin() ([]string, string, error) {
	if s.busy {
		return nil, "", errors.New("es wird bereits ein Dokument generiert")
	}
	if err := s.Validate(); err != nil {
		return nil, "", err
	}
	s.busy = true
	return s.Folders(), s.dest, nil
}

// Finish re-enables every control, whether the generation succeeded or not.
func (s *State) Finish() { s.busy = false }

// Label shortens a source folder for display to "..." and its last 25
// characters. An empty path renders as NoFolderLabel.
func Label(path string) string {
	return shorten(path, NoFolderLabel)
}

// DestinationLabel is Label for the output folder.
func DestinationLabel(path string) string {
	return shorten(path, NoDestinationLabel)
}

func shorten(path, empty string) string {
	if path == "" {
		return empty
	}
	r := []rune(path)
	if len(r) <= labelTail {
		return "..." + path
	}
	return "..." + string(r[len(r)-labelTail:])
}
