// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui renders the folder selector as a Bubble Tea program. A
// directory picker stands in for the native folder dialog, and a running
// generation is shown as a progress bar fed by the job's event channel.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/doksofort/internal/job"
	"github.com/pdiddy/doksofort/internal/selector"
	"github.com/pdiddy/doksofort/pkg/types"
)

// Runner starts a generation of folders into dest.
type Runner func(folders []string, dest string) *job.Job

type mode int

const (
	modeSelect mode = iota
	modePick
	modeBusy
)

// destinationTarget marks the picker as choosing the output folder.
const destinationTarget = -1

const (
	defaultWidth = 60

	// defaultPickerHeight is used until the terminal reports its size.
	defaultPickerHeight = 15
	minPickerHeight     = 3
	// pickerChrome is the number of lines the picker screen draws around
	// the directory listing.
	pickerChrome = 8
)

// jobEventMsg carries one event from the running job.
type jobEventMsg struct {
	event job.Event
}

// waitForEvent returns a Cmd that blocks until the next job event.
// The model re-issues it after every non-final event.
func waitForEvent(events <-chan job.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return jobEventMsg{event: ev}
	}
}

// Model is the selector screen.
type Model struct {
	state    *selector.State
	run      Runner
	keys     KeyMap
	help     help.Model
	picker   filepicker.Model
	progress progress.Model

	mode     mode
	cursor   int
	target   int
	startDir string

	job     *job.Job
	current types.Progress
	info    string
	warn    error
	err     error
	width   int
	height  int
}

// NewModel returns a selector that starts generations with run. The
// directory picker opens in startDir, or the working directory when empty.
func NewModel(run Runner, startDir string) *Model {
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		}
	}
	return &Model{
		state:    selector.New(),
		run:      run,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		startDir: startDir,
		width:    defaultWidth,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.mode == modePick {
			m.picker.SetHeight(m.pickerHeight())
		}
		return m, nil
	case jobEventMsg:
		return m, m.handleEvent(msg.event)
	}

	switch m.mode {
	case modePick:
		return m, m.updatePicker(msg)
	case modeBusy:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m, m.handleKey(k)
}

func (m *Model) handleKey(k tea.KeyMsg) tea.Cmd {
	slots := len(m.state.Slots())

	switch {
	case key.Matches(k, m.keys.Quit):
		return tea.Quit
	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(k, m.keys.Down):
		if m.cursor < slots-1 {
			m.cursor++
		}
	case key.Matches(k, m.keys.Add):
		if m.state.AddSlot() {
			m.cursor = slots
		}
	case key.Matches(k, m.keys.Remove):
		if m.state.RemoveLast() && m.cursor >= slots-1 {
			m.cursor = slots - 2
		}
	case key.Matches(k, m.keys.Choose):
		return m.openPicker(m.cursor)
	case key.Matches(k, m.keys.Destination):
		return m.openPicker(destinationTarget)
	case key.Matches(k, m.keys.Generate):
		return m.generate()
	}
	return nil
}

func (m *Model) openPicker(target int) tea.Cmd {
	fp := filepicker.New()
	fp.CurrentDirectory = m.startDir
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.SetHeight(m.pickerHeight())

	m.picker = fp
	m.target = target
	m.mode = modePick
	m.warn = nil
	return m.picker.Init()
}

// pickerHeight returns the number of listing rows that fit the terminal.
func (m *Model) pickerHeight() int {
	if m.height == 0 {
		return defaultPickerHeight
	}
	return max(m.height-pickerChrome, minPickerHeight)
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.mode = modeSelect
			return nil
		case key.Matches(k, m.keys.Here):
			m.choose(m.picker.CurrentDirectory)
			return nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.choose(path)
		return nil
	}
	return cmd
}

// choose assigns path to the slot or destination the picker was opened for.
func (m *Model) choose(path string) {
	if m.target == destinationTarget {
		m.state.SetDestination(path)
	} else {
		m.state.SetFolder(m.target, path)
	}
	m.mode = modeSelect
}

func (m *Model) generate() tea.Cmd {
	folders, dest, err := m.state.Begin()
	if err != nil {
		m.warn = err
		return nil
	}

	m.warn, m.err, m.info = nil, nil, ""
	m.current = types.Progress{}
	m.mode = modeBusy
	m.job = m.run(folders, dest)
	return waitForEvent(m.job.Events())
}

func (m *Model) handleEvent(ev job.Event) tea.Cmd {
	if !ev.Final() {
		m.current = ev.Progress
		return waitForEvent(m.job.Events())
	}

	m.state.Finish()
	m.mode = modeSelect
	m.job = nil
	if ev.Err != nil {
		m.err = ev.Err
		return nil
	}
	m.current = types.Progress{Done: ev.Result.Images(), Total: ev.Result.Images()}
	m.info = fmt.Sprintf("Dokument gespeichert unter: %s", ev.Result.DocumentPath)
	if ev.Result.ExportPath != "" {
		m.info += fmt.Sprintf("\nPDF gespeichert unter: %s", ev.Result.ExportPath)
	}
	return nil
}
