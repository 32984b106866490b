// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doksofort/internal/assemble"
	"github.com/pdiddy/doksofort/internal/job"
	"github.com/pdiddy/doksofort/internal/selector"
	"github.com/pdiddy/doksofort/pkg/types"
)

type runCall struct {
	folders []string
	dest    string
}

// fakeRunner starts a job that reports two progress steps, waits for
// release (when non-nil), and then finishes with res and err.
func fakeRunner(calls *[]runCall, release <-chan struct{}, res types.Result, err error) Runner {
	return func(folders []string, dest string) *job.Job {
		*calls = append(*calls, runCall{folders: folders, dest: dest})
		return job.Start(func(progress assemble.ProgressFunc) (types.Result, error) {
			progress(1, 2)
			if release != nil {
				<-release
			}
			progress(2, 2)
			return res, err
		})
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// drain feeds job events back into the model until it stops subscribing.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100, "job never finished")
		msg := cmd()
		ev, ok := msg.(jobEventMsg)
		require.True(t, ok, "unexpected message %T", msg)
		_, cmd = m.Update(ev)
	}
}

func readyModel(run Runner) *Model {
	m := NewModel(run, "/tmp")
	m.state.SetFolder(0, "/photos/a")
	m.state.SetDestination("/out")
	return m
}

func TestAddRemoveSlots(t *testing.T) {
	m := NewModel(nil, "/tmp")

	press(m, runes("+"), runes("+"), runes("+"), runes("+"), runes("+"), runes("+"))
	assert.Len(t, m.state.Slots(), types.MaxFolders)
	assert.Equal(t, types.MaxFolders-1, m.cursor)

	press(m, runes("-"))
	assert.Len(t, m.state.Slots(), types.MaxFolders-1)
	assert.Equal(t, types.MaxFolders-2, m.cursor, "cursor follows the removed slot")

	press(m, runes("-"), runes("-"), runes("-"), runes("-"))
	assert.Len(t, m.state.Slots(), 1)
	assert.Equal(t, 0, m.cursor)
}

func TestCursorMovement(t *testing.T) {
	m := NewModel(nil, "/tmp")
	press(m, runes("+"), runes("+"))
	require.Equal(t, 2, m.cursor)

	press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
	press(m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 2, m.cursor)
}

func TestPickerOpensAndCancels(t *testing.T) {
	m := NewModel(nil, "/tmp")
	m.state.SetFolder(0, "/kept")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modePick, m.mode)
	assert.Equal(t, 0, m.target)
	assert.NotNil(t, cmd, "picker reads its directory")
	assert.Contains(t, m.View(), "Bilder-Ordner wählen")

	press(m, runes("q"))
	assert.Equal(t, modeSelect, m.mode)
	assert.Equal(t, []string{"/kept"}, m.state.Slots(), "cancel leaves the slot unchanged")

	press(m, runes("o"))
	assert.Equal(t, destinationTarget, m.target)
	assert.Contains(t, m.View(), "Speicher-Ordner wählen")
}

// pickerTree creates alpha/, beta/ and gamma/ with day1/ and day2/ under
// gamma, plus a file the picker lists but cannot select.
func pickerTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"alpha", "beta", "gamma/day1", "gamma/day2"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "gamma", "notes.txt"), []byte("x"), 0o644))
	return root
}

// load runs the picker's directory read and feeds the result back.
func load(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd, "picker reads its directory")
	press(m, cmd())
}

func TestPickerListsAndNavigates(t *testing.T) {
	root := pickerTree(t)
	m := NewModel(nil, root)
	press(m, tea.WindowSizeMsg{Width: 80, Height: 40})

	load(t, m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, 40-pickerChrome, m.picker.Height)
	view := m.picker.View()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		assert.Contains(t, view, name)
	}

	load(t, m, press(m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, filepath.Join(root, "gamma"), m.picker.CurrentDirectory)
	view = m.picker.View()
	assert.Contains(t, view, "day1")
	assert.Contains(t, view, "day2")
	assert.Equal(t, modePick, m.mode, "opening a directory does not select it")
	assert.Equal(t, []string{""}, m.state.Slots())

	press(m, runes("."))
	assert.Equal(t, modeSelect, m.mode)
	assert.Equal(t, []string{filepath.Join(root, "gamma")}, m.state.Slots())
}

func TestPickerSelectsHighlightedSubfolder(t *testing.T) {
	root := pickerTree(t)
	m := NewModel(nil, root)

	load(t, m, press(m, runes("o")))
	assert.Equal(t, defaultPickerHeight, m.picker.Height, "height before any window size")

	load(t, m, press(m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyRight}))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeSelect, m.mode)
	assert.Equal(t, filepath.Join(root, "gamma", "day1"), m.state.Destination())
}

func TestPickerResizes(t *testing.T) {
	m := NewModel(nil, pickerTree(t))
	load(t, m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	press(m, tea.WindowSizeMsg{Width: 80, Height: 4})
	assert.Equal(t, minPickerHeight, m.picker.Height)
	assert.Contains(t, m.picker.View(), "alpha")
}

func TestGenerateWarnings(t *testing.T) {
	var calls []runCall
	m := NewModel(fakeRunner(&calls, nil, types.Result{}, nil), "/tmp")

	cmd := press(m, runes("g"))
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.warn, selector.ErrNoFolders)

	m.state.SetFolder(0, "/in")
	press(m, runes("g"))
	assert.ErrorIs(t, m.warn, selector.ErrNoDestination)
	assert.Contains(t, m.View(), "Kein Speicher-Ordner selektiert!")
	assert.Empty(t, calls, "no job starts while a warning blocks")
}

func TestGenerateSuccess(t *testing.T) {
	var calls []runCall
	res := types.Result{
		DocumentPath: "/out/DokSofort0919080503.docx",
		ExportPath:   "/out/DokSofort0919080503.pdf",
		Entries:      []types.Entry{{Name: "a.png"}, {Name: "b.png"}},
	}
	m := readyModel(fakeRunner(&calls, nil, res, nil))
	press(m, runes("+"))

	cmd := press(m, runes("g"))
	require.NotNil(t, cmd)
	assert.Equal(t, modeBusy, m.mode)
	assert.Equal(t, []runCall{{folders: []string{"/photos/a"}, dest: "/out"}}, calls,
		"empty slots are not passed on")

	drain(t, m, cmd)
	assert.Equal(t, modeSelect, m.mode)
	assert.False(t, m.state.Busy())
	assert.True(t, m.state.CanGenerate())
	assert.Equal(t, types.Progress{Done: 2, Total: 2}, m.current)
	assert.NoError(t, m.err)

	view := m.View()
	assert.Contains(t, view, "DokSofort0919080503.docx")
	assert.Contains(t, view, "PDF gespeichert unter")
}

func TestGenerateFailureReenablesInputs(t *testing.T) {
	var calls []runCall
	m := readyModel(fakeRunner(&calls, nil, types.Result{}, errors.New("saving document: disk full")))

	drain(t, m, press(m, runes("g")))
	assert.Equal(t, modeSelect, m.mode)
	assert.False(t, m.state.Busy())
	assert.True(t, m.state.CanAdd())
	assert.Empty(t, m.info)
	assert.Contains(t, m.View(), "disk full")
}

func TestBusyIgnoresInput(t *testing.T) {
	var calls []runCall
	release := make(chan struct{})
	m := readyModel(fakeRunner(&calls, release, types.Result{DocumentPath: "/out/x.docx"}, nil))

	cmd := press(m, runes("g"))
	require.NotNil(t, cmd)

	// The first progress event arrives while the job is held.
	msg := cmd()
	_, cmd = m.Update(msg)
	assert.Equal(t, types.Progress{Done: 1, Total: 2}, m.current)
	assert.Contains(t, m.View(), "Bilder werden verarbeitet... 1/2")

	press(m, runes("+"), runes("-"), runes("o"), runes("g"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeBusy, m.mode)
	assert.Len(t, m.state.Slots(), 1)
	assert.Len(t, calls, 1, "a second job cannot start")

	close(release)
	drain(t, m, cmd)
	assert.Equal(t, modeSelect, m.mode)
}

func TestQuit(t *testing.T) {
	m := NewModel(nil, "/tmp")
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_Initial(t *testing.T) {
	m := NewModel(nil, "/tmp")
	view := m.View()
	assert.Contains(t, view, appTitle)
	assert.Contains(t, view, heading)
	assert.Contains(t, view, "Bilder-Ordner 1")
	assert.Contains(t, view, selector.NoFolderLabel)
	assert.Contains(t, view, selector.NoDestinationLabel)
	assert.Contains(t, view, "[ Dokument Generieren ]")
}
