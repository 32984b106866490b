// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/pdiddy/doksofort/internal/selector"
)

const (
	appTitle = "DokSofort - Bilder zu Word"
	heading  = "Dokument aus Bildern Generieren"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n\n")

	switch m.mode {
	case modePick:
		b.WriteString(m.pickerView())
	case modeBusy:
		b.WriteString(m.busyView())
	default:
		b.WriteString(m.selectView())
	}
	return b.String()
}

func (m *Model) selectView() string {
	var b strings.Builder
	b.WriteString(heading + "\n\n")

	for i, slot := range m.state.Slots() {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		label := slotStyle.Render(selector.Label(slot))
		if slot == "" {
			label = emptyStyle.Render(selector.Label(slot))
		}
		fmt.Fprintf(&b, "%sBilder-Ordner %d: %s\n", marker, i+1, label)
	}

	b.WriteString("\n")
	dest := slotStyle.Render(selector.DestinationLabel(m.state.Destination()))
	if m.state.Destination() == "" {
		dest = emptyStyle.Render(selector.DestinationLabel(""))
	}
	fmt.Fprintf(&b, "  Output Ordner:    %s\n\n", dest)

	b.WriteString(button("+", m.state.CanAdd()) + " " +
		button("-", m.state.CanRemove()) + "   " +
		button("Dokument Generieren", m.state.CanGenerate()) + "\n\n")

	if m.warn != nil {
		b.WriteString(warnStyle.Render(m.wrap("Warnung: "+m.warn.Error())) + "\n\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.wrap("Fehler: "+m.err.Error())) + "\n\n")
	}
	if m.info != "" {
		b.WriteString(infoStyle.Render(m.wrap(m.info)) + "\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) pickerView() string {
	what := "Bilder-Ordner wählen"
	if m.target == destinationTarget {
		what = "Speicher-Ordner wählen"
	}
	var b strings.Builder
	b.WriteString(what + "\n")
	b.WriteString(emptyStyle.Render(m.picker.CurrentDirectory) + "\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n" + disabledStyle.Render("enter wählen  . diesen Ordner  → öffnen  ← zurück  q abbrechen"))
	return b.String()
}

func (m *Model) busyView() string {
	status, fraction := "Bilder werden verarbeitet...", 0.0
	if m.current.Total > 0 {
		status = fmt.Sprintf("Bilder werden verarbeitet... %d/%d", m.current.Done, m.current.Total)
		fraction = m.current.Fraction()
	}
	return frameStyle.Render(status + "\n\n" + m.progress.ViewAs(fraction))
}

func (m *Model) wrap(s string) string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return wordwrap.String(s, width)
}

func button(label string, enabled bool) string {
	if enabled {
		return enabledStyle.Render("[ " + label + " ]")
	}
	return disabledStyle.Render("[ " + label + " ]")
}
