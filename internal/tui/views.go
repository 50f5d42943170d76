package tui

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kbcode/resp2/internal/inspect"
	"github.com/kbcode/resp2/internal/resp"
)

// appName is the application name shown in pane border titles.
const appName = "respview"

// contentTitle formats a pane title with the app name prefix, e.g.
// contentTitle("Staged bytes") -> " respview | Staged bytes ".
func contentTitle(subtitle string) string {
	if subtitle == "" {
		return " " + appName + " "
	}
	return " " + appName + " | " + subtitle + " "
}

// highlightFocusedPane updates border colors to indicate which pane has
// keyboard focus.
func (a *App) highlightFocusedPane() {
	const (
		defaultColor   = tcell.ColorWhite
		highlightColor = tcell.ColorAqua
	)

	a.bufferPane.SetBorderColor(defaultColor)
	a.valuesPane.SetBorderColor(defaultColor)
	a.bottomPane.SetBorderColor(defaultColor)

	switch a.focusIndex {
	case 0:
		a.bufferPane.SetBorderColor(highlightColor)
	case 1:
		a.valuesPane.SetBorderColor(highlightColor)
	case 2:
		a.bottomPane.SetBorderColor(highlightColor)
	}
}

// render redraws every pane from current parser/value state.
func (a *App) render() {
	buffered := a.parser.Buffered()
	a.bufferView.SetText(hexDump(buffered))
	a.valuesView.SetText(renderValues(a.values))

	a.statusLine.SetText(fmt.Sprintf(
		"state: [yellow]%s[-]   staged bytes: %d   committed values: %d",
		a.parser.StateLabel(), len(buffered), len(a.values),
	))
}

// hexDump renders data as classic 16-bytes-per-line hex+ASCII, tview color
// tags disabled since this is raw wire data, not something to colorize.
func hexDump(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	dump := hex.Dump(data)
	// hex.Dump's offsets read fine as-is; just guard against tview
	// interpreting a stray '[' as the start of a color tag.
	for _, line := range strings.Split(strings.TrimRight(dump, "\n"), "\n") {
		b.WriteString(strings.ReplaceAll(line, "[", "\\["))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderValues renders every committed value through the inspector so the
// TUI and the respdump CLI never disagree about what a value looks like.
// Output goes through tview.ANSIWriter so fatih/color's escape codes become
// tview color tags instead of raw control characters.
func renderValues(values []resp.RespValue) string {
	if len(values) == 0 {
		return "(none yet)"
	}

	var plain strings.Builder
	w := tview.ANSIWriter(&plain)
	for i, v := range values {
		fmt.Fprintf(w, "%d) ", i+1)
		inspect.PrintValue(w, v, inspect.PrintOpts{Color: true, Newline: true})
	}
	return plain.String()
}
