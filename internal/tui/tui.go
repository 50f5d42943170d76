// Package tui implements a terminal visualizer for resp.Parser: a buffer
// pane showing the staged bytes as hex+ASCII, a values pane showing every
// value committed so far, a status line reporting the parser's current
// resumption state, and an input line for feeding more bytes.
//
// Nothing here opens a network connection; the only input a session ever
// sees is what the user types or loads from a local file.
package tui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kbcode/resp2/internal/resp"
)

// App holds all TUI state.
//
// Plain struct, no inheritance: widgets are fields, wiring happens once in
// newApp, and Run takes over the terminal. Separating the two keeps newApp
// testable without ever calling (*tview.Application).Run.
type App struct {
	parser *resp.Parser
	values []resp.RespValue

	app         *tview.Application
	layout      *tview.Flex
	bufferView  *tview.TextView
	valuesView  *tview.TextView
	statusLine  *tview.TextView
	feedInput   *tview.InputField
	bufferPane  *tview.Flex
	valuesPane  *tview.Flex
	bottomPane  *tview.Flex

	focusOrder []tview.Primitive
	focusIndex int
}

// newApp builds the widget tree and wires input handling. It does not feed
// any bytes; call Feed (or seed via initial in Run) once the app exists.
func newApp() *App {
	a := &App{
		parser: resp.NewDefaultParser(),
		app:    tview.NewApplication(),
	}

	a.bufferView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	a.bufferPane = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.bufferView, 0, 1, false)
	a.bufferPane.SetBorder(true).SetTitle(contentTitle("Staged bytes"))

	a.valuesView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	a.valuesPane = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.valuesView, 0, 1, false)
	a.valuesPane.SetBorder(true).SetTitle(contentTitle("Committed values"))

	a.statusLine = tview.NewTextView().SetDynamicColors(true)
	a.statusLine.SetBackgroundColor(tcell.ColorDarkSlateGray)

	a.feedInput = tview.NewInputField().
		SetLabel("feed (hex or text, prefix with 0x for hex) > ").
		SetFieldBackgroundColor(tcell.ColorBlack)

	a.bottomPane = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.feedInput, 1, 0, true)
	a.bottomPane.SetBorder(true).SetTitle(" Feed ")

	panes := tview.NewFlex().
		AddItem(a.bufferPane, 0, 1, false).
		AddItem(a.valuesPane, 0, 1, false)

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(panes, 0, 1, false).
		AddItem(a.statusLine, 1, 0, false).
		AddItem(a.bottomPane, 3, 0, true)

	a.focusOrder = []tview.Primitive{a.bufferView, a.valuesView, a.feedInput}
	a.focusIndex = 2 // start on feedInput

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			a.focusIndex = (a.focusIndex + 1) % len(a.focusOrder)
			a.app.SetFocus(a.focusOrder[a.focusIndex])
			a.highlightFocusedPane()
			return nil
		case tcell.KeyBacktab:
			a.focusIndex = (a.focusIndex - 1 + len(a.focusOrder)) % len(a.focusOrder)
			a.app.SetFocus(a.focusOrder[a.focusIndex])
			a.highlightFocusedPane()
			return nil
		}
		return event
	})

	a.feedInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := a.feedInput.GetText()
		a.feedInput.SetText("")
		a.handleFeedLine(text)
	})

	a.highlightFocusedPane()
	a.render()

	return a
}

// Feed pushes b through the parser and appends any newly committed values,
// then refreshes every pane. Run uses it to pre-seed a session with the
// initial buffer (respdump --tui passes its input there).
func (a *App) Feed(b []byte) error {
	values, err := a.parser.Feed(b)
	if err != nil {
		a.render()
		a.statusLine.SetText(fmt.Sprintf("[red]error: %v[-]", err))
		return err
	}
	a.values = append(a.values, values...)
	a.render()
	return nil
}

func (a *App) handleFeedLine(text string) {
	b, err := decodeFeedLine(text)
	if err != nil {
		a.statusLine.SetText(fmt.Sprintf("[red]invalid input: %v[-]", err))
		return
	}
	a.Feed(b)
}

// Run creates the app, feeds it initial (if non-empty), and takes over the
// terminal until the user quits.
func Run(initial []byte) error {
	// fatih/color auto-detects no-terminal and disables colors, but
	// tview.ANSIWriter needs ANSI codes to translate into tview color tags.
	color.NoColor = false

	a := newApp()
	if len(initial) > 0 {
		if err := a.Feed(initial); err != nil {
			return err
		}
	}
	return a.app.EnableMouse(true).SetRoot(a.layout, true).SetFocus(a.feedInput).Run()
}
