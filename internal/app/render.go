package app

import (
	"fmt"
	"path/filepath"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// render paints one full frame: text rows, status bar, message bar, cursor.
func (app *Application) render() {
	app.view.Scroll(app.buf)
	app.term.Clear()

	app.drawRows()
	app.drawStatusBar()
	app.drawMessageBar()

	x, y := app.view.ScreenPosition()
	app.term.ShowCursor(x, y)
	app.term.Show()
}

// drawRows paints the text area. Rows past the end of the buffer show a
// tilde; an empty buffer gets the welcome banner a third of the way down.
func (app *Application) drawRows() {
	for r := 0; r < app.view.Rows(); r++ {
		fileRow := r + app.view.RowOffset()
		if fileRow >= app.buf.LineCount() {
			if app.buf.LineCount() == 0 && app.cfg.ShowWelcome && r == app.view.Rows()/3 {
				app.drawWelcome(r)
			} else {
				app.term.SetContent(0, r, '~', tcell.StyleDefault)
			}
			continue
		}

		col := 0
		for _, ch := range app.view.VisibleRow(app.buf, r) {
			style := tcell.StyleDefault
			if unicode.IsDigit(ch) {
				style = style.Foreground(tcell.ColorTeal)
			}
			app.term.SetContent(col, r, ch, style)
			col++
		}
	}
}

// drawWelcome centers the banner on one row, keeping the leading tilde.
func (app *Application) drawWelcome(r int) {
	msg := fmt.Sprintf("Kiln editor -- version %s", Version)
	cols := app.view.Cols()
	msg = runewidth.Truncate(msg, cols, "")

	col := 0
	pad := (cols - runewidth.StringWidth(msg)) / 2
	if pad > 0 {
		app.term.SetContent(0, r, '~', tcell.StyleDefault)
		col = pad
	}
	app.drawText(col, r, tcell.StyleDefault, msg)
}

// drawStatusBar paints the reverse-video bar: file name, line count, and
// modified flag on the left; cursor line over total on the right.
func (app *Application) drawStatusBar() {
	style := tcell.StyleDefault.Reverse(true)
	row := app.view.Rows()
	cols := app.view.Cols()

	name := "[No Name]"
	if app.buf.Path() != "" {
		name = filepath.Base(app.buf.Path())
	}
	name = runewidth.Truncate(name, 20, "")

	modified := ""
	if app.buf.Dirty() > 0 {
		modified = " (modified)"
	}

	left := fmt.Sprintf("%s - %d lines%s", name, app.buf.LineCount(), modified)
	right := fmt.Sprintf("%d/%d", app.view.CursorY()+1, app.buf.LineCount())

	left = runewidth.Truncate(left, cols, "")
	if runewidth.StringWidth(left)+runewidth.StringWidth(right) > cols {
		right = ""
	}

	col := app.drawText(0, row, style, left)
	gap := cols - col - runewidth.StringWidth(right)
	for i := 0; i < gap; i++ {
		app.term.SetContent(col, row, ' ', style)
		col++
	}
	app.drawText(col, row, style, right)
}

// drawMessageBar paints the transient status message, if still alive.
func (app *Application) drawMessageBar() {
	row := app.view.Rows() + 1
	msg := runewidth.Truncate(app.message.Text(), app.view.Cols(), "")
	app.drawText(0, row, tcell.StyleDefault, msg)
}

// drawText paints a string left to right and returns the next free column.
func (app *Application) drawText(col, row int, style tcell.Style, text string) int {
	for _, ch := range text {
		app.term.SetContent(col, row, ch, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}
