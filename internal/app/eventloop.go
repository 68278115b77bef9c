package app

import (
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kiln/internal/input/key"
	"github.com/dshills/kiln/internal/renderer/viewport"
	"github.com/dshills/kiln/internal/watcher"
)

// saveQuietWindow is how long after our own save a disk-change notification
// is assumed to be the save itself and suppressed.
const saveQuietWindow = time.Second

// fileChangeEvent carries a watcher notification through the terminal event
// queue so the loop stays single-threaded.
type fileChangeEvent struct {
	when time.Time
	path string
	op   watcher.Op
}

// When implements tcell.Event.
func (e *fileChangeEvent) When() time.Time { return e.when }

// forwardFileEvents posts watcher events into the terminal queue until the
// watcher closes.
func (app *Application) forwardFileEvents() {
	for ev := range app.watch.Events() {
		app.term.PostEvent(&fileChangeEvent{when: ev.Time, path: ev.Path, op: ev.Op})
	}
}

// eventLoop paints and dispatches until quit.
func (app *Application) eventLoop() error {
	for {
		app.render()

		ev := app.term.PollEvent()
		if ev == nil {
			// Screen was shut down underneath us.
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// handleEvent routes one terminal event. Returns ErrQuit to exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		app.resize(cols, rows)
		return nil
	case *tcell.EventKey:
		return app.handleKey(key.Decode(ev))
	case *fileChangeEvent:
		app.handleFileChange(ev)
		return nil
	default:
		return nil
	}
}

// handleKey dispatches one decoded keystroke.
func (app *Application) handleKey(ev key.Event) error {
	if ev.Kind != key.KindQuit {
		app.quitLeft = app.cfg.QuitTimes
	}

	switch ev.Kind {
	case key.KindQuit:
		if app.buf.Dirty() > 0 && app.quitLeft > 0 {
			app.message.Set("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", app.quitLeft)
			app.quitLeft--
			return nil
		}
		return ErrQuit

	case key.KindUp:
		app.view.MoveCursor(viewport.DirUp, app.buf)
	case key.KindDown:
		app.view.MoveCursor(viewport.DirDown, app.buf)
	case key.KindLeft:
		app.view.MoveCursor(viewport.DirLeft, app.buf)
	case key.KindRight:
		app.view.MoveCursor(viewport.DirRight, app.buf)
	case key.KindHome:
		app.view.MoveCursor(viewport.DirHome, app.buf)
	case key.KindEnd:
		app.view.MoveCursor(viewport.DirEnd, app.buf)
	case key.KindPageUp:
		app.view.PageMove(viewport.PageUp, app.buf)
	case key.KindPageDown:
		app.view.PageMove(viewport.PageDown, app.buf)

	case key.KindRune:
		app.insertRune(ev.Rune)
	case key.KindEnter:
		app.insertNewline()
	case key.KindBackspace:
		app.deleteBackward()
	case key.KindDelete:
		app.deleteForward()

	case key.KindSave:
		app.saveFile()
	case key.KindFind:
		app.findSession()
	}

	return nil
}

// insertRune inserts one character at the cursor and advances it.
func (app *Application) insertRune(r rune) {
	x, y := app.view.CursorX(), app.view.CursorY()
	app.buf.InsertChar(y, x, r)
	app.view.SetCursor(x+1, y)
}

// insertNewline splits the current line at the cursor.
func (app *Application) insertNewline() {
	x, y := app.view.CursorX(), app.view.CursorY()
	app.buf.SplitLine(y, x)
	app.view.SetCursor(0, y+1)
}

// deleteBackward removes the character left of the cursor, joining lines at
// column zero. At the start of the buffer or on the virtual past-last row it
// does nothing.
func (app *Application) deleteBackward() {
	x, y := app.view.CursorX(), app.view.CursorY()
	if y == app.buf.LineCount() || (x == 0 && y == 0) {
		return
	}
	if x > 0 {
		app.buf.DeleteChar(y, x)
		app.view.SetCursor(x-1, y)
		return
	}
	prevLen := app.buf.RowLen(y - 1)
	app.buf.DeleteChar(y, 0)
	app.view.SetCursor(prevLen, y-1)
}

// deleteForward removes the character under the cursor: step right, then
// delete backward. At the very end of the buffer there is nothing to take.
func (app *Application) deleteForward() {
	x, y := app.view.CursorX(), app.view.CursorY()
	count := app.buf.LineCount()
	if y >= count {
		return
	}
	if y == count-1 && x == app.buf.RowLen(y) {
		return
	}
	app.view.MoveCursor(viewport.DirRight, app.buf)
	app.deleteBackward()
}

// saveFile writes the buffer to disk, prompting for a name if it has none.
func (app *Application) saveFile() {
	if app.buf.Path() == "" {
		name, ok := app.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			app.message.Set("Save aborted")
			return
		}
		app.buf.SetPath(name)
	}

	n, err := app.buf.Save()
	if err != nil {
		app.logger.Error("save failed: %v", err)
		app.message.Set("Can't save! I/O error: %v", err)
		return
	}

	app.lastSave = time.Now()
	if app.watch != nil {
		if err := app.watch.Watch(app.buf.Path()); err != nil {
			app.logger.Debug("not watching %s: %v", app.buf.Path(), err)
		}
	}
	app.logger.Info("saved %s (%d bytes)", app.buf.Path(), n)
	app.message.Set("%d bytes written to disk", n)
}

// handleFileChange surfaces an external write to the open file. Changes
// arriving right after our own save are the save echoing back.
func (app *Application) handleFileChange(ev *fileChangeEvent) {
	if time.Since(app.lastSave) < saveQuietWindow {
		return
	}
	app.logger.Warn("%s: %s on disk", ev.path, ev.op)
	app.message.Set("WARNING! %s changed on disk (%s)", filepath.Base(ev.path), ev.op)
}
