package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kiln/internal/engine/search"
	"github.com/dshills/kiln/internal/input/key"
)

// prompt runs a modal input line in the message bar. The format must carry
// one %s for the input so far. Enter accepts non-empty input, Escape
// cancels, Backspace edits. The step callback, when set, observes the input
// and the keystroke that produced it after every change.
func (app *Application) prompt(format string, step func(input string, ev key.Event)) (string, bool) {
	var input []rune
	for {
		app.message.Set(format, string(input))
		app.render()

		ev, ok := app.pollKey()
		if !ok {
			return "", false
		}

		switch ev.Kind {
		case key.KindEnter:
			if len(input) > 0 {
				app.message.Clear()
				return string(input), true
			}
			continue
		case key.KindEscape:
			app.message.Clear()
			return "", false
		case key.KindBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case key.KindRune:
			input = append(input, ev.Rune)
		}

		if step != nil {
			step(string(input), ev)
		}
	}
}

// pollKey waits for the next keystroke, servicing resizes along the way.
// Returns false if the event stream ends.
func (app *Application) pollKey() (key.Event, bool) {
	for {
		ev := app.term.PollEvent()
		if ev == nil {
			return key.Event{}, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			app.resize(cols, rows)
		case *tcell.EventKey:
			return key.Decode(ev), true
		}
	}
}

// findSession runs an incremental search. The viewport is restored on
// cancel and kept on accept; session state never outlives the prompt.
func (app *Application) findSession() {
	saved := app.view.State()
	app.finder.Reset()

	_, ok := app.prompt("Search: %s (Use ESC/Arrows/Enter)", app.searchStep)

	app.finder.Reset()
	if !ok {
		app.view.Restore(saved)
	}
}

// searchStep advances the search one keystroke: arrows step the match by
// row or within the row, any edit rescans from the top.
func (app *Application) searchStep(query string, ev key.Event) {
	if query == "" {
		return
	}

	var move search.Move
	switch ev.Kind {
	case key.KindDown:
		move = search.MoveNextLine
	case key.KindUp:
		move = search.MovePrevLine
	case key.KindRight:
		move = search.MoveNextMatch
	case key.KindLeft:
		move = search.MovePrevMatch
	default:
		move = search.MoveNone
	}

	m, ok := app.finder.Find(query, move)
	if !ok {
		return
	}

	app.view.SetCursor(m.Logical, m.Row)
	app.view.ForceRescroll(app.buf.LineCount())
}
