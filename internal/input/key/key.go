// Package key decodes terminal key events into the editor's closed set of
// logical commands. Modifier combinations outside the set decode to
// KindNone and are dropped by the caller.
package key

import "github.com/gdamore/tcell/v2"

// Kind identifies a logical key command.
type Kind int

const (
	KindNone Kind = iota

	// KindRune is a printable character (or tab) to insert.
	KindRune

	// Cursor movement.
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindPageUp
	KindPageDown

	// Editing.
	KindEnter
	KindBackspace
	KindDelete

	// Control.
	KindEscape
	KindSave
	KindFind
	KindQuit
)

// Event is one decoded keystroke.
type Event struct {
	Kind Kind
	Rune rune
}

// Decode maps a tcell key event to a logical command. Ctrl/Alt/Meta
// combinations that are not part of the command set are suppressed, so
// e.g. Ctrl+X never inserts an X.
func Decode(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return Event{Kind: KindNone}
		}
		return Event{Kind: KindRune, Rune: ev.Rune()}
	case tcell.KeyTab:
		return Event{Kind: KindRune, Rune: '\t'}
	case tcell.KeyUp:
		return Event{Kind: KindUp}
	case tcell.KeyDown:
		return Event{Kind: KindDown}
	case tcell.KeyLeft:
		return Event{Kind: KindLeft}
	case tcell.KeyRight:
		return Event{Kind: KindRight}
	case tcell.KeyHome:
		return Event{Kind: KindHome}
	case tcell.KeyEnd:
		return Event{Kind: KindEnd}
	case tcell.KeyPgUp:
		return Event{Kind: KindPageUp}
	case tcell.KeyPgDn:
		return Event{Kind: KindPageDown}
	case tcell.KeyEnter:
		return Event{Kind: KindEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Kind: KindBackspace}
	case tcell.KeyDelete:
		return Event{Kind: KindDelete}
	case tcell.KeyEscape:
		return Event{Kind: KindEscape}
	case tcell.KeyCtrlS:
		return Event{Kind: KindSave}
	case tcell.KeyCtrlF, tcell.KeyCtrlG:
		return Event{Kind: KindFind}
	case tcell.KeyCtrlQ:
		return Event{Kind: KindQuit}
	default:
		return Event{Kind: KindNone}
	}
}
