// Package backend owns the terminal: raw-mode lifecycle, screen cells, and
// the event queue. Nothing above this package touches tcell state directly,
// so the rest of the editor is testable without a terminal attached.
package backend

import "github.com/gdamore/tcell/v2"

// Terminal wraps a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend on the real screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a backend over a provided screen.
// Tests pass a tcell simulation screen here.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init enters raw mode and takes over the display.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Shutdown restores the terminal. Safe to call on every exit path.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Size returns the full screen size in cells.
func (t *Terminal) Size() (cols, rows int) {
	return t.screen.Size()
}

// Clear erases the screen buffer.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes pending drawing to the terminal in one write.
func (t *Terminal) Show() {
	t.screen.Show()
}

// SetContent places one rune at a screen cell.
func (t *Terminal) SetContent(x, y int, r rune, style tcell.Style) {
	t.screen.SetContent(x, y, r, nil, style)
}

// ShowCursor positions and reveals the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// PollEvent blocks for the next input, resize, or posted event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent injects an event into the queue; best effort when full.
func (t *Terminal) PostEvent(ev tcell.Event) {
	_ = t.screen.PostEvent(ev)
}
