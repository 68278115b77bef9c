// Package viewport tracks the cursor and the visible window into a buffer.
// It owns no terminal state; everything here is pure logic over in-memory
// coordinates so it can be exercised without a terminal attached.
package viewport

import "github.com/dshills/kiln/internal/renderer/layout"

// RenderSource is the buffer surface the viewport reads: logical rows,
// their rendered forms, and the expander that maps between the two.
type RenderSource interface {
	LineCount() int
	Row(y int) string
	RenderedRow(y int) string
	RowLen(y int) int
	TabExpander() *layout.TabExpander
}

// Direction is a cursor movement command.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirHome
	DirEnd
)

// Viewport tracks the cursor's logical position, its rendered column, and
// the row/column offsets of the visible window.
type Viewport struct {
	cursorX int // logical column
	cursorY int // logical row; may equal LineCount (virtual insertion row)
	renderX int // rendered column, derived during Scroll

	rowOffset int
	colOffset int

	rows int
	cols int
}

// New creates a viewport for a screen of the given size.
// Dimensions are clamped to a minimum of 1.
func New(cols, rows int) *Viewport {
	v := &Viewport{}
	v.Resize(cols, rows)
	return v
}

// Resize updates the screen size. Dimensions are clamped to a minimum of 1.
func (v *Viewport) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	v.cols = cols
	v.rows = rows
}

// Rows returns the screen height in rows.
func (v *Viewport) Rows() int { return v.rows }

// Cols returns the screen width in columns.
func (v *Viewport) Cols() int { return v.cols }

// CursorX returns the cursor's logical column.
func (v *Viewport) CursorX() int { return v.cursorX }

// CursorY returns the cursor's logical row.
func (v *Viewport) CursorY() int { return v.cursorY }

// RenderX returns the cursor's rendered column as of the last Scroll.
func (v *Viewport) RenderX() int { return v.renderX }

// RowOffset returns the first visible buffer row.
func (v *Viewport) RowOffset() int { return v.rowOffset }

// ColOffset returns the first visible rendered column.
func (v *Viewport) ColOffset() int { return v.colOffset }

// SetCursor places the cursor at a logical position. Used by search jumps;
// the caller is responsible for a subsequent Scroll.
func (v *Viewport) SetCursor(x, y int) {
	v.cursorX = x
	v.cursorY = y
}

// ForceRescroll invalidates the row offset so the next Scroll is guaranteed
// to bring the cursor's row back into view.
func (v *Viewport) ForceRescroll(lineCount int) {
	v.rowOffset = lineCount
}

// State is a restorable snapshot of cursor and window position.
type State struct {
	CursorX, CursorY     int
	RenderX              int
	RowOffset, ColOffset int
}

// State captures the current cursor and window position.
func (v *Viewport) State() State {
	return State{
		CursorX:   v.cursorX,
		CursorY:   v.cursorY,
		RenderX:   v.renderX,
		RowOffset: v.rowOffset,
		ColOffset: v.colOffset,
	}
}

// Restore reinstates a previously captured position.
func (v *Viewport) Restore(s State) {
	v.cursorX = s.CursorX
	v.cursorY = s.CursorY
	v.renderX = s.RenderX
	v.rowOffset = s.RowOffset
	v.colOffset = s.ColOffset
}

// MoveCursor applies one directional move against the buffer. Left at
// column 0 wraps to the end of the previous line; Right at end of line
// wraps to the start of the next; Up and Down saturate at the buffer
// bounds, where Down may land on the virtual past-last row. The column is
// clamped to the target line afterwards; there is no sticky-column memory.
func (v *Viewport) MoveCursor(dir Direction, buf RenderSource) {
	count := buf.LineCount()

	switch dir {
	case DirUp:
		if v.cursorY > 0 {
			v.cursorY--
		}
	case DirDown:
		if v.cursorY < count {
			v.cursorY++
		}
	case DirLeft:
		if v.cursorX > 0 {
			v.cursorX--
		} else if v.cursorY > 0 {
			v.cursorY--
			v.cursorX = buf.RowLen(v.cursorY)
		}
	case DirRight:
		if v.cursorY < count {
			if v.cursorX < buf.RowLen(v.cursorY) {
				v.cursorX++
			} else {
				v.cursorX = 0
				v.cursorY++
			}
		}
	case DirHome:
		v.cursorX = 0
	case DirEnd:
		if v.cursorY < count {
			v.cursorX = buf.RowLen(v.cursorY)
		}
	}

	v.clampX(buf)
}

// PageDirection selects a page jump.
type PageDirection int

const (
	PageUp PageDirection = iota
	PageDown
)

// PageMove jumps the cursor a full screen at once: PageUp to the top of the
// current window, PageDown to its bottom edge, clamped to the buffer.
func (v *Viewport) PageMove(dir PageDirection, buf RenderSource) {
	switch dir {
	case PageUp:
		v.cursorY = v.rowOffset
	case PageDown:
		v.cursorY = v.rowOffset + v.rows - 1
		if v.cursorY > buf.LineCount() {
			v.cursorY = buf.LineCount()
		}
	}
	v.clampX(buf)
}

// clampX snaps the column into the current line's bounds.
func (v *Viewport) clampX(buf RenderSource) {
	rowLen := 0
	if v.cursorY < buf.LineCount() {
		rowLen = buf.RowLen(v.cursorY)
	}
	if v.cursorX > rowLen {
		v.cursorX = rowLen
	}
}
