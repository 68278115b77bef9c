// Package search implements incremental substring search over a buffer's
// rendered lines. A session is stateful across keystrokes: arrow-driven
// moves step the last match by row or by in-line position, and any edit to
// the query falls back to an absolute scan from the top.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/kiln/internal/engine/buffer"
)

// Direction is the scan direction along one axis. Modeling it as an
// explicit three-state enum keeps the boundary logic exhaustive.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

// Move is what a single search keystroke requests.
type Move int

const (
	// MoveNone means the query itself changed; scan from the top.
	MoveNone Move = iota
	// MoveNextLine steps the match one row forward.
	MoveNextLine
	// MovePrevLine steps the match one row backward.
	MovePrevLine
	// MoveNextMatch steps forward within the current row.
	MoveNextMatch
	// MovePrevMatch steps backward within the current row.
	MovePrevMatch
)

// Index is the per-session search position: the last match and the
// directions requested by the latest keystroke. Created fresh on search
// entry and reset on exit; never persisted.
type Index struct {
	x    int // rendered column of the last match
	y    int // row of the last match
	xDir Direction
	yDir Direction
}

// Reset returns the index to its neutral state.
func (i *Index) Reset() {
	i.x = 0
	i.y = 0
	i.xDir = DirectionNone
	i.yDir = DirectionNone
}

// Match is a successful search hit. Column is in rendered space; Logical
// is the corresponding cursor column in the raw line.
type Match struct {
	Row     int
	Column  int
	Logical int
}

// Engine runs incremental searches against one buffer.
type Engine struct {
	buf *buffer.Buffer
	idx Index
}

// New creates a search engine over the given buffer.
func New(buf *buffer.Buffer) *Engine {
	return &Engine{buf: buf}
}

// Reset clears the session state. Call on search accept or cancel.
func (e *Engine) Reset() {
	e.idx.Reset()
}

// Find runs one incremental search step. The scan starts from the last
// match, walks rows in the requested row direction (or top-down when none
// is set), and stops at the first row that yields a hit. When no row along
// the scan direction matches, the session state is left untouched so the
// previous match stays current.
func (e *Engine) Find(query string, move Move) (Match, bool) {
	e.idx.xDir = DirectionNone
	e.idx.yDir = DirectionNone
	switch move {
	case MoveNextLine:
		e.idx.yDir = DirectionForward
	case MovePrevLine:
		e.idx.yDir = DirectionBackward
	case MoveNextMatch:
		e.idx.xDir = DirectionForward
	case MovePrevMatch:
		e.idx.xDir = DirectionBackward
	}

	count := e.buf.LineCount()
	for i := 0; i < count; i++ {
		row, ok := e.scanRow(i)
		if !ok || row > count-1 {
			break
		}

		rendered := e.buf.RenderedRow(row)
		col, ok := e.rowMatch(rendered, query)
		if !ok {
			// A directional in-row miss aborts the whole scan.
			break
		}
		if col < 0 {
			continue
		}

		e.idx.y = row
		e.idx.x = col
		tabs := e.buf.TabExpander()
		logical := tabs.ColumnToIndex([]rune(e.buf.Row(row)), col)
		return Match{Row: row, Column: col, Logical: logical}, true
	}

	return Match{}, false
}

// scanRow maps scan step i to a buffer row. Stepping off either end of the
// buffer ends the scan.
func (e *Engine) scanRow(i int) (int, bool) {
	switch e.idx.yDir {
	case DirectionForward:
		return e.idx.y + i + 1, true
	case DirectionBackward:
		if e.idx.y < i+1 {
			return 0, false
		}
		return e.idx.y - i - 1, true
	default:
		// Absolute scan advances the index itself; an in-line step keeps
		// revisiting the current row.
		if e.idx.xDir == DirectionNone {
			e.idx.y = i
		}
		return e.idx.y, true
	}
}

// rowMatch finds the query within one rendered row, honoring the in-row
// direction. It returns (-1, true) for a miss that should continue to the
// next row and (_, false) for a directional miss that ends the scan.
func (e *Engine) rowMatch(rendered, query string) (int, bool) {
	switch e.idx.xDir {
	case DirectionForward:
		col := runeIndexFrom(rendered, query, e.idx.x+1)
		return col, col >= 0
	case DirectionBackward:
		col := runeLastIndexBefore(rendered, query, e.idx.x)
		return col, col >= 0
	default:
		if col := strings.Index(rendered, query); col >= 0 {
			return utf8.RuneCountInString(rendered[:col]), true
		}
		return -1, true
	}
}

// runeIndexFrom returns the rune index of the first occurrence of q in s at
// or after rune position from, or -1.
func runeIndexFrom(s, q string, from int) int {
	rs := []rune(s)
	if from > len(rs) {
		from = len(rs)
	}
	tail := string(rs[from:])
	i := strings.Index(tail, q)
	if i < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(tail[:i])
}

// runeLastIndexBefore returns the rune index of the last occurrence of q in
// s contained entirely before rune position before, or -1.
func runeLastIndexBefore(s, q string, before int) int {
	rs := []rune(s)
	if before > len(rs) {
		before = len(rs)
	}
	prefix := string(rs[:before])
	i := strings.LastIndex(prefix, q)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(prefix[:i])
}
