package viewport

import (
	"testing"

	"github.com/dshills/kiln/internal/engine/buffer"
)

func newTestBuffer(lines ...string) *buffer.Buffer {
	return buffer.NewFromLines(lines)
}

func TestMoveCursorSaturatesVertically(t *testing.T) {
	buf := newTestBuffer("one", "two")
	v := New(80, 24)

	v.MoveCursor(DirUp, buf)
	if v.CursorY() != 0 {
		t.Errorf("Up at top: expected row 0, got %d", v.CursorY())
	}

	v.MoveCursor(DirDown, buf)
	v.MoveCursor(DirDown, buf)
	if v.CursorY() != 2 {
		t.Errorf("expected the virtual past-last row 2, got %d", v.CursorY())
	}
	v.MoveCursor(DirDown, buf)
	if v.CursorY() != 2 {
		t.Errorf("Down past virtual row: expected row 2, got %d", v.CursorY())
	}
}

func TestMoveCursorLeftWrapsToPreviousLine(t *testing.T) {
	buf := newTestBuffer("first", "second")
	v := New(80, 24)
	v.SetCursor(0, 1)

	v.MoveCursor(DirLeft, buf)
	if v.CursorY() != 0 || v.CursorX() != 5 {
		t.Errorf("expected (5,0), got (%d,%d)", v.CursorX(), v.CursorY())
	}

	// At the very origin Left does nothing.
	v.SetCursor(0, 0)
	v.MoveCursor(DirLeft, buf)
	if v.CursorY() != 0 || v.CursorX() != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", v.CursorX(), v.CursorY())
	}
}

func TestMoveCursorRightWrapsToNextLine(t *testing.T) {
	buf := newTestBuffer("ab", "cd")
	v := New(80, 24)
	v.SetCursor(2, 0)

	v.MoveCursor(DirRight, buf)
	if v.CursorY() != 1 || v.CursorX() != 0 {
		t.Errorf("expected (0,1), got (%d,%d)", v.CursorX(), v.CursorY())
	}

	// Right on the virtual row does nothing.
	v.SetCursor(0, 2)
	v.MoveCursor(DirRight, buf)
	if v.CursorY() != 2 || v.CursorX() != 0 {
		t.Errorf("expected (0,2), got (%d,%d)", v.CursorX(), v.CursorY())
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	buf := newTestBuffer("hello")
	v := New(80, 24)
	v.SetCursor(3, 0)

	v.MoveCursor(DirEnd, buf)
	if v.CursorX() != 5 {
		t.Errorf("End: expected column 5, got %d", v.CursorX())
	}
	v.MoveCursor(DirHome, buf)
	if v.CursorX() != 0 {
		t.Errorf("Home: expected column 0, got %d", v.CursorX())
	}

	// End on the virtual row leaves the column alone.
	v.SetCursor(0, 1)
	v.MoveCursor(DirEnd, buf)
	if v.CursorX() != 0 {
		t.Errorf("End on virtual row: expected column 0, got %d", v.CursorX())
	}
}

func TestVerticalMoveSnapsColumnToShorterLine(t *testing.T) {
	buf := newTestBuffer("a long line", "ab", "also a long line")
	v := New(80, 24)
	v.SetCursor(10, 0)

	v.MoveCursor(DirDown, buf)
	if v.CursorX() != 2 {
		t.Errorf("expected column snapped to 2, got %d", v.CursorX())
	}

	// The snap is not remembered when returning to a longer line.
	v.MoveCursor(DirDown, buf)
	if v.CursorX() != 2 {
		t.Errorf("expected column to stay 2, got %d", v.CursorX())
	}
}

func TestScrollKeepsCursorInWindow(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "row row row row row row row row row row"
	}
	buf := buffer.NewFromLines(lines)

	tests := []struct {
		name                 string
		cursorX, cursorY     int
		rowOffset, colOffset int
		cols, rows           int
	}{
		{"cursor below window", 0, 50, 0, 0, 80, 24},
		{"cursor above window", 0, 3, 40, 0, 80, 24},
		{"cursor right of window", 35, 0, 0, 0, 10, 24},
		{"cursor left of window", 2, 0, 0, 30, 10, 24},
		{"tiny screen", 39, 99, 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.cols, tt.rows)
			v.Restore(State{
				CursorX:   tt.cursorX,
				CursorY:   tt.cursorY,
				RowOffset: tt.rowOffset,
				ColOffset: tt.colOffset,
			})
			v.Scroll(buf)

			if v.RowOffset() > v.CursorY() || v.CursorY() >= v.RowOffset()+v.Rows() {
				t.Errorf("row invariant broken: offset=%d cursor=%d rows=%d",
					v.RowOffset(), v.CursorY(), v.Rows())
			}
			if v.ColOffset() > v.RenderX() || v.RenderX() >= v.ColOffset()+v.Cols() {
				t.Errorf("column invariant broken: offset=%d renderX=%d cols=%d",
					v.ColOffset(), v.RenderX(), v.Cols())
			}
		})
	}
}

func TestScrollComputesRenderX(t *testing.T) {
	buf := newTestBuffer("\thello")
	v := New(80, 24)
	v.SetCursor(1, 0) // just after the tab
	v.Scroll(buf)
	if v.RenderX() != 8 {
		t.Errorf("expected rendered column 8, got %d", v.RenderX())
	}

	x, y := v.ScreenPosition()
	if x != 8 || y != 0 {
		t.Errorf("expected screen position (8,0), got (%d,%d)", x, y)
	}
}

func TestScrollOnVirtualRow(t *testing.T) {
	buf := newTestBuffer("only")
	v := New(80, 24)
	v.SetCursor(0, 1)
	v.Scroll(buf)
	if v.RenderX() != 0 {
		t.Errorf("expected rendered column 0 on virtual row, got %d", v.RenderX())
	}
}

func TestPageMove(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "x"
	}
	buf := buffer.NewFromLines(lines)

	v := New(80, 24)
	v.SetCursor(0, 40)
	v.Scroll(buf) // rowOffset becomes 17

	v.PageMove(PageUp, buf)
	if v.CursorY() != v.RowOffset() {
		t.Errorf("PageUp: expected cursor at row offset %d, got %d", v.RowOffset(), v.CursorY())
	}

	v.PageMove(PageDown, buf)
	if want := v.RowOffset() + v.Rows() - 1; v.CursorY() != want {
		t.Errorf("PageDown: expected row %d, got %d", want, v.CursorY())
	}

	// PageDown near the end clamps to the virtual row.
	short := newTestBuffer("a", "b")
	v = New(80, 24)
	v.PageMove(PageDown, short)
	if v.CursorY() != 2 {
		t.Errorf("PageDown on short buffer: expected row 2, got %d", v.CursorY())
	}
}

func TestForceRescroll(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "x"
	}
	buf := buffer.NewFromLines(lines)

	v := New(80, 10)
	v.SetCursor(0, 30)
	v.ForceRescroll(buf.LineCount())
	v.Scroll(buf)
	if v.RowOffset() > v.CursorY() || v.CursorY() >= v.RowOffset()+v.Rows() {
		t.Errorf("cursor not visible after forced rescroll: offset=%d cursor=%d",
			v.RowOffset(), v.CursorY())
	}
}

func TestVisibleRow(t *testing.T) {
	buf := newTestBuffer("0123456789", "short")
	v := New(4, 2)

	if got := v.VisibleRow(buf, 0); got != "0123" {
		t.Errorf("expected %q, got %q", "0123", got)
	}
	if got := v.VisibleRow(buf, 1); got != "shor" {
		t.Errorf("expected %q, got %q", "shor", got)
	}
	// Past the buffer end.
	if got := v.VisibleRow(buf, 5); got != "" {
		t.Errorf("expected empty row past buffer, got %q", got)
	}

	// Window entirely past a short row.
	v.SetCursor(9, 0)
	v.Scroll(buf)
	if got := v.VisibleRow(buf, 1); got != "" {
		t.Errorf("expected empty slice past row end, got %q", got)
	}
}

func TestStateRestore(t *testing.T) {
	buf := newTestBuffer("hello world")
	v := New(80, 24)
	v.SetCursor(4, 0)
	v.Scroll(buf)
	saved := v.State()

	v.SetCursor(9, 0)
	v.Scroll(buf)
	v.Restore(saved)

	if v.CursorX() != 4 || v.CursorY() != 0 {
		t.Errorf("expected cursor (4,0) after restore, got (%d,%d)", v.CursorX(), v.CursorY())
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	v := New(0, -5)
	if v.Cols() != 1 || v.Rows() != 1 {
		t.Errorf("expected 1x1 minimum, got %dx%d", v.Cols(), v.Rows())
	}
}
