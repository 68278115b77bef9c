package viewport

// Scroll recomputes the cursor's rendered column and adjusts the window
// offsets minimally so the cursor is inside the visible window:
//
//	rowOffset <= cursorY < rowOffset+rows
//	colOffset <= renderX < colOffset+cols
//
// It must run before every paint.
func (v *Viewport) Scroll(buf RenderSource) {
	v.renderX = 0
	if v.cursorY < buf.LineCount() {
		tabs := buf.TabExpander()
		v.renderX = tabs.IndexToColumn([]rune(buf.Row(v.cursorY)), v.cursorX)
	}

	// vertical
	if v.rowOffset > v.cursorY {
		v.rowOffset = v.cursorY
	}
	if v.cursorY >= v.rowOffset+v.rows {
		v.rowOffset = v.cursorY - v.rows + 1
	}

	// horizontal
	if v.colOffset > v.renderX {
		v.colOffset = v.renderX
	}
	if v.renderX >= v.colOffset+v.cols {
		v.colOffset = v.renderX - v.cols + 1
	}
}

// ScreenPosition returns the cursor's screen-relative column and row.
// Only meaningful after Scroll.
func (v *Viewport) ScreenPosition() (x, y int) {
	return v.renderX - v.colOffset, v.cursorY - v.rowOffset
}

// VisibleRow returns the slice of the rendered buffer row that falls inside
// the window for the given screen row, with indices clamped so no
// out-of-range read is attempted. Rows past the end of the buffer and
// windows past the end of a row both yield the empty string; padding and
// truncation beyond the window are the painter's concern.
func (v *Viewport) VisibleRow(buf RenderSource, screenRow int) string {
	fileRow := screenRow + v.rowOffset
	if fileRow < 0 || fileRow >= buf.LineCount() {
		return ""
	}
	rendered := []rune(buf.RenderedRow(fileRow))
	if v.colOffset >= len(rendered) {
		return ""
	}
	end := v.colOffset + v.cols
	if end > len(rendered) {
		end = len(rendered)
	}
	return string(rendered[v.colOffset:end])
}
