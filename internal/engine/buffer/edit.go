package buffer

// Edit operations. Every mutation re-derives the affected lines' rendered
// caches before returning, so readers never observe a stale render.

// InsertLine inserts a new line at index y (0..count inclusive); later
// lines shift down.
func (b *Buffer) InsertLine(y int, content string) {
	if y < 0 {
		y = 0
	}
	if y > len(b.lines) {
		y = len(b.lines)
	}
	line := newLine(content, b.tabs)
	b.lines = append(b.lines, nil)
	copy(b.lines[y+1:], b.lines[y:])
	b.lines[y] = line
	b.markDirty()
}

// InsertChar inserts r into line y at logical column x. If y is the
// one-past-last insertion row, a new empty line is appended first.
func (b *Buffer) InsertChar(y, x int, r rune) {
	if y == len(b.lines) {
		b.InsertLine(y, "")
	}
	b.line(y).insertRune(x, r, b.tabs)
	b.markDirty()
}

// SplitLine truncates line y at column x and inserts the removed tail as a
// new line at y+1. Splitting at the virtual past-last row inserts an empty
// line there instead.
func (b *Buffer) SplitLine(y, x int) {
	if y == len(b.lines) {
		b.InsertLine(y, "")
		return
	}
	tail := b.line(y).truncate(x, b.tabs)
	b.InsertLine(y+1, tail)
}

// DeleteChar removes the character left of column x in line y. At column 0
// it instead joins line y into line y-1; the caller repositions the cursor
// to the join point. Deleting at (0, 0) or on the virtual past-last row
// does nothing.
func (b *Buffer) DeleteChar(y, x int) {
	if y == len(b.lines) {
		return
	}
	if x > 0 {
		line := b.line(y)
		if x > line.Len() {
			// Nothing removed, so no edit is recorded.
			return
		}
		line.deleteRune(x-1, b.tabs)
		b.markDirty()
		return
	}
	if y == 0 {
		return
	}
	b.JoinLines(y)
}

// JoinLines appends the content of line y onto line y-1 and removes line y.
func (b *Buffer) JoinLines(y int) {
	current := b.line(y)
	prev := b.line(y - 1)
	prev.appendContent(current.Content(), b.tabs)
	b.lines = append(b.lines[:y], b.lines[y+1:]...)
	b.markDirty()
}
