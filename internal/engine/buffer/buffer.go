// Package buffer holds the in-memory text being edited: an ordered, dense
// sequence of lines with per-line rendered caches, an optional backing file
// path, and a modification counter.
package buffer

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dshills/kiln/internal/renderer/layout"
)

// Errors returned by buffer operations.
var (
	// ErrNoFileName indicates a save was attempted with no associated path.
	ErrNoFileName = errors.New("no file name specified")
)

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer is an ordered sequence of lines. Indices are dense 0..count; an
// empty buffer has zero lines, which is distinct from one empty line.
type Buffer struct {
	lines    []*Line
	path     string
	dirty    uint64
	revision RevisionID
	tabs     *layout.TabExpander
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithTabExpander sets the tab expander used to derive rendered lines.
func WithTabExpander(tabs *layout.TabExpander) Option {
	return func(b *Buffer) {
		if tabs != nil {
			b.tabs = tabs
		}
	}
}

// WithPath associates a file path without reading it.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		tabs:     layout.DefaultTabExpander(),
		revision: NewRevisionID(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromLines creates a buffer with the given initial line contents.
func NewFromLines(contents []string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = make([]*Line, 0, len(contents))
	for _, c := range contents {
		b.lines = append(b.lines, newLine(c, b.tabs))
	}
	return b
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Row returns the raw content of line y.
func (b *Buffer) Row(y int) string {
	return b.line(y).Content()
}

// RenderedRow returns the tab-expanded content of line y.
func (b *Buffer) RenderedRow(y int) string {
	return b.line(y).Rendered()
}

// RowLen returns the logical length of line y in characters.
func (b *Buffer) RowLen(y int) int {
	return b.line(y).Len()
}

// line returns the Line at y. An out-of-range index is a broken invariant
// in the caller, not a recoverable condition.
func (b *Buffer) line(y int) *Line {
	if y < 0 || y >= len(b.lines) {
		panic(fmt.Sprintf("buffer: line index %d out of range [0, %d)", y, len(b.lines)))
	}
	return b.lines[y]
}

// Path returns the associated file path, if any.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath associates a file path for subsequent saves.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// Dirty returns the count of unsaved edits since the last save.
func (b *Buffer) Dirty() uint64 {
	return b.dirty
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	return b.revision
}

// TabExpander returns the expander used to derive rendered lines.
func (b *Buffer) TabExpander() *layout.TabExpander {
	return b.tabs
}

// markDirty records one edit: the dirty counter increments and the buffer
// moves to a new revision.
func (b *Buffer) markDirty() {
	b.dirty++
	b.revision = NewRevisionID()
}
