package buffer

import "github.com/dshills/kiln/internal/renderer/layout"

// Line is one logical row of text: the raw content plus its cached rendered
// form. The render is re-derived on every mutation rather than invalidated
// lazily, so a Line can never be read with a stale cache.
type Line struct {
	content  []rune
	rendered string
}

func newLine(content string, tabs *layout.TabExpander) *Line {
	l := &Line{content: []rune(content)}
	l.render(tabs)
	return l
}

// render recomputes the cached rendered form.
func (l *Line) render(tabs *layout.TabExpander) {
	l.rendered = tabs.Expand(l.content)
}

// Content returns the raw line content.
func (l *Line) Content() string {
	return string(l.content)
}

// Rendered returns the tab-expanded form of the line.
func (l *Line) Rendered() string {
	return l.rendered
}

// Len returns the logical length of the line in characters.
func (l *Line) Len() int {
	return len(l.content)
}

func (l *Line) insertRune(at int, r rune, tabs *layout.TabExpander) {
	if at < 0 {
		at = 0
	}
	if at > len(l.content) {
		at = len(l.content)
	}
	l.content = append(l.content, 0)
	copy(l.content[at+1:], l.content[at:])
	l.content[at] = r
	l.render(tabs)
}

func (l *Line) deleteRune(at int, tabs *layout.TabExpander) {
	if at < 0 || at >= len(l.content) {
		return
	}
	l.content = append(l.content[:at], l.content[at+1:]...)
	l.render(tabs)
}

// truncate cuts the line at the given index and returns the removed tail.
func (l *Line) truncate(at int, tabs *layout.TabExpander) string {
	if at < 0 {
		at = 0
	}
	if at > len(l.content) {
		at = len(l.content)
	}
	tail := string(l.content[at:])
	l.content = l.content[:at]
	l.render(tabs)
	return tail
}

func (l *Line) appendContent(s string, tabs *layout.TabExpander) {
	l.content = append(l.content, []rune(s)...)
	l.render(tabs)
}
