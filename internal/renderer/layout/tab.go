// Package layout maps between logical character positions and rendered
// screen columns. Tabs are the only character that renders wider than one
// cell; everything else maps 1:1.
package layout

import "strings"

// DefaultTabStop is the column interval tabs expand to.
const DefaultTabStop = 8

// TabExpander expands tabs to column stops and converts between logical
// (rune index) and rendered (screen column) coordinates.
type TabExpander struct {
	tabStop int
}

// NewTabExpander creates a tab expander with the given tab stop.
func NewTabExpander(tabStop int) *TabExpander {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &TabExpander{tabStop: tabStop}
}

// DefaultTabExpander returns a tab expander with the default tab stop of 8.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabStop)
}

// TabStop returns the current tab stop.
func (t *TabExpander) TabStop() int {
	return t.tabStop
}

// SetTabStop sets the tab stop.
func (t *TabExpander) SetTabStop(stop int) {
	if stop < 1 {
		stop = 1
	}
	t.tabStop = stop
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabStop - (col % t.tabStop)
}

// Expand returns the rendered form of content: each tab becomes 1..tabStop
// spaces ending on a tab stop, all other characters map to themselves.
func (t *TabExpander) Expand(content []rune) string {
	var b strings.Builder
	b.Grow(len(content))
	col := 0
	for _, r := range content {
		if r == '\t' {
			stop := t.NextTabStop(col)
			for col < stop {
				b.WriteByte(' ')
				col++
			}
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// ExpandedWidth returns the rendered width of content.
func (t *TabExpander) ExpandedWidth(content []rune) int {
	col := 0
	for _, r := range content {
		if r == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// IndexToColumn converts a logical rune index to a rendered column by
// summing the expansion width of every character strictly before it.
func (t *TabExpander) IndexToColumn(content []rune, index int) int {
	if index > len(content) {
		index = len(content)
	}
	col := 0
	for _, r := range content[:index] {
		if r == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// ColumnToIndex converts a rendered column back to a logical rune index:
// the index of the first character whose start column exceeds the target.
// Columns inside a tab's expansion resolve to the tab's own index. A column
// past the rendered width returns len(content).
func (t *TabExpander) ColumnToIndex(content []rune, column int) int {
	col := 0
	for i, r := range content {
		if r == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
		if col > column {
			return i
		}
	}
	return len(content)
}
