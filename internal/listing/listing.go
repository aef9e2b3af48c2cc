// Package listing formats window rectangles as aligned text columns.
package listing

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnGap is the space kept free after the last column so a line that
// fills the terminal does not wrap.
const columnGap = 5

type entry struct {
	title      string
	titleWidth int
	cells      [4]string
}

// Builder collects rows and renders them aligned to a terminal width.
type Builder struct {
	entries []entry
	width   *runewidth.Condition
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	cond := runewidth.NewCondition()
	// Ambiguous-width runes count as narrow regardless of the locale.
	cond.EastAsianWidth = false
	return &Builder{width: cond}
}

// Add appends a row.
func (b *Builder) Add(title string, x, y, width, height float64) {
	b.entries = append(b.entries, entry{
		title:      title,
		titleWidth: b.width.StringWidth(title),
		cells:      [4]string{formatNumber(x), formatNumber(y), formatNumber(width), formatNumber(height)},
	})
}

// Len returns the number of rows added so far.
func (b *Builder) Len() int { return len(b.entries) }

// Build renders one line per row. Numeric columns are right-aligned. Titles
// are padded to the widest title that still fits within terminalWidth;
// longer titles are written unpadded and push their row out of alignment.
func (b *Builder) Build(terminalWidth int) []string {
	var cellWidths [4]int
	for _, e := range b.entries {
		for i, c := range e.cells {
			cellWidths[i] = max(cellWidths[i], len(c))
		}
	}

	limit := terminalWidth - columnGap
	for _, w := range cellWidths {
		limit -= w
	}

	titleWidth := 0
	for _, e := range b.entries {
		if e.titleWidth <= limit {
			titleWidth = max(titleWidth, e.titleWidth)
		}
	}

	lines := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		var sb strings.Builder
		sb.WriteString(e.title)
		if e.titleWidth < titleWidth {
			sb.WriteString(strings.Repeat(" ", titleWidth-e.titleWidth))
		}
		for i, c := range e.cells {
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", cellWidths[i]-len(c)))
			sb.WriteString(c)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// formatNumber renders v in its shortest round-tripping form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
