// Package display renders pathed's human-facing output: the indexed
// listing produced by show, and error lines. Export statements are never
// styled; they go through the shell package untouched.
package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pathed/pkg/display/styles"
	"github.com/arthur-debert/pathed/pkg/pathlist"
	"github.com/arthur-debert/pathed/pkg/ui"
)

// minIndexWidth keeps short lists aligned with a right-justified index
// column of at least three characters.
const minIndexWidth = 3

// Renderer renders listings in a fixed output format.
type Renderer struct {
	format ui.Format
}

// NewRenderer creates a Renderer for the given resolved format.
// FormatAuto must be resolved by the caller before constructing one.
func NewRenderer(format ui.Format) *Renderer {
	return &Renderer{format: format}
}

// Listing renders one line per component: a right-justified index of at
// least minIndexWidth characters, a space, then the literal component
// text. Duplicate components (by literal text) are highlighted in
// terminal format.
func (r *Renderer) Listing(l pathlist.List) string {
	width := indexWidth(l.Len())

	seen := make(map[string]int, l.Len())
	var b strings.Builder
	for i, component := range l {
		index := fmt.Sprintf("%*d", width, i)
		line := component

		if r.format == ui.FormatTerminal {
			index = styles.GetStyle("Index").Render(index)
			if _, dup := seen[component]; dup {
				line = styles.GetStyle("Duplicate").Render(line)
			} else {
				line = styles.GetStyle("Component").Render(line)
			}
		}
		seen[component]++

		b.WriteString(index)
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Error renders a single-line diagnostic, styled in terminal format.
func (r *Renderer) Error(msg string) string {
	if r.format == ui.FormatTerminal {
		return styles.GetStyle("Error").Render(msg)
	}
	return msg
}

// indexWidth returns the column width needed for the largest index,
// never below minIndexWidth.
func indexWidth(length int) int {
	digits := 1
	for n := length - 1; n >= 10; n /= 10 {
		digits++
	}
	if digits < minIndexWidth {
		return minIndexWidth
	}
	return digits
}
