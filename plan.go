package columnize

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Plan is the result of laying out items into columns. Widths holds one
// entry per column, left to right; an empty Widths means there is nothing
// to show. Spacing is the number of blanks placed between adjacent columns.
type Plan struct {
	Widths  []int `json:"widths" yaml:"widths"`
	Spacing int   `json:"spacing" yaml:"spacing"`
}

// NewPlan chooses the densest column layout for items whose lines fit
// within maxWidth.
//
// Candidate layouts are tried with an increasing number of items per column,
// so the first one that fits has the most columns. Each column is as wide as
// its widest item. When a single item is already wider than maxWidth, the
// plan degrades to one column of exactly maxWidth and rendering truncates.
func NewPlan(items []string, spacing, maxWidth int) (Plan, error) {
	if spacing < 0 {
		return Plan{}, fmt.Errorf("%w: spacing must be non-negative, got %d", ErrInvalidArgument, spacing)
	}
	if maxWidth < 0 {
		return Plan{}, fmt.Errorf("%w: max width must be non-negative, got %d", ErrInvalidArgument, maxWidth)
	}
	if len(items) == 0 {
		return Plan{Widths: []int{}, Spacing: spacing}, nil
	}

	widths := make([]int, len(items))
	widest := 0
	for i, item := range items {
		widths[i] = runewidth.StringWidth(item)
		widest = max(widest, widths[i])
	}
	if widest > maxWidth {
		return Plan{Widths: []int{maxWidth}, Spacing: spacing}, nil
	}

	n := len(items)
	for size := 1; size <= n; size++ {
		cols := chunkMaxima(widths, size)
		p := Plan{Widths: cols, Spacing: spacing}
		if p.Width() <= maxWidth {
			return p, nil
		}
	}

	// Unreachable: a single column is never wider than widest.
	return Plan{Widths: []int{widest}, Spacing: spacing}, nil
}

// Columns returns the number of columns in the plan.
func (p Plan) Columns() int { return len(p.Widths) }

// Width returns the width of a line that fills every column.
func (p Plan) Width() int {
	if len(p.Widths) == 0 {
		return 0
	}
	total := p.Spacing * (len(p.Widths) - 1)
	for _, w := range p.Widths {
		total += w
	}
	return total
}

// Lines returns how many lines n items occupy under the plan.
func (p Plan) Lines(n int) int {
	if len(p.Widths) == 0 || n == 0 {
		return 1
	}
	return ceilDiv(n, len(p.Widths))
}

// chunkMaxima splits widths into consecutive runs of size and returns the
// largest width in each run. The last run may be shorter.
func chunkMaxima(widths []int, size int) []int {
	out := make([]int, 0, ceilDiv(len(widths), size))
	for start := 0; start < len(widths); start += size {
		end := min(start+size, len(widths))
		widest := 0
		for _, w := range widths[start:end] {
			widest = max(widest, w)
		}
		out = append(out, widest)
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
