package columnize

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render lays items out under the plan and returns one string per line.
//
// Items fill the grid column by column: with L lines, column c holds
// items[c*L : c*L+L]. Every cell but the last on a line is padded or cut
// to its column width; the last cell is only cut, so lines carry no
// trailing padding. A plan with no columns renders as a single empty line.
func (p Plan) Render(items []string) ([]string, error) {
	if len(p.Widths) == 0 || len(items) == 0 {
		return []string{""}, nil
	}

	full, err := p.template(len(p.Widths))
	if err != nil {
		return nil, err
	}

	nLines := p.Lines(len(items))
	lines := make([]string, nLines)
	row := make([]string, 0, len(p.Widths))
	for r := range nLines {
		row = row[:0]
		for i := r; i < len(items); i += nLines {
			row = append(row, items[i])
		}
		tmpl := full
		if len(row) != len(full.widths) {
			// Lines hold fewer cells than there are columns when the
			// columns don't divide the items evenly.
			if tmpl, err = p.template(len(row)); err != nil {
				return nil, err
			}
		}
		lines[r] = tmpl.format(row)
	}
	return lines, nil
}

// rowTemplate formats the cells of one line.
type rowTemplate struct {
	widths []int
	gap    string
}

// template returns a row template for the first m columns of the plan.
func (p Plan) template(m int) (rowTemplate, error) {
	if m < 0 || m > len(p.Widths) {
		return rowTemplate{}, fmt.Errorf("%w: row of %d cells exceeds %d planned columns", ErrInvalidArgument, m, len(p.Widths))
	}
	return rowTemplate{
		widths: p.Widths[:m],
		gap:    strings.Repeat(" ", p.Spacing),
	}, nil
}

func (t rowTemplate) format(cells []string) string {
	var sb strings.Builder
	last := len(t.widths) - 1
	for i, width := range t.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == last {
			sb.WriteString(truncateCell(cell, width))
			break
		}
		sb.WriteString(fitCell(cell, width))
		sb.WriteString(t.gap)
	}
	return sb.String()
}

// truncateCell cuts s to at most width display columns. No ellipsis is
// added.
func truncateCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// fitCell left-justifies s in exactly width display columns.
func fitCell(s string, width int) string {
	return runewidth.FillRight(truncateCell(s, width), width)
}
