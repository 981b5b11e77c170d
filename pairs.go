package columnize

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Mappable provides key-value pairs rendered as two aligned columns.
type Mappable interface {
	Pairs() []KeyValue
}

// PairPlan plans a two-column layout for pairs: keys on the left, padded to
// the widest key, values on the right in whatever width remains. The key
// column never exceeds maxWidth and the value column is never negative.
func PairPlan(pairs []KeyValue, spacing, maxWidth int) (Plan, error) {
	if spacing < 0 {
		return Plan{}, fmt.Errorf("%w: spacing must be non-negative, got %d", ErrInvalidArgument, spacing)
	}
	if maxWidth < 0 {
		return Plan{}, fmt.Errorf("%w: max width must be non-negative, got %d", ErrInvalidArgument, maxWidth)
	}
	if len(pairs) == 0 {
		return Plan{Widths: []int{}, Spacing: spacing}, nil
	}
	keyWidth := 0
	for _, kv := range pairs {
		keyWidth = max(keyWidth, runewidth.StringWidth(kv.Key))
	}
	keyWidth = min(keyWidth, maxWidth)
	valueWidth := max(maxWidth-keyWidth-spacing, 0)
	return Plan{Widths: []int{keyWidth, valueWidth}, Spacing: spacing}, nil
}

// PairLines renders pairs one per line with their values aligned.
func PairLines(pairs []KeyValue, opts Options) ([]string, error) {
	p, err := PairPlan(pairs, opts.Spacing, opts.Width)
	if err != nil {
		return nil, err
	}
	// Keys then values, so the column-major fill puts pair i on line i.
	items := make([]string, 2*len(pairs))
	for i, kv := range pairs {
		items[i] = kv.Key
		items[len(pairs)+i] = kv.Value
	}
	return p.Render(items)
}

// WritePairs renders pairs as two aligned columns and writes them to w.
func WritePairs(w io.Writer, opts Options, pairs ...KeyValue) error {
	lines, err := PairLines(pairs, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func writeMappable[T any](w io.Writer, opts Options, items []T) error {
	var all []KeyValue
	for i, item := range items {
		m, ok := any(item).(Mappable)
		if !ok {
			return fmt.Errorf("%w: item %d is %T, want Mappable", ErrInconsistentItemType, i, item)
		}
		all = append(all, m.Pairs()...)
	}
	return WritePairs(w, opts, all...)
}
