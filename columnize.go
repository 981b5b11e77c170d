package columnize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInconsistentItemType = errors.New("inconsistent item type")
)

// Default layout settings.
const (
	DefaultSpacing = 2
	DefaultWidth   = 80
)

// Options controls the layout of a listing.
type Options struct {
	// Spacing is the number of blanks between adjacent columns.
	Spacing int `json:"spacing" yaml:"spacing"`
	// Width is the maximum line width.
	Width int `json:"width" yaml:"width"`
}

// DefaultOptions returns two blanks between columns and 80-column lines.
func DefaultOptions() Options {
	return Options{Spacing: DefaultSpacing, Width: DefaultWidth}
}

// Validate reports whether the options describe a possible layout.
func (o Options) Validate() error {
	if o.Spacing < 0 {
		return fmt.Errorf("%w: spacing must be non-negative, got %d", ErrInvalidArgument, o.Spacing)
	}
	if o.Width < 0 {
		return fmt.Errorf("%w: width must be non-negative, got %d", ErrInvalidArgument, o.Width)
	}
	return nil
}

// Lines plans and renders items, returning one string per output line.
func Lines(items []string, opts Options) ([]string, error) {
	p, err := NewPlan(items, opts.Spacing, opts.Width)
	if err != nil {
		return nil, err
	}
	return p.Render(items)
}

// String plans and renders items into a newline-joined block without a
// trailing newline. An empty listing is the empty string.
func String(items []string, opts Options) (string, error) {
	lines, err := Lines(items, opts)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Write lays items out in columns and writes the block to w, followed by a
// newline. Items must be strings, byte slices, [fmt.Stringer] or [Lister]
// values. Items implementing [Mappable] are rendered as key/value pairs.
func Write[T any](w io.Writer, opts Options, items ...T) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(items) > 0 {
		if _, ok := any(items[0]).(Mappable); ok {
			return writeMappable(w, opts, items)
		}
	}
	strs, err := Strings(items...)
	if err != nil {
		return err
	}
	out, err := String(strs, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

// Marshal lays items out in columns and returns the bytes.
func Marshal[T any](opts Options, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, opts, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
