package columnize

import (
	"io"
	"iter"
)

// WriteIter collects items from an iterator and writes them to w in
// columns. Layout needs every item before the first line can be written,
// so nothing is written until the sequence ends.
func WriteIter[T any](w io.Writer, opts Options, seq iter.Seq[T]) error {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return Write(w, opts, items...)
}

// WriteChan collects items from a channel until it is closed and writes
// them to w in columns. It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, opts Options, ch <-chan T) error {
	return WriteIter(w, opts, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
