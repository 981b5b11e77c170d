package columnize

import "fmt"

// Lister contributes several entries to a listing. Its entries are placed
// in order where the item itself would have been.
type Lister interface {
	List() []string
}

// Strings converts items to the strings that get laid out. Strings and byte
// slices are used as is, [fmt.Stringer] values through String, and [Lister]
// values expand to their entries. Any other item fails with
// [ErrInconsistentItemType].
func Strings[T any](items ...T) ([]string, error) {
	out := make([]string, 0, len(items))
	for i, item := range items {
		switch v := any(item).(type) {
		case string:
			out = append(out, v)
		case []byte:
			out = append(out, string(v))
		case Lister:
			out = append(out, v.List()...)
		case fmt.Stringer:
			out = append(out, v.String())
		default:
			return nil, fmt.Errorf("%w: item %d is %T, want string, []byte, fmt.Stringer or Lister", ErrInconsistentItemType, i, item)
		}
	}
	return out, nil
}
