// Package columnize arranges short strings into compact columns for a
// fixed-width display, the way directory listings do.
//
// The central entry points are [Write] and [String]. Given items, a column
// spacing and a maximum line width, the package picks the largest number of
// columns whose lines fit, then fills the columns top to bottom:
//
//	names := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "hotel", "india"}
//	out, err := columnize.String(names, columnize.Options{Spacing: 2, Width: 30})
//
// produces
//
//	alpha  charlie  echo     hotel
//	bravo  delta    foxtrot  india
//
// # Planning and Rendering
//
// The two steps are exposed separately. [NewPlan] measures items and returns
// a [Plan] holding one width per column; [Plan.Render] lays items out under
// it. Both are pure functions of their arguments and safe for concurrent
// use.
//
// Widths are measured in display columns, so wide characters count twice.
// Cells longer than their column are cut without an ellipsis. If a single
// item is wider than the line, the plan degrades to one column of the full
// line width and long items are truncated instead of failing.
//
// # Item Types
//
// [Write] and [Marshal] accept items of any type that [Strings] can convert:
// strings, byte slices, [fmt.Stringer] values, and [Lister] values, which
// expand to several entries. Items implementing [Mappable] are rendered as
// two aligned columns of keys and values, see [WritePairs].
//
// # Configuration
//
// [Options] carries the spacing and width. [DefaultOptions] returns two
// blanks between columns and 80-column lines. [LoadOptions] reads options
// from YAML.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidArgument] — negative spacing or width
//   - [ErrInconsistentItemType] — an item cannot be converted to a string
package columnize
