package joinery

import "io"

// A Separator writes a fixed delimiter between the elements of a joined
// sequence.
//
// Implementations carry no state. The write either succeeds in full or fails
// with the sink's own error, unchanged; a Separator introduces no failure
// modes of its own. The catalog types in this package ([Comma], [Space], and
// friends) are all zero-size, so choosing a separator costs nothing at the
// call site.
//
// Callers whose delimiter is not in the fixed catalog can use [Literal]
// instead.
type Separator interface {
	// WriteSep writes the separator's literal to w.
	WriteSep(w io.Writer) error
}

// NoSeparator joins elements with nothing between them.
//
// Its WriteSep is a guaranteed no-op: it performs zero writes against the
// sink and cannot fail. This is a contract, not an optimization, so callers
// may rely on an always-failing sink never being touched between elements.
type NoSeparator struct{}

func (NoSeparator) WriteSep(io.Writer) error { return nil }

func (NoSeparator) String() string { return "" }

// Space joins elements with a single space.
type Space struct{}

func (Space) WriteSep(w io.Writer) error { return writeSep(w, " ") }

func (Space) String() string { return " " }

// Comma joins elements with a comma.
type Comma struct{}

func (Comma) WriteSep(w io.Writer) error { return writeSep(w, ",") }

func (Comma) String() string { return "," }

// CommaSpace joins elements with a comma followed by a space.
type CommaSpace struct{}

func (CommaSpace) WriteSep(w io.Writer) error { return writeSep(w, ", ") }

func (CommaSpace) String() string { return ", " }

// Dot joins elements with a period.
type Dot struct{}

func (Dot) WriteSep(w io.Writer) error { return writeSep(w, ".") }

func (Dot) String() string { return "." }

// Slash joins elements with a forward slash.
type Slash struct{}

func (Slash) WriteSep(w io.Writer) error { return writeSep(w, "/") }

func (Slash) String() string { return "/" }

// Underscore joins elements with an underscore.
type Underscore struct{}

func (Underscore) WriteSep(w io.Writer) error { return writeSep(w, "_") }

func (Underscore) String() string { return "_" }

// Dash joins elements with a hyphen.
type Dash struct{}

func (Dash) WriteSep(w io.Writer) error { return writeSep(w, "-") }

func (Dash) String() string { return "-" }

// Literal is a Separator for arbitrary runtime strings, for delimiters the
// fixed catalog does not cover. Unlike the catalog types it is not zero-size,
// and the compiler cannot specialize away its write.
type Literal string

func (l Literal) WriteSep(w io.Writer) error { return writeSep(w, string(l)) }

func (l Literal) String() string { return string(l) }

func writeSep(w io.Writer, lit string) error {
	_, err := io.WriteString(w, lit)
	return err
}
