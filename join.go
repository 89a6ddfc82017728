// Package joinery joins sequences of renderable elements into text, with a
// catalog of zero-size [Separator] types interleaved between them.
//
// The catalog types exist so that the separator choice is made at the type
// level rather than carried as runtime state: the empty case ([NoSeparator])
// is a true no-op, and every other case is a single fixed-literal write with
// no branching on separator identity.
package joinery

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// A Renderer writes the textual form of a single element to w.
//
// Renderers must be fail-fast: on a write error from w, return it unchanged
// and write nothing further.
type Renderer[T any] func(w io.Writer, item T) error

// RenderFprint is the default Renderer. It formats elements with the fmt
// package's default formats, so integers render in their natural decimal
// form and [fmt.Stringer] implementations render via String.
func RenderFprint[T any](w io.Writer, item T) error {
	_, err := fmt.Fprint(w, item)
	return err
}

// AdaptRenderer takes a Renderer for a particular type (Original), and
// transforms it into a Renderer for a different type (Adapted), given a
// function that can transform an Adapted to an Original.
//
// Use this to reuse a renderer in other element type contexts.
func AdaptRenderer[Adapted, Original any](r Renderer[Original], fn func(Adapted) Original) Renderer[Adapted] {
	return func(w io.Writer, item Adapted) error {
		return r(w, fn(item))
	}
}

// WriteFunc renders each element of seq to w using r, writing sep between
// consecutive elements. Zero elements write nothing; a single element is
// rendered alone, with no separator.
//
// The first error from w or from r aborts the join immediately and is
// returned unchanged; nothing further is written after a failure.
func WriteFunc[T any](w io.Writer, seq iter.Seq[T], sep Separator, r Renderer[T]) error {
	first := true
	for item := range seq {
		if !first {
			if err := sep.WriteSep(w); err != nil {
				return err
			}
		}
		first = false
		if err := r(w, item); err != nil {
			return err
		}
	}
	return nil
}

// WriteSeq is [WriteFunc] with the default fmt-based renderer.
func WriteSeq[T any](w io.Writer, seq iter.Seq[T], sep Separator) error {
	return WriteFunc(w, seq, sep, RenderFprint[T])
}

// Write renders the elements of items to w with sep interleaved, using the
// default fmt-based renderer.
func Write[S ~[]E, E any](w io.Writer, items S, sep Separator) error {
	return WriteSeq(w, sliceSeq(items), sep)
}

// Join renders the elements of items to a single string with sep interleaved.
// Joining zero elements produces the empty string; joining one element
// produces that element's text alone.
func Join[S ~[]E, E any](items S, sep Separator) string {
	return JoinSeq(sliceSeq(items), sep)
}

// JoinSeq is [Join] over an iterator rather than a slice.
func JoinSeq[T any](seq iter.Seq[T], sep Separator) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail, and the default renderer only
	// surfaces sink errors.
	_ = WriteSeq(&sb, seq, sep)
	return sb.String()
}

func sliceSeq[S ~[]E, E any](items S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
