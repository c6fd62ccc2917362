// Package pathlist implements the ordered component list behind a
// delimiter-separated search-path value. Operations are pure: each one
// returns a new List and leaves the receiver untouched. Equality between
// components is injected by the caller (literal, canonical, or real
// filesystem identity), keeping this package free of filesystem access.
package pathlist

import (
	"strings"

	"github.com/arthur-debert/pathed/pkg/errors"
)

// List is an ordered sequence of search-path components. Duplicates and
// empty components are preserved positionally; order encodes search
// priority.
type List []string

// EqualFunc reports whether two components should be treated as the same
// entry for the purposes of a given operation.
type EqualFunc func(a, b string) bool

// Literal compares components by exact string equality.
func Literal(a, b string) bool {
	return a == b
}

// Parse splits raw on every occurrence of sep. An empty raw yields an
// empty List rather than a single empty component, so an unset variable
// behaves as "no entries" instead of "one empty entry".
func Parse(raw, sep string) List {
	if raw == "" {
		return List{}
	}
	return List(strings.Split(raw, sep))
}

// String joins the components with sep. For components not containing
// sep, Parse(l.String(sep), sep) yields l back exactly.
func (l List) String(sep string) string {
	return strings.Join(l, sep)
}

// Len returns the number of components.
func (l List) Len() int {
	return len(l)
}

// clone returns a copy so mutating operations never alias the receiver.
func (l List) clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// RemoveAt removes the component at index i. An out-of-range index is a
// typed INDEX_OUT_OF_RANGE error rather than a silent no-op.
func (l List) RemoveAt(i int) (List, error) {
	if i < 0 || i >= len(l) {
		return nil, errors.Newf(errors.ErrIndexOutOfRange,
			"index %d out of range [0, %d)", i, len(l)).
			WithDetail("index", i).
			WithDetail("length", len(l))
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	out = append(out, l[i+1:]...)
	return out, nil
}

// RemoveAll removes every component equal to item under eq, preserving
// the relative order of the survivors.
func (l List) RemoveAll(item string, eq EqualFunc) List {
	out := make(List, 0, len(l))
	for _, c := range l {
		if !eq(c, item) {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether some component equals item under eq.
func (l List) Contains(item string, eq EqualFunc) bool {
	for _, c := range l {
		if eq(c, item) {
			return true
		}
	}
	return false
}

// Prepend removes every component equal to item under eq and inserts
// item at the front: promote or insert at position 0, no duplicate kept.
func (l List) Prepend(item string, eq EqualFunc) List {
	trimmed := l.RemoveAll(item, eq)
	out := make(List, 0, len(trimmed)+1)
	out = append(out, item)
	out = append(out, trimmed...)
	return out
}

// Add appends item at the end unless a component already equals it under
// eq. Adding an existing item is a no-op: no reorder, no duplicate.
func (l List) Add(item string, eq EqualFunc) List {
	if l.Contains(item, eq) {
		return l.clone()
	}
	out := make(List, 0, len(l)+1)
	out = append(out, l...)
	out = append(out, item)
	return out
}

// Move removes the component at src and reinserts it at dst, shifting the
// intervening components by one. Both indices are bounds-checked.
func (l List) Move(src, dst int) (List, error) {
	if src < 0 || src >= len(l) {
		return nil, errors.Newf(errors.ErrIndexOutOfRange,
			"source index %d out of range [0, %d)", src, len(l)).
			WithDetail("index", src).
			WithDetail("length", len(l))
	}
	if dst < 0 || dst >= len(l) {
		return nil, errors.Newf(errors.ErrIndexOutOfRange,
			"destination index %d out of range [0, %d)", dst, len(l)).
			WithDetail("index", dst).
			WithDetail("length", len(l))
	}
	if src == dst {
		return l.clone(), nil
	}

	out := l.clone()
	moved := out[src]
	out = append(out[:src], out[src+1:]...)

	rest := make(List, 0, len(l))
	rest = append(rest, out[:dst]...)
	rest = append(rest, moved)
	rest = append(rest, out[dst:]...)
	return rest, nil
}

// Clean performs a stable first-occurrence dedupe: a component is kept
// only if no previously kept component equals it under eq. Survivors keep
// their original relative order.
func (l List) Clean(eq EqualFunc) List {
	out := make(List, 0, len(l))
	for _, c := range l {
		if !out.Contains(c, eq) {
			out = append(out, c)
		}
	}
	return out
}
