// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

// String is a sequence of Unicode scalar values. Unlike Symbol and Char, it
// is never interned: two String atoms built from equal text are distinct
// values. The underlying text is write-once; there is no setter, matching
// the immutability invariant of spec.md §3.
type String struct {
	value string
}

func (*String) sxprValue() {}

// NewString wraps s (a string, *Symbol, or *String) as a String.
func NewString(s any) *String {
	switch t := s.(type) {
	case string:
		return &String{value: t}
	case *Symbol:
		return &String{value: t.value}
	case *String:
		return &String{value: t.value}
	default:
		return &String{value: ""}
	}
}

// Value returns the string's text.
func (s *String) Value() string { return s.value }
