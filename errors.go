// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import "fmt"

// ConstructError is returned by a Value constructor when its argument
// cannot be turned into a well-formed atom: an empty Symbol, an invalid
// Char literal, or a Char code point outside the Unicode range.
type ConstructError struct {
	Type string // "Symbol", "Char", ...
	Msg  string
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Msg)
}

// IndexError is returned by indexed Cons access (Nth/SetNth) when the
// requested position is negative or runs past the end of a dotted chain.
type IndexError struct {
	Index int
	Msg   string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range: %s", e.Index, e.Msg)
}

// TypeError is returned when a list-only operation (MkReverse, MkAppend,
// NConc, Parse) receives a value that is not of the expected shape.
type TypeError struct {
	Op  string
	Msg string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// RecursionError is returned when a deep conversion (ToHost) discovers a
// true cycle that it cannot resolve into a finite native tree.
type RecursionError struct {
	Msg string
}

func (e *RecursionError) Error() string {
	return "unresolvable recursion: " + e.Msg
}
