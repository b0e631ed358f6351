// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import "strings"

// Symbol is an interned, non-empty canonical string atom. Two Symbols with
// the same (post case-folding) text are always the same *Symbol, so
// identity comparison (==) implies equality.
type Symbol struct {
	value string
}

func (*Symbol) sxprValue() {}

var symbolTable = newInternTable[string, Symbol]()

// NewSymbol interns s (a string, *Symbol, or *String) as a Symbol. When
// ignoreCase is true the text is folded to lower case before interning,
// matching the dialect's IgnoreCase option. An empty result is a
// ConstructError.
func NewSymbol(s any, ignoreCase bool) (*Symbol, error) {
	var v string
	switch t := s.(type) {
	case *Symbol:
		return t, nil
	case string:
		v = t
	case *String:
		v = t.value
	default:
		return nil, &ConstructError{Type: "Symbol", Msg: "unsupported argument type"}
	}
	if ignoreCase {
		v = strings.ToLower(v)
	}
	if v == "" {
		return nil, &ConstructError{Type: "Symbol", Msg: "the argument must be a non-empty string"}
	}
	return symbolTable.intern(v, func() *Symbol { return &Symbol{value: v} }), nil
}

// MustSymbol is like NewSymbol but panics on error; useful for building
// well-known symbols (e.g. "quote") from Go literals.
func MustSymbol(s string) *Symbol {
	sym, err := NewSymbol(s, false)
	if err != nil {
		panic(err)
	}
	return sym
}

// Value returns the symbol's canonical text.
func (s *Symbol) Value() string { return s.value }

// ListSymbols returns every Symbol currently interned.
func ListSymbols() []string { return symbolTable.live() }
