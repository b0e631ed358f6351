// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

// Value is the tagged union of every S-expression value: *Nil, *Cons, Int,
// Float, *Rational, *RatComplex, *Symbol, *String, *Char, *Array. It has no
// methods of its own; the concrete type determines behavior, and the
// predicates below (ConsP, SymbolP, ...) are the supported way to switch on
// it from outside the package.
type Value interface {
	sxprValue()
}

// Float is a host double-precision atom.
type Float float64

func (Float) sxprValue() {}

// ConsP reports whether v is a Cons cell.
func ConsP(v Value) bool { _, ok := v.(*Cons); return ok }

// Null reports whether v is the empty list.
func Null(v Value) bool { _, ok := v.(*Nil); return ok }

// ListP reports whether v is Nil or a Cons cell.
func ListP(v Value) bool { return Null(v) || ConsP(v) }

// SymbolP reports whether v is a Symbol.
func SymbolP(v Value) bool { _, ok := v.(*Symbol); return ok }

// StringP reports whether v is a String.
func StringP(v Value) bool { _, ok := v.(*String); return ok }

// CharacterP reports whether v is a Char.
func CharacterP(v Value) bool { _, ok := v.(*Char); return ok }

// IntegerP reports whether v is an Int.
func IntegerP(v Value) bool { _, ok := v.(Int); return ok }

// FloatP reports whether v is a Float.
func FloatP(v Value) bool { _, ok := v.(Float); return ok }

// RationalP reports whether v is an Int or a Rational.
func RationalP(v Value) bool {
	if IntegerP(v) {
		return true
	}
	_, ok := v.(*Rational)
	return ok
}

// ComplexP reports whether v is a RatComplex.
func ComplexP(v Value) bool { _, ok := v.(*RatComplex); return ok }

// RealP reports whether v is an Int, Float or Rational.
func RealP(v Value) bool { return RationalP(v) || FloatP(v) }

// NumberP reports whether v is any numeric type.
func NumberP(v Value) bool { return RealP(v) || ComplexP(v) }

// Atom reports whether v is not a Cons cell (Nil counts as an atom).
func Atom(v Value) bool { return !ConsP(v) }

// ArrayP reports whether v is an Array.
func ArrayP(v Value) bool { _, ok := v.(*Array); return ok }

// VectorP reports whether v is an Array of dimension 1.
func VectorP(v Value) bool {
	a, ok := v.(*Array)
	return ok && a.Dim() == 1
}
