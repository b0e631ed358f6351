// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr


// ValuesEqual reports structural equality between a and b. Atoms that are
// interned (Symbol, Char) compare by identity; Int, Float, Rational and
// RatComplex compare by mathematical value; Cons cells compare
// structurally, car by car, guarding against cycles the same way
// original_source/sxprlib.py's equality check does: a visited set keyed by
// cell identity, so two cells already matched against each other are
// assumed equal the second time they are reached rather than recursed into
// again.
func ValuesEqual(a, b Value) bool {
	return equalWalk(a, b, make(map[consPair]bool))
}

type consPair struct{ a, b *Cons }

func equalWalk(a, b Value, seen map[consPair]bool) bool {
	switch at := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Cons:
		bt, ok := b.(*Cons)
		if !ok {
			return false
		}
		pair := consPair{at, bt}
		if seen[pair] {
			return true
		}
		seen[pair] = true
		return equalWalk(at.car, bt.car, seen) && equalWalk(at.cdr, bt.cdr, seen)
	case *Symbol:
		bt, ok := b.(*Symbol)
		return ok && at == bt
	case *Char:
		bt, ok := b.(*Char)
		return ok && at == bt
	case *String:
		bt, ok := b.(*String)
		return ok && at.value == bt.value
	case Int:
		return equalReal(a, b)
	case *Rational:
		return equalReal(a, b)
	case Float:
		bt, ok := b.(Float)
		return ok && at == bt
	case *RatComplex:
		return at.Equal(b)
	case *Array:
		bt, ok := b.(*Array)
		return ok && at.dim == bt.dim && equalWalk(at.value, bt.value, seen)
	default:
		return false
	}
}

func equalReal(a, b Value) bool {
	if !RationalP(a) || !RationalP(b) {
		return false
	}
	an, ad, _ := realParts(a)
	bn, bd, _ := realParts(b)
	return an.Cmp(bn) == 0 && ad.Cmp(bd) == 0
}

// Occurrence is a visited-set type for traversals that must tolerate shared
// or circular structure: it maps a *Cons already entered to an opaque
// marker, mirroring the `occurence` dict keyed by `id(cell)` in
// original_source/sxprlib.py's __Sxpr2Str/__sx2py. Nothing in this module
// uses it; the printer and the host bridge each keep their own map keyed
// by *Cons.
type Occurrence map[*Cons]int

// NewOccurrence returns an empty visited set.
func NewOccurrence() Occurrence { return make(Occurrence) }

// HasCycle reports whether the list or tree rooted at v contains a Cons
// cell reachable from itself, walking both car and cdr (unlike Length,
// which only follows cdr).
func HasCycle(v Value) bool {
	visiting := make(map[*Cons]bool)
	finished := make(map[*Cons]bool)
	var walk func(Value) bool
	walk = func(v Value) bool {
		c, ok := v.(*Cons)
		if !ok {
			return false
		}
		if visiting[c] {
			return true
		}
		if finished[c] {
			return false
		}
		visiting[c] = true
		cyclic := walk(c.car) || walk(c.cdr)
		visiting[c] = false
		finished[c] = true
		return cyclic
	}
	return walk(v)
}
