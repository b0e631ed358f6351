// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

// Cons is a mutable pair (car . cdr). Unlike every other Value, Cons cells
// are never interned and are mutable in place (SetCar/SetCdr), so list
// structure can be circular; every traversal (Length, ValuesEqual, the
// print package's printer, the host bridge) guards against that explicitly rather than
// assuming a DAG.
type Cons struct {
	car, cdr Value
}

func (*Cons) sxprValue() {}

// MkCons builds a new pair (car . cdr).
func MkCons(car, cdr Value) *Cons {
	return &Cons{car: car, cdr: cdr}
}

// Car returns the pair's first element.
func (c *Cons) Car() Value { return c.car }

// Cdr returns the pair's second element.
func (c *Cons) Cdr() Value { return c.cdr }

// SetCar mutates the pair's first element in place.
func (c *Cons) SetCar(v Value) { c.car = v }

// SetCdr mutates the pair's second element in place.
func (c *Cons) SetCdr(v Value) { c.cdr = v }

// Car extracts the car of v, which must be a *Cons.
func Car(v Value) (Value, error) {
	c, ok := v.(*Cons)
	if !ok {
		return nil, &TypeError{Op: "car", Msg: "argument is not a Cons"}
	}
	return c.car, nil
}

// Cdr extracts the cdr of v, which must be a *Cons.
func Cdr(v Value) (Value, error) {
	c, ok := v.(*Cons)
	if !ok {
		return nil, &TypeError{Op: "cdr", Msg: "argument is not a Cons"}
	}
	return c.cdr, nil
}

// Length walks a proper list and returns its element count. It detects
// cycles using a visited set keyed by cell identity (the Go analogue of
// original_source/sxprlib.py's Cons.__len__, which tracks `id(cell)` in an
// `occurence` dict) and, on revisiting an already-seen cell, stops and
// returns the count of distinct cells visited so far rather than erroring:
// length is well-defined for a cyclic list (spec.md §8 scenario 6), it is
// only ToHost's deep conversion that treats an unresolvable cycle as a
// RecursionError. An improper list (one whose final cdr is not Nil) is a
// TypeError.
func Length(v Value) (int, error) {
	seen := make(map[*Cons]bool)
	n := 0
	cur := v
	for {
		switch t := cur.(type) {
		case *Nil:
			return n, nil
		case *Cons:
			if seen[t] {
				return n, nil
			}
			seen[t] = true
			n++
			cur = t.cdr
		default:
			return 0, &TypeError{Op: "length", Msg: "improper list"}
		}
	}
}

// Nth returns the zero-indexed i-th car of a list, mirroring
// original_source/sxprlib.py's Cons.__getitem__ for non-negative integer
// indices: walking cdr is allowed through both Cons and Nil cells (Nil.cdr
// is Nil per spec.md §3 invariant 5, so stepping through it never errors),
// and landing exactly on a non-Cons value at position i returns that value
// itself (the terminal atom of a dotted list, or Nil at the end of a
// proper list) rather than erroring. Only running out of cdrs on a genuine
// non-Nil atom before finishing the walk, or indexing into Nil itself (the
// empty list has no elements to reach), is an IndexError, along with a
// negative index.
func Nth(v Value, i int) (Value, error) {
	if i < 0 {
		return nil, &IndexError{Index: i, Msg: "negative index"}
	}
	if _, ok := v.(*Nil); ok {
		return nil, &IndexError{Index: i, Msg: "index into an empty list"}
	}
	cur := v
	for j := 0; j < i; j++ {
		switch c := cur.(type) {
		case *Cons:
			cur = c.cdr
		case *Nil:
			cur = c
		default:
			return nil, &IndexError{Index: i, Msg: "index out of range"}
		}
	}
	if c, ok := cur.(*Cons); ok {
		return c.car, nil
	}
	return cur, nil
}

// SetNth destructively replaces the zero-indexed i-th car of a list,
// mirroring original_source/sxprlib.py's Cons.__setitem__: unlike Nth, the
// walk only steps through Cons cells (reaching Nil before finishing is out
// of range, since there is nothing to overwrite), and setting exactly at
// the position one past the last Cons cell splices val onto that cell's
// cdr instead of replacing a car.
func SetNth(v Value, i int, val Value) error {
	if i < 0 {
		return &IndexError{Index: i, Msg: "negative index"}
	}
	cur := v
	var prev *Cons
	for j := 0; j < i; j++ {
		c, ok := cur.(*Cons)
		if !ok {
			return &IndexError{Index: i, Msg: "index out of range"}
		}
		prev = c
		cur = c.cdr
	}
	if c, ok := cur.(*Cons); ok {
		c.car = val
		return nil
	}
	if prev == nil {
		return &IndexError{Index: i, Msg: "index out of range"}
	}
	prev.cdr = val
	return nil
}

// detectCycle reports whether the list reachable from v by repeated Cdr
// contains a cell visited more than once, using Floyd's tortoise-and-hare so
// callers that only need a yes/no answer (rather than Length's visited set,
// which is O(n) in space) can do it in O(1) extra space.
func detectCycle(v Value) bool {
	slow, fast := v, v
	for {
		fc, ok := fast.(*Cons)
		if !ok {
			return false
		}
		fast = fc.cdr
		fc, ok = fast.(*Cons)
		if !ok {
			return false
		}
		fast = fc.cdr
		sc, ok := slow.(*Cons)
		if !ok {
			return false
		}
		slow = sc.cdr
		if slow == fast {
			if _, isCons := slow.(*Cons); isCons {
				return true
			}
			return false
		}
	}
}
