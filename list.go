// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

// MkList builds a proper list from elems, in order, terminated by NIL.
func MkList(elems ...Value) Value {
	var result Value = NIL
	for i := len(elems) - 1; i >= 0; i-- {
		result = MkCons(elems[i], result)
	}
	return result
}

// MkDottedList builds a list from elems terminated by tail instead of NIL.
func MkDottedList(tail Value, elems ...Value) Value {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = MkCons(elems[i], result)
	}
	return result
}

// ListToSlice flattens a proper list into a Go slice, in order. An improper
// or cyclic list is an error.
func ListToSlice(v Value) ([]Value, error) {
	n, err := Length(v)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, n)
	cur := v
	for i := 0; i < n; i++ {
		c := cur.(*Cons)
		out = append(out, c.car)
		cur = c.cdr
	}
	if !Null(cur) {
		return nil, &TypeError{Op: "list", Msg: "circular list"}
	}
	return out, nil
}

// MkReverse returns a new proper list with v's elements in reverse order.
// v must be a proper, finite list.
func MkReverse(v Value) (Value, error) {
	elems, err := ListToSlice(v)
	if err != nil {
		return nil, err
	}
	var result Value = NIL
	for _, e := range elems {
		result = MkCons(e, result)
	}
	return result, nil
}

// MkAppend concatenates the given proper lists into a freshly allocated
// list; none of the inputs are mutated. The final list shares no structure
// with any argument (unlike NConc).
func MkAppend(lists ...Value) (Value, error) {
	var all []Value
	for _, l := range lists {
		elems, err := ListToSlice(l)
		if err != nil {
			return nil, err
		}
		all = append(all, elems...)
	}
	return MkList(all...), nil
}

// NConc destructively concatenates lists by splicing the cdr of each list's
// last cell to point at the start of the next, mirroring Common Lisp's
// nconc. Passing the same cyclic structure twice, or any list whose cdr
// chain is already circular, is a RecursionError rather than an infinite
// splice.
func NConc(lists ...Value) (Value, error) {
	nonEmpty := make([]Value, 0, len(lists))
	for _, l := range lists {
		if !Null(l) {
			nonEmpty = append(nonEmpty, l)
		}
	}
	if len(nonEmpty) == 0 {
		return NIL, nil
	}
	for i := 0; i < len(nonEmpty)-1; i++ {
		last, err := lastCons(nonEmpty[i])
		if err != nil {
			return nil, err
		}
		last.cdr = nonEmpty[i+1]
	}
	return nonEmpty[0], nil
}

func lastCons(v Value) (*Cons, error) {
	c, ok := v.(*Cons)
	if !ok {
		return nil, &TypeError{Op: "nconc", Msg: "argument is not a Cons"}
	}
	seen := make(map[*Cons]bool)
	for {
		if seen[c] {
			return nil, &RecursionError{Msg: "nconc on a circular list"}
		}
		seen[c] = true
		next, ok := c.cdr.(*Cons)
		if !ok {
			return c, nil
		}
		c = next
	}
}

// Member returns the first cons cell of v whose car equals item (by
// ValuesEqual), or NIL if none does. v need not be a proper list; the
// search stops at the first non-Cons cdr, and a cell already visited once
// (a cycle) also stops the search rather than looping forever, mirroring
// original_source/sxprlib.py's member() bounding its walk by len(l).
func Member(item, v Value) Value {
	seen := make(map[*Cons]bool)
	cur := v
	for {
		c, ok := cur.(*Cons)
		if !ok || seen[c] {
			return NIL
		}
		seen[c] = true
		if ValuesEqual(item, c.car) {
			return c
		}
		cur = c.cdr
	}
}

// Assoc returns the first cons cell of the association list v whose car is
// itself a Cons with a car equal to key, or NIL if none does. As with
// Member, a revisited cell stops the search instead of looping on a cycle.
func Assoc(key, v Value) Value {
	seen := make(map[*Cons]bool)
	cur := v
	for {
		c, ok := cur.(*Cons)
		if !ok || seen[c] {
			return NIL
		}
		seen[c] = true
		if pair, ok := c.car.(*Cons); ok && ValuesEqual(key, pair.car) {
			return pair
		}
		cur = c.cdr
	}
}
