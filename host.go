// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import (
	"math/big"

	"github.com/pkg/errors"
)

// ToHost converts an S-expression tree into native Go values with
// native=true (spec.md §4.L's sx-to-host(value, native=true) default); see
// ToHostOpt for the native=false form that leaves Symbol/String/Char atoms
// as sxpr.Value instead of unwrapping their underlying Go value:
//
//	NIL            -> nil
//	Int            -> *big.Int
//	Float          -> float64
//	*Rational      -> *big.Rat
//	*RatComplex    -> complex128
//	*Symbol        -> string (the symbol's text), or itself if native=false
//	*String        -> string, or itself if native=false
//	*Char          -> rune, or itself if native=false
//	*Cons          -> []any, one entry per car, in order
//	*Array         -> its payload list, converted as a *Cons is, for any
//	                  Dim(); a multi-dimensional payload keeps its nesting
//	                  as []any of []any and is not flattened.
//
// A *Cons reachable from itself (detected by identity, not by structural
// equality) is a RecursionError: ToHost only ever produces finite native
// trees, mirroring sx2py's explicit "unresolvable recursion" check.
//
// A sub-list shared by identity (the same *Cons reachable two different
// ways, not from itself) converts to the same output object on every
// encounter: ToHost memoizes each *Cons's finished []any by cell identity,
// mirroring sx2py's `listdic[id(s)] = l` cache, so callers that inspect the
// result for aliasing see the same sharing the input had.
func ToHost(v Value) (any, error) {
	return ToHostOpt(v, true)
}

// ToHostOpt is ToHost with the native parameter spec.md §4.L documents
// exposed: native=false leaves Symbol/String/Char atoms as sxpr.Value
// instead of converting each to its underlying Go string/rune.
func ToHostOpt(v Value, native bool) (any, error) {
	return toHost(v, native, make(map[*Cons]bool), make(map[*Cons]any))
}

func toHost(v Value, native bool, visiting map[*Cons]bool, memo map[*Cons]any) (any, error) {
	switch t := v.(type) {
	case *Nil:
		return nil, nil
	case Int:
		return t.Big(), nil
	case Float:
		return float64(t), nil
	case *Rational:
		return new(big.Rat).SetFrac(t.num, t.den), nil
	case *RatComplex:
		return t.ToComplex128()
	case *Symbol:
		if native {
			return t.value, nil
		}
		return t, nil
	case *String:
		if native {
			return t.value, nil
		}
		return t, nil
	case *Char:
		if native {
			return t.value, nil
		}
		return t, nil
	case *Array:
		return toHost(t.value, native, visiting, memo)
	case *Cons:
		if elems, ok := memo[t]; ok {
			return elems, nil
		}
		if visiting[t] {
			return nil, &RecursionError{Msg: "ToHost: cell reachable from itself"}
		}
		visiting[t] = true
		defer delete(visiting, t)
		elems, err := listCellsToHost(t, native, visiting, memo)
		if err != nil {
			return nil, err
		}
		memo[t] = elems
		return elems, nil
	default:
		return nil, errors.Errorf("ToHost: unsupported value type %T", v)
	}
}

// listCellsToHost walks a (possibly dotted) chain of cons cells, converting
// each car, and marking/unmarking cells as they are entered/left so that
// sharing (the same sublist reachable two different ways, but not from
// itself) still converts correctly. If the spine itself runs into a cell
// already memoized from a previous, unrelated encounter (a tail shared by
// identity with some other list), that cached suffix is spliced in and the
// walk stops there instead of rebuilding it. Once the walk completes, every
// distinct cell seen along the way is memoized to the suffix of out
// starting at that cell, so a later encounter of any of them — not just the
// chain's head — reuses the same slice.
func listCellsToHost(start *Cons, native bool, visiting map[*Cons]bool, memo map[*Cons]any) ([]any, error) {
	var out []any
	var cells []*Cons
	cur := Value(start)
	for {
		c, ok := cur.(*Cons)
		if !ok {
			if !Null(cur) {
				tail, err := toHost(cur, native, visiting, memo)
				if err != nil {
					return nil, err
				}
				out = append(out, DottedTail{tail})
			}
			break
		}
		if len(cells) > 0 {
			if elems, ok := memo[c]; ok {
				out = append(out, elems.([]any)...)
				break
			}
			if visiting[c] {
				return nil, &RecursionError{Msg: "ToHost: cell reachable from itself"}
			}
			visiting[c] = true
			defer delete(visiting, c)
		}
		cells = append(cells, c)
		hv, err := toHost(c.car, native, visiting, memo)
		if err != nil {
			return nil, err
		}
		out = append(out, hv)
		cur = c.cdr
	}
	for i, cell := range cells {
		memo[cell] = out[i:]
	}
	return out, nil
}

// DottedTail marks the trailing non-Nil cdr of an improper list in the host
// representation, since []any alone cannot distinguish (a b . c) from (a b c).
type DottedTail struct{ Value any }

// FromHost converts a native Go value into an S-expression tree with
// stringsAsSymbols=true (spec.md §4.L's host-to-sx(tree, strings-as-symbols=
// true) default); see FromHostOpt for the stringsAsSymbols=false form that
// builds a *String instead:
//
//	nil                    -> NIL
//	bool                   -> NIL (false) or MustSymbol("T") (true)
//	string                 -> *Symbol, or *String if stringsAsSymbols=false
//	rune                   -> *Char
//	int, int64, *big.Int   -> Int
//	*big.Rat               -> *Rational (or Int if the denominator is 1)
//	float32, float64       -> Float
//	complex64, complex128  -> *RatComplex (or its real part when the
//	                          imaginary part is zero); real/imag are passed
//	                          to NewComplex as Floats, which converts each
//	                          to its exact rational value
//	*Rational, Int         -> themselves
//	[]any                  -> a proper list, each element converted in turn
//	DottedTail             -> terminates the enclosing list's cdr instead of
//	                          consing another NIL
//
// Anything else is a ConstructError; FromHost never guesses.
func FromHost(v any) (Value, error) {
	return FromHostOpt(v, true)
}

// FromHostOpt is FromHost with the strings-as-symbols parameter spec.md
// §4.L documents exposed: stringsAsSymbols=false converts a Go string to a
// *String instead of a *Symbol.
func FromHostOpt(v any, stringsAsSymbols bool) (Value, error) {
	switch t := v.(type) {
	case nil:
		return NIL, nil
	case bool:
		if t {
			return MustSymbol("T"), nil
		}
		return NIL, nil
	case string:
		if stringsAsSymbols {
			return NewSymbol(t, false)
		}
		return NewString(t), nil
	case rune32:
		return NewCharFromRune(rune(t))
	case int:
		return NewIntFromInt64(int64(t)), nil
	case int64:
		return NewIntFromInt64(t), nil
	case *big.Int:
		return NewInt(t), nil
	case *big.Rat:
		return NewRational(t.Num(), t.Denom())
	case float32:
		return Float(t), nil
	case float64:
		return Float(t), nil
	case complex64:
		return NewComplex(Float(real(t)), Float(imag(t)))
	case complex128:
		return NewComplex(Float(real(t)), Float(imag(t)))
	case Value:
		return t, nil
	case []any:
		return fromHostList(t, stringsAsSymbols)
	default:
		return nil, &ConstructError{Type: "FromHost", Msg: "unsupported Go type"}
	}
}

// rune32 names int32 for FromHost's type switch. Since rune and int32 are
// the same type, the switch cannot tell them apart: every int32, whether
// the caller meant it as a rune or not, converts to a *Char.
type rune32 = int32

func fromHostList(elems []any, stringsAsSymbols bool) (Value, error) {
	var result Value = NIL
	for i := len(elems) - 1; i >= 0; i-- {
		if dt, ok := elems[i].(DottedTail); ok {
			tail, err := FromHostOpt(dt.Value, stringsAsSymbols)
			if err != nil {
				return nil, err
			}
			result = tail
			continue
		}
		car, err := FromHostOpt(elems[i], stringsAsSymbols)
		if err != nil {
			return nil, err
		}
		result = MkCons(car, result)
	}
	return result, nil
}
