// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import "testing"

func TestToHostProperList(t *testing.T) {
	l := MkList(NewIntFromInt64(1), NewIntFromInt64(2), NewIntFromInt64(3))
	h, err := ToHost(l)
	if err != nil {
		t.Fatalf("ToHost: unexpected error: %v", err)
	}
	elems, ok := h.([]any)
	if !ok {
		t.Fatalf("ToHost((1 2 3)) = %T, want []any", h)
	}
	if len(elems) != 3 {
		t.Fatalf("len = %d, want 3", len(elems))
	}
}

func TestToHostCycleIsRecursionError(t *testing.T) {
	c := MkCons(NewIntFromInt64(1), NIL)
	c.SetCdr(c)
	_, err := ToHost(c)
	if err == nil {
		t.Fatal("ToHost on a cyclic list: expected error, got nil")
	}
	if _, ok := err.(*RecursionError); !ok {
		t.Errorf("ToHost cycle error = %T, want *RecursionError", err)
	}
}

func TestToHostMemoizesSharedSubList(t *testing.T) {
	shared := MkList(NewIntFromInt64(9), NewIntFromInt64(10))
	l := MkList(shared, shared)
	h, err := ToHost(l)
	if err != nil {
		t.Fatalf("ToHost: unexpected error: %v", err)
	}
	elems, ok := h.([]any)
	if !ok || len(elems) != 2 {
		t.Fatalf("ToHost((shared shared)) = %#v, want a 2-element slice", h)
	}
	first, ok1 := elems[0].([]any)
	second, ok2 := elems[1].([]any)
	if !ok1 || !ok2 {
		t.Fatalf("elements = %#v, want two []any", elems)
	}
	if len(first) == 0 || &first[0] != &second[0] {
		t.Error("ToHost should convert a shared sub-list to the same output object on every encounter")
	}
}

func TestFromHostRoundTrip(t *testing.T) {
	native := []any{int64(1), "two", []any{int64(3), int64(4)}}
	v, err := FromHost(native)
	if err != nil {
		t.Fatalf("FromHost: unexpected error: %v", err)
	}
	back, err := ToHost(v)
	if err != nil {
		t.Fatalf("ToHost: unexpected error: %v", err)
	}
	elems, ok := back.([]any)
	if !ok || len(elems) != 3 {
		t.Fatalf("round trip = %#v, want a 3-element slice", back)
	}
}

func TestFromHostUnsupportedIsError(t *testing.T) {
	type unsupported struct{}
	if _, err := FromHost(unsupported{}); err == nil {
		t.Fatal("FromHost(unsupported{}): expected error, got nil")
	}
}

func TestFromHostDefaultStringIsSymbol(t *testing.T) {
	v, err := FromHost("foo")
	if err != nil {
		t.Fatalf("FromHost: unexpected error: %v", err)
	}
	if _, ok := v.(*Symbol); !ok {
		t.Errorf(`FromHost("foo") = %T, want *Symbol (strings-as-symbols defaults to true)`, v)
	}
}

func TestFromHostOptStringsAsSymbolsFalseIsString(t *testing.T) {
	v, err := FromHostOpt("foo", false)
	if err != nil {
		t.Fatalf("FromHostOpt: unexpected error: %v", err)
	}
	if _, ok := v.(*String); !ok {
		t.Errorf(`FromHostOpt("foo", false) = %T, want *String`, v)
	}
}

func TestToHostOptNativeFalsePreservesAtomTypes(t *testing.T) {
	sym, err := NewSymbol("foo", false)
	if err != nil {
		t.Fatalf("NewSymbol: unexpected error: %v", err)
	}
	l := MkList(sym, NewString("bar"))
	h, err := ToHostOpt(l, false)
	if err != nil {
		t.Fatalf("ToHostOpt: unexpected error: %v", err)
	}
	elems, ok := h.([]any)
	if !ok || len(elems) != 2 {
		t.Fatalf("ToHostOpt(l, false) = %#v, want a 2-element slice", h)
	}
	if _, ok := elems[0].(*Symbol); !ok {
		t.Errorf("ToHostOpt(l, false)[0] = %T, want *Symbol", elems[0])
	}
	if _, ok := elems[1].(*String); !ok {
		t.Errorf("ToHostOpt(l, false)[1] = %T, want *String", elems[1])
	}
}

func TestToHostRationalDenom1IsInt(t *testing.T) {
	v, err := NewRational(bi(4), bi(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := ToHost(v)
	if err != nil {
		t.Fatalf("ToHost: unexpected error: %v", err)
	}
	if _, ok := h.(interface{ Sign() int }); !ok {
		// h should be a *big.Int (which has Sign); this is a loose shape
		// check since host.go documents Int -> *big.Int.
		t.Errorf("ToHost(2) = %T, want something *big.Int-shaped", h)
	}
}
