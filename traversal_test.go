// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import "testing"

func TestValuesEqualStructural(t *testing.T) {
	a := MkList(NewIntFromInt64(1), NewIntFromInt64(2))
	b := MkList(NewIntFromInt64(1), NewIntFromInt64(2))
	if a == b {
		t.Fatal("test setup: a and b should be distinct cons chains")
	}
	if !ValuesEqual(a, b) {
		t.Error("two structurally equal lists should be ValuesEqual")
	}
}

func TestValuesEqualDetectsDifference(t *testing.T) {
	a := MkList(NewIntFromInt64(1), NewIntFromInt64(2))
	b := MkList(NewIntFromInt64(1), NewIntFromInt64(3))
	if ValuesEqual(a, b) {
		t.Error("lists with a differing element should not be ValuesEqual")
	}
}

func TestValuesEqualHandlesCycles(t *testing.T) {
	a := MkCons(NewIntFromInt64(1), NIL)
	a.SetCdr(a)
	b := MkCons(NewIntFromInt64(1), NIL)
	b.SetCdr(b)
	if !ValuesEqual(a, b) {
		t.Error("two isomorphic self-cycles should be ValuesEqual")
	}
}

func TestHasCycle(t *testing.T) {
	acyclic := MkList(NewIntFromInt64(1), NewIntFromInt64(2))
	if HasCycle(acyclic) {
		t.Error("HasCycle((1 2)) = true, want false")
	}
	cyclic := MkCons(NewIntFromInt64(1), NIL)
	cyclic.SetCdr(cyclic)
	if !HasCycle(cyclic) {
		t.Error("HasCycle(self-referencing cons) = false, want true")
	}
}

func TestNilSingleton(t *testing.T) {
	if !Null(NIL) {
		t.Error("Null(NIL) = false, want true")
	}
	if _, ok := NIL.(*Nil); !ok {
		t.Fatal("NIL is not a *Nil")
	}
	if _, err := Car(NIL); err == nil {
		t.Error("Car(NIL) should be a TypeError, since NIL is not a Cons")
	}
}
