// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import "testing"

func TestLengthProperList(t *testing.T) {
	l := MkList(NewIntFromInt64(1), NewIntFromInt64(2), NewIntFromInt64(3))
	n, err := Length(l)
	if err != nil {
		t.Fatalf("Length: unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("Length((1 2 3)) = %d, want 3", n)
	}
}

func TestLengthNil(t *testing.T) {
	n, err := Length(NIL)
	if err != nil {
		t.Fatalf("Length(NIL): unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("Length(NIL) = %d, want 0", n)
	}
}

func TestLengthDetectsCycle(t *testing.T) {
	c := MkCons(NewIntFromInt64(1), NIL)
	c.SetCdr(c)
	n, err := Length(c)
	if err != nil {
		t.Fatalf("Length on a self-referencing cons: unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("Length(c) with c.cdr = c = %d, want 1", n)
	}
}

func TestNthAndSetNth(t *testing.T) {
	l := MkList(NewIntFromInt64(10), NewIntFromInt64(20), NewIntFromInt64(30))
	v, err := Nth(l, 1)
	if err != nil {
		t.Fatalf("Nth: unexpected error: %v", err)
	}
	if !ValuesEqual(v, NewIntFromInt64(20)) {
		t.Errorf("Nth(l,1) = %v, want 20", v)
	}
	if err := SetNth(l, 1, NewIntFromInt64(99)); err != nil {
		t.Fatalf("SetNth: unexpected error: %v", err)
	}
	v, _ = Nth(l, 1)
	if !ValuesEqual(v, NewIntFromInt64(99)) {
		t.Errorf("after SetNth, Nth(l,1) = %v, want 99", v)
	}
}

func TestNthPastProperListEndReturnsNil(t *testing.T) {
	l := MkList(NewIntFromInt64(1))
	v, err := Nth(l, 1)
	if err != nil {
		t.Fatalf("Nth(l,1): unexpected error: %v", err)
	}
	if !Null(v) {
		t.Errorf("Nth((1), 1) = %v, want NIL (the proper list's terminal atom)", v)
	}
	// Nil.cdr = Nil, so stepping further past the end keeps landing on NIL
	// without erroring.
	v, err = Nth(l, 5)
	if err != nil {
		t.Fatalf("Nth(l,5): unexpected error: %v", err)
	}
	if !Null(v) {
		t.Errorf("Nth((1), 5) = %v, want NIL", v)
	}
}

func TestNthPastDottedTailIsIndexError(t *testing.T) {
	d := MkCons(NewIntFromInt64(1), NewIntFromInt64(2)) // (1 . 2)
	v, err := Nth(d, 1)
	if err != nil {
		t.Fatalf("Nth(d,1): unexpected error: %v", err)
	}
	if !ValuesEqual(v, NewIntFromInt64(2)) {
		t.Errorf("Nth((1 . 2), 1) = %v, want 2 (the dotted tail)", v)
	}
	if _, err := Nth(d, 2); err == nil {
		t.Fatal("Nth past a dotted tail: expected error, got nil")
	} else if _, ok := err.(*IndexError); !ok {
		t.Errorf("Nth past a dotted tail error = %T, want *IndexError", err)
	}
}

func TestNthOnEmptyListIsIndexError(t *testing.T) {
	if _, err := Nth(NIL, 0); err == nil {
		t.Fatal("Nth(NIL, 0): expected error, got nil")
	} else if _, ok := err.(*IndexError); !ok {
		t.Errorf("Nth(NIL, 0) error = %T, want *IndexError", err)
	}
}

func TestNthNegativeIndex(t *testing.T) {
	l := MkList(NewIntFromInt64(1))
	if _, err := Nth(l, -1); err == nil {
		t.Fatal("Nth(-1): expected error, got nil")
	}
}

func TestSetNthPastLastConsSplicesCdr(t *testing.T) {
	l := MkList(NewIntFromInt64(1))
	if err := SetNth(l, 1, NewIntFromInt64(2)); err != nil {
		t.Fatalf("SetNth(l,1): unexpected error: %v", err)
	}
	want := MkCons(NewIntFromInt64(1), NewIntFromInt64(2))
	if !ValuesEqual(l, want) {
		t.Errorf("after SetNth(l,1,2), l = %v, want (1 . 2)", l)
	}
}

func TestSetNthPastDottedTailIsIndexError(t *testing.T) {
	d := MkCons(NewIntFromInt64(1), NewIntFromInt64(2))
	if err := SetNth(d, 2, NewIntFromInt64(9)); err == nil {
		t.Fatal("SetNth past a dotted tail: expected error, got nil")
	}
}

func TestDottedPairCarCdr(t *testing.T) {
	c := MkCons(MustSymbol("a"), MustSymbol("b"))
	car, err := Car(c)
	if err != nil {
		t.Fatalf("Car: unexpected error: %v", err)
	}
	if car != MustSymbol("a") {
		t.Errorf("Car((a . b)) = %v, want a", car)
	}
	cdr, err := Cdr(c)
	if err != nil {
		t.Fatalf("Cdr: unexpected error: %v", err)
	}
	if cdr != MustSymbol("b") {
		t.Errorf("Cdr((a . b)) = %v, want b", cdr)
	}
}

func TestMkReverseAndMkAppend(t *testing.T) {
	l := MkList(NewIntFromInt64(1), NewIntFromInt64(2), NewIntFromInt64(3))
	rev, err := MkReverse(l)
	if err != nil {
		t.Fatalf("MkReverse: unexpected error: %v", err)
	}
	want := MkList(NewIntFromInt64(3), NewIntFromInt64(2), NewIntFromInt64(1))
	if !ValuesEqual(rev, want) {
		t.Errorf("MkReverse((1 2 3)) = %v, want (3 2 1)", rev)
	}

	a := MkList(NewIntFromInt64(1), NewIntFromInt64(2))
	b := MkList(NewIntFromInt64(3), NewIntFromInt64(4))
	appended, err := MkAppend(a, b)
	if err != nil {
		t.Fatalf("MkAppend: unexpected error: %v", err)
	}
	wantAppend := MkList(NewIntFromInt64(1), NewIntFromInt64(2), NewIntFromInt64(3), NewIntFromInt64(4))
	if !ValuesEqual(appended, wantAppend) {
		t.Errorf("MkAppend((1 2),(3 4)) = %v, want (1 2 3 4)", appended)
	}
}

func TestNConcSplicesInPlace(t *testing.T) {
	a := MkList(NewIntFromInt64(1), NewIntFromInt64(2))
	b := MkList(NewIntFromInt64(3))
	joined, err := NConc(a, b)
	if err != nil {
		t.Fatalf("NConc: unexpected error: %v", err)
	}
	want := MkList(NewIntFromInt64(1), NewIntFromInt64(2), NewIntFromInt64(3))
	if !ValuesEqual(joined, want) {
		t.Errorf("NConc((1 2),(3)) = %v, want (1 2 3)", joined)
	}
	n, _ := Length(a)
	if n != 3 {
		t.Errorf("NConc should have mutated its first argument in place, Length(a) = %d, want 3", n)
	}
}

func TestMemberAndAssoc(t *testing.T) {
	l := MkList(NewIntFromInt64(1), NewIntFromInt64(2), NewIntFromInt64(3))
	if Null(Member(NewIntFromInt64(2), l)) {
		t.Error("Member(2, (1 2 3)) should not be NIL")
	}
	if !Null(Member(NewIntFromInt64(9), l)) {
		t.Error("Member(9, (1 2 3)) should be NIL")
	}

	alist := MkList(MkCons(MustSymbol("a"), NewIntFromInt64(1)), MkCons(MustSymbol("b"), NewIntFromInt64(2)))
	pair := Assoc(MustSymbol("b"), alist)
	if Null(pair) {
		t.Fatal("Assoc(b, alist) should not be NIL")
	}
	cdr, _ := Cdr(pair)
	if !ValuesEqual(cdr, NewIntFromInt64(2)) {
		t.Errorf("Assoc(b, alist) cdr = %v, want 2", cdr)
	}
}
