// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package print_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/kitanokitsune/sxpr"
	"github.com/kitanokitsune/sxpr/print"
)

func TestSprintAtoms(t *testing.T) {
	if got, want := print.Sprint(sxpr.NewIntFromInt64(42)), "42"; got != want {
		t.Errorf("Sprint(42) = %q, want %q", got, want)
	}
	if got, want := print.Sprint(sxpr.NIL), "()"; got != want {
		t.Errorf("Sprint(NIL) = %q, want %q", got, want)
	}
	if got, want := print.Sprint(sxpr.MustSymbol("foo")), "foo"; got != want {
		t.Errorf("Sprint(foo) = %q, want %q", got, want)
	}
}

func TestSprintProperList(t *testing.T) {
	l := sxpr.MkList(sxpr.NewIntFromInt64(1), sxpr.NewIntFromInt64(2), sxpr.NewIntFromInt64(3))
	if got, want := print.Sprint(l), "(1 2 3)"; got != want {
		t.Errorf("Sprint((1 2 3)) = %q, want %q", got, want)
	}
}

func TestSprintDottedPair(t *testing.T) {
	c := sxpr.MkCons(sxpr.NewIntFromInt64(1), sxpr.NewIntFromInt64(2))
	if got, want := print.Sprint(c), "(1 . 2)"; got != want {
		t.Errorf("Sprint((1 . 2)) = %q, want %q", got, want)
	}
}

func TestSprintSelfCycleRendersEllipsis(t *testing.T) {
	c := sxpr.MkCons(sxpr.NewIntFromInt64(1), sxpr.NIL)
	c.SetCdr(c)
	if got, want := print.Sprint(c), "(1 ...)"; got != want {
		t.Errorf("Sprint(cyclic cons) = %q, want %q", got, want)
	}
}

func TestSprintSharedSubtreeIsNotTreatedAsCycle(t *testing.T) {
	shared := sxpr.MkList(sxpr.NewIntFromInt64(9))
	l := sxpr.MkList(shared, shared)
	if got, want := print.Sprint(l), "((9) (9))"; got != want {
		t.Errorf("Sprint(shared, shared) = %q, want %q (shared non-ancestor subtree must print in full each time)", got, want)
	}
}

func TestSprintNestedList(t *testing.T) {
	l := sxpr.MkList(sxpr.NewIntFromInt64(1), sxpr.MkList(sxpr.NewIntFromInt64(2), sxpr.NewIntFromInt64(3)))
	if got, want := print.Sprint(l), "(1 (2 3))"; got != want {
		t.Errorf("Sprint nested list = %q, want %q", got, want)
	}
}

func TestSprintSymbolQuotingForNumberLikeText(t *testing.T) {
	cfg := sxpr.NewDialectConfig(sxpr.WithFrac())
	sym, err := sxpr.NewSymbol("42", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := print.New(cfg).Sprint(sym)
	if got != "|42|" {
		t.Errorf(`Sprint(Symbol "42") = %q, want "|42|" (must re-tokenize as a Symbol, not an Int)`, got)
	}
}

func TestSprintSymbolEscaping(t *testing.T) {
	sym, err := sxpr.NewSymbol("has space", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := print.Sprint(sym), "has_space"; got != want {
		t.Errorf("Sprint(symbol with space) = %q, want %q", got, want)
	}
}

func TestSprintString(t *testing.T) {
	if got, want := print.Sprint(sxpr.NewString("hi\n")), `"hi\n"`; got != want {
		t.Errorf("Sprint(string) = %q, want %q", got, want)
	}
}

func TestSprintCharNamed(t *testing.T) {
	c, err := sxpr.NewChar("Space")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := print.Sprint(c), `#\Space`; got != want {
		t.Errorf(`Sprint(#\Space) = %q, want %q`, got, want)
	}
}

func TestSprintRational(t *testing.T) {
	v, err := sxpr.NewRational(big.NewInt(1), big.NewInt(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := print.Sprint(v), "1/2"; got != want {
		t.Errorf("Sprint(1/2) = %q, want %q", got, want)
	}
}

func TestSprintQuoteUnwrapsToReaderMacro(t *testing.T) {
	cfg := sxpr.NewDialectConfig(sxpr.WithQuote())
	sym, err := sxpr.NewSymbol("foo", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form := sxpr.MkList(sxpr.MustSymbol("quote"), sym)
	if got, want := print.New(cfg).Sprint(form), "'foo"; got != want {
		t.Errorf(`Sprint((quote foo)) = %q, want %q`, got, want)
	}
}

func TestSprintNestedQuoteUnwrapsEachLayer(t *testing.T) {
	cfg := sxpr.NewDialectConfig(sxpr.WithQuote())
	sym, err := sxpr.NewSymbol("foo", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner := sxpr.MkList(sxpr.MustSymbol("quote"), sym)
	outer := sxpr.MkList(sxpr.MustSymbol("quote"), inner)
	if got, want := print.New(cfg).Sprint(outer), "''foo"; got != want {
		t.Errorf(`Sprint((quote (quote foo))) = %q, want %q`, got, want)
	}
}

func TestSprintQuoteDisabledPrintsGenericList(t *testing.T) {
	form := sxpr.MkList(sxpr.MustSymbol("quote"), sxpr.MustSymbol("foo"))
	if got, want := print.Sprint(form), "(quote foo)"; got != want {
		t.Errorf(`Sprint((quote foo)) with quote disabled = %q, want %q`, got, want)
	}
}

func TestSprintFuncRefUnwrapsToReaderMacro(t *testing.T) {
	cfg := sxpr.NewDialectConfig(sxpr.WithFuncRef())
	form := sxpr.MkList(sxpr.MustSymbol("function"), sxpr.MustSymbol("foo"))
	if got, want := print.New(cfg).Sprint(form), "#'foo"; got != want {
		t.Errorf(`Sprint((function foo)) = %q, want %q`, got, want)
	}
}

func TestSprintFuncRefRequiresSymbolInner(t *testing.T) {
	cfg := sxpr.NewDialectConfig(sxpr.WithFuncRef())
	form := sxpr.MkList(sxpr.MustSymbol("function"), sxpr.NewIntFromInt64(1))
	if got, want := print.New(cfg).Sprint(form), "(function 1)"; got != want {
		t.Errorf(`Sprint((function 1)) = %q, want %q (non-Symbol inner falls back to generic list)`, got, want)
	}
}

func TestSprintComplex(t *testing.T) {
	c, err := sxpr.NewComplex(sxpr.NewIntFromInt64(1), sxpr.NewIntFromInt64(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := print.Sprint(c), "#C(1 2)"; got != want {
		t.Errorf("Sprint(1+2i) = %q, want %q", got, want)
	}
}

func TestPrettySprintIndentsNestedLists(t *testing.T) {
	l := sxpr.MkList(sxpr.NewIntFromInt64(1), sxpr.MkList(sxpr.NewIntFromInt64(2), sxpr.NewIntFromInt64(3)))
	got := print.PrettySprint(l)
	if !strings.Contains(got, "\n") {
		t.Errorf("PrettySprint of a nested list should contain a newline, got %q", got)
	}
}

func TestFprintPropagatesWriteError(t *testing.T) {
	err := print.Fprint(failingWriter{}, sxpr.NewIntFromInt64(1))
	if err == nil {
		t.Fatal("Fprint with a failing writer: expected error, got nil")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }
