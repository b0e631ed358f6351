// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import (
	"math/big"

	"github.com/pkg/errors"
)

// Int is an arbitrary-precision integer atom, backed by math/big. The zero
// value is not usable; use NewInt or one of the numeric literal
// constructors (the tokenizer and parser always go through NewInt).
type Int struct{ v *big.Int }

func (Int) sxprValue() {}

// NewInt wraps n as an Int atom. The supplied *big.Int is copied so the
// caller's mutations afterwards cannot violate Int's write-once contract.
func NewInt(n *big.Int) Int {
	return Int{v: new(big.Int).Set(n)}
}

// NewIntFromInt64 wraps a native integer as an Int atom.
func NewIntFromInt64(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// Big returns the underlying *big.Int. The returned value must not be
// mutated by the caller.
func (i Int) Big() *big.Int { return i.v }

// String renders the integer in base 10.
func (i Int) String() string { return i.v.String() }

// Rational is an exact rational number, always held in lowest terms with a
// strictly positive denominator. A Rational whose denominator would reduce
// to 1 never escapes this package as *Rational: every constructor routes
// through reduceRational, which returns an Int instead. Callers therefore
// never need to special-case "Rational with denominator 1".
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRational builds a rational number num/den, reducing it to lowest terms.
// It returns an Int when the reduced denominator is 1. den == 0 is a
// construction error.
func NewRational(num, den *big.Int) (Value, error) {
	if den.Sign() == 0 {
		return nil, &ConstructError{Type: "Rational", Msg: "denominator is zero"}
	}
	return reduceRational(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// reduceRational normalizes num/den to lowest terms with a positive
// denominator and returns an Int when the denominator reduces to 1. It
// takes ownership of num and den (no further copies are made).
func reduceRational(num, den *big.Int) Value {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() != 0 && g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if den.Cmp(bigOne) == 0 {
		return Int{v: num}
	}
	return &Rational{num: num, den: den}
}

var bigOne = big.NewInt(1)

func (*Rational) sxprValue() {}

// Num returns the (already reduced) numerator.
func (r *Rational) Num() *big.Int { return r.num }

// Den returns the (already reduced, always positive) denominator.
func (r *Rational) Den() *big.Int { return r.den }

// String renders the rational as "<num>/<den>".
func (r *Rational) String() string {
	return r.num.String() + "/" + r.den.String()
}

// realParts extracts the (numerator, denominator) pair of an exact real
// value (Int or *Rational), for use by Rational/Complex arithmetic.
func realParts(v Value) (num, den *big.Int, err error) {
	switch n := v.(type) {
	case Int:
		return n.v, bigOne, nil
	case *Rational:
		return n.num, n.den, nil
	default:
		return nil, nil, errors.Errorf("not an exact real value: %T", v)
	}
}

// addRat, subRat, mulRat, divRat implement exact rational arithmetic on
// Int/*Rational operands, always returning through reduceRational (hence
// possibly an Int). They mirror the cross-multiplication rules that
// fractions.Fraction applies in original_source/ratcomplex.py.
func addRat(a, b Value) (Value, error) {
	an, ad, err := realParts(a)
	if err != nil {
		return nil, err
	}
	bn, bd, err := realParts(b)
	if err != nil {
		return nil, err
	}
	num := new(big.Int).Add(new(big.Int).Mul(an, bd), new(big.Int).Mul(bn, ad))
	den := new(big.Int).Mul(ad, bd)
	return reduceRational(num, den), nil
}

func subRat(a, b Value) (Value, error) {
	an, ad, err := realParts(a)
	if err != nil {
		return nil, err
	}
	bn, bd, err := realParts(b)
	if err != nil {
		return nil, err
	}
	num := new(big.Int).Sub(new(big.Int).Mul(an, bd), new(big.Int).Mul(bn, ad))
	den := new(big.Int).Mul(ad, bd)
	return reduceRational(num, den), nil
}

func mulRat(a, b Value) (Value, error) {
	an, ad, err := realParts(a)
	if err != nil {
		return nil, err
	}
	bn, bd, err := realParts(b)
	if err != nil {
		return nil, err
	}
	num := new(big.Int).Mul(an, bn)
	den := new(big.Int).Mul(ad, bd)
	return reduceRational(num, den), nil
}

func divRat(a, b Value) (Value, error) {
	an, ad, err := realParts(a)
	if err != nil {
		return nil, err
	}
	bn, bd, err := realParts(b)
	if err != nil {
		return nil, err
	}
	if bn.Sign() == 0 {
		return nil, errors.New("division by zero")
	}
	num := new(big.Int).Mul(an, bd)
	den := new(big.Int).Mul(ad, bn)
	return reduceRational(num, den), nil
}

func negRat(a Value) (Value, error) {
	an, ad, err := realParts(a)
	if err != nil {
		return nil, err
	}
	return reduceRational(new(big.Int).Neg(an), new(big.Int).Set(ad)), nil
}

// ratToFloat converts an exact real value to a host float64, used when
// promoting to complex128 for transcendental operations.
func ratToFloat(v Value) (float64, error) {
	n, d, err := realParts(v)
	if err != nil {
		return 0, err
	}
	nf := new(big.Float).SetInt(n)
	df := new(big.Float).SetInt(d)
	f, _ := new(big.Float).Quo(nf, df).Float64()
	return f, nil
}
