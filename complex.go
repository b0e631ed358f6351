// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import (
	"math/big"
	"math/cmplx"

	"github.com/pkg/errors"
)

// RatComplex is a complex number whose real and imaginary parts are each
// exact (Int or *Rational). It is interned by the canonical 4-tuple
// (rnum, rden, inum, iden); a RatComplex whose imaginary part would reduce
// to zero never escapes this package, reduceComplex returns the real part
// directly instead (mirroring original_source/ratcomplex.py's Complex.__new__).
type RatComplex struct {
	real, imag Value // each Int or *Rational
}

func (*RatComplex) sxprValue() {}

type complexKey struct {
	rn, rd, in, id string
}

var complexTable = newInternTable[complexKey, RatComplex]()

// NewComplex builds a complex number from two real components (re + im*i),
// applying the Gaussian re-composition rule when either argument is itself
// complex: Complex(a+bi, c+di) = (a-d) + (b+c)i. A Float argument is first
// converted to its exact rational value (1.5 becomes 3/2). The result
// reduces to the real component alone when the imaginary part is zero.
func NewComplex(re, im Value) (Value, error) {
	for _, p := range []*Value{&re, &im} {
		if f, ok := (*p).(Float); ok {
			r := new(big.Rat).SetFloat64(float64(f))
			if r == nil {
				return nil, &ConstructError{Type: "Complex", Msg: "component is not finite"}
			}
			*p = reduceRational(new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()))
		}
	}
	var real, imag Value
	var err error

	reC, reIsComplex := re.(*RatComplex)
	imC, imIsComplex := im.(*RatComplex)

	switch {
	case reIsComplex && imIsComplex:
		real, err = subRat(reC.real, imC.imag)
		if err != nil {
			return nil, err
		}
		imag, err = addRat(reC.imag, imC.real)
	case reIsComplex:
		real = reC.real
		imag, err = addRat(reC.imag, im)
	case imIsComplex:
		real, err = subRat(re, imC.imag)
		if err == nil {
			imag = imC.real
		}
	default:
		real, imag = re, im
	}
	if err != nil {
		return nil, err
	}
	return reduceComplex(real, imag)
}

// reduceComplex normalizes real/imag through rational reduction and
// returns real alone when imag is the zero value, otherwise an interned
// *RatComplex.
func reduceComplex(real, imag Value) (Value, error) {
	rn, rd, err := realParts(real)
	if err != nil {
		return nil, errors.Wrap(err, "reduceComplex: real part")
	}
	in, id, err := realParts(imag)
	if err != nil {
		return nil, errors.Wrap(err, "reduceComplex: imaginary part")
	}
	real = reduceRational(new(big.Int).Set(rn), new(big.Int).Set(rd))
	imag = reduceRational(new(big.Int).Set(in), new(big.Int).Set(id))
	if isZeroReal(imag) {
		return real, nil
	}
	rn, rd, _ = realParts(real)
	in, id, _ = realParts(imag)
	key := complexKey{rn.String(), rd.String(), in.String(), id.String()}
	return complexTable.intern(key, func() *RatComplex {
		return &RatComplex{real: real, imag: imag}
	}), nil
}

func isZeroReal(v Value) bool {
	n, _, err := realParts(v)
	return err == nil && n.Sign() == 0
}

// Real returns the (exact) real part.
func (c *RatComplex) Real() Value { return c.real }

// Imag returns the (exact) imaginary part.
func (c *RatComplex) Imag() Value { return c.imag }

// ToComplex128 promotes c to a native floating complex number.
func (c *RatComplex) ToComplex128() (complex128, error) {
	re, err := ratToFloat(c.real)
	if err != nil {
		return 0, err
	}
	im, err := ratToFloat(c.imag)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// Add returns c+v, where v is Int, *Rational or *RatComplex.
func (c *RatComplex) Add(v Value) (Value, error) {
	vr, vi := splitComplexOperand(v)
	real, err := addRat(c.real, vr)
	if err != nil {
		return nil, err
	}
	imag, err := addRat(c.imag, vi)
	if err != nil {
		return nil, err
	}
	return reduceComplex(real, imag)
}

// Sub returns c-v.
func (c *RatComplex) Sub(v Value) (Value, error) {
	vr, vi := splitComplexOperand(v)
	real, err := subRat(c.real, vr)
	if err != nil {
		return nil, err
	}
	imag, err := subRat(c.imag, vi)
	if err != nil {
		return nil, err
	}
	return reduceComplex(real, imag)
}

// Mul returns c*v.
func (c *RatComplex) Mul(v Value) (Value, error) {
	vr, vi := splitComplexOperand(v)
	rr, err := mulRat(c.real, vr)
	if err != nil {
		return nil, err
	}
	ii, err := mulRat(c.imag, vi)
	if err != nil {
		return nil, err
	}
	real, err := subRat(rr, ii)
	if err != nil {
		return nil, err
	}
	ri, err := mulRat(c.real, vi)
	if err != nil {
		return nil, err
	}
	ir, err := mulRat(c.imag, vr)
	if err != nil {
		return nil, err
	}
	imag, err := addRat(ri, ir)
	if err != nil {
		return nil, err
	}
	return reduceComplex(real, imag)
}

// Div returns c/v. When v is a RatComplex the classic conjugate-multiply
// rule is used; division is exact as long as both operands are exact.
func (c *RatComplex) Div(v Value) (Value, error) {
	vr, vi := splitComplexOperand(v)
	d, err := addRat(mustMulRat(vr, vr), mustMulRat(vi, vi))
	if err != nil {
		return nil, err
	}
	if isZeroReal(d) {
		return nil, errors.New("complex division by zero")
	}
	crvr, _ := mulRat(c.real, vr)
	civi, _ := mulRat(c.imag, vi)
	num1, _ := addRat(crvr, civi)
	real, err := divRat(num1, d)
	if err != nil {
		return nil, err
	}
	civr, _ := mulRat(c.imag, vr)
	crvi, _ := mulRat(c.real, vi)
	num2, _ := subRat(civr, crvi)
	imag, err := divRat(num2, d)
	if err != nil {
		return nil, err
	}
	return reduceComplex(real, imag)
}

func mustMulRat(a, b Value) Value {
	v, _ := mulRat(a, b)
	return v
}

// Conjugate returns the complex conjugate of c.
func (c *RatComplex) Conjugate() (Value, error) {
	imag, err := negRat(c.imag)
	if err != nil {
		return nil, err
	}
	return reduceComplex(c.real, imag)
}

// Abs returns the magnitude of c. When one part is zero the result is
// exact (the absolute value of the other part, as an Int or *Rational);
// otherwise it is a host Float.
func (c *RatComplex) Abs() (Value, error) {
	if isZeroReal(c.real) {
		return absReal(c.imag)
	}
	if isZeroReal(c.imag) {
		return absReal(c.real)
	}
	z, err := c.ToComplex128()
	if err != nil {
		return nil, err
	}
	return Float(cmplx.Abs(z)), nil
}

func absReal(v Value) (Value, error) {
	n, d, err := realParts(v)
	if err != nil {
		return nil, err
	}
	return reduceRational(new(big.Int).Abs(n), new(big.Int).Set(d)), nil
}

// Pow raises c to the power v, promoting both operands to complex128 (this
// is the one operation the spec explicitly allows to leave the exact
// rational tower, mirroring Complex.__pow__ in original_source/ratcomplex.py).
func (c *RatComplex) Pow(v Value) (complex128, error) {
	base, err := c.ToComplex128()
	if err != nil {
		return 0, err
	}
	exp, err := toComplex128(v)
	if err != nil {
		return 0, err
	}
	return cmplx.Pow(base, exp), nil
}

func toComplex128(v Value) (complex128, error) {
	switch t := v.(type) {
	case *RatComplex:
		return t.ToComplex128()
	case Float:
		return complex(float64(t), 0), nil
	default:
		f, err := ratToFloat(v)
		if err != nil {
			return 0, errors.Wrap(err, "value is not numeric")
		}
		return complex(f, 0), nil
	}
}

// splitComplexOperand returns (real, imag) for a Value used as the other
// operand of a RatComplex arithmetic method: a *RatComplex contributes both
// parts, any exact real contributes itself as the real part and Int(0) as
// the imaginary part.
func splitComplexOperand(v Value) (real, imag Value) {
	if c, ok := v.(*RatComplex); ok {
		return c.real, c.imag
	}
	return v, NewIntFromInt64(0)
}

// Equal reports whether c equals v: another RatComplex with the same exact
// parts, or a real value equal to c when c's imaginary part is zero (which
// cannot happen for an interned *RatComplex, but is checked for symmetry
// with the native-complex case described in spec.md §4.B).
func (c *RatComplex) Equal(v Value) bool {
	switch t := v.(type) {
	case *RatComplex:
		return valuesEqualExact(c.real, t.real) && valuesEqualExact(c.imag, t.imag)
	default:
		return isZeroReal(c.imag) && valuesEqualExact(c.real, v)
	}
}

func valuesEqualExact(a, b Value) bool {
	an, ad, err1 := realParts(a)
	bn, bd, err2 := realParts(b)
	if err1 != nil || err2 != nil {
		return false
	}
	return an.Cmp(bn) == 0 && ad.Cmp(bd) == 0
}
