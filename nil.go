// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

// Nil is the type of the unique empty-list/false atom. There is exactly one
// instance, NIL; it is never constructed by user code.
type Nil struct{}

func (*Nil) sxprValue() {}

// NIL is the empty list (). It is also the s-expression boolean false; every
// other value, including the empty Vector and Array, is truthy.
var NIL Value = &Nil{}

// String renders NIL the way the printer does, for use in %v/%s formatting
// outside the print package.
func (*Nil) String() string { return "()" }
