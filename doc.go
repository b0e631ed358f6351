// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package sxpr implements a typed value model for S-expression data in the
// Lisp tradition, suitable for representing Lisp source, EDIF netlists and
// KiCAD files.
//
// The package exposes the atom and composite types of the model (Symbol,
// Char, String, Cons, Nil, Array, Rational, RatComplex), the predicates and
// list helpers used to inspect and build them, cycle-safe traversal
// helpers (ValuesEqual, HasCycle), and a bridge
// to/from a generic native Go representation ([]any / map-free lists).
//
// Lexing, parsing and printing live in the sibling packages lex, parse and
// print; they consult the DialectConfig defined here so that the same set
// of dialect flags governs both reading and writing.
package sxpr
