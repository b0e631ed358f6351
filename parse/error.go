// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package parse implements the recursive-descent grammar over lex.Tokens
// that produces sxpr.Value trees, one complete S-expression per call.
package parse

import (
	"fmt"

	"github.com/kitanokitsune/sxpr/lex"
)

// Error is a syntax error carrying the position of the offending token, the
// parser-level counterpart of lex.Error.
type Error struct {
	Pos lex.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Line returns the 1-indexed line of the error.
func (e *Error) Line() int { return e.Pos.Line }

// Col returns the EAW-weighted, 0-indexed column of the error.
func (e *Error) Col() int { return e.Pos.Col }
