// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package lex

import "fmt"

// Error is a lexical error carrying the position of the offending input,
// the Go analogue of asm.ErrAsm's position-carrying error items.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Line returns the 1-indexed line of the error.
func (e *Error) Line() int { return e.Pos.Line }

// Col returns the EAW-weighted, 0-indexed column of the error.
func (e *Error) Col() int { return e.Pos.Col }
