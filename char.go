// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import (
	"strconv"
	"strings"
)

// Char is a single interned Unicode scalar value. Named characters
// (Backspace, Escape, Linefeed/Newline, Page, Return, Rubout, Space, Tab)
// share a canonical spelling with their literal rune.
type Char struct {
	value rune
}

func (*Char) sxprValue() {}

var charTable = newInternTable[rune, Char]()

var nameToChar = map[string]rune{
	"Backspace": '\x08',
	"Escape":    '\x1b',
	"Linefeed":  '\n',
	"Newline":   '\n',
	"Page":      '\x0c',
	"Return":    '\r',
	"Rubout":    '\x1f',
	"Space":     ' ',
	"Tab":       '\t',
}

var charToName = map[rune]string{
	'\x08': "Backspace",
	'\t':   "Tab",
	'\n':   "Linefeed",
	'\x0c': "Page",
	'\r':   "Return",
	'\x1b': "Escape",
	'\x1f': "Rubout",
	' ':    "Space",
}

// NewChar builds a Char from a single-scalar string, a named-character
// token (case-insensitive, e.g. "Space" or "space"), or a hex escape of the
// form "#\u...", "#\x..." or "#\U..." with value <= 0x10FFFF. Anything else
// is a ConstructError.
func NewChar(s any) (*Char, error) {
	var v string
	switch t := s.(type) {
	case *Char:
		return t, nil
	case string:
		v = t
	case *String:
		v = t.value
	default:
		return nil, &ConstructError{Type: "Char", Msg: "unsupported argument type"}
	}
	r, err := decodeCharLiteral(v)
	if err != nil {
		return nil, err
	}
	return charTable.intern(r, func() *Char { return &Char{value: r} }), nil
}

// NewCharFromRune interns r directly, still validating the Unicode range.
func NewCharFromRune(r rune) (*Char, error) {
	if r < 0 || r > 0x10FFFF {
		return nil, &ConstructError{Type: "Char", Msg: "code point out of Unicode range"}
	}
	return charTable.intern(r, func() *Char { return &Char{value: r} }), nil
}

func decodeCharLiteral(v string) (rune, error) {
	if isCharHexEscape(v) {
		n, err := strconv.ParseInt(v[3:], 16, 64)
		if err != nil || n < 0 || n > 0x10FFFF {
			return 0, &ConstructError{Type: "Char", Msg: "invalid hex escape " + strconv.Quote(v)}
		}
		return rune(n), nil
	}
	v = strings.TrimPrefix(v, `#\`)
	if len([]rune(v)) == 1 {
		return []rune(v)[0], nil
	}
	if r, ok := nameToChar[capitalize(v)]; ok {
		return r, nil
	}
	return 0, &ConstructError{Type: "Char", Msg: "illegal argument " + strconv.Quote(v)}
}

// isCharHexEscape reports whether s matches `#\[uxUX][0-9a-fA-F]+`.
func isCharHexEscape(s string) bool {
	if len(s) < 4 || s[0] != '#' || s[1] != '\\' {
		return false
	}
	switch s[2] {
	case 'u', 'x', 'U', 'X':
	default:
		return false
	}
	for _, c := range s[3:] {
		if !isHexDigit(byte(c)) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// capitalize mirrors Python's str.capitalize(): first rune upper-cased,
// the rest lower-cased. Used to case-insensitively match named characters.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// CharName returns the canonical name for r (e.g. "Space" for ' '), if r is
// one of the named characters; used by the print package to render Char
// literals the same way the tokenizer reads them.
func CharName(r rune) (string, bool) {
	name, ok := charToName[r]
	return name, ok
}

// IsChar reports whether s (a string) would be accepted by NewChar.
func IsChar(s string) bool {
	_, err := decodeCharLiteral(s)
	return err == nil
}

// Value returns the character's Unicode scalar value.
func (c *Char) Value() rune { return c.value }

// ListChars returns every Char currently interned.
func ListChars() []rune { return charTable.live() }
