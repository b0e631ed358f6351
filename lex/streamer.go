// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package lex turns a character source into a stream of tokens governed by
// a sxpr.DialectConfig, with one-token lookahead and East-Asian-Width-aware
// position tracking.
package lex

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// Pos is a 1-indexed line, 0-indexed column position, the column weighted
// by East-Asian-Width as required by spec.md §6.
type Pos struct {
	Line int
	Col  int
}

// Streamer is a character source with one-character lookahead and position
// tracking, the Go analogue of the file-like/string readers in
// original_source/sxprlib.py's Streamer hierarchy.
type Streamer interface {
	// Read consumes and returns the next rune. ok is false at end of input.
	Read() (r rune, ok bool)
	// Lookahead returns the next unread rune without consuming it.
	Lookahead() (r rune, ok bool)
	// Pos is the position of the last rune returned by Read.
	Pos() Pos
	// LookaheadPos is the position the next rune would be read at.
	LookaheadPos() Pos
}

// eawCondition forces go-runewidth's East-Asian-Width classification of
// Ambiguous-width runes to count as wide, independent of the ambient
// locale/environment go-runewidth's package-level default condition would
// otherwise detect (LANG, RUNEWIDTH_EASTASIAN, ...). spec.md §4.H requires
// the fixed mapping W, F, A -> 2 columns; H, Na, N -> 1, unconditionally,
// on every host.
var eawCondition = &runewidth.Condition{EastAsianWidth: true}

// columnWidth returns the EAW display width of r as go-runewidth's
// classification tables give it: 2 for Wide/Fullwidth/Ambiguous, 1 for
// other printing runes, and 0 for CR/LF and for runes go-runewidth treats
// as non-printing or combining (control characters such as tab included).
func columnWidth(r rune) int {
	if r == '\r' || r == '\n' {
		return 0
	}
	return eawCondition.RuneWidth(r)
}

// baseStreamer implements the position-tracking and lookahead logic shared
// by every concrete Streamer; concrete types only need to supply the next
// rune.
type baseStreamer struct {
	cur      rune
	curOK    bool
	curPos   Pos
	next     rune
	nextOK   bool
	nextPos  Pos
	fetch    func() (rune, bool, error)
	fetchErr error
}

func newBaseStreamer(fetch func() (rune, bool, error)) *baseStreamer {
	b := &baseStreamer{fetch: fetch, nextPos: Pos{Line: 1, Col: 0}}
	b.advance()
	return b
}

// advance pulls the next rune from fetch into the lookahead slot. It does
// not touch LookaheadPos; Read advances that before calling advance.
func (b *baseStreamer) advance() {
	if b.fetchErr != nil {
		b.nextOK = false
		return
	}
	r, ok, err := b.fetch()
	if err != nil {
		b.fetchErr = err
		b.nextOK = false
		return
	}
	b.nextOK = ok
	if !ok {
		return
	}
	b.next = r
}

// Read implements Streamer.
func (b *baseStreamer) Read() (rune, bool) {
	if !b.nextOK {
		b.cur, b.curOK = 0, false
		return 0, false
	}
	r := b.next
	pos := b.nextPos
	b.cur, b.curOK = r, true
	b.curPos = pos
	if r == '\n' || r == '\r' {
		b.nextPos = Pos{Line: pos.Line + 1, Col: 0}
	} else {
		b.nextPos = Pos{Line: pos.Line, Col: pos.Col + columnWidth(r)}
	}
	b.advance()
	return r, true
}

// Lookahead implements Streamer.
func (b *baseStreamer) Lookahead() (rune, bool) {
	if !b.nextOK {
		return 0, false
	}
	return b.next, true
}

// Pos implements Streamer.
func (b *baseStreamer) Pos() Pos { return b.curPos }

// LookaheadPos implements Streamer.
func (b *baseStreamer) LookaheadPos() Pos { return b.nextPos }

// Err returns the first I/O error observed while fetching runes, if any.
func (b *baseStreamer) Err() error { return b.fetchErr }

// StringStreamer streams runes from an in-memory string.
type StringStreamer struct {
	*baseStreamer
}

// NewStringStreamer builds a Streamer over s.
func NewStringStreamer(s string) *StringStreamer {
	runes := []rune(s)
	i := 0
	fetch := func() (rune, bool, error) {
		if i >= len(runes) {
			return 0, false, nil
		}
		r := runes[i]
		i++
		return r, true, nil
	}
	return &StringStreamer{baseStreamer: newBaseStreamer(fetch)}
}

// FileStreamer streams runes one at a time from an io.Reader, matching
// spec.md §1's "yield one character at a time" I/O policy.
type FileStreamer struct {
	*baseStreamer
	r io.RuneReader
}

// NewFileStreamer builds a Streamer over r. Callers that pass an *os.File
// directly are wrapped in a bufio.Reader; anything already implementing
// io.RuneReader is used as-is.
func NewFileStreamer(r io.Reader) *FileStreamer {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	fs := &FileStreamer{r: rr}
	fetch := func() (rune, bool, error) {
		ch, _, err := fs.r.ReadRune()
		if err == io.EOF {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, errors.Wrap(err, "lex: reading input")
		}
		return ch, true, nil
	}
	fs.baseStreamer = newBaseStreamer(fetch)
	return fs
}
