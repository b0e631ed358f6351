// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package print renders sxpr.Value trees back to text: a plain, single-line
// Printer and an indenting PrettyPrinter, both cycle-aware and both
// dialect-aware (a Symbol that would otherwise re-tokenize as a number gets
// |...| quoting, consulting the same sxpr.DialectConfig a Tokenizer would).
package print

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/kitanokitsune/sxpr"
	"github.com/kitanokitsune/sxpr/internal/sxi"
	"github.com/kitanokitsune/sxpr/lex"
)

var (
	quoteSymbol    = sxpr.MustSymbol("quote")
	functionSymbol = sxpr.MustSymbol("function")
)

// Printer renders Values as single-line text, matching spec.md §4.K's str
// rendering rules.
type Printer struct {
	cfg *sxpr.DialectConfig
}

// New builds a Printer consulting cfg. A nil cfg uses sxpr.Default().
func New(cfg *sxpr.DialectConfig) *Printer {
	if cfg == nil {
		cfg = sxpr.Default()
	}
	return &Printer{cfg: cfg}
}

// Sprint renders v to a string.
func (p *Printer) Sprint(v sxpr.Value) string {
	var sb strings.Builder
	writeValue(&sb, v, p.cfg, nil, renderOpts{})
	return sb.String()
}

// Fprint renders v to w, returning the first write error encountered (if
// any) after every pending write has been attempted, the same latch-the-
// first-error discipline as the teacher's cmd/retro dumpVM/dumpSlice.
func (p *Printer) Fprint(w io.Writer, v sxpr.Value) error {
	ew := sxi.NewErrWriter(w)
	writeValue(ew, v, p.cfg, nil, renderOpts{})
	return ew.Err
}

// Sprint renders v to a string using the default dialect.
func Sprint(v sxpr.Value) string { return New(nil).Sprint(v) }

// Fprint renders v to w using the default dialect.
func Fprint(w io.Writer, v sxpr.Value) error { return New(nil).Fprint(w, v) }

// renderOpts threads the pretty-printing knobs (whether to indent at all,
// how wide a level is, and the current nesting depth) through the shared
// rendering walk without Printer and PrettyPrinter duplicating it.
type renderOpts struct {
	pretty      bool
	indentWidth int
	depth       int
}

func (o renderOpts) nested() renderOpts {
	o.depth++
	return o
}

// writeValue is the cycle-safe traversal of spec.md §4.G applied to
// printing: path holds every Cons cell on the current root-to-here path, so
// a Cons that is its own ancestor prints as "..." instead of recursing
// forever, while a Cons merely *shared* by two siblings (not an ancestor of
// either) still prints in full at each occurrence.
func writeValue(w io.Writer, v sxpr.Value, cfg *sxpr.DialectConfig, path map[*sxpr.Cons]bool, o renderOpts) {
	switch t := v.(type) {
	case *sxpr.Nil:
		maybeIndent(w, o)
		io.WriteString(w, "()")
	case *sxpr.Cons:
		writeConsForm(w, t, cfg, path, o)
	case *sxpr.Array:
		writeArray(w, t, cfg, path, o)
	case *sxpr.Symbol:
		io.WriteString(w, renderSymbol(t, cfg))
	case *sxpr.String:
		writeString(w, t, cfg)
	case *sxpr.Char:
		io.WriteString(w, renderChar(t))
	case sxpr.Int:
		io.WriteString(w, t.String())
	case sxpr.Float:
		io.WriteString(w, strconv.FormatFloat(float64(t), 'g', -1, 64))
	case *sxpr.Rational:
		io.WriteString(w, t.String())
	case *sxpr.RatComplex:
		writeComplex(w, t, cfg)
	default:
		io.WriteString(w, "?")
	}
}

// writeConsForm prints a (quote x) as 'x and a (function sym) as #'sym when
// the dialect enables the corresponding reader macro, matching
// original_source/sxprlib.py's __Sxpr2Str/__sxpprint_sub unwrap of these
// forms back to their short spelling; anything else (or a c already on the
// current path, per writeValue's doc comment) falls through to the generic
// list rendering in writeCons. Quote's inner form is recursed into through
// writeValue, so a nested ''x unwraps every layer on its own; function's
// inner form is required to be a Symbol, so there is nothing further for it
// to unwrap into.
func writeConsForm(w io.Writer, c *sxpr.Cons, cfg *sxpr.DialectConfig, path map[*sxpr.Cons]bool, o renderOpts) {
	if !path[c] {
		if inner, ok := quoteInner(c, cfg); ok {
			maybeIndent(w, o)
			io.WriteString(w, "'")
			writeValue(w, inner, cfg, extendPath(path, c), o)
			return
		}
		if inner, ok := funcrefInner(c, cfg); ok {
			maybeIndent(w, o)
			io.WriteString(w, "#'")
			writeValue(w, inner, cfg, extendPath(path, c), o)
			return
		}
	}
	writeCons(w, c, cfg, path, o)
}

// quoteInner reports whether c is a well-formed (quote x) form enabled by
// cfg, returning x.
func quoteInner(c *sxpr.Cons, cfg *sxpr.DialectConfig) (sxpr.Value, bool) {
	if !cfg.EnableQuote || c.Car() != sxpr.Value(quoteSymbol) {
		return nil, false
	}
	rest, ok := c.Cdr().(*sxpr.Cons)
	if !ok || !sxpr.Null(rest.Cdr()) {
		return nil, false
	}
	return rest.Car(), true
}

// funcrefInner reports whether c is a well-formed (function sym) form
// enabled by cfg, where sym is itself a Symbol, returning sym.
func funcrefInner(c *sxpr.Cons, cfg *sxpr.DialectConfig) (sxpr.Value, bool) {
	if !cfg.EnableFuncRef || c.Car() != sxpr.Value(functionSymbol) {
		return nil, false
	}
	rest, ok := c.Cdr().(*sxpr.Cons)
	if !ok || !sxpr.Null(rest.Cdr()) {
		return nil, false
	}
	if _, ok := rest.Car().(*sxpr.Symbol); !ok {
		return nil, false
	}
	return rest.Car(), true
}

func writeCons(w io.Writer, c *sxpr.Cons, cfg *sxpr.DialectConfig, path map[*sxpr.Cons]bool, o renderOpts) {
	maybeIndent(w, o)
	io.WriteString(w, "(")
	writeListBody(w, c, cfg, path, o)
	io.WriteString(w, ")")
}

func writeArray(w io.Writer, a *sxpr.Array, cfg *sxpr.DialectConfig, path map[*sxpr.Cons]bool, o renderOpts) {
	maybeIndent(w, o)
	if a.Dim() == 1 {
		io.WriteString(w, "#(")
	} else {
		io.WriteString(w, "#"+strconv.Itoa(a.Dim())+"A(")
	}
	writeListBody(w, a.Value(), cfg, path, o)
	io.WriteString(w, ")")
}

// writeListBody renders the space-separated element sequence of a Cons
// chain or an Array's payload list, stopping at the first revisited cell
// (cycle marker "...") or rendering a non-Nil, non-Cons tail as " . <atom>".
func writeListBody(w io.Writer, v sxpr.Value, cfg *sxpr.DialectConfig, path map[*sxpr.Cons]bool, o renderOpts) {
	cur := v
	first := true
	curPath := path
	inner := o.nested()
	for {
		cc, ok := cur.(*sxpr.Cons)
		if !ok {
			if !sxpr.Null(cur) {
				io.WriteString(w, " . ")
				writeValue(w, cur, cfg, curPath, inner)
			}
			return
		}
		if curPath[cc] {
			if !first {
				io.WriteString(w, " ")
			}
			io.WriteString(w, "...")
			return
		}
		if !first {
			io.WriteString(w, " ")
		}
		first = false
		childPath := extendPath(curPath, cc)
		writeValue(w, cc.Car(), cfg, childPath, inner)
		curPath = childPath
		cur = cc.Cdr()
	}
}

func writeComplex(w io.Writer, c *sxpr.RatComplex, cfg *sxpr.DialectConfig) {
	io.WriteString(w, "#C(")
	writeValue(w, c.Real(), cfg, nil, renderOpts{})
	io.WriteString(w, " ")
	writeValue(w, c.Imag(), cfg, nil, renderOpts{})
	io.WriteString(w, ")")
}

// extendPath returns a copy of path with c added, so that descending into a
// Cons's car hands that branch a path snapshot the sibling cells explored
// afterwards along the cdr spine never see (spec.md §4.G: "Each call frame
// owns a local visit set merged with the inherited one").
func extendPath(path map[*sxpr.Cons]bool, c *sxpr.Cons) map[*sxpr.Cons]bool {
	np := make(map[*sxpr.Cons]bool, len(path)+1)
	for k := range path {
		np[k] = true
	}
	np[c] = true
	return np
}

func maybeIndent(w io.Writer, o renderOpts) {
	if !o.pretty || o.depth == 0 {
		return
	}
	io.WriteString(w, "\n"+strings.Repeat(" ", o.indentWidth*o.depth))
}

// renderSymbol applies the escaping rules of spec.md §4.K: '(', ')', '|',
// '"' are backslash-escaped, a space becomes '_', control characters are
// hex-escaped, the bare symbol "." prints as "\.", and the whole result is
// wrapped in |...| when it would otherwise re-tokenize as a number under
// cfg (checked with the same classification the Tokenizer itself uses, via
// lex.LooksNumeric, so printer and parser never disagree).
func renderSymbol(s *sxpr.Symbol, cfg *sxpr.DialectConfig) string {
	text := s.Value()
	if text == "." {
		return `\.`
	}
	var sb strings.Builder
	for _, r := range text {
		switch {
		case r == ' ':
			sb.WriteByte('_')
		case r == '(' || r == ')' || r == '|' || r == '"':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			sb.WriteString(`\x`)
			sb.WriteString(hexByte(byte(r)))
		default:
			sb.WriteRune(r)
		}
	}
	rendered := sb.String()
	if lex.LooksNumeric(rendered, cfg) {
		return "|" + rendered + "|"
	}
	return rendered
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}

// writeString renders s as a JSON-style double-quoted literal: '"' becomes
// \", and newline, tab and carriage return become \n, \t and \r. Backslash
// doubling is suppressed when cfg.EnableEscape is off, since a dialect
// without string escapes has no way to read an escaped backslash back.
func writeString(w io.Writer, s *sxpr.String, cfg *sxpr.DialectConfig) {
	io.WriteString(w, `"`)
	for _, r := range s.Value() {
		switch r {
		case '"':
			io.WriteString(w, `\"`)
		case '\\':
			if cfg.EnableEscape {
				io.WriteString(w, `\\`)
			} else {
				io.WriteString(w, `\`)
			}
		case '\n':
			io.WriteString(w, `\n`)
		case '\t':
			io.WriteString(w, `\t`)
		case '\r':
			io.WriteString(w, `\r`)
		default:
			io.WriteString(w, string(r))
		}
	}
	io.WriteString(w, `"`)
}

// renderChar applies the Char rendering rules of spec.md §4.K: the named
// spelling for the canonical set, the literal character when printable
// ASCII or printable non-ASCII, \x<hh> for other bytes <= 0xFF, else
// \U<hhhhhhhh>.
func renderChar(c *sxpr.Char) string {
	r := c.Value()
	if name, ok := sxpr.CharName(r); ok {
		return `#\` + name
	}
	switch {
	case r >= 0x20 && r < 0x7f:
		return `#\` + string(r)
	case r > 0x7f && unicode.IsPrint(r):
		return `#\` + string(r)
	case r <= 0xff:
		return `#\x` + hexByte(byte(r))
	default:
		return `#\U` + hex8(uint32(r))
	}
}

func hex8(v uint32) string {
	const digits = "0123456789abcdef"
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = digits[v&0xf]
		v >>= 4
	}
	return string(b)
}
