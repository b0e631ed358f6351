// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package parse

import (
	"io"

	"github.com/kitanokitsune/sxpr"
	"github.com/kitanokitsune/sxpr/lex"
)

var (
	quoteSymbol    = sxpr.MustSymbol("quote")
	functionSymbol = sxpr.MustSymbol("function")
)

// Parser is a handwritten recursive-descent parser over a lex.Tokenizer,
// implementing the SXPR grammar of spec.md §4.J with the tokenizer's
// built-in one-token lookahead. A Parser is not safe for concurrent use by
// multiple goroutines, matching the single-threaded-cooperative model of
// spec.md §5.
type Parser struct {
	tok *lex.Tokenizer
}

// NewParser builds a Parser over tok.
func NewParser(tok *lex.Tokenizer) *Parser {
	return &Parser{tok: tok}
}

// Parse reads and returns one complete S-expression. At a clean end of
// stream (no tokens left before any form begins) it returns io.EOF, mirroring
// the iterator contract spec.md §6 describes for file readers. An EOF
// encountered after a form has begun (inside a list, after a quote, etc.) is
// instead a *Error carrying the position, per spec.md §4.J.
func (p *Parser) Parse() (sxpr.Value, error) {
	tok, err := p.tok.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lex.EOF {
		return nil, io.EOF
	}
	return p.parseForm()
}

// parseForm parses one SXPR production. Unlike Parse, an EOF reached here is
// always a syntax error: a caller only reaches parseForm once a form has
// already been committed to (top-level Parse peeked a non-EOF token first,
// or a containing production such as a list or quote is mid-way through).
func (p *Parser) parseForm() (sxpr.Value, error) {
	tok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lex.QUOTE:
		inner, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return sxpr.MkList(quoteSymbol, inner), nil
	case lex.FUNCREF:
		inner, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return sxpr.MkList(functionSymbol, inner), nil
	case lex.ComplexPrefix:
		return p.parseComplex(tok.Pos)
	case lex.ArrayPrefix:
		return p.parseArray(tok)
	case lex.LPAR:
		return p.parseListBody()
	case lex.IntTok:
		return sxpr.NewInt(tok.Int), nil
	case lex.FloatTok:
		return sxpr.Float(tok.Real), nil
	case lex.RationalTok:
		return sxpr.NewRational(tok.Num, tok.Den)
	case lex.SymbolTok:
		return sxpr.NewSymbol(tok.Text, p.tok.Config().IgnoreCase)
	case lex.StringTok:
		return sxpr.NewString(tok.Text), nil
	case lex.CharTok:
		c, err := sxpr.NewChar(tok.Text)
		if err != nil {
			return nil, err
		}
		return c, nil
	case lex.RPAR:
		return nil, &Error{Pos: tok.Pos, Msg: "unexpected ')'"}
	case lex.DOT:
		return nil, &Error{Pos: tok.Pos, Msg: "unexpected '.'"}
	default:
		return nil, &Error{Pos: tok.Pos, Msg: "unexpected end of input"}
	}
}

// parseListBody parses LISTBODY immediately after an opening '(' (whether
// that paren belongs to a plain list or an array literal's payload) has
// already been consumed: RPAR, or SXPR CONSSEQ.
func (p *Parser) parseListBody() (sxpr.Value, error) {
	tok, err := p.tok.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lex.RPAR {
		p.tok.Next()
		return sxpr.NIL, nil
	}
	if tok.Kind == lex.EOF {
		return nil, &Error{Pos: tok.Pos, Msg: "unexpected EOF inside list"}
	}

	var elems []sxpr.Value
	for {
		elem, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		tok, err = p.tok.Peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case lex.DOT:
			p.tok.Next()
			tail, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			closeTok, err := p.tok.Next()
			if err != nil {
				return nil, err
			}
			if closeTok.Kind != lex.RPAR {
				return nil, &Error{Pos: closeTok.Pos, Msg: "expected ')' after dotted tail"}
			}
			return sxpr.MkDottedList(tail, elems...), nil
		case lex.RPAR:
			p.tok.Next()
			return sxpr.MkList(elems...), nil
		case lex.EOF:
			return nil, &Error{Pos: tok.Pos, Msg: "unexpected EOF inside list"}
		}
	}
}

// parseComplex parses "real real )" immediately after a COMPLEX_PREFIX
// token, requiring the opening '(' and exactly two real (Int/Float/Rational)
// components per spec.md §4.J.
func (p *Parser) parseComplex(prefixPos lex.Pos) (sxpr.Value, error) {
	tok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lex.LPAR {
		return nil, &Error{Pos: tok.Pos, Msg: "expected '(' after #C"}
	}
	re, err := p.parseReal()
	if err != nil {
		return nil, err
	}
	im, err := p.parseReal()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if closeTok.Kind != lex.RPAR {
		return nil, &Error{Pos: closeTok.Pos, Msg: "expected ')' to close #C(...)"}
	}
	return sxpr.NewComplex(re, im)
}

// parseReal parses a single Int/Float/Rational component of a complex
// literal; anything else (including a nested complex or a symbol) is a
// syntax error, matching spec.md §4.J's "anything else is a syntax error".
func (p *Parser) parseReal() (sxpr.Value, error) {
	tok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lex.IntTok:
		return sxpr.NewInt(tok.Int), nil
	case lex.FloatTok:
		return sxpr.Float(tok.Real), nil
	case lex.RationalTok:
		return sxpr.NewRational(tok.Num, tok.Den)
	case lex.EOF:
		return nil, &Error{Pos: tok.Pos, Msg: "unexpected EOF in complex literal"}
	default:
		return nil, &Error{Pos: tok.Pos, Msg: "expected a real number in complex literal"}
	}
}

// parseArray parses "LPAR LISTBODY" immediately after an ARRAY_PREFIX token,
// retaining the prefix's declared dimensionality.
func (p *Parser) parseArray(prefixTok *lex.Token) (sxpr.Value, error) {
	tok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lex.LPAR {
		return nil, &Error{Pos: tok.Pos, Msg: "expected '(' after array prefix"}
	}
	payload, err := p.parseListBody()
	if err != nil {
		return nil, err
	}
	return sxpr.NewArray(prefixTok.Dim, payload)
}

// Reader yields successive Values from a Streamer until end of stream,
// matching the iterator contract spec.md §6 describes for a file reader.
type Reader struct {
	p *Parser
}

// NewReader builds a Reader over s. A nil cfg uses sxpr.Default().
func NewReader(s lex.Streamer, cfg *sxpr.DialectConfig) *Reader {
	return &Reader{p: NewParser(lex.NewTokenizer(s, cfg))}
}

// NewStringReader builds a Reader over an in-memory string.
func NewStringReader(text string, cfg *sxpr.DialectConfig) *Reader {
	return NewReader(lex.NewStringStreamer(text), cfg)
}

// NewFileReader builds a Reader over r, consuming one character at a time
// per spec.md §1's I/O policy.
func NewFileReader(r io.Reader, cfg *sxpr.DialectConfig) *Reader {
	return NewReader(lex.NewFileStreamer(r), cfg)
}

// Next returns the next Value, or io.EOF once the stream is exhausted.
func (rd *Reader) Next() (sxpr.Value, error) {
	return rd.p.Parse()
}

// Parse parses v (a string or *sxpr.String) as a single S-expression. A nil
// cfg uses sxpr.Default(). A non-string/String argument is a *sxpr.TypeError
// per spec.md §7's "non-string to parse".
func Parse(v any, cfg *sxpr.DialectConfig) (sxpr.Value, error) {
	var text string
	switch t := v.(type) {
	case string:
		text = t
	case *sxpr.String:
		text = t.Value()
	default:
		return nil, &sxpr.TypeError{Op: "parse", Msg: "argument is not a string"}
	}
	return NewStringReader(text, cfg).Next()
}
