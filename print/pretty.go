// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package print

import (
	"io"
	"strings"

	"github.com/kitanokitsune/sxpr"
	"github.com/kitanokitsune/sxpr/internal/sxi"
)

// PrettyPrinter renders Values with indentation: spec.md §4.K's "a newline
// and n spaces precede each nested list/array opener beyond the outermost".
type PrettyPrinter struct {
	cfg         *sxpr.DialectConfig
	IndentWidth int // spaces per nesting level; NewPretty defaults this to 2
}

// NewPretty builds a PrettyPrinter consulting cfg. A nil cfg uses
// sxpr.Default().
func NewPretty(cfg *sxpr.DialectConfig) *PrettyPrinter {
	if cfg == nil {
		cfg = sxpr.Default()
	}
	return &PrettyPrinter{cfg: cfg, IndentWidth: 2}
}

// Sprint renders v to an indented string.
func (pp *PrettyPrinter) Sprint(v sxpr.Value) string {
	var sb strings.Builder
	writeValue(&sb, v, pp.cfg, nil, renderOpts{pretty: true, indentWidth: pp.IndentWidth})
	return sb.String()
}

// Fprint renders v to w with indentation, returning the first write error
// encountered (if any).
func (pp *PrettyPrinter) Fprint(w io.Writer, v sxpr.Value) error {
	ew := sxi.NewErrWriter(w)
	writeValue(ew, v, pp.cfg, nil, renderOpts{pretty: true, indentWidth: pp.IndentWidth})
	return ew.Err
}

// PrettySprint renders v to an indented string using the default dialect.
func PrettySprint(v sxpr.Value) string { return NewPretty(nil).Sprint(v) }

// PrettyFprint renders v to w with indentation using the default dialect.
func PrettyFprint(w io.Writer, v sxpr.Value) error { return NewPretty(nil).Fprint(w, v) }
