package exprtree

import (
	"io"
	"strings"
)

// BuildOption is an option for scanning and building expressions.
type BuildOption interface {
	buildOption(buildctx) buildctx
}

type (
	strictopt bool
	traceopt  struct {
		w io.Writer
	}
)

// buildctx holds the settings for one build.
type buildctx struct {
	// strict indicates that runes outside the grammar are errors instead of
	// being skipped. Whitespace is always skipped.
	strict bool
	// trace receives the converter's output queue and operator stack after
	// each step, if non-nil.
	trace io.Writer
}

func newbuildctx(opts []BuildOption) buildctx {
	var p buildctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.buildOption(p)
	}
	return p
}

// Strict tells the lexer to reject runes that are neither whitespace nor part
// of the expression grammar, instead of silently skipping them.
func Strict() BuildOption {
	return strictopt(true)
}

func (o strictopt) buildOption(p buildctx) buildctx {
	p.strict = bool(o)
	return p
}

// Trace writes the infix-to-postfix conversion to w as it runs. After each
// token and each final drain step, two lines are written: "output:" followed
// by the output queue, and "stack:" followed by the operator stack from
// bottom to top. Write errors are ignored. Passing a nil w disables tracing.
func Trace(w io.Writer) BuildOption {
	return &traceopt{w}
}

func (o *traceopt) buildOption(p buildctx) buildctx {
	p.trace = o.w
	return p
}

func (p *buildctx) traceStacks(out, stack []Token) {
	if p.trace == nil {
		return
	}
	var b strings.Builder
	b.WriteString("output:")
	for _, tok := range out {
		b.WriteByte(' ')
		b.WriteString(tok.Text)
	}
	b.WriteString("\nstack:")
	for _, tok := range stack {
		b.WriteByte(' ')
		b.WriteString(tok.Text)
	}
	b.WriteByte('\n')
	io.WriteString(p.trace, b.String())
}
