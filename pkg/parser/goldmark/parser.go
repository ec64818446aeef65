// Package goldmark implements the markdown event source using the goldmark
// library as the CommonMark tokenizer. It parses a body text and flattens the
// resulting AST into a linear, byte-range-annotated event sequence in source
// order. Any lookahead or buffering the tokenizer needs (tables, reference
// links) stays internal; consumers only ever see the finished sequence.
package goldmark

import (
	"context"
	"fmt"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/wikilink"

	"github.com/rambip/go-web-markdown/pkg/element"
)

// Options configures the event source.
type Options struct {
	// Maths installs the math-span extension recognizing $…$ and $$…$$.
	Maths bool

	// HardLineBreaks turns soft line breaks into hard breaks.
	HardLineBreaks bool

	// Wikilinks installs the [[target]] and [[target|label]] link syntax.
	Wikilinks bool
}

// Parser wraps a configured goldmark instance and produces event streams.
type Parser struct {
	opts Options
	md   goldmark.Markdown
}

// New creates an event-source parser. The CommonMark grammar is extended
// with tables, strikethrough, footnotes and task lists; the math extension
// is added when opts.Maths is set.
func New(opts Options) *Parser {
	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.Footnote,
		extension.TaskList,
	}
	if opts.Maths {
		exts = append(exts, mathjax.MathJax)
	}
	if opts.Wikilinks {
		exts = append(exts, &wikilink.Extender{})
	}

	return &Parser{
		opts: opts,
		md:   goldmark.New(goldmark.WithExtensions(exts...)),
	}
}

// Parse tokenizes body and returns its event stream. All event byte ranges
// are shifted by base so they index the original, pre-frontmatter source.
// The returned stream is single-consumption and owned by the caller.
func (p *Parser) Parse(ctx context.Context, body []byte, base int) (*element.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	reader := text.NewReader(body)
	doc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	e := &emitter{
		source:     body,
		base:       base,
		hardBreaks: p.opts.HardLineBreaks,
	}
	e.emitChildren(doc)

	return element.NewStream(e.events), nil
}
