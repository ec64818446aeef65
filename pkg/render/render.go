package render

import (
	"context"
	"fmt"

	"github.com/rambip/go-web-markdown/pkg/frontmatter"
	gmparser "github.com/rambip/go-web-markdown/pkg/parser/goldmark"
)

// Render parses source and drives it through host, returning the host value
// for the document root. The root is a Document element wrapping all
// top-level children.
//
// Rendering is deterministic: the same source and configuration produce the
// same sequence of host callbacks. A failing component constructor aborts
// the render with a ComponentCreationError; structurally broken custom tags
// abort it with a TagError.
func Render[V any](ctx context.Context, source string, cfg Config[V], host Context[V]) (V, error) {
	var zero V

	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("render cancelled: %w", err)
	}

	doc := frontmatter.Split(source)
	if doc.HasFrontmatter() {
		host.Frontmatter(doc.Frontmatter)
	}

	p := gmparser.New(gmparser.Options{
		Maths:          cfg.Maths,
		HardLineBreaks: cfg.HardLineBreaks,
		Wikilinks:      cfg.Wikilinks,
	})
	stream, err := p.Parse(ctx, []byte(doc.Body), doc.BodyOffset)
	if err != nil {
		return zero, err
	}

	d := newDispatcher(cfg, host, source)
	return d.run(stream)
}
