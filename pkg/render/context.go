// Package render drives a markdown event stream into host-owned output
// values. A host implements Context for its own view type V; Render walks
// the parsed document and asks the host to materialize each element, text
// run and raw fragment, returning the single root value for the document.
package render

import "github.com/rambip/go-web-markdown/pkg/element"

// Context is the host binding: the set of callbacks that turn abstract
// elements into values of the host's view type V. Implementations decide
// what V is (an HTML string, a virtual-DOM node, a widget) and how children
// compose into parents.
//
// Callbacks must be deterministic for the engine's output ordering
// guarantees to hold; they are invoked in source order, children before
// their parent.
type Context[V any] interface {
	// Element materializes a standard element of the given kind from its
	// already-materialized children. Attrs is nil for kinds without payload.
	Element(kind element.Kind, attrs *element.Attributes, children []V) V

	// Text materializes a literal text run.
	Text(text string) V

	// RawHTML materializes a raw HTML fragment that passed the configured
	// raw-HTML policy. The engine never parses or sanitizes the fragment
	// beyond policy handling; it arrives verbatim.
	RawHTML(fragment string) V

	// Frontmatter delivers the raw frontmatter text before any element
	// callback runs. It is called exactly once per render, and only when
	// the source had a frontmatter block.
	Frontmatter(text string)
}
