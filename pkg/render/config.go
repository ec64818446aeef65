package render

// Constructor builds a host value for one custom component invocation.
// Returning an error aborts the whole render with a ComponentCreationError.
type Constructor[V any] func(props Props) (V, error)

// Components maps component names, case-sensitively and exactly as written
// in source tags, to their constructors.
type Components[V any] map[string]Constructor[V]

// RawHTMLPolicy decides what happens to raw HTML fragments that are not
// custom component tags.
type RawHTMLPolicy uint8

const (
	// RawHTMLEscape delivers the fragment to the host as a literal text
	// run, angle brackets intact, via Context.Text. This is the default.
	RawHTMLEscape RawHTMLPolicy = iota

	// RawHTMLPreserve delivers the fragment verbatim via Context.RawHTML.
	RawHTMLPreserve

	// RawHTMLDrop discards the fragment entirely.
	RawHTMLDrop
)

// UnknownPolicy decides what happens to tags whose name classifies as a
// custom component but which have no registered constructor.
type UnknownPolicy uint8

const (
	// UnknownRawHTML falls through to the raw-HTML policy. Default.
	UnknownRawHTML UnknownPolicy = iota

	// UnknownError aborts the render with a TagError.
	UnknownError
)

// Config carries the per-render settings.
type Config[V any] struct {
	// Components registers custom component constructors by name.
	Components Components[V]

	// Math renders math expressions into host values. When nil and Maths
	// is set, math spans degrade to literal text runs of the expression.
	Math MathRenderer[V]

	// Maths enables $…$ and $$…$$ recognition in the grammar. When false,
	// dollar signs stay ordinary text.
	Maths bool

	// HardLineBreaks turns soft line breaks into hard breaks.
	HardLineBreaks bool

	// Wikilinks enables [[target]] and [[target|label]] syntax. Wikilinks
	// surface as ordinary link elements whose destination is the target.
	Wikilinks bool

	// RawHTML is the policy for raw HTML that is not a component tag.
	RawHTML RawHTMLPolicy

	// Unknown is the policy for unregistered custom-component tags.
	Unknown UnknownPolicy

	// Debug logs every event and host callback at debug level.
	Debug bool
}
