package render

// MathRenderer renders a math expression into a host value. Display selects
// block ($$…$$) versus inline ($…$) layout.
type MathRenderer[V any] interface {
	RenderMath(expression string, display bool) (V, error)
}

// MathRenderFunc adapts a function to the MathRenderer interface.
type MathRenderFunc[V any] func(expression string, display bool) (V, error)

// RenderMath implements MathRenderer.
func (f MathRenderFunc[V]) RenderMath(expression string, display bool) (V, error) {
	return f(expression, display)
}

// StylesheetLink describes an external stylesheet a host page should load
// for math output to display correctly.
type StylesheetLink struct {
	Rel         string
	Href        string
	Integrity   string
	CrossOrigin string
}

// MathStylesheet is the KaTeX stylesheet hosts should include when math
// rendering is enabled.
//
//nolint:gochecknoglobals // Shared constant-like descriptor
var MathStylesheet = StylesheetLink{
	Rel:         "stylesheet",
	Href:        "https://cdn.jsdelivr.net/npm/katex@0.16.7/dist/katex.min.css",
	Integrity:   "sha384-3UiQGuEI4TTMaFmGIZumfRPtfKQ3trwQE2JgosJxCnGmQpL/lJdjpcHkaaFwHlcI",
	CrossOrigin: "anonymous",
}
