package render_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rambip/go-web-markdown/pkg/element"
	"github.com/rambip/go-web-markdown/pkg/render"
)

// sexprHost materializes documents as s-expressions, making callback order
// and nesting directly visible in assertions.
type sexprHost struct {
	frontmatter     string
	frontmatterSeen bool
}

func (h *sexprHost) Element(kind element.Kind, _ *element.Attributes, children []string) string {
	return "(" + kind.String() + " " + strings.Join(children, " ") + ")"
}

func (h *sexprHost) Text(text string) string {
	return fmt.Sprintf("%q", text)
}

func (h *sexprHost) RawHTML(fragment string) string {
	return "(raw " + fmt.Sprintf("%q", fragment) + ")"
}

func (h *sexprHost) Frontmatter(text string) {
	h.frontmatter = text
	h.frontmatterSeen = true
}

func renderString(t *testing.T, source string, cfg render.Config[string]) (string, *sexprHost, error) {
	t.Helper()
	host := &sexprHost{}
	out, err := render.Render(context.Background(), source, cfg, host)
	return out, host, err
}

func TestRenderSimpleDocument(t *testing.T) {
	t.Parallel()

	out, _, err := renderString(t, "# Hi\n\ntext", render.Config[string]{})
	require.NoError(t, err)
	assert.Equal(t, `(Document (Heading "Hi") (Paragraph "text"))`, out)
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	source := "# Title\n\n- one\n- two\n\n`code` and *em*\n"
	cfg := render.Config[string]{}

	first, _, err := renderString(t, source, cfg)
	require.NoError(t, err)

	for range 3 {
		again, _, err := renderString(t, source, cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRenderComponentSelfClosing(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Counter": func(props render.Props) (string, error) {
				captured = props
				return "[counter]", nil
			},
		},
	}

	source := `Hello <Counter initial="5"/> world`
	out, _, err := renderString(t, source, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[counter]")

	assert.Equal(t, "Counter", captured.Name())
	assert.True(t, captured.SelfClosing())

	value, ok := captured.Get("initial")
	require.True(t, ok)
	assert.Equal(t, "5", value)

	n, ok, err := captured.GetInt("initial")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, n)

	assert.True(t, captured.ChildRange().IsEmpty())
	assert.Empty(t, captured.ChildSource())
}

func TestRenderComponentValueRange(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Counter": func(props render.Props) (string, error) {
				captured = props
				return "", nil
			},
		},
	}

	source := `Hello <Counter initial="5"/> world`
	_, _, err := renderString(t, source, cfg)
	require.NoError(t, err)

	r, ok := captured.ValueRange("initial")
	require.True(t, ok)
	assert.Equal(t, "5", source[r.Start:r.End])
}

func TestRenderComponentChildRange(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Outer": func(props render.Props) (string, error) {
				captured = props
				return "[outer]", nil
			},
		},
	}

	source := `<Outer><Inner/></Outer>`
	out, _, err := renderString(t, source, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[outer]")

	assert.Equal(t, "<Inner/>", captured.ChildSource())
	assert.False(t, captured.SelfClosing())
}

func TestRenderComponentNestedSameName(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Box": func(props render.Props) (string, error) {
				captured = props
				return "[box]", nil
			},
		},
	}

	source := `<Box>a <Box>b</Box> c</Box>`
	_, _, err := renderString(t, source, cfg)
	require.NoError(t, err)

	// Outermost invocation only; the inner occurrence belongs to its source.
	assert.Equal(t, "a <Box>b</Box> c", captured.ChildSource())
}

func TestRenderComponentAcrossBlocks(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Wide": func(props render.Props) (string, error) {
				captured = props
				return "[wide]", nil
			},
		},
	}

	source := "start <Wide>\n\nmiddle\n\n</Wide> end"
	out, _, err := renderString(t, source, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[wide]")
	assert.Contains(t, captured.ChildSource(), "middle")
}

func TestRenderComponentEndTagNestedDeeper(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Note": func(props render.Props) (string, error) {
				captured = props
				return "[note]", nil
			},
		},
	}

	// The end tag sits inside a blockquote paragraph the start tag never
	// entered; the structure around the span must survive intact.
	source := "<Note>\n\n> inner </Note> tail\n\nafter"
	out, _, err := renderString(t, source, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[note]")
	assert.Contains(t, captured.ChildSource(), "inner")
	assert.Contains(t, out, `(BlockQuote (Paragraph " tail"))`)
	assert.Contains(t, out, `(Paragraph "after")`)
}

func TestRenderComponentStartTagNestedDeeper(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Note": func(props render.Props) (string, error) {
				captured = props
				return "[note]", nil
			},
		},
	}

	// The start tag sits inside a blockquote the end tag has already left;
	// the blockquote and everything after the span must still be emitted.
	source := "> before <Note>\n\nmiddle\n\n</Note>\n\nafter"
	out, _, err := renderString(t, source, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[note]")
	assert.Contains(t, captured.ChildSource(), "middle")
	assert.Contains(t, out, `(BlockQuote (Paragraph "before "))`)
	assert.Contains(t, out, `(Paragraph "after")`)
}

func TestRenderWikilinks(t *testing.T) {
	t.Parallel()

	source := "see [[Other Page]]"

	out, _, err := renderString(t, source, render.Config[string]{})
	require.NoError(t, err)
	assert.NotContains(t, out, "(Link")

	out, _, err = renderString(t, source, render.Config[string]{Wikilinks: true})
	require.NoError(t, err)
	assert.Contains(t, out, `(Link "Other Page")`)
}

func TestRenderStandardTagsFollowRawPolicy(t *testing.T) {
	t.Parallel()

	source := `a <span>x</span> b`

	out, _, err := renderString(t, source, render.Config[string]{})
	require.NoError(t, err)
	// Default policy delivers tags as literal text runs.
	assert.Contains(t, out, `"<span>"`)

	out, _, err = renderString(t, source, render.Config[string]{RawHTML: render.RawHTMLPreserve})
	require.NoError(t, err)
	assert.Contains(t, out, `(raw "<span>")`)

	out, _, err = renderString(t, source, render.Config[string]{RawHTML: render.RawHTMLDrop})
	require.NoError(t, err)
	assert.NotContains(t, out, "span")
}

func TestRenderUnregisteredCustomTag(t *testing.T) {
	t.Parallel()

	source := `x <my-component/> y`

	out, _, err := renderString(t, source, render.Config[string]{})
	require.NoError(t, err)
	assert.Contains(t, out, `"<my-component/>"`)

	_, _, err = renderString(t, source, render.Config[string]{Unknown: render.UnknownError})
	require.Error(t, err)

	var tagErr *render.TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "my-component", tagErr.Name)
}

func TestRenderConstructorFailureAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Fail": func(render.Props) (string, error) {
				return "", boom
			},
		},
	}

	// Deeply nested so partially built ancestors must be discarded too.
	source := "> quote\n>\n> - item with <Fail/>\n"
	out, _, err := renderString(t, source, cfg)
	require.Error(t, err)
	assert.Empty(t, out)

	var compErr *render.ComponentCreationError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "Fail", compErr.Name)
	assert.ErrorIs(t, err, boom)
}

func TestRenderUnclosedComponentTag(t *testing.T) {
	t.Parallel()

	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Open": func(render.Props) (string, error) {
				return "[open]", nil
			},
		},
	}

	_, _, err := renderString(t, "before <Open> after", cfg)
	require.Error(t, err)

	var tagErr *render.TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "Open", tagErr.Name)

	var compErr *render.ComponentCreationError
	assert.False(t, errors.As(err, &compErr),
		"structural tag failure must not be a construction failure")
}

func TestRenderMalformedCustomTag(t *testing.T) {
	t.Parallel()

	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Counter": func(render.Props) (string, error) {
				return "", nil
			},
		},
	}

	_, _, err := renderString(t, `x <Counter initial=5> y`, cfg)
	require.Error(t, err)

	var tagErr *render.TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "Counter", tagErr.Name)
}

func TestRenderMathDelegate(t *testing.T) {
	t.Parallel()

	cfg := render.Config[string]{
		Maths: true,
		Math: render.MathRenderFunc[string](func(expr string, display bool) (string, error) {
			return fmt.Sprintf("[math display=%t %s]", display, expr), nil
		}),
	}

	out, _, err := renderString(t, "value $x^2$", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[math display=false x^2]")
}

func TestRenderMathDelegateFailureFallsBack(t *testing.T) {
	t.Parallel()

	cfg := render.Config[string]{
		Maths: true,
		Math: render.MathRenderFunc[string](func(string, bool) (string, error) {
			return "", errors.New("katex unavailable")
		}),
	}

	out, _, err := renderString(t, "value $x^2$", cfg)
	require.NoError(t, err, "math failure must not abort the render")
	assert.Contains(t, out, `"x^2"`)
}

func TestRenderMathWithoutDelegate(t *testing.T) {
	t.Parallel()

	out, _, err := renderString(t, "value $x^2$", render.Config[string]{Maths: true})
	require.NoError(t, err)
	assert.Contains(t, out, `(MathInline "x^2")`)
}

func TestRenderMathsDisabledKeepsDollars(t *testing.T) {
	t.Parallel()

	out, _, err := renderString(t, "cost $5 and $x^2$", render.Config[string]{})
	require.NoError(t, err)
	assert.NotContains(t, out, "MathInline")
}

func TestRenderFrontmatter(t *testing.T) {
	t.Parallel()

	source := "---\ntitle: X\n---\n# Body"
	out, host, err := renderString(t, source, render.Config[string]{})
	require.NoError(t, err)

	assert.True(t, host.frontmatterSeen)
	assert.Equal(t, "title: X", host.frontmatter)
	assert.Contains(t, out, `(Heading "Body")`)
}

func TestRenderFrontmatterShiftsComponentRanges(t *testing.T) {
	t.Parallel()

	var captured render.Props
	cfg := render.Config[string]{
		Components: render.Components[string]{
			"Counter": func(props render.Props) (string, error) {
				captured = props
				return "", nil
			},
		},
	}

	source := "---\ntitle: X\n---\nsee <Counter initial=\"5\"/>"
	_, _, err := renderString(t, source, cfg)
	require.NoError(t, err)

	r, ok := captured.ValueRange("initial")
	require.True(t, ok)
	assert.Equal(t, "5", source[r.Start:r.End])
}

func TestRenderNoFrontmatterNoCallback(t *testing.T) {
	t.Parallel()

	_, host, err := renderString(t, "# plain", render.Config[string]{})
	require.NoError(t, err)
	assert.False(t, host.frontmatterSeen)
}

func TestRenderCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.Render(ctx, "# x", render.Config[string]{}, &sexprHost{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
