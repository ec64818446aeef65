package tree_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rambip/go-web-markdown/internal/ui/tree"
	"github.com/rambip/go-web-markdown/pkg/element"
	"github.com/rambip/go-web-markdown/pkg/render"
)

func renderTree(t *testing.T, source string, cfg render.Config[*tree.Node]) *tree.Node {
	t.Helper()
	root, err := render.Render(context.Background(), source, cfg, tree.NewBuilder())
	require.NoError(t, err)
	return root
}

func TestBuilderDocumentShape(t *testing.T) {
	t.Parallel()

	root := renderTree(t, "# Hi\n\ntext", render.Config[*tree.Node]{})

	require.Equal(t, element.KindDocument, root.Kind)
	require.Len(t, root.Children, 2)

	heading := root.Children[0]
	assert.Equal(t, element.KindHeading, heading.Kind)
	require.Len(t, heading.Children, 1)
	assert.Equal(t, tree.NodeText, heading.Children[0].Type)
	assert.Equal(t, "Hi", heading.Children[0].Text)

	assert.Equal(t, element.KindParagraph, root.Children[1].Kind)
}

func TestBuilderComponentNode(t *testing.T) {
	t.Parallel()

	cfg := render.Config[*tree.Node]{
		Components: render.Components[*tree.Node]{
			"Counter": tree.Component,
		},
	}
	root := renderTree(t, `see <Counter initial="5"/>`, cfg)

	var comp *tree.Node
	var walk func(*tree.Node)
	walk = func(n *tree.Node) {
		if n.Type == tree.NodeComponent {
			comp = n
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	require.NotNil(t, comp, "no component node in tree")
	assert.Equal(t, "Counter", comp.Name)
	require.Len(t, comp.Children, 1)
	assert.Equal(t, "initial=5", comp.Children[0].Text)
}

func TestPrinterOutline(t *testing.T) {
	t.Parallel()

	root := renderTree(t, "# Hi\n\n- a\n- b\n", render.Config[*tree.Node]{})

	var sb strings.Builder
	printer := tree.NewPrinter(&sb, tree.NewStyles(false))
	require.NoError(t, printer.Print(root))

	out := sb.String()
	assert.Contains(t, out, "Document")
	assert.Contains(t, out, "Heading level=1")
	assert.Contains(t, out, "List")
	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, "└── ")
	assert.Contains(t, out, "├── ")
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	assert.True(t, tree.IsColorEnabled("always", &buf))
	assert.False(t, tree.IsColorEnabled("never", &buf))
	// A plain writer is not a TTY.
	assert.False(t, tree.IsColorEnabled("auto", &buf))
}
