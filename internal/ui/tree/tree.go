// Package tree renders documents into an inspectable node tree and prints
// it as an indented outline. It is the host binding behind the CLI's tree
// output format.
package tree

import (
	"github.com/rambip/go-web-markdown/pkg/element"
	"github.com/rambip/go-web-markdown/pkg/render"
)

// NodeType distinguishes the shapes a tree node can take.
type NodeType uint8

const (
	// NodeElement is a standard element with a kind and children.
	NodeElement NodeType = iota

	// NodeText is a literal text run.
	NodeText

	// NodeRawHTML is a raw HTML fragment that was preserved.
	NodeRawHTML

	// NodeComponent is the output of a custom component constructor.
	NodeComponent
)

// Node is one node of the inspectable document tree.
type Node struct {
	Type     NodeType
	Kind     element.Kind
	Attrs    *element.Attributes
	Text     string
	Name     string
	Children []*Node
}

// Builder implements the render host binding for *Node values.
type Builder struct {
	frontmatter string
	hasFM       bool
}

// NewBuilder creates a tree builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Element builds an element node over its children.
func (b *Builder) Element(kind element.Kind, attrs *element.Attributes, children []*Node) *Node {
	return &Node{Type: NodeElement, Kind: kind, Attrs: attrs, Children: children}
}

// Text builds a text node.
func (b *Builder) Text(text string) *Node {
	return &Node{Type: NodeText, Text: text}
}

// RawHTML builds a raw-fragment node.
func (b *Builder) RawHTML(fragment string) *Node {
	return &Node{Type: NodeRawHTML, Text: fragment}
}

// Frontmatter records the raw frontmatter text.
func (b *Builder) Frontmatter(text string) {
	b.frontmatter = text
	b.hasFM = true
}

// FrontmatterText returns the recorded frontmatter and whether the document
// had one.
func (b *Builder) FrontmatterText() (string, bool) {
	return b.frontmatter, b.hasFM
}

// Component builds a node for a custom component invocation, listing its
// attributes in source order and its raw child source. It is the generic
// constructor the CLI registers for every component name it is told about.
func Component(props render.Props) (*Node, error) {
	node := &Node{Type: NodeComponent, Kind: element.KindCustomComponent, Name: props.Name()}
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		node.Children = append(node.Children, &Node{
			Type: NodeText,
			Text: key + "=" + value,
		})
	}
	if src := props.ChildSource(); src != "" {
		node.Children = append(node.Children, &Node{Type: NodeText, Text: src})
	}
	return node, nil
}
