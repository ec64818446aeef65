package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rambip/go-web-markdown/pkg/element"
)

// maxTextPreview bounds how much of a text run the outline shows.
const maxTextPreview = 40

// Printer writes a node tree as an indented outline.
type Printer struct {
	w      io.Writer
	styles *Styles
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, styles *Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// Print writes the outline for root.
func (p *Printer) Print(root *Node) error {
	if _, err := fmt.Fprintln(p.w, p.label(root)); err != nil {
		return err
	}
	return p.printChildren(root, "")
}

func (p *Printer) printChildren(node *Node, prefix string) error {
	for i, child := range node.Children {
		last := i == len(node.Children)-1
		branch, childPrefix := "├── ", prefix+"│   "
		if last {
			branch, childPrefix = "└── ", prefix+"    "
		}
		line := prefix + p.styles.Branch.Render(branch) + p.label(child)
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
		if err := p.printChildren(child, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

// label formats a single node for one outline line.
func (p *Printer) label(node *Node) string {
	switch node.Type {
	case NodeText:
		return p.styles.Text.Render(strconv.Quote(preview(node.Text)))
	case NodeRawHTML:
		return p.styles.RawHTML.Render("html " + strconv.Quote(preview(node.Text)))
	case NodeComponent:
		return p.styles.Component.Render("<"+node.Name+">") + p.attrSummary(node)
	default:
		return p.styles.Kind.Render(node.Kind.String()) + p.attrSummary(node)
	}
}

// attrSummary formats the interesting attributes of an element node.
func (p *Printer) attrSummary(node *Node) string {
	a := node.Attrs
	if a == nil {
		return ""
	}

	var parts []string
	switch node.Kind {
	case element.KindHeading:
		parts = append(parts, fmt.Sprintf("level=%d", a.HeadingLevel))
	case element.KindList:
		if a.List != nil && a.List.Ordered {
			parts = append(parts, "ordered", fmt.Sprintf("start=%d", a.List.Start))
		}
	case element.KindCodeBlock:
		if a.Code != nil && a.Code.Language != "" {
			parts = append(parts, "lang="+a.Code.Language)
		}
	case element.KindLink, element.KindImage:
		if a.Link != nil {
			parts = append(parts, "dest="+a.Link.Destination)
		}
	case element.KindTableCell:
		if a.Align != element.AlignNone {
			parts = append(parts, "align="+a.Align.String())
		}
	case element.KindTaskCheckbox:
		parts = append(parts, fmt.Sprintf("checked=%t", a.Checked))
	case element.KindMathInline, element.KindMathBlock:
		if a.Math != nil {
			parts = append(parts, "expr="+preview(a.Math.Expression))
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return " " + p.styles.Attr.Render(strings.Join(parts, " "))
}

// preview truncates long text for display, collapsing newlines.
func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	if len(s) > maxTextPreview {
		return s[:maxTextPreview] + "…"
	}
	return s
}
