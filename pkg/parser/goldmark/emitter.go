package goldmark

import (
	"fmt"
	"strings"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/wikilink"

	"github.com/rambip/go-web-markdown/pkg/element"
)

// emitter flattens a goldmark AST into the element event sequence.
type emitter struct {
	source     []byte
	base       int
	hardBreaks bool
	events     []element.Event

	// alignments tracks the column alignments of the table being emitted.
	alignments []east.Alignment
	cellIndex  int
}

// emitChildren emits events for all children of node, in order.
func (e *emitter) emitChildren(node ast.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		e.emitNode(child)
	}
}

// emitNode emits the events for a single goldmark node and its subtree.
func (e *emitter) emitNode(node ast.Node) {
	// The math extension contributes its own node kinds; match those before
	// the concrete-type switch.
	switch node.Kind() {
	case mathjax.KindInlineMath:
		e.emitMath(node, false)
		return
	case mathjax.KindMathBlock:
		e.emitMath(node, true)
		return
	}

	switch n := node.(type) {
	case *ast.Paragraph:
		e.container(node, element.KindParagraph, nil)

	case *ast.TextBlock:
		// Tight list items wrap their inlines in a TextBlock; it has no
		// element equivalent, so its children are emitted transparently.
		e.emitChildren(node)

	case *ast.Heading:
		e.container(node, element.KindHeading,
			element.NewAttributes().WithHeadingLevel(n.Level))

	case *ast.Blockquote:
		e.container(node, element.KindBlockQuote, nil)

	case *ast.List:
		attrs := element.NewAttributes().WithList(&element.ListAttrs{
			Ordered: n.IsOrdered(),
			Start:   n.Start,
		})
		e.container(node, element.KindList, attrs)

	case *ast.ListItem:
		e.container(node, element.KindListItem, nil)

	case *ast.ThematicBreak:
		r := e.rangeOf(node)
		e.push(element.Event{Kind: element.EventStart, Element: element.KindThematicBreak, Range: r})
		e.push(element.Event{Kind: element.EventEnd, Element: element.KindThematicBreak, Range: r})

	case *ast.FencedCodeBlock:
		e.emitCodeBlock(node, string(n.Language(e.source)))

	case *ast.CodeBlock:
		e.emitCodeBlock(node, "")

	case *ast.HTMLBlock:
		e.emitHTMLBlock(n)

	case *ast.Text:
		e.emitText(n)

	case *ast.String:
		e.push(element.Event{
			Kind:  element.EventText,
			Text:  string(n.Value),
			Range: element.NoRange,
		})

	case *ast.CodeSpan:
		e.push(element.Event{
			Kind:    element.EventCode,
			Element: element.KindInlineCode,
			Text:    string(e.flattenText(node)),
			Range:   e.rangeOf(node),
		})

	case *ast.Emphasis:
		kind := element.KindEmphasis
		if n.Level == 2 {
			kind = element.KindStrong
		}
		e.container(node, kind, nil)

	case *ast.Link:
		e.container(node, element.KindLink, element.NewAttributes().WithLink(&element.LinkAttrs{
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}))

	case *ast.Image:
		e.container(node, element.KindImage, element.NewAttributes().WithLink(&element.LinkAttrs{
			Destination: string(n.Destination),
			Title:       string(n.Title),
			Alt:         string(e.flattenText(node)),
		}))

	case *wikilink.Node:
		dest := string(n.Target)
		if len(n.Fragment) > 0 {
			dest += "#" + string(n.Fragment)
		}
		if n.Embed {
			e.container(node, element.KindImage, element.NewAttributes().WithLink(&element.LinkAttrs{
				Destination: dest,
				Alt:         string(e.flattenText(node)),
			}))
			return
		}
		e.container(node, element.KindLink,
			element.NewAttributes().WithLink(&element.LinkAttrs{Destination: dest}))

	case *ast.AutoLink:
		r := e.rangeOf(node)
		attrs := element.NewAttributes().WithLink(&element.LinkAttrs{
			Destination: string(n.URL(e.source)),
		})
		e.push(element.Event{Kind: element.EventStart, Element: element.KindLink, Attrs: attrs, Range: r})
		e.push(element.Event{Kind: element.EventText, Text: string(n.Label(e.source)), Range: r})
		e.push(element.Event{Kind: element.EventEnd, Element: element.KindLink, Range: r})

	case *ast.RawHTML:
		e.push(element.Event{
			Kind:  element.EventHTML,
			Text:  string(e.segmentsValue(n.Segments)),
			Range: e.rangeOf(node),
		})

	case *east.Strikethrough:
		e.container(node, element.KindStrikethrough, nil)

	case *east.TaskCheckBox:
		r := e.rangeOf(node)
		attrs := element.NewAttributes().WithChecked(n.IsChecked)
		e.push(element.Event{Kind: element.EventStart, Element: element.KindTaskCheckbox, Attrs: attrs, Range: r})
		e.push(element.Event{Kind: element.EventEnd, Element: element.KindTaskCheckbox, Range: r})

	case *east.Table:
		prevAligns, prevIndex := e.alignments, e.cellIndex
		e.alignments = n.Alignments
		e.container(node, element.KindTable, nil)
		e.alignments, e.cellIndex = prevAligns, prevIndex

	case *east.TableHeader:
		e.cellIndex = 0
		e.container(node, element.KindTableHeader, nil)

	case *east.TableRow:
		e.cellIndex = 0
		e.container(node, element.KindTableRow, nil)

	case *east.TableCell:
		align := alignmentOf(n.Alignment)
		if align == element.AlignNone && e.cellIndex < len(e.alignments) {
			align = alignmentOf(e.alignments[e.cellIndex])
		}
		e.cellIndex++
		e.container(node, element.KindTableCell,
			element.NewAttributes().WithAlign(align))

	case *east.FootnoteLink:
		r := e.rangeOf(node)
		attrs := element.NewAttributes().WithLink(&element.LinkAttrs{
			Destination: fmt.Sprintf("#footnote-%d", n.Index),
		})
		e.push(element.Event{Kind: element.EventStart, Element: element.KindLink, Attrs: attrs, Range: r})
		e.push(element.Event{Kind: element.EventText, Text: fmt.Sprintf("[%d]", n.Index), Range: r})
		e.push(element.Event{Kind: element.EventEnd, Element: element.KindLink, Range: r})

	case *east.FootnoteList:
		e.container(node, element.KindList,
			element.NewAttributes().WithList(&element.ListAttrs{Ordered: true, Start: 1}))

	case *east.Footnote:
		e.container(node, element.KindListItem, nil)

	case *east.FootnoteBacklink:
		// Backlinks only make sense with anchor navigation; dropped.

	default:
		e.emitChildren(node)
	}
}

// container emits Start, the node's children, then End.
func (e *emitter) container(node ast.Node, kind element.Kind, attrs *element.Attributes) {
	r := e.rangeOf(node)
	e.push(element.Event{Kind: element.EventStart, Element: kind, Attrs: attrs, Range: r})
	e.emitChildren(node)
	e.push(element.Event{Kind: element.EventEnd, Element: kind, Range: r})
}

// emitText emits a text run plus the break its line ends with, if any.
func (e *emitter) emitText(n *ast.Text) {
	value := n.Segment.Value(e.source)
	if len(value) > 0 {
		e.push(element.Event{
			Kind:  element.EventText,
			Text:  string(value),
			Range: e.shift(n.Segment.Start, n.Segment.Stop),
		})
	}

	switch {
	case n.HardLineBreak():
		e.push(element.Event{Kind: element.EventBreak, Range: e.shift(n.Segment.Stop, n.Segment.Stop)})
	case n.SoftLineBreak():
		if e.hardBreaks {
			e.push(element.Event{Kind: element.EventBreak, Range: e.shift(n.Segment.Stop, n.Segment.Stop)})
		} else {
			e.push(element.Event{Kind: element.EventText, Text: " ", Range: e.shift(n.Segment.Stop, n.Segment.Stop)})
		}
	}
}

// emitCodeBlock emits a fenced or indented code block as a code leaf.
func (e *emitter) emitCodeBlock(node ast.Node, language string) {
	var attrs *element.Attributes
	if language != "" {
		attrs = element.NewAttributes().WithCode(&element.CodeAttrs{Language: language})
	}
	e.push(element.Event{
		Kind:    element.EventCode,
		Element: element.KindCodeBlock,
		Attrs:   attrs,
		Text:    e.linesValue(node),
		Range:   e.rangeOf(node),
	})
}

// emitHTMLBlock emits a raw HTML block, including its closure line when the
// block type has one.
func (e *emitter) emitHTMLBlock(n *ast.HTMLBlock) {
	var sb strings.Builder
	lines := n.Lines()
	start, stop := -1, -1
	for i := range lines.Len() {
		seg := lines.At(i)
		sb.Write(seg.Value(e.source))
		if start < 0 {
			start = seg.Start
		}
		stop = seg.Stop
	}
	if n.HasClosure() {
		seg := n.ClosureLine
		sb.Write(seg.Value(e.source))
		if start < 0 {
			start = seg.Start
		}
		stop = seg.Stop
	}
	if sb.Len() == 0 {
		return
	}
	e.push(element.Event{
		Kind:  element.EventHTML,
		Text:  sb.String(),
		Range: e.shift(start, stop),
	})
}

// emitMath emits a math span. Inline math carries its expression in text
// children; block math in its lines.
func (e *emitter) emitMath(node ast.Node, display bool) {
	var expr string
	var r element.Range
	kind := element.KindMathInline
	if display {
		kind = element.KindMathBlock
		expr = strings.TrimSpace(e.linesValue(node))
		r = e.rangeOf(node)
	} else {
		expr = string(e.flattenText(node))
		r = e.rangeOf(node)
	}
	e.push(element.Event{
		Kind:    element.EventMath,
		Element: kind,
		Attrs:   element.NewAttributes().WithMath(&element.MathAttrs{Expression: expr, Display: display}),
		Range:   r,
	})
}

// shift translates a segment span into a range over the original source.
func (e *emitter) shift(start, stop int) element.Range {
	return element.Range{Start: start + e.base, End: stop + e.base}
}

// push appends an event to the sequence.
func (e *emitter) push(ev element.Event) {
	e.events = append(e.events, ev)
}

// flattenText concatenates the text content of node's subtree.
func (e *emitter) flattenText(node ast.Node) []byte {
	var buf []byte
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			buf = append(buf, t.Segment.Value(e.source)...)
		case *ast.String:
			buf = append(buf, t.Value...)
		default:
			buf = append(buf, e.flattenText(child)...)
		}
	}
	return buf
}

// linesValue concatenates the raw line content of a block node.
func (e *emitter) linesValue(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		sb.Write(seg.Value(e.source))
	}
	return sb.String()
}

// rangeOf extracts the byte range for a goldmark node, shifted to the
// original source. Inline containers derive their span from text
// descendants; block nodes from their line segments.
func (e *emitter) rangeOf(node ast.Node) element.Range {
	if node.Type() == ast.TypeInline {
		start, stop := e.inlineSpan(node)
		if start < 0 {
			return element.NoRange
		}
		return e.shift(start, stop)
	}

	lines := node.Lines()
	if lines.Len() == 0 {
		// Childless blocks (thematic breaks) have no lines; fall back to
		// the span of any inline descendants.
		start, stop := e.inlineSpan(node)
		if start < 0 {
			return element.NoRange
		}
		return e.shift(start, stop)
	}
	return e.shift(lines.At(0).Start, lines.At(lines.Len()-1).Stop)
}

// inlineSpan returns the smallest byte span covering node's text segments.
func (e *emitter) inlineSpan(node ast.Node) (int, int) {
	start, stop := -1, -1
	grow := func(s, p int) {
		if start < 0 || s < start {
			start = s
		}
		if p > stop {
			stop = p
		}
	}

	if raw, ok := node.(*ast.RawHTML); ok {
		for i := range raw.Segments.Len() {
			seg := raw.Segments.At(i)
			grow(seg.Start, seg.Stop)
		}
		return start, stop
	}
	if t, ok := node.(*ast.Text); ok {
		grow(t.Segment.Start, t.Segment.Stop)
		return start, stop
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		s, p := e.inlineSpan(child)
		if s >= 0 {
			grow(s, p)
		}
	}
	return start, stop
}

// segmentsValue concatenates segment values.
func (e *emitter) segmentsValue(segs *text.Segments) []byte {
	var buf []byte
	for i := range segs.Len() {
		seg := segs.At(i)
		buf = append(buf, seg.Value(e.source)...)
	}
	return buf
}

// alignmentOf maps a goldmark table alignment to the element model.
func alignmentOf(a east.Alignment) element.Alignment {
	switch a {
	case east.AlignLeft:
		return element.AlignLeft
	case east.AlignCenter:
		return element.AlignCenter
	case east.AlignRight:
		return element.AlignRight
	default:
		return element.AlignNone
	}
}
