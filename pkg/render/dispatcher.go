package render

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/rambip/go-web-markdown/internal/logging"
	"github.com/rambip/go-web-markdown/pkg/element"
	"github.com/rambip/go-web-markdown/pkg/htmltag"
)

// dispatcher walks the event stream and drives the host context. It keeps a
// stack of open elements; leaves attach to the innermost open element, and
// closing an element materializes it into its parent's children.
type dispatcher[V any] struct {
	cfg    Config[V]
	host   Context[V]
	source string
	log    *log.Logger

	stack []openElement[V]
	comp  *componentState
}

// openElement is one stack entry: an element whose Start has been seen but
// whose End has not.
type openElement[V any] struct {
	kind     element.Kind
	attrs    *element.Attributes
	children []V
}

// componentState tracks a custom component whose start tag has been seen.
// While it is active, events are consumed for range accumulation only; the
// host sees nothing until the matching end tag arrives.
type componentState struct {
	tag htmltag.Tag

	// tagStart is the absolute byte offset of the opening '<'.
	tagStart int

	// childStart is the absolute byte offset just past the opening tag.
	childStart int

	// attrBase shifts attribute value ranges from fragment-relative to
	// absolute offsets.
	attrBase int

	// depth counts nested same-name start tags so that components can
	// contain themselves.
	depth int

	// popped counts End events swallowed while accumulating that closed
	// elements already open at the start tag.
	popped int

	// pending records elements opened inside the component span whose
	// close has not arrived yet; they reopen when the component finishes.
	pending []pendingFrame
}

// pendingFrame is the kind and attributes of a swallowed Start event.
type pendingFrame struct {
	kind  element.Kind
	attrs *element.Attributes
}

func newDispatcher[V any](cfg Config[V], host Context[V], source string) *dispatcher[V] {
	logger := logging.Default()
	return &dispatcher[V]{
		cfg:    cfg,
		host:   host,
		source: source,
		log:    logger,
		stack:  []openElement[V]{{kind: element.KindDocument}},
	}
}

// run consumes the whole stream and returns the document root value.
func (d *dispatcher[V]) run(stream *element.Stream) (V, error) {
	var zero V

	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		if d.cfg.Debug {
			d.log.Debug("event",
				logging.FieldKind, ev.Kind.String(),
				"element", ev.Element.String(),
				logging.FieldOffset, ev.Range.Start)
		}
		if err := d.dispatch(ev); err != nil {
			return zero, err
		}
	}

	if d.comp != nil {
		return zero, &TagError{
			Name:   d.comp.tag.Name,
			Offset: d.comp.tagStart,
			Reason: "start tag never closed",
		}
	}

	if len(d.stack) != 1 {
		top := d.stack[len(d.stack)-1]
		return zero, &TagError{
			Name:   top.kind.String(),
			Reason: "element never closed",
		}
	}

	root := d.stack[0]
	return d.host.Element(element.KindDocument, nil, root.children), nil
}

func (d *dispatcher[V]) dispatch(ev element.Event) error {
	// While a component accumulates, raw HTML fragments may hold the nested
	// and closing tags. Everything else belongs to the component's child
	// range, but Start and End events are still recorded so the stack can
	// be reconciled when the component finishes: a start and an end tag at
	// different structural depths must not desynchronize it.
	if d.comp != nil {
		switch ev.Kind {
		case element.EventHTML:
			return d.handleHTML(ev)
		case element.EventStart:
			d.comp.pending = append(d.comp.pending, pendingFrame{kind: ev.Element, attrs: ev.Attrs})
		case element.EventEnd:
			if n := len(d.comp.pending); n > 0 {
				d.comp.pending = d.comp.pending[:n-1]
			} else {
				d.comp.popped++
			}
		}
		return nil
	}

	switch ev.Kind {
	case element.EventStart:
		d.stack = append(d.stack, openElement[V]{kind: ev.Element, attrs: ev.Attrs})

	case element.EventEnd:
		if len(d.stack) == 1 {
			return &TagError{
				Name:   ev.Element.String(),
				Offset: ev.Range.Start,
				Reason: "close without matching open",
			}
		}
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		d.append(d.host.Element(top.kind, top.attrs, top.children))

	case element.EventText:
		d.append(d.host.Text(ev.Text))

	case element.EventBreak:
		d.append(d.host.Element(element.KindHardBreak, nil, nil))

	case element.EventCode:
		d.append(d.host.Element(ev.Element, ev.Attrs, []V{d.host.Text(ev.Text)}))

	case element.EventMath:
		d.handleMath(ev)

	case element.EventHTML:
		return d.handleHTML(ev)
	}

	return nil
}

// handleMath materializes a math span. A failing math delegate degrades the
// span to its literal expression; math failures never abort a render.
func (d *dispatcher[V]) handleMath(ev element.Event) {
	expr := ev.Attrs.Math.Expression
	display := ev.Attrs.Math.Display

	if d.cfg.Math != nil {
		v, err := d.cfg.Math.RenderMath(expr, display)
		if err == nil {
			d.append(v)
			return
		}
		d.log.Warn("math rendering failed, using literal expression",
			logging.FieldError, err,
			logging.FieldOffset, ev.Range.Start)
		d.append(d.host.Text(expr))
		return
	}

	d.append(d.host.Element(ev.Element, ev.Attrs, []V{d.host.Text(expr)}))
}

// handleHTML scans a raw HTML fragment and routes each segment: custom
// component tags drive the component machinery, everything else follows the
// configured raw-HTML policy.
func (d *dispatcher[V]) handleHTML(ev element.Event) error {
	base := ev.Range.Start
	for _, seg := range htmltag.Scan(ev.Text) {
		if err := d.htmlSegment(base, seg); err != nil {
			return err
		}
	}
	return nil
}

func (d *dispatcher[V]) htmlSegment(base int, seg htmltag.Segment) error {
	if d.comp != nil {
		// Only same-name tags affect the accumulating component.
		if seg.Tag == nil || seg.Tag.Name != d.comp.tag.Name {
			return nil
		}
		switch seg.Tag.Kind {
		case htmltag.TagStart:
			d.comp.depth++
		case htmltag.TagEnd:
			d.comp.depth--
			if d.comp.depth == 0 {
				return d.finishComponent(base + seg.Range.Start)
			}
		case htmltag.TagSelfClose:
			// Nested self-closing occurrence, depth unchanged.
		}
		return nil
	}

	if seg.Tag == nil {
		return d.textOrMalformed(seg)
	}

	tag := *seg.Tag
	if !htmltag.IsCustomName(tag.Name) {
		d.appendRaw(seg.Text)
		return nil
	}

	ctor, registered := d.cfg.Components[tag.Name]
	if !registered {
		if d.cfg.Unknown == UnknownError {
			return &TagError{
				Name:   tag.Name,
				Offset: base + seg.Range.Start,
				Reason: "no component registered for custom tag",
			}
		}
		d.appendRaw(seg.Text)
		return nil
	}

	switch tag.Kind {
	case htmltag.TagEnd:
		return &TagError{
			Name:   tag.Name,
			Offset: base + seg.Range.Start,
			Reason: "end tag without matching start tag",
		}

	case htmltag.TagSelfClose:
		after := base + seg.Range.End
		return d.invokeComponent(ctor, tag, base,
			element.Range{Start: after, End: after}, true)

	case htmltag.TagStart:
		d.comp = &componentState{
			tag:        tag,
			tagStart:   base + seg.Range.Start,
			childStart: base + seg.Range.End,
			attrBase:   base,
			depth:      1,
		}
	}
	return nil
}

// textOrMalformed handles a non-tag segment. A tag-like run that failed to
// parse aborts the render when its attempted name is a custom component
// name; anything else is ordinary raw content.
func (d *dispatcher[V]) textOrMalformed(seg htmltag.Segment) error {
	if seg.Err != nil {
		var perr *htmltag.ParseError
		if errors.As(seg.Err, &perr) && htmltag.IsCustomName(perr.Name) {
			return &TagError{
				Name:   perr.Name,
				Offset: perr.Offset,
				Reason: perr.Reason,
			}
		}
	}
	d.appendRaw(seg.Text)
	return nil
}

// finishComponent closes the accumulating component: its children are the
// source bytes between the opening tag and childEnd. Before the component
// value attaches, the stack is reconciled with the events swallowed during
// accumulation, so elements that closed inside the span are materialized and
// elements that opened inside it resume as open frames.
func (d *dispatcher[V]) finishComponent(childEnd int) error {
	comp := d.comp
	d.comp = nil

	for i := 0; i < comp.popped && len(d.stack) > 1; i++ {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		d.append(d.host.Element(top.kind, top.attrs, top.children))
	}

	childRange := element.Range{Start: comp.childStart, End: childEnd}
	// Accumulation only starts for registered names, so the lookup cannot miss.
	ctor := d.cfg.Components[comp.tag.Name]
	if err := d.invokeComponent(ctor, comp.tag, comp.attrBase, childRange, false); err != nil {
		return err
	}

	for _, frame := range comp.pending {
		d.stack = append(d.stack, openElement[V]{kind: frame.kind, attrs: frame.attrs})
	}
	return nil
}

func (d *dispatcher[V]) invokeComponent(ctor Constructor[V], tag htmltag.Tag, attrBase int, childRange element.Range, selfClosed bool) error {
	attrs := make([]htmltag.Attr, len(tag.Attrs))
	for i, a := range tag.Attrs {
		a.ValueRange = a.ValueRange.Shift(attrBase)
		attrs[i] = a
	}

	props := Props{
		name:       tag.Name,
		attrs:      attrs,
		childRange: childRange,
		source:     d.source,
		selfClosed: selfClosed,
	}

	if d.cfg.Debug {
		d.log.Debug("invoking component",
			logging.FieldComponent, tag.Name,
			logging.FieldOffset, childRange.Start)
	}

	v, err := ctor(props)
	if err != nil {
		return &ComponentCreationError{
			Name: tag.Name,
			Err:  fmt.Errorf("constructor: %w", err),
		}
	}
	d.append(v)
	return nil
}

// appendRaw applies the raw-HTML policy to a fragment.
func (d *dispatcher[V]) appendRaw(fragment string) {
	switch d.cfg.RawHTML {
	case RawHTMLPreserve:
		d.append(d.host.RawHTML(fragment))
	case RawHTMLDrop:
	default:
		d.append(d.host.Text(fragment))
	}
}

// append attaches a materialized value to the innermost open element.
func (d *dispatcher[V]) append(v V) {
	top := &d.stack[len(d.stack)-1]
	top.children = append(top.children, v)
}
