package element

// EventKind classifies the type of a parse event.
type EventKind uint8

// Event kinds. Start/End bracket container elements; the rest are leaves.
const (
	// EventStart opens a container element. Element and Attrs carry the kind
	// and its payload.
	EventStart EventKind = iota

	// EventEnd closes the matching EventStart. Element repeats the kind.
	EventEnd

	// EventText is a literal text run.
	EventText

	// EventCode is a code leaf: Element is KindInlineCode or KindCodeBlock,
	// Text carries the code, Attrs.Code the language for blocks.
	EventCode

	// EventHTML is a raw HTML fragment (block or inline). Text carries the
	// fragment verbatim.
	EventHTML

	// EventMath is a math span: Element is KindMathInline or KindMathBlock,
	// Attrs.Math carries the expression and display mode.
	EventMath

	// EventBreak is a hard line break.
	EventBreak
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "Start"
	case EventEnd:
		return "End"
	case EventText:
		return "Text"
	case EventCode:
		return "Code"
	case EventHTML:
		return "HTML"
	case EventMath:
		return "Math"
	case EventBreak:
		return "Break"
	default:
		return "Unknown"
	}
}

// Event is one entry in the parse event sequence. Events are produced in
// source order and consumed exactly once, front to back.
type Event struct {
	// Kind classifies the event.
	Kind EventKind

	// Element is the element kind for Start/End/Code/Math events.
	Element Kind

	// Attrs is the payload for Start/Code/Math events, nil otherwise.
	Attrs *Attributes

	// Text is the content for Text/Code/HTML events.
	Text string

	// Range is the byte range of the construct in the original source.
	Range Range
}

// Stream is a single-consumption view over an event sequence. It is not
// randomly addressable: callers advance with Next and cannot rewind.
type Stream struct {
	events []Event
	pos    int
}

// NewStream creates a stream over events. The slice is owned by the stream
// afterwards and must not be mutated by the caller.
func NewStream(events []Event) *Stream {
	return &Stream{events: events}
}

// Next returns the next event, or false when the sequence is exhausted.
func (s *Stream) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

// Remaining returns the number of events not yet consumed.
func (s *Stream) Remaining() int {
	return len(s.events) - s.pos
}

// ValidateEvents checks that Start and End events are balanced and properly
// nested. Returns true if every Start has a matching End in order.
func ValidateEvents(events []Event) bool {
	var stack []Kind
	for _, ev := range events {
		switch ev.Kind {
		case EventStart:
			stack = append(stack, ev.Element)
		case EventEnd:
			if len(stack) == 0 || stack[len(stack)-1] != ev.Element {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}
