package htmltag

import (
	"errors"
	"fmt"

	"github.com/rambip/go-web-markdown/pkg/element"
)

// TagKind distinguishes opening, closing and self-closing tags.
type TagKind uint8

const (
	// TagStart is an opening tag: <Name attr="value">.
	TagStart TagKind = iota

	// TagEnd is a closing tag: </Name>.
	TagEnd

	// TagSelfClose is a self-closing tag: <Name attr="value"/>.
	TagSelfClose
)

// String returns a human-readable name for the tag kind.
func (k TagKind) String() string {
	switch k {
	case TagStart:
		return "start"
	case TagEnd:
		return "end"
	case TagSelfClose:
		return "self-close"
	default:
		return "unknown"
	}
}

// Attr is a single attribute on a tag. Values must be double-quoted in the
// source; no coercion is performed. ValueRange indexes the scanned fragment
// and covers exactly the bytes between the quotes.
type Attr struct {
	Key        string
	Value      string
	ValueRange element.Range
}

// Tag is a parsed pseudo-HTML tag.
type Tag struct {
	Name  string
	Kind  TagKind
	Attrs []Attr
}

// ParseError describes a tag that started like markup but could not be
// parsed. Name holds the tag name if one was read before the failure.
type ParseError struct {
	Name   string
	Offset int
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("parse tag <%s> at offset %d: %s", e.Name, e.Offset, e.Reason)
	}
	return fmt.Sprintf("parse tag at offset %d: %s", e.Offset, e.Reason)
}

// parseTag parses one tag from s starting at pos, which must point at '<'.
// It returns the tag and the offset just past the closing '>'.
func parseTag(s string, pos int) (Tag, int, error) {
	start := pos
	fail := func(name, reason string) (Tag, int, error) {
		return Tag{}, start, &ParseError{Name: name, Offset: start, Reason: reason}
	}

	pos++ // consume '<'
	kind := TagStart
	if pos < len(s) && s[pos] == '/' {
		kind = TagEnd
		pos++
	}

	nameStart := pos
	for pos < len(s) && !isNameBoundary(s[pos]) {
		pos++
	}
	name := s[nameStart:pos]
	if name == "" {
		return fail("", "missing tag name")
	}

	var attrs []Attr
	for {
		for pos < len(s) && isSpace(s[pos]) {
			pos++
		}
		if pos >= len(s) {
			return fail(name, "unterminated tag")
		}
		switch s[pos] {
		case '>':
			return Tag{Name: name, Kind: kind, Attrs: attrs}, pos + 1, nil
		case '/':
			if pos+1 >= len(s) || s[pos+1] != '>' {
				return fail(name, "expected '>' after '/'")
			}
			if kind == TagEnd {
				return fail(name, "closing tag cannot self-close")
			}
			return Tag{Name: name, Kind: TagSelfClose, Attrs: attrs}, pos + 2, nil
		}

		attr, next, err := parseAttr(s, pos)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Name = name
				perr.Offset = start
			}
			return Tag{}, start, err
		}
		attrs = upsertAttr(attrs, attr)
		pos = next
	}
}

// parseAttr parses one key="value" pair starting at pos.
func parseAttr(s string, pos int) (Attr, int, error) {
	keyStart := pos
	for pos < len(s) && s[pos] != '=' && !isSpace(s[pos]) && s[pos] != '>' && s[pos] != '/' {
		pos++
	}
	key := s[keyStart:pos]

	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	if pos >= len(s) || s[pos] != '=' {
		return Attr{}, pos, &ParseError{Reason: fmt.Sprintf("expected '=' after attribute %q", key)}
	}
	pos++
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	if pos >= len(s) || s[pos] != '"' {
		return Attr{}, pos, &ParseError{Reason: fmt.Sprintf("attribute %q value must be double-quoted", key)}
	}
	pos++

	valueStart := pos
	for pos < len(s) && s[pos] != '"' {
		pos++
	}
	if pos >= len(s) {
		return Attr{}, pos, &ParseError{Reason: fmt.Sprintf("unterminated value for attribute %q", key)}
	}
	attr := Attr{
		Key:        key,
		Value:      s[valueStart:pos],
		ValueRange: element.Range{Start: valueStart, End: pos},
	}
	return attr, pos + 1, nil
}

// upsertAttr appends attr, replacing an earlier attribute with the same key.
// The last occurrence of a duplicated key wins.
func upsertAttr(attrs []Attr, attr Attr) []Attr {
	for i := range attrs {
		if attrs[i].Key == attr.Key {
			attrs[i] = attr
			return attrs
		}
	}
	return append(attrs, attr)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameBoundary(c byte) bool {
	return isSpace(c) || c == '/' || c == '>'
}
