package render

import (
	"fmt"
	"strconv"

	"github.com/rambip/go-web-markdown/pkg/element"
	"github.com/rambip/go-web-markdown/pkg/htmltag"
)

// Props carries everything a component constructor may inspect about its
// invocation: the tag name, its attributes, and the byte range of its
// children in the original source. Values are read through accessors only;
// a constructor cannot mutate the invocation it was handed.
type Props struct {
	name       string
	attrs      []htmltag.Attr
	childRange element.Range
	source     string
	selfClosed bool
}

// Name returns the component name exactly as written in the source tag.
func (p Props) Name() string { return p.name }

// Len returns the number of attributes on the tag.
func (p Props) Len() int { return len(p.attrs) }

// Keys returns the attribute keys in source order. When a key appears more
// than once, only its last occurrence is kept.
func (p Props) Keys() []string {
	keys := make([]string, len(p.attrs))
	for i, a := range p.attrs {
		keys[i] = a.Key
	}
	return keys
}

// Get returns the raw string value of an attribute and whether it was
// present on the tag.
func (p Props) Get(key string) (string, bool) {
	for _, a := range p.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// GetInt parses an attribute as a base-10 integer. A missing attribute is
// not an error; it returns ok=false with a nil error.
func (p Props) GetInt(key string) (int, bool, error) {
	raw, ok := p.Get(key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("attribute %q: %w", key, err)
	}
	return v, true, nil
}

// GetBool parses an attribute as a boolean, accepting the forms
// strconv.ParseBool accepts.
func (p Props) GetBool(key string) (bool, bool, error) {
	raw, ok := p.Get(key)
	if !ok {
		return false, false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("attribute %q: %w", key, err)
	}
	return v, true, nil
}

// GetFloat parses an attribute as a float64.
func (p Props) GetFloat(key string) (float64, bool, error) {
	raw, ok := p.Get(key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, fmt.Errorf("attribute %q: %w", key, err)
	}
	return v, true, nil
}

// ValueRange returns the byte range of an attribute's value in the source,
// excluding the surrounding quotes. The second return reports presence.
func (p Props) ValueRange(key string) (element.Range, bool) {
	for _, a := range p.attrs {
		if a.Key == key {
			return a.ValueRange, true
		}
	}
	return element.NoRange, false
}

// ChildRange returns the byte range between the component's start and end
// tags. A self-closing tag has an empty range positioned after the tag.
func (p Props) ChildRange() element.Range { return p.childRange }

// ChildSource returns the raw source text between the start and end tags.
// It is empty for self-closing tags.
func (p Props) ChildSource() string {
	r := p.childRange
	if !r.IsValid() || r.IsEmpty() || r.End > len(p.source) {
		return ""
	}
	return p.source[r.Start:r.End]
}

// SelfClosing reports whether the component was written as a self-closing
// tag.
func (p Props) SelfClosing() bool { return p.selfClosed }
