// Package htmltag classifies and scans the raw pseudo-HTML fragments that a
// markdown tokenizer emits, so the renderer can tell custom interactive
// components apart from ordinary HTML elements.
//
// The scanner is intentionally hand-written rather than built on an HTML
// tokenizer library: component names and attribute keys are matched
// case-sensitively, and HTML tokenizers canonicalize both to lower case.
package htmltag

import "strings"

// IsCustomName reports whether a tag name classifies as a custom component
// name. The rule is evaluated on the first character of the name:
//
//   - ASCII uppercase (A-Z): always custom.
//   - ASCII lowercase (a-z): custom only if the name contains a dash.
//   - anything else (digits, unicode, punctuation): standard.
//
// This keeps standard HTML tags like <div>, <span>, <p> out while admitting
// <MyComponent>, <My-Component> and <my-component>.
func IsCustomName(name string) bool {
	if name == "" {
		return false
	}
	switch c := name[0]; {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return strings.ContainsRune(name, '-')
	default:
		return false
	}
}
