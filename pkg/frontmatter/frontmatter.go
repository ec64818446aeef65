// Package frontmatter splits an optional leading metadata block from a
// markdown source. The block is delimited by a line of three dashes at the
// very start of the document and a matching closing line. The content between
// the delimiters is opaque to the renderer; hosts that want structured
// metadata can decode it with Decode.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	delimiter = "---"
	bom       = "\uFEFF"
)

// Document is the result of splitting a markdown source.
type Document struct {
	// Frontmatter is the raw text between the delimiters, without the
	// delimiter lines themselves. Empty when the source has no frontmatter.
	Frontmatter string

	// Body is the markdown text after the closing delimiter, or the whole
	// source when no frontmatter is present.
	Body string

	// BodyOffset is the byte offset of Body within the original source.
	// Zero when no frontmatter is present.
	BodyOffset int
}

// HasFrontmatter returns true if a frontmatter block was extracted.
func (d Document) HasFrontmatter() bool {
	return d.BodyOffset > 0
}

// Split extracts the optional frontmatter block from source. A malformed
// block (opening delimiter without a closing one) is not an error: the whole
// source is returned as body, matching the treatment of absent frontmatter.
func Split(source string) Document {
	rest := source
	offset := 0

	// A UTF-8 BOM before the opening delimiter is tolerated.
	if strings.HasPrefix(rest, bom) {
		rest = rest[len(bom):]
		offset = len(bom)
	}

	open, ok := delimiterLine(rest)
	if !ok {
		return Document{Body: source}
	}
	offset += open
	rest = rest[open:]

	inner := 0
	for rest != "" {
		line, next := nextLine(rest)
		if strings.TrimRight(line, " \t") == delimiter {
			body := rest[next:]
			content := strings.TrimSuffix(source[offset:offset+inner], "\n")
			content = strings.TrimSuffix(content, "\r")
			return Document{
				Frontmatter: content,
				Body:        body,
				BodyOffset:  offset + inner + next,
			}
		}
		inner += next
		rest = rest[next:]
	}

	// No closing delimiter: treat as absence of frontmatter.
	return Document{Body: source}
}

// Decode unmarshals frontmatter text as YAML into out. It is a convenience
// for hosts; the render engine itself never interprets the text.
func Decode(text string, out any) error {
	return yaml.Unmarshal([]byte(text), out)
}

// delimiterLine reports whether s opens with a delimiter line, returning the
// offset just past it.
func delimiterLine(s string) (int, bool) {
	line, next := nextLine(s)
	if strings.TrimRight(line, " \t") != delimiter {
		return 0, false
	}
	// The opening line must be terminated; "---" alone is not a block.
	if next == len(s) && !strings.HasSuffix(s, "\n") {
		return 0, false
	}
	return next, true
}

// nextLine returns the first line of s without its line ending, and the
// offset just past the line ending (or len(s) for the last line).
func nextLine(s string) (string, int) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return strings.TrimSuffix(s, "\r"), len(s)
	}
	return strings.TrimSuffix(s[:i], "\r"), i + 1
}
