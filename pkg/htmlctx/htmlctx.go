// Package htmlctx is the reference host binding: it renders documents to
// plain HTML strings. It doubles as executable documentation for writing a
// Context implementation against another view layer.
package htmlctx

import (
	"fmt"
	"html"
	"strings"

	"github.com/rambip/go-web-markdown/pkg/element"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLanguageDetection enables guessing a language for unlabeled code
// blocks, so they still get a language-* class for client-side highlighters.
func WithLanguageDetection() Option {
	return func(b *Builder) { b.detect = true }
}

// Builder renders abstract elements into HTML strings. The zero value is not
// usable; construct with New.
type Builder struct {
	detect      bool
	frontmatter string
	hasFM       bool
}

// New creates an HTML builder.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Text escapes a literal text run.
func (b *Builder) Text(text string) string {
	return html.EscapeString(text)
}

// RawHTML passes a raw fragment through untouched.
func (b *Builder) RawHTML(fragment string) string {
	return fragment
}

// Frontmatter records the raw frontmatter text for later retrieval.
func (b *Builder) Frontmatter(text string) {
	b.frontmatter = text
	b.hasFM = true
}

// FrontmatterText returns the frontmatter recorded during the last render
// and whether the document had one.
func (b *Builder) FrontmatterText() (string, bool) {
	return b.frontmatter, b.hasFM
}

// Element materializes one element as an HTML string.
func (b *Builder) Element(kind element.Kind, attrs *element.Attributes, children []string) string {
	inner := strings.Join(children, "")

	switch kind {
	case element.KindDocument:
		return inner
	case element.KindParagraph:
		return "<p>" + inner + "</p>\n"
	case element.KindHeading:
		level := 1
		if attrs != nil && attrs.HeadingLevel > 0 {
			level = attrs.HeadingLevel
		}
		return fmt.Sprintf("<h%d>%s</h%d>\n", level, inner, level)
	case element.KindBlockQuote:
		return "<blockquote>\n" + inner + "</blockquote>\n"
	case element.KindList:
		return b.list(attrs, inner)
	case element.KindListItem:
		return "<li>" + inner + "</li>\n"
	case element.KindCodeBlock:
		return b.codeBlock(attrs, inner)
	case element.KindThematicBreak:
		return "<hr/>\n"
	case element.KindTable:
		return "<table>\n" + inner + "</table>\n"
	case element.KindTableHeader:
		return "<thead>\n<tr>" + inner + "</tr>\n</thead>\n"
	case element.KindTableRow:
		return "<tr>" + inner + "</tr>\n"
	case element.KindTableCell:
		return b.tableCell(attrs, inner)
	case element.KindMathBlock:
		return `<div class="math-flow">` + inner + "</div>\n"
	case element.KindMathInline:
		return `<span class="math-inline">` + inner + "</span>"
	case element.KindEmphasis:
		return "<em>" + inner + "</em>"
	case element.KindStrong:
		return "<strong>" + inner + "</strong>"
	case element.KindStrikethrough:
		return "<del>" + inner + "</del>"
	case element.KindInlineCode:
		return "<code>" + inner + "</code>"
	case element.KindLink:
		return b.link(attrs, inner)
	case element.KindImage:
		return b.image(attrs)
	case element.KindHardBreak:
		return "<br/>\n"
	case element.KindTaskCheckbox:
		return b.checkbox(attrs)
	default:
		return inner
	}
}

func (b *Builder) list(attrs *element.Attributes, inner string) string {
	if attrs == nil || attrs.List == nil || !attrs.List.Ordered {
		return "<ul>\n" + inner + "</ul>\n"
	}
	if attrs.List.Start != 0 && attrs.List.Start != 1 {
		return fmt.Sprintf("<ol start=\"%d\">\n%s</ol>\n", attrs.List.Start, inner)
	}
	return "<ol>\n" + inner + "</ol>\n"
}

func (b *Builder) codeBlock(attrs *element.Attributes, inner string) string {
	language := ""
	if attrs != nil && attrs.Code != nil {
		language = attrs.Code.Language
	}
	if language == "" && b.detect {
		language = detectLanguage(html.UnescapeString(inner))
	}
	if language == "" {
		return "<pre><code>" + inner + "</code></pre>\n"
	}
	return fmt.Sprintf("<pre><code class=\"language-%s\">%s</code></pre>\n",
		html.EscapeString(language), inner)
}

func (b *Builder) tableCell(attrs *element.Attributes, inner string) string {
	if attrs == nil || attrs.Align.Style() == "" {
		return "<td>" + inner + "</td>"
	}
	return `<td style="` + attrs.Align.Style() + `">` + inner + "</td>"
}

func (b *Builder) link(attrs *element.Attributes, inner string) string {
	var sb strings.Builder
	sb.WriteString("<a")
	if attrs != nil && attrs.Link != nil {
		writeAttr(&sb, "href", attrs.Link.Destination)
		if attrs.Link.Title != "" {
			writeAttr(&sb, "title", attrs.Link.Title)
		}
	}
	sb.WriteString(">")
	sb.WriteString(inner)
	sb.WriteString("</a>")
	return sb.String()
}

func (b *Builder) image(attrs *element.Attributes) string {
	var sb strings.Builder
	sb.WriteString("<img")
	if attrs != nil && attrs.Link != nil {
		writeAttr(&sb, "src", attrs.Link.Destination)
		writeAttr(&sb, "alt", attrs.Link.Alt)
		if attrs.Link.Title != "" {
			writeAttr(&sb, "title", attrs.Link.Title)
		}
	}
	sb.WriteString("/>")
	return sb.String()
}

func writeAttr(sb *strings.Builder, key, value string) {
	sb.WriteString(" ")
	sb.WriteString(key)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`"`)
}

func (b *Builder) checkbox(attrs *element.Attributes) string {
	if attrs != nil && attrs.Checked {
		return `<input type="checkbox" checked="" disabled=""/>`
	}
	return `<input type="checkbox" disabled=""/>`
}
