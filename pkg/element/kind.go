// Package element defines the framework-independent element model that both
// standard markdown constructs and custom components project onto, plus the
// event stream the parser produces and the renderer consumes.
package element

// Kind classifies the type of an output element.
type Kind uint16

// Element kinds form a closed set. Hosts switch on the kind to decide which
// native node to materialize.
const (
	KindDocument Kind = iota

	// Block-level kinds.
	KindParagraph
	KindHeading
	KindBlockQuote
	KindList
	KindListItem
	KindCodeBlock
	KindThematicBreak
	KindTable
	KindTableHeader
	KindTableRow
	KindTableCell
	KindMathBlock

	// Inline-level kinds.
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindInlineCode
	KindLink
	KindImage
	KindHardBreak
	KindTaskCheckbox
	KindMathInline
	KindRawHTML

	// KindCustomComponent identifies nodes produced by a registered component
	// constructor. The render dispatcher never passes it to Context.Element;
	// it exists so hosts that build inspectable trees can label such nodes.
	KindCustomComponent
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindParagraph:
		return "Paragraph"
	case KindHeading:
		return "Heading"
	case KindBlockQuote:
		return "BlockQuote"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindCodeBlock:
		return "CodeBlock"
	case KindThematicBreak:
		return "ThematicBreak"
	case KindTable:
		return "Table"
	case KindTableHeader:
		return "TableHeader"
	case KindTableRow:
		return "TableRow"
	case KindTableCell:
		return "TableCell"
	case KindMathBlock:
		return "MathBlock"
	case KindEmphasis:
		return "Emphasis"
	case KindStrong:
		return "Strong"
	case KindStrikethrough:
		return "Strikethrough"
	case KindInlineCode:
		return "InlineCode"
	case KindLink:
		return "Link"
	case KindImage:
		return "Image"
	case KindHardBreak:
		return "HardBreak"
	case KindTaskCheckbox:
		return "TaskCheckbox"
	case KindMathInline:
		return "MathInline"
	case KindRawHTML:
		return "RawHTML"
	case KindCustomComponent:
		return "CustomComponent"
	default:
		return "Unknown"
	}
}

// IsBlock returns true if this is a block-level kind.
func (k Kind) IsBlock() bool {
	switch k {
	case KindDocument, KindParagraph, KindHeading, KindBlockQuote, KindList,
		KindListItem, KindCodeBlock, KindThematicBreak, KindTable,
		KindTableHeader, KindTableRow, KindTableCell, KindMathBlock:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level kind.
func (k Kind) IsInline() bool {
	switch k {
	case KindEmphasis, KindStrong, KindStrikethrough, KindInlineCode, KindLink,
		KindImage, KindHardBreak, KindTaskCheckbox, KindMathInline, KindRawHTML:
		return true
	default:
		return false
	}
}
