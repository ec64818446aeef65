package element

// Attributes holds the per-kind payload of an element. Only the field
// matching the element's kind is set; the rest stay nil/zero.
type Attributes struct {
	// HeadingLevel is the heading level (1-6) for KindHeading.
	HeadingLevel int

	// List holds list attributes for KindList.
	List *ListAttrs

	// Code holds code attributes for KindCodeBlock.
	Code *CodeAttrs

	// Link holds link/image attributes for KindLink and KindImage.
	Link *LinkAttrs

	// Math holds math-span attributes for KindMathInline and KindMathBlock.
	Math *MathAttrs

	// Align is the column alignment for KindTableCell.
	Align Alignment

	// Checked is the checkbox state for KindTaskCheckbox.
	Checked bool
}

// ListAttrs holds attributes for list elements.
type ListAttrs struct {
	// Ordered is true for ordered lists.
	Ordered bool

	// Start is the starting number for ordered lists.
	Start int
}

// CodeAttrs holds attributes for code block elements.
type CodeAttrs struct {
	// Language is the info-string language identifier, empty when absent.
	Language string
}

// LinkAttrs holds attributes for link and image elements.
type LinkAttrs struct {
	// Destination is the link URL or image source.
	Destination string

	// Title is the optional title.
	Title string

	// Alt is the flattened alternative text, set for images only.
	Alt string
}

// MathAttrs holds attributes for math elements.
type MathAttrs struct {
	// Expression is the raw math expression between the delimiters.
	Expression string

	// Display is true for block ($$…$$) math, false for inline ($…$).
	Display bool
}

// Alignment is a table column alignment.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Style returns the CSS fragment that aligns cell text, or "" for AlignNone.
func (a Alignment) Style() string {
	switch a {
	case AlignLeft:
		return "text-align: left"
	case AlignCenter:
		return "text-align: center"
	case AlignRight:
		return "text-align: right"
	default:
		return ""
	}
}

// String returns a human-readable name for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// NewAttributes creates an empty Attributes value.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// WithHeadingLevel sets the heading level and returns the Attributes for chaining.
func (a *Attributes) WithHeadingLevel(level int) *Attributes {
	a.HeadingLevel = level
	return a
}

// WithList sets list attributes and returns the Attributes for chaining.
func (a *Attributes) WithList(attrs *ListAttrs) *Attributes {
	a.List = attrs
	return a
}

// WithCode sets code attributes and returns the Attributes for chaining.
func (a *Attributes) WithCode(attrs *CodeAttrs) *Attributes {
	a.Code = attrs
	return a
}

// WithLink sets link attributes and returns the Attributes for chaining.
func (a *Attributes) WithLink(attrs *LinkAttrs) *Attributes {
	a.Link = attrs
	return a
}

// WithMath sets math attributes and returns the Attributes for chaining.
func (a *Attributes) WithMath(attrs *MathAttrs) *Attributes {
	a.Math = attrs
	return a
}

// WithAlign sets the cell alignment and returns the Attributes for chaining.
func (a *Attributes) WithAlign(align Alignment) *Attributes {
	a.Align = align
	return a
}

// WithChecked sets the checkbox state and returns the Attributes for chaining.
func (a *Attributes) WithChecked(checked bool) *Attributes {
	a.Checked = checked
	return a
}
