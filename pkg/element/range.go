package element

// Range is a half-open byte range [Start, End) into the original markdown
// source. After frontmatter extraction, all ranges produced by the parser are
// shifted once so they keep indexing the full original source.
type Range struct {
	Start int
	End   int
}

// NoRange marks constructs without a usable source position.
var NoRange = Range{Start: -1, End: -1}

// IsValid returns true if the range indexes real source bytes.
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.End >= r.Start
}

// Len returns the length of the range in bytes, or 0 for invalid ranges.
func (r Range) Len() int {
	if !r.IsValid() {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Text returns the source text covered by the range, or nil when the range
// does not fit inside source.
func (r Range) Text(source []byte) []byte {
	if !r.IsValid() || r.End > len(source) {
		return nil
	}
	return source[r.Start:r.End]
}

// Shift returns the range moved forward by offset. Invalid ranges are
// returned unchanged so position-less constructs stay position-less.
func (r Range) Shift(offset int) Range {
	if !r.IsValid() {
		return r
	}
	return Range{Start: r.Start + offset, End: r.End + offset}
}
