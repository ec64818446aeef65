package htmltag

import (
	"strings"

	"github.com/rambip/go-web-markdown/pkg/element"
)

// Segment is one piece of a scanned HTML fragment: either a well-formed tag,
// or a run of literal text (which includes tag-like runs that failed to
// parse, with the failure recorded in Err).
type Segment struct {
	// Tag is non-nil for a well-formed tag.
	Tag *Tag

	// Text is the raw source text of the segment, tag or not.
	Text string

	// Range is the byte range of the segment within the scanned fragment.
	Range element.Range

	// Err records the parse failure for a tag-like run that was degraded to
	// literal text. Nil for clean text and for well-formed tags.
	Err error
}

// Scan splits a raw HTML fragment into consecutive tag and text segments.
// Segments are contiguous and cover the whole fragment. Content that cannot
// be parsed as a tag (comments, doctypes, stray angle brackets, malformed
// attribute syntax) becomes a text segment; callers decide whether a
// recorded parse error matters based on the attempted tag name.
func Scan(fragment string) []Segment {
	var segs []Segment
	pos := 0

	for pos < len(fragment) {
		if fragment[pos] != '<' {
			end := pos + strings.IndexByte(fragment[pos:], '<')
			if end < pos {
				end = len(fragment)
			}
			segs = append(segs, textSegment(fragment, pos, end, nil))
			pos = end
			continue
		}

		tag, end, err := parseTag(fragment, pos)
		if err != nil {
			// Degrade to text up to the next possible tag start.
			end = pos + 1
			if i := strings.IndexByte(fragment[pos+1:], '<'); i >= 0 {
				end = pos + 1 + i
			} else {
				end = len(fragment)
			}
			segs = append(segs, textSegment(fragment, pos, end, err))
			pos = end
			continue
		}

		t := tag
		segs = append(segs, Segment{
			Tag:   &t,
			Text:  fragment[pos:end],
			Range: element.Range{Start: pos, End: end},
		})
		pos = end
	}

	return segs
}

func textSegment(fragment string, start, end int, err error) Segment {
	return Segment{
		Text:  fragment[start:end],
		Range: element.Range{Start: start, End: end},
		Err:   err,
	}
}
