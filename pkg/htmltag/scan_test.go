package htmltag_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rambip/go-web-markdown/pkg/htmltag"
)

func TestScanSelfClosingTag(t *testing.T) {
	t.Parallel()

	segs := htmltag.Scan(`<Counter initial="5"/>`)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}

	tag := segs[0].Tag
	if tag == nil {
		t.Fatal("segment is not a tag")
	}
	if tag.Name != "Counter" {
		t.Errorf("Name = %q, want %q", tag.Name, "Counter")
	}
	if tag.Kind != htmltag.TagSelfClose {
		t.Errorf("Kind = %v, want self-close", tag.Kind)
	}
	if len(tag.Attrs) != 1 || tag.Attrs[0].Key != "initial" || tag.Attrs[0].Value != "5" {
		t.Errorf("Attrs = %+v, want initial=5", tag.Attrs)
	}
}

func TestScanAttrValueRange(t *testing.T) {
	t.Parallel()

	fragment := `<Counter initial="5"/>`
	segs := htmltag.Scan(fragment)
	if len(segs) != 1 || segs[0].Tag == nil {
		t.Fatalf("unexpected segments %+v", segs)
	}

	r := segs[0].Tag.Attrs[0].ValueRange
	if got := fragment[r.Start:r.End]; got != "5" {
		t.Errorf("fragment[ValueRange] = %q, want %q", got, "5")
	}
}

func TestScanMixedContent(t *testing.T) {
	t.Parallel()

	segs := htmltag.Scan(`before <b>bold</b> after`)

	var kinds []string
	for _, seg := range segs {
		if seg.Tag != nil {
			kinds = append(kinds, "tag:"+seg.Tag.Name)
		} else {
			kinds = append(kinds, "text")
		}
	}
	want := "text tag:b text tag:b text"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("segments = %q, want %q", got, want)
	}
}

func TestScanCoversWholeFragment(t *testing.T) {
	t.Parallel()

	fragment := `x <Outer a="1">y</Outer> z`
	segs := htmltag.Scan(fragment)

	var rebuilt strings.Builder
	for _, seg := range segs {
		rebuilt.WriteString(seg.Text)
	}
	if rebuilt.String() != fragment {
		t.Errorf("segments rebuild %q, want %q", rebuilt.String(), fragment)
	}
}

func TestScanMalformedTagDegradesToText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
	}{
		{"unterminated tag", "<Counter initial="},
		{"unquoted value", `<Counter initial=5/>`},
		{"single quoted value", `<Counter initial='5'/>`},
		{"missing value", `<Counter initial/>`},
		{"comment", "<!-- note -->"},
		{"stray bracket", "a < b"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			segs := htmltag.Scan(testCase.fragment)
			for _, seg := range segs {
				if seg.Tag != nil {
					t.Errorf("got tag %+v, want text only", seg.Tag)
				}
			}
		})
	}
}

func TestScanRecordsParseError(t *testing.T) {
	t.Parallel()

	segs := htmltag.Scan(`<Counter initial=5>`)
	if len(segs) == 0 {
		t.Fatal("no segments")
	}
	if segs[0].Err == nil {
		t.Fatal("malformed tag segment has no error")
	}

	var perr *htmltag.ParseError
	if !errors.As(segs[0].Err, &perr) {
		t.Fatalf("error %v is not a ParseError", segs[0].Err)
	}
	if perr.Name != "Counter" {
		t.Errorf("ParseError.Name = %q, want %q", perr.Name, "Counter")
	}
}

func TestScanDuplicateAttributeLastWins(t *testing.T) {
	t.Parallel()

	segs := htmltag.Scan(`<Box size="1" size="2"/>`)
	if len(segs) != 1 || segs[0].Tag == nil {
		t.Fatalf("unexpected segments %+v", segs)
	}

	tag := segs[0].Tag
	if len(tag.Attrs) != 1 {
		t.Fatalf("got %d attrs, want 1", len(tag.Attrs))
	}
	if tag.Attrs[0].Value != "2" {
		t.Errorf("Value = %q, want %q", tag.Attrs[0].Value, "2")
	}
}

func TestScanEndTag(t *testing.T) {
	t.Parallel()

	segs := htmltag.Scan(`</Outer>`)
	if len(segs) != 1 || segs[0].Tag == nil {
		t.Fatalf("unexpected segments %+v", segs)
	}
	if segs[0].Tag.Kind != htmltag.TagEnd {
		t.Errorf("Kind = %v, want end", segs[0].Tag.Kind)
	}
	if segs[0].Tag.Name != "Outer" {
		t.Errorf("Name = %q, want %q", segs[0].Tag.Name, "Outer")
	}
}
