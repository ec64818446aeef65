package element_test

import (
	"testing"

	"github.com/rambip/go-web-markdown/pkg/element"
)

func TestRange(t *testing.T) {
	t.Parallel()

	source := []byte("hello world")

	r := element.Range{Start: 6, End: 11}
	if !r.IsValid() {
		t.Fatal("valid range reported invalid")
	}
	if got := string(r.Text(source)); got != "world" {
		t.Errorf("Text() = %q, want %q", got, "world")
	}
	if got := r.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}

	shifted := r.Shift(3)
	if shifted.Start != 9 || shifted.End != 14 {
		t.Errorf("Shift(3) = %+v, want {9 14}", shifted)
	}
}

func TestNoRange(t *testing.T) {
	t.Parallel()

	if element.NoRange.IsValid() {
		t.Error("NoRange reported valid")
	}
	if element.NoRange.Len() != 0 {
		t.Error("NoRange has nonzero length")
	}
	if got := element.NoRange.Shift(10); got != element.NoRange {
		t.Errorf("Shift on NoRange = %+v, want NoRange unchanged", got)
	}
	if element.NoRange.Text([]byte("abc")) != nil {
		t.Error("Text on NoRange returned content")
	}
}
