package htmltag_test

import (
	"testing"

	"github.com/rambip/go-web-markdown/pkg/htmltag"
)

func TestIsCustomName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"MyComponent", true},
		{"Counter", true},
		{"X", true},
		{"My-Component", true},
		{"my-component", true},
		{"data-table", true},
		{"a-b-c", true},
		{"div", false},
		{"span", false},
		{"p", false},
		{"input", false},
		{"h1", false},
		{"1tag", false},
		{"-leading", false},
		{"_private", false},
		{"", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := htmltag.IsCustomName(testCase.name); got != testCase.want {
				t.Errorf("IsCustomName(%q) = %v, want %v", testCase.name, got, testCase.want)
			}
		})
	}
}
