package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicholasDWinters/biztime-exercise/internal/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Simple", in: "Google", want: "google"},
		{name: "Spaces", in: "Apple Computer", want: "applecomputer"},
		{name: "Punctuation", in: "AT&T, Inc.", want: "attinc"},
		{name: "Digits", in: "3M", want: "3m"},
		{name: "Diacritics", in: "Crème Brûlée Co", want: "cremebruleeco"},
		{name: "Empty", in: "", want: ""},
		{name: "OnlySymbols", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}

func TestMakeCollides(t *testing.T) {
	// Separator removal makes similar names collide; accepted behavior.
	assert.Equal(t, slug.Make("AB"), slug.Make("A B"))
}
