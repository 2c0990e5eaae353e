package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"r 1 2", " ", []string{"r", "1", "2"}},
		{"r 0 0\nm 1 1\ng\n\nr 2 2", "\n", []string{"r 0 0", "m 1 1", "g", "", "r 2 2"}},
		{"", "\n", []string{""}},
	}
	for _, test := range testCases {
		var pieces []string
		for i, p := range byPiece(test.input, test.sep) {
			assert.Equal(t, len(pieces), i)
			pieces = append(pieces, p)
		}
		assert.Equal(t, test.array, pieces)
	}
}

func TestByPieceStops(t *testing.T) {
	var pieces []string
	for _, p := range byPiece("a\nb\nc", "\n") {
		if p == "b" {
			break
		}
		pieces = append(pieces, p)
	}
	assert.Equal(t, []string{"a"}, pieces)
}
