package minefield

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		cell Cell
		want byte
	}{
		{Cell{Kind: Empty, Status: Hidden}, '.'},
		{Cell{Kind: Mine, Status: Hidden}, '.'},
		{Cell{Kind: Empty, Status: Marked, Count: 2}, '*'},
		{Cell{Kind: Mine, Status: Marked}, '*'},
		{Cell{Kind: Empty, Status: Revealed}, '/'},
		{Cell{Kind: Empty, Status: Revealed, Count: 3}, '3'},
		{Cell{Kind: Empty, Status: Revealed, Count: 8}, '8'},
		{Cell{Kind: Mine, Status: Revealed}, 'X'},
	}

	for _, test := range tests {
		assert.Equal(t, string(test.want), string(test.cell.Glyph()), "%+v", test.cell)
	}
}

func TestRenderRevealMines(t *testing.T) {
	b := mustLayout(t, "X.. ... .X.")

	_, err := b.Apply(Point{1, 2}, Reveal)
	require.NoError(t, err)
	_, err = b.Apply(Point{0, 0}, ToggleMark)
	require.NoError(t, err)

	assert.Equal(t, []string{"*..", "..1", "..."}, b.RenderLines(false))
	assert.Equal(t, []string{"X..", "..1", ".X."}, b.RenderLines(true))
	assert.Equal(t, "X1.\n221\n1X1\n", b.Debug())
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"free", Reveal},
		{"reveal", Reveal},
		{" FREE ", Reveal},
		{"mine", ToggleMark},
		{"mark", ToggleMark},
	}
	for _, test := range tests {
		a, err := ParseAction(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.want, a)
	}

	_, err := ParseAction("dig")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestOutcomeJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Outcome{"outcome": NumberTouched})
	require.NoError(t, err)
	assert.JSONEq(t, `{"outcome":"number_touched"}`, string(b))
	assert.True(t, Win.Terminal())
	assert.True(t, Loss.Terminal())
	assert.False(t, NumberTouched.Terminal())
}
