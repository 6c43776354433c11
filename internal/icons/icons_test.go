package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphs(t *testing.T) {
	tests := []struct {
		family Family
		want   Pair
	}{
		{FamilyDefault, Pair{}},
		{FamilyPokerFace, Pair{Node: "♢", Leaf: "♤"}},
		{FamilyCircle, Pair{Node: "○", Leaf: "●"}},
		{FamilyFlower, Pair{Node: "❀ ", Leaf: "✿ "}},
		{FamilyCrown, Pair{Node: "♚ ", Leaf: "♛ "}},
		{FamilyStar, Pair{Node: "☆ ", Leaf: "★ "}},
		{FamilyRectangle, Pair{Node: "□ ", Leaf: " ■ "}},
	}
	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			assert.Equal(t, tt.want, Glyphs(tt.family))
		})
	}
}

func TestGlyphsEveryFamilyHasAnEntry(t *testing.T) {
	for _, f := range Families() {
		_, ok := catalog[f]
		assert.True(t, ok, f)
		if f != FamilyDefault {
			assert.False(t, Glyphs(f).Empty(), f)
		}
	}
}

func TestGlyphsUnknownFamilyIsEmpty(t *testing.T) {
	assert.True(t, Glyphs(Family("recrangle")).Empty())
	assert.True(t, Glyphs("").Empty())
}

func TestParseFamily(t *testing.T) {
	for _, name := range Names() {
		f, err := ParseFamily(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(f))
	}

	f, err := ParseFamily(" circle ")
	require.NoError(t, err)
	assert.Equal(t, FamilyCircle, f)

	_, err = ParseFamily("hexagon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFamily)
	var famErr *UnsupportedFamilyError
	require.ErrorAs(t, err, &famErr)
	assert.Equal(t, "hexagon", famErr.Name)
	assert.Contains(t, err.Error(), "poker-face")
}

func TestFamiliesOrderAndCopy(t *testing.T) {
	got := Families()
	require.Len(t, got, 9)
	assert.Equal(t, FamilyDefault, got[0])
	assert.Equal(t, FamilyWeather, got[len(got)-1])

	got[0] = "mutated"
	assert.Equal(t, FamilyDefault, Families()[0])
}
