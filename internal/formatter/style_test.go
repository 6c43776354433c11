package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/fje/internal/icons"
)

func TestParseStyle(t *testing.T) {
	for _, name := range StyleNames() {
		s, err := ParseStyle(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(s))
	}

	s, err := ParseStyle("  rectangle\n")
	require.NoError(t, err)
	assert.Equal(t, StyleRectangle, s)

	_, err = ParseStyle("Tree")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedStyle)

	_, err = ParseStyle("spiral")
	var styleErr *UnsupportedStyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, "spiral", styleErr.Name)
	assert.EqualError(t, err, `unsupported style "spiral": valid values are tree, rectangle`)
}

func TestNew(t *testing.T) {
	r, err := New(StyleTree)
	require.NoError(t, err)
	assert.IsType(t, BranchRenderer{}, r)

	r, err = New(StyleRectangle)
	require.NoError(t, err)
	assert.IsType(t, BoxRenderer{}, r)

	_, err = New(Style(""))
	assert.ErrorIs(t, err, ErrUnsupportedStyle)
}

func TestStylesAreRegistered(t *testing.T) {
	got := Styles()
	assert.Equal(t, []Style{StyleTree, StyleRectangle}, got)
	for _, s := range got {
		_, ok := registry[s]
		assert.True(t, ok, s)
	}
	got[0] = "mutated"
	assert.Equal(t, StyleTree, Styles()[0])
}

func TestRender(t *testing.T) {
	root := buildJSON(t, `{"a":"b"}`)

	out, err := Render(root, StyleTree, icons.Pair{})
	require.NoError(t, err)
	assert.Equal(t, "└─a\n   └─b", out)

	_, err = Render(root, Style("diamond"), icons.Pair{})
	assert.ErrorIs(t, err, ErrUnsupportedStyle)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "plain", displayName("plain"))
	assert.Equal(t, `a\r\nb\tc\rd`, displayName("a\r\nb\tc\rd"))
}
