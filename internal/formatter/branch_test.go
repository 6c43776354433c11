package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/fje/internal/icons"
	"github.com/oakwood-commons/fje/internal/tree"
	"github.com/oakwood-commons/fje/pkg/loader"
)

func buildJSON(t *testing.T, doc string) *tree.Node {
	t.Helper()
	v, err := loader.LoadBytes([]byte(doc), loader.FormatJSON)
	require.NoError(t, err)
	return tree.Build(v)
}

func TestBranchRenderer(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		family icons.Family
		want   string
	}{
		{
			name:   "single pair",
			doc:    `{"a":"b"}`,
			family: icons.FamilyDefault,
			want:   "└─a\n   └─b",
		},
		{
			name:   "array under key",
			doc:    `{"a":[1,2]}`,
			family: icons.FamilyCircle,
			want:   "└─○a\n   ├─●1\n   └─●2",
		},
		{
			name:   "siblings",
			doc:    `{"a":{"b":"c"},"d":"e"}`,
			family: icons.FamilyDefault,
			want:   "├─a\n│  └─b\n│     └─c\n└─d\n   └─e",
		},
		{
			name:   "empty containers are leaves",
			doc:    `{"a":{},"b":[]}`,
			family: icons.FamilyCircle,
			want:   "├─●a\n└─●b",
		},
		{
			name:   "poker face glyphs",
			doc:    `{"k":"v"}`,
			family: icons.FamilyPokerFace,
			want:   "└─♢k\n   └─♤v",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BranchRenderer{}.Render(buildJSON(t, tt.doc), icons.Glyphs(tt.family))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBranchRendererLeafRoot(t *testing.T) {
	root := &tree.Node{Name: tree.RootName, IsRoot: true, IsLast: true}
	assert.Equal(t, "└─root", BranchRenderer{}.Render(root, icons.Pair{}))
	assert.Equal(t, "└─●root", BranchRenderer{}.Render(root, icons.Glyphs(icons.FamilyCircle)))
}

func TestBranchRendererShape(t *testing.T) {
	root := buildJSON(t, `{"a":{"b":[1,{"c":null}],"d":true},"e":"f","g":[]}`)
	out := BranchRenderer{}.Render(root, icons.Pair{})
	lines := strings.Split(out, "\n")

	// One row and one connector per node below the root.
	require.Len(t, lines, root.Count()-1)
	corners := strings.Count(out, branchTee) + strings.Count(out, branchElbow)
	assert.Equal(t, root.Count()-1, corners)
	assert.Equal(t, len(root.Children), strings.Count(out, "\n"+branchElbow)+strings.Count(out, "\n"+branchTee)+1)

	for _, l := range lines {
		assert.Equal(t, strings.TrimRight(l, " "), l, "trailing space in %q", l)
	}
}

func TestBranchRendererTrimsTrailingGlyphSpace(t *testing.T) {
	root := &tree.Node{Name: tree.RootName, IsRoot: true, IsLast: true}
	root.Children = []*tree.Node{{Name: "", Depth: 1, IsLast: true}}
	got := BranchRenderer{}.Render(root, icons.Glyphs(icons.FamilyFlower))
	assert.Equal(t, "└─✿", got)
}

func TestBranchRendererIsRepeatable(t *testing.T) {
	root := buildJSON(t, `{"x":[{"y":1},2],"z":"w"}`)
	glyphs := icons.Glyphs(icons.FamilyStar)
	first := BranchRenderer{}.Render(root, glyphs)
	assert.Equal(t, first, BranchRenderer{}.Render(root, glyphs))
}

func TestBranchRendererUnknownFamilyMatchesDefault(t *testing.T) {
	root := buildJSON(t, `{"a":{"b":"c"}}`)
	assert.Equal(t,
		BranchRenderer{}.Render(root, icons.Glyphs(icons.FamilyDefault)),
		BranchRenderer{}.Render(root, icons.Glyphs(icons.Family("nope"))),
	)
}

func TestBranchRendererEscapesNames(t *testing.T) {
	root := buildJSON(t, `{"two\nlines":"tab\there"}`)
	assert.Equal(t, "└─two\\nlines\n   └─tab\\there", BranchRenderer{}.Render(root, icons.Pair{}))
}

func TestBranchRendererLeafLinesMatchScalars(t *testing.T) {
	docs := map[string]int{
		`{"a":"b"}`:                             1,
		`{"a":[1,2,{"b":null}],"c":{"d":true}}`: 4,
		`[[["deep"]],"x",3.5]`:                  3,
		`"top"`:                                 1,
	}
	glyphs := icons.Glyphs(icons.FamilyCircle)
	for doc, scalars := range docs {
		root := buildJSON(t, doc)
		out := BranchRenderer{}.Render(root, glyphs)
		assert.Equal(t, scalars, strings.Count(out, glyphs.Leaf), doc)
		assert.Equal(t, scalars, root.Leaves(), doc)
	}
}

func TestBranchRendererIndentGrowsWithDepth(t *testing.T) {
	root := buildJSON(t, `{"a":{"b":{"c":{"d":"e"}}}}`)
	out := BranchRenderer{}.Render(root, icons.Pair{})
	for i, line := range strings.Split(out, "\n") {
		corner := strings.Index(line, branchElbow)
		require.GreaterOrEqual(t, corner, 0, line)
		// Three cells per level; every prefix cell here is a single-byte space.
		assert.Equal(t, i*len(branchBlank), corner, line)
	}
}

func TestBranchRendererKeepsTrailingSpaceInNames(t *testing.T) {
	root := buildJSON(t, `{"a ":"b  "}`)
	assert.Equal(t, "└─a \n   └─b  ", BranchRenderer{}.Render(root, icons.Pair{}))
	assert.Equal(t, "└─✿ a \n   └─✿ b  ", BranchRenderer{}.Render(root, icons.Pair{Node: "✿ ", Leaf: "✿ "}))

	box := boxLines(t, NewBoxRenderer().Render(root, icons.Pair{}))
	require.Len(t, box, 2)
	assert.True(t, strings.HasPrefix(box[0], "┌─a "+boxFill), box[0])
	assert.True(t, strings.HasPrefix(box[1], "└─┴─b  "+boxFill), box[1])
}
