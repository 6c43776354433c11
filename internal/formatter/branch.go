package formatter

import (
	"strings"
	"unicode"

	"github.com/oakwood-commons/fje/internal/icons"
	"github.com/oakwood-commons/fje/internal/tree"
)

const (
	branchTee   = "├─"
	branchElbow = "└─"
	branchPipe  = "│  "
	branchBlank = "   "
)

// BranchRenderer draws the "tree" style:
//
//	├─a
//	│  └─b
//	└─c
//
// The root itself is not drawn; its children start at column zero. A root
// without children is drawn as a single leaf row.
type BranchRenderer struct{}

// Render implements Renderer.
func (BranchRenderer) Render(root *tree.Node, glyphs icons.Pair) string {
	if root.IsLeaf() {
		return branchLine("", branchElbow, glyphs.Leaf, root.Name)
	}
	var lines []string
	for _, child := range root.Children {
		lines = appendBranch(lines, child, "", glyphs)
	}
	return strings.Join(lines, "\n")
}

// appendBranch adds n's row and then its subtree. indent holds one column of
// three cells per ancestor below the root: a bar while that ancestor still has
// siblings to come, blanks once it was the last.
func appendBranch(lines []string, n *tree.Node, indent string, glyphs icons.Pair) []string {
	corner, next := branchTee, indent+branchPipe
	if n.IsLast {
		corner, next = branchElbow, indent+branchBlank
	}
	glyph := glyphs.Node
	if n.IsLeaf() {
		glyph = glyphs.Leaf
	}
	lines = append(lines, branchLine(indent, corner, glyph, n.Name))
	for _, c := range n.Children {
		lines = appendBranch(lines, c, next, glyphs)
	}
	return lines
}

// branchLine trims the padding a glyph leaves after an empty name. Names keep
// their own trailing spaces, as in the box style.
func branchLine(indent, corner, glyph, name string) string {
	if name == "" {
		return strings.TrimRightFunc(indent+corner+glyph, unicode.IsSpace)
	}
	return indent + corner + glyph + displayName(name)
}
