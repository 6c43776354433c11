package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/fje/internal/icons"
	"github.com/oakwood-commons/fje/internal/tree"
)

const (
	// boxMargin is the fill added after the widest row.
	boxMargin = 5

	boxPipe       = "│ "
	boxPipeBottom = "└─"
	boxTop        = "┌─"
	boxTee        = "├─"
	boxTeeBottom  = "┴─"
	boxFill       = "─"

	boxCornerTop    = "┐"
	boxCornerBottom = "┘"
	boxEdge         = "┤"
)

// BoxRenderer draws the "rectangle" style: every node on its own row, rows
// filled with ─ to a common width and closed by a right border.
//
//	┌─a───────┐
//	│ ├─1─────┤
//	└─┴─2─────┘
//
// Rows are measured in terminal cells so wide glyphs keep the border aligned.
// The output starts with an empty line and has no trailing newline. A box of
// a single row (an empty document or a lone scalar) closes with ┐ only and
// has no ┘.
type BoxRenderer struct {
	width *runewidth.Condition
}

// NewBoxRenderer returns a BoxRenderer that measures with a fixed,
// locale-independent width table.
func NewBoxRenderer() BoxRenderer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return BoxRenderer{width: cond}
}

// boxRow is one node's row before it is closed into the box.
type boxRow struct {
	depth int
	glyph string
	name  string
}

// content returns the row text up to the name. The first row opens the box;
// the last row turns its pipes and tee into the bottom border.
func (r boxRow) content(first, last bool) string {
	pipe, tee := boxPipe, boxTee
	if last {
		pipe, tee = boxPipeBottom, boxTeeBottom
	}
	if first {
		tee = boxTop
	}
	levels := r.depth - 1
	if levels < 0 {
		levels = 0
	}
	return strings.Repeat(pipe, levels) + tee + r.glyph + displayName(r.name)
}

// Render implements Renderer.
func (b BoxRenderer) Render(root *tree.Node, glyphs icons.Pair) string {
	if b.width == nil {
		b = NewBoxRenderer()
	}
	rows := boxRows(root, glyphs)

	contents := make([]string, len(rows))
	widths := make([]int, len(rows))
	maxWidth := 0
	for i, r := range rows {
		contents[i] = r.content(i == 0, i == len(rows)-1)
		widths[i] = b.width.StringWidth(contents[i])
		if widths[i] > maxWidth {
			maxWidth = widths[i]
		}
	}
	maxWidth += boxMargin

	var sb strings.Builder
	sb.WriteString("\n")
	for i, c := range contents {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(c)
		sb.WriteString(strings.Repeat(boxFill, maxWidth-widths[i]))
		switch {
		case i == 0:
			sb.WriteString(boxCornerTop)
		case i == len(contents)-1:
			sb.WriteString(boxCornerBottom)
		default:
			sb.WriteString(boxEdge)
		}
	}
	return sb.String()
}

// boxRows lists the nodes below root in pre-order. A root without children
// becomes the only row.
func boxRows(root *tree.Node, glyphs icons.Pair) []boxRow {
	if root.IsLeaf() {
		return []boxRow{{depth: 1, glyph: glyphs.Leaf, name: root.Name}}
	}
	var rows []boxRow
	for _, child := range root.Children {
		child.Walk(func(n *tree.Node) bool {
			glyph := glyphs.Node
			if n.IsLeaf() {
				glyph = glyphs.Leaf
			}
			rows = append(rows, boxRow{depth: n.Depth, glyph: glyph, name: n.Name})
			return true
		})
	}
	return rows
}
