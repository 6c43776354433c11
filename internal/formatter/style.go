// Package formatter renders display trees as text diagrams.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oakwood-commons/fje/internal/icons"
	"github.com/oakwood-commons/fje/internal/tree"
)

// Style selects a diagram layout.
type Style string

const (
	// StyleTree draws indented branches with ├─, └─ and │ connectors.
	StyleTree Style = "tree"
	// StyleRectangle draws the branches inside a closed box.
	StyleRectangle Style = "rectangle"
)

// ErrUnsupportedStyle is matched by *UnsupportedStyleError.
var ErrUnsupportedStyle = errors.New("unsupported style")

// UnsupportedStyleError reports an identifier outside the style list.
type UnsupportedStyleError struct {
	Name string
}

func (e *UnsupportedStyleError) Error() string {
	return fmt.Sprintf("unsupported style %q: valid values are %s", e.Name, strings.Join(StyleNames(), ", "))
}

// Unwrap lets errors.Is match ErrUnsupportedStyle.
func (e *UnsupportedStyleError) Unwrap() error { return ErrUnsupportedStyle }

// Renderer draws a display tree. Renderers only read the tree.
type Renderer interface {
	Render(root *tree.Node, glyphs icons.Pair) string
}

var styles = []Style{StyleTree, StyleRectangle}

var registry = map[Style]func() Renderer{
	StyleTree:      func() Renderer { return BranchRenderer{} },
	StyleRectangle: func() Renderer { return NewBoxRenderer() },
}

// Styles returns the selectable styles in listing order.
func Styles() []Style {
	return append([]Style(nil), styles...)
}

// StyleNames returns the identifiers of Styles.
func StyleNames() []string {
	out := make([]string, 0, len(styles))
	for _, s := range styles {
		out = append(out, string(s))
	}
	return out
}

// ParseStyle validates a style identifier.
func ParseStyle(name string) (Style, error) {
	name = strings.TrimSpace(name)
	if _, ok := registry[Style(name)]; ok {
		return Style(name), nil
	}
	return "", &UnsupportedStyleError{Name: name}
}

// New returns the renderer registered for s.
func New(s Style) (Renderer, error) {
	ctor, ok := registry[s]
	if !ok {
		return nil, &UnsupportedStyleError{Name: string(s)}
	}
	return ctor(), nil
}

// Render draws root in style s.
func Render(root *tree.Node, s Style, glyphs icons.Pair) (string, error) {
	r, err := New(s)
	if err != nil {
		return "", err
	}
	return r.Render(root, glyphs), nil
}

var nameEscaper = strings.NewReplacer("\r\n", `\r\n`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// displayName keeps a label on a single row.
func displayName(name string) string {
	return nameEscaper.Replace(name)
}
