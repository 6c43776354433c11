// Package core is the embeddable API behind the fje command: load a
// document, build its display tree and draw it in one of the diagram styles.
package core

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/fje/internal/formatter"
	"github.com/oakwood-commons/fje/internal/icons"
	"github.com/oakwood-commons/fje/internal/tree"
	"github.com/oakwood-commons/fje/pkg/loader"
)

// Selection is a validated style and icon family. The zero Selection draws
// the tree style without glyphs.
type Selection struct {
	style  formatter.Style
	family icons.Family
}

// ParseSelection validates a style and icon family identifier. Empty
// identifiers select the defaults.
func ParseSelection(style, family string) (Selection, error) {
	var sel Selection
	if style != "" {
		s, err := formatter.ParseStyle(style)
		if err != nil {
			return Selection{}, err
		}
		sel.style = s
	}
	if family != "" {
		f, err := icons.ParseFamily(family)
		if err != nil {
			return Selection{}, err
		}
		sel.family = f
	}
	return sel, nil
}

// Style returns the selected style identifier.
func (s Selection) Style() string {
	if s.style == "" {
		return string(formatter.StyleTree)
	}
	return string(s.style)
}

// Family returns the selected icon family identifier.
func (s Selection) Family() string {
	if s.family == "" {
		return string(icons.FamilyDefault)
	}
	return string(s.family)
}

// Styles lists the style identifiers ParseSelection accepts.
func Styles() []string { return formatter.StyleNames() }

// Families lists the icon family identifiers ParseSelection accepts.
func Families() []string { return icons.Names() }

// Glyphs returns the node and leaf glyphs of a family. Unknown families
// have none.
func Glyphs(family string) (node, leaf string) {
	p := icons.Glyphs(icons.Family(family))
	return p.Node, p.Leaf
}

// Engine renders documents.
type Engine struct {
	Format loader.Format
	Logger logr.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output.
func WithLogger(lgr logr.Logger) Option {
	return func(e *Engine) {
		e.Logger = lgr
	}
}

// WithFormat forces an input format instead of detecting it.
func WithFormat(format loader.Format) Option {
	return func(e *Engine) {
		e.Format = format
	}
}

// New creates an Engine with defaults.
func New(opts ...Option) (*Engine, error) {
	engine := &Engine{
		Format: loader.FormatAuto,
		Logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	format, err := loader.ParseFormat(string(engine.Format))
	if err != nil {
		return nil, err
	}
	engine.Format = format
	return engine, nil
}

// Render draws an already loaded value.
func (e *Engine) Render(v loader.Value, sel Selection) (string, error) {
	root := tree.Build(v)
	e.logger().V(1).Info("built display tree",
		"nodes", root.Count(),
		"leaves", root.Leaves(),
		"depth", root.MaxDepth(),
	)

	out, err := formatter.Render(root, formatter.Style(sel.Style()), icons.Glyphs(icons.Family(sel.Family())))
	if err != nil {
		return "", err
	}
	e.logger().V(1).Info("rendered diagram", "style", sel.Style(), "icons", sel.Family(), "bytes", len(out))
	return out, nil
}

// RenderFile loads path and draws it. The format comes from the Engine, or
// from the file extension when it is auto.
func (e *Engine) RenderFile(path string, sel Selection) (string, error) {
	format := e.format()
	if format == loader.FormatAuto {
		format = loader.DetectFormat(path)
	}
	e.logger().V(1).Info("loading file", "path", path, "format", string(format))
	v, err := loader.LoadFile(path, format)
	if err != nil {
		return "", err
	}
	return e.Render(v, sel)
}

// RenderReader reads a whole document from r and draws it.
func (e *Engine) RenderReader(r io.Reader, sel Selection) (string, error) {
	e.logger().V(1).Info("loading stream", "format", string(e.format()))
	v, err := loader.LoadReader(r, e.format())
	if err != nil {
		return "", err
	}
	return e.Render(v, sel)
}

// RenderBytes draws an in-memory document.
func (e *Engine) RenderBytes(data []byte, sel Selection) (string, error) {
	v, err := loader.LoadBytes(data, e.format())
	if err != nil {
		return "", err
	}
	return e.Render(v, sel)
}

func (e *Engine) logger() logr.Logger {
	if e == nil || e.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return e.Logger
}

func (e *Engine) format() loader.Format {
	if e == nil || e.Format == "" {
		return loader.FormatAuto
	}
	return e.Format
}
