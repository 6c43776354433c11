// Package icons holds the glyph pairs prefixed to rendered node names.
package icons

import (
	"errors"
	"fmt"
	"strings"
)

// Family names a set of glyphs.
type Family string

const (
	FamilyDefault   Family = "default"
	FamilyPokerFace Family = "poker-face"
	FamilyCircle    Family = "circle"
	FamilyFlower    Family = "flower"
	FamilyStar      Family = "star"
	FamilyCrown     Family = "crown"
	FamilyAnimal    Family = "animal"
	FamilyRectangle Family = "rectangle"
	FamilyWeather   Family = "weather"
)

// ErrUnsupportedFamily is matched by *UnsupportedFamilyError.
var ErrUnsupportedFamily = errors.New("unsupported icon family")

// UnsupportedFamilyError reports an identifier outside the family list.
type UnsupportedFamilyError struct {
	Name string
}

func (e *UnsupportedFamilyError) Error() string {
	return fmt.Sprintf("unsupported icon family %q: valid values are %s", e.Name, strings.Join(Names(), ", "))
}

// Unwrap lets errors.Is match ErrUnsupportedFamily.
func (e *UnsupportedFamilyError) Unwrap() error { return ErrUnsupportedFamily }

// Pair is the glyph put in front of internal nodes and of leaves.
type Pair struct {
	Node string
	Leaf string
}

// Empty reports whether neither glyph is set.
func (p Pair) Empty() bool { return p.Node == "" && p.Leaf == "" }

var families = []Family{
	FamilyDefault,
	FamilyPokerFace,
	FamilyCircle,
	FamilyFlower,
	FamilyStar,
	FamilyCrown,
	FamilyAnimal,
	FamilyRectangle,
	FamilyWeather,
}

// Some glyphs carry trailing spacing so wide symbols do not touch the name.
var catalog = map[Family]Pair{
	FamilyDefault:   {Node: "", Leaf: ""},
	FamilyPokerFace: {Node: "♢", Leaf: "♤"},
	FamilyCircle:    {Node: "○", Leaf: "●"},
	FamilyFlower:    {Node: "❀ ", Leaf: "✿ "},
	FamilyRectangle: {Node: "□ ", Leaf: " ■ "},
	FamilyCrown:     {Node: "♚ ", Leaf: "♛ "},
	FamilyStar:      {Node: "☆ ", Leaf: "★ "},
	FamilyWeather:   {Node: "☀️  ", Leaf: "☁️  "},
	FamilyAnimal:    {Node: "🐶  ", Leaf: "🐱  "},
}

// Families returns every selectable family in listing order.
func Families() []Family {
	return append([]Family(nil), families...)
}

// Names returns the identifiers of Families.
func Names() []string {
	out := make([]string, 0, len(families))
	for _, f := range families {
		out = append(out, string(f))
	}
	return out
}

// ParseFamily validates an identifier.
func ParseFamily(name string) (Family, error) {
	name = strings.TrimSpace(name)
	for _, f := range families {
		if string(f) == name {
			return f, nil
		}
	}
	return "", &UnsupportedFamilyError{Name: name}
}

// Glyphs returns the pair for f. A family without a table entry yields the
// empty pair.
func Glyphs(f Family) Pair {
	return catalog[f]
}
