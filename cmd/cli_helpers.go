package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/fje/pkg/core"
)

const defaultMarker = " (default)"

// printIcons lists every family with a sample of its node and leaf glyphs.
// Columns are padded by display width since several glyphs are wide.
func printIcons(w io.Writer, def string) error {
	rows := [][3]string{{"FAMILY", "NODE", "LEAF"}}
	for _, name := range core.Families() {
		node, leaf := core.Glyphs(name)
		label := name
		if name == def {
			label += defaultMarker
		}
		rows = append(rows, [3]string{label, glyphSample(node), glyphSample(leaf)})
	}

	var widths [2]int
	for _, r := range rows {
		for i := range widths {
			if cw := runewidth.StringWidth(r[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for _, r := range rows {
		line := runewidth.FillRight(r[0], widths[0]+2) + runewidth.FillRight(r[1], widths[1]+2) + r[2]
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func glyphSample(g string) string {
	g = strings.TrimSpace(g)
	if g == "" {
		return "-"
	}
	return g
}

func printStyles(w io.Writer, def string) error {
	for _, name := range core.Styles() {
		label := name
		if name == def {
			label += defaultMarker
		}
		if _, err := fmt.Fprintf(w, " - %s\n", label); err != nil {
			return err
		}
	}
	return nil
}

func printConfig(w io.Writer, cfg fileConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
