// Command gendocs renders README.md into a standalone index.html. Fenced
// code blocks tagged fje are drawn with the fje engine, so the published
// examples always match the binary:
//
//	```fje style=rectangle icons=circle
//	{"a": [1, 2]}
//	```
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/fje/pkg/core"
	"github.com/oakwood-commons/fje/pkg/loader"
)

const fenceTag = "fje"

func main() {
	readme := pflag.String("readme", "README.md", "markdown source")
	out := pflag.StringP("out", "o", "dist/index.html", "generated page")
	dist := pflag.String("dist", "", "release directory scanned for download archives")
	pflag.Parse()

	if err := run(*readme, *out, *dist); err != nil {
		fmt.Fprintf(os.Stderr, "gendocs: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generated %s\n", *out)
}

func run(readmePath, outPath, distDir string) error {
	src, err := os.ReadFile(readmePath)
	if err != nil {
		return err
	}
	engine, err := core.New(core.WithFormat(loader.FormatJSON))
	if err != nil {
		return err
	}
	body, err := renderMarkdown(src, engine)
	if err != nil {
		return fmt.Errorf("%s: %w", readmePath, err)
	}
	if distDir != "" {
		body = replaceInstallationSection(body, downloadsHTML(distDir))
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	var page bytes.Buffer
	writeHeader(&page)
	page.Write(body)
	writeFooter(&page)
	return os.WriteFile(outPath, page.Bytes(), 0o644)
}

// renderMarkdown converts src to HTML, drawing fje blocks on the way. The
// first block that fails to render aborts the page.
func renderMarkdown(src []byte, engine *core.Engine) ([]byte, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse(src)

	var hookErr error
	renderer := html.NewRenderer(html.RendererOptions{
		Flags:          html.CommonFlags | html.HrefTargetBlank,
		RenderNodeHook: diagramHook(engine, &hookErr),
	})
	out := markdown.Render(doc, renderer)
	if hookErr != nil {
		return nil, hookErr
	}
	return out, nil
}

func diagramHook(engine *core.Engine, errp *error) html.RenderNodeFunc {
	return func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
		block, ok := node.(*ast.CodeBlock)
		if !ok || !entering {
			return ast.GoToNext, false
		}
		f, ok, err := parseFence(string(block.Info))
		if !ok {
			return ast.GoToNext, false
		}
		var diagram string
		if err == nil {
			diagram, err = renderBlock(engine, block.Literal, f)
		}
		if err != nil {
			if *errp == nil {
				*errp = err
			}
			return ast.Terminate, true
		}
		io.WriteString(w, `<pre class="fje-diagram"><code>`)
		html.EscapeHTML(w, []byte(strings.TrimPrefix(diagram, "\n")))
		io.WriteString(w, "</code></pre>\n")
		return ast.GoToNext, true
	}
}

func renderBlock(engine *core.Engine, doc []byte, f fence) (string, error) {
	sel, err := core.ParseSelection(f.style, f.family)
	if err != nil {
		return "", err
	}
	return engine.RenderBytes(doc, sel)
}

// fence holds the options of an fje code block.
type fence struct {
	style  string
	family string
}

var errFenceOption = errors.New("unknown fje fence option")

// parseFence reads an info string like "fje style=rectangle icons=circle".
// ok is false for blocks in other languages.
func parseFence(info string) (f fence, ok bool, err error) {
	fields := strings.Fields(info)
	if len(fields) == 0 || fields[0] != fenceTag {
		return fence{}, false, nil
	}
	for _, field := range fields[1:] {
		key, value, found := strings.Cut(field, "=")
		switch {
		case found && key == "style":
			f.style = value
		case found && key == "icons":
			f.family = value
		default:
			return fence{}, true, fmt.Errorf("%w %q", errFenceOption, field)
		}
	}
	return f, true, nil
}

var archiveName = regexp.MustCompile(`^fje_([^_]+(?:-[^_]+)*)_(Darwin|Linux|Windows)_(arm64|x86_64)\.(?:tar\.gz|zip)$`)

var platformNames = map[string]string{
	"Darwin_arm64":   "macOS (Apple Silicon)",
	"Darwin_x86_64":  "macOS (Intel)",
	"Linux_arm64":    "Linux (ARM64)",
	"Linux_x86_64":   "Linux (x86_64)",
	"Windows_arm64":  "Windows (ARM64)",
	"Windows_x86_64": "Windows (x86_64)",
}

type download struct {
	Platform string
	Archive  string
}

// scanDist finds release archives named fje_VERSION_OS_ARCH.ext.
func scanDist(distDir string) (version string, downloads []download) {
	version = "unknown"
	entries, err := os.ReadDir(distDir)
	if err != nil {
		return version, nil
	}
	seen := map[string]bool{}
	for _, e := range entries {
		m := archiveName.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}
		version = m[1]
		key := m[2] + "_" + m[3]
		if seen[key] {
			continue
		}
		seen[key] = true
		downloads = append(downloads, download{Platform: platformNames[key], Archive: e.Name()})
	}
	sort.Slice(downloads, func(i, j int) bool { return downloads[i].Platform < downloads[j].Platform })
	return version, downloads
}

func downloadsHTML(distDir string) string {
	version, downloads := scanDist(distDir)
	var sb strings.Builder
	fmt.Fprintf(&sb, "  <div class=\"downloads\">\n    <h3>%s</h3>\n    <table class=\"download-table\">\n", version)
	for _, d := range downloads {
		fmt.Fprintf(&sb, "      <tr><td class=\"platform-name\">%s</td><td class=\"platform-links\"><a href=\"%s\">download</a></td></tr>\n", d.Platform, d.Archive)
	}
	sb.WriteString("    </table>\n  </div>\n")
	return sb.String()
}

// replaceInstallationSection swaps the README's Installation section for the
// downloads table. Pages without that section are returned unchanged.
func replaceInstallationSection(page []byte, downloads string) []byte {
	s := string(page)
	start := strings.Index(s, `<h2 id="installation">`)
	if start == -1 {
		return page
	}
	next := strings.Index(s[start+1:], `<h2 id="`)
	if next == -1 {
		return page
	}
	next += start + 1
	return []byte(s[:start] + "<h2 id=\"installation\">Installation</h2>\n\n" + downloads + "\n" + s[next:])
}

func writeHeader(w io.Writer) {
	fmt.Fprint(w, `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>fje - Funny JSON Explorer</title>
  <style>
    body { font-family: system-ui, -apple-system, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; line-height: 1.6; color: #333; }
    h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
    code { background: #f1f5f9; padding: 2px 6px; border-radius: 3px; font-family: Monaco, Menlo, monospace; font-size: 0.9em; }
    pre { background: #1e293b; color: #e2e8f0; padding: 16px; border-radius: 6px; overflow-x: auto; }
    pre code { background: none; color: inherit; padding: 0; }
    pre.fje-diagram { line-height: 1.2; }
    .downloads { background: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #2563eb; }
    .download-table td { padding: 6px 8px; }
  </style>
</head>
<body>
`)
}

func writeFooter(w io.Writer) {
	fmt.Fprint(w, "</body>\n</html>\n")
}
