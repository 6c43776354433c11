// Package settings provides build metadata, per-run options and context
// helpers shared by the fje command and its packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "fje"

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// InputSettings says where the document comes from.
type InputSettings struct {
	Path      string
	FromStdin bool
}

// Run holds the options of a single execution.
type Run struct {
	MinLogLevel int8
	Input       InputSettings
	Format      string
	Style       string
	Icons       string
	ConfigFile  string
}

// NewCliParams returns the defaults used by the command line.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Format:      "auto",
		Style:       "tree",
		Icons:       "default",
	}
}

// InputName is how the input is named in logs and error messages.
func (r *Run) InputName() string {
	if r.Input.FromStdin || r.Input.Path == StdinPath {
		return "<stdin>"
	}
	return r.Input.Path
}
