package export

import (
	"slices"
	"strings"

	"github.com/matzehuels/lockexport/pkg/errors"
	"github.com/matzehuels/lockexport/pkg/lock"
)

// Format identifies an export target.
type Format string

// FormatRequirementsTxt is the pip requirements file format.
const FormatRequirementsTxt Format = "requirements.txt"

// Options controls rendering.
type Options struct {
	WithHashes bool // Embed integrity hashes when the lock has them
	Dev        bool // Include the development dependency group
}

// DefaultOptions returns hashes on, development packages off.
func DefaultOptions() Options {
	return Options{WithHashes: true}
}

// Renderer turns a package list into the text of one export format.
// Renderers must not modify pkgs.
type Renderer func(pkgs []lock.Package, opts Options) string

var renderers = map[Format]Renderer{
	FormatRequirementsTxt: RenderRequirementsTxt,
}

// Lookup returns the renderer registered for f.
func Lookup(f Format) (Renderer, error) {
	r, ok := renderers[f]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid export format: %q (must be one of: %s)", string(f), formatList())
	}
	return r, nil
}

// Formats returns the supported formats in sorted order.
func Formats() []Format {
	out := make([]Format, 0, len(renderers))
	for f := range renderers {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func formatList() string {
	fs := Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
