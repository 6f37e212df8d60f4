package export

import (
	"slices"
	"strings"

	"github.com/matzehuels/lockexport/pkg/lock"
)

const (
	lineContinuation   = " \\\n"
	continuationIndent = "    "
)

// RenderRequirementsTxt renders pkgs as a pip requirements file.
//
// Packages are sorted by name. Git sources become editable VCS references,
// local directories and files become their path (editable when Develop is
// set), and everything else is pinned with ==. Legacy sources add an
// --index-url continuation. With opts.WithHashes, each hash adds a
// --hash=sha256 continuation; the last line of a block never ends in a
// continuation marker.
func RenderRequirementsTxt(pkgs []lock.Package, opts Options) string {
	sorted := slices.Clone(pkgs)
	slices.SortStableFunc(sorted, func(a, b lock.Package) int {
		return strings.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	for _, p := range sorted {
		writeRequirement(&b, p, opts)
	}
	return b.String()
}

func writeRequirement(b *strings.Builder, p lock.Package, opts Options) {
	switch {
	case p.SourceType == lock.SourceGit:
		b.WriteString("-e git+")
		b.WriteString(p.SourceURL)
		b.WriteByte('@')
		b.WriteString(p.SourceReference)
		b.WriteString("#egg=")
		b.WriteString(p.Name)
	case p.SourceType.IsLocal():
		if p.Develop {
			b.WriteString("-e ")
		}
		b.WriteString(p.SourceURL)
	default:
		b.WriteString(p.Name)
		b.WriteString("==")
		b.WriteString(p.Version)
		if p.SourceType == lock.SourceLegacy && p.SourceURL != "" {
			b.WriteString(lineContinuation)
			b.WriteString(continuationIndent)
			b.WriteString("--index-url ")
			b.WriteString(p.SourceURL)
		}
	}

	if opts.WithHashes {
		for _, h := range p.Hashes {
			b.WriteString(lineContinuation)
			b.WriteString(continuationIndent)
			b.WriteString("--hash=sha256:")
			b.WriteString(h)
		}
	}

	b.WriteByte('\n')
}
