package lock

import "slices"

// SourceType identifies where a locked package is installed from.
type SourceType string

// Source types recorded in [package.source] tables.
const (
	SourcePinned    SourceType = ""
	SourceGit       SourceType = "git"
	SourceDirectory SourceType = "directory"
	SourceFile      SourceType = "file"
	SourceLegacy    SourceType = "legacy"
)

// IsLocal reports whether the source is a local directory or archive.
func (s SourceType) IsLocal() bool {
	return s == SourceDirectory || s == SourceFile
}

const categoryDev = "dev"

// Package is a single locked package. It is a read-only value; callers must
// not mutate Hashes on packages obtained from a [Repository].
type Package struct {
	Name            string     // Package name as written in the lock
	Version         string     // Exact resolved version
	Description     string     // Summary, informational only
	Category        string     // "main", "dev", or empty
	Optional        bool       // Only installed through an extra
	Develop         bool       // Editable install for local sources
	SourceType      SourceType // Origin kind
	SourceURL       string     // Repository, path, or index URL
	SourceReference string     // VCS ref for git sources
	Hashes          []string   // sha256 digests, without prefix
}

// IsDev reports whether the package belongs to the development group.
func (p Package) IsDev() bool {
	return p.Category == categoryDev
}

// Repository is a fixed collection of locked packages for one dependency
// group. Package order is not significant.
type Repository interface {
	Packages() []Package
}

type repository struct {
	packages []Package
}

// Packages returns a copy of the repository's packages.
func (r *repository) Packages() []Package {
	return slices.Clone(r.packages)
}

// NewRepository returns a Repository serving pkgs. The slice is copied.
func NewRepository(pkgs []Package) Repository {
	return &repository{packages: slices.Clone(pkgs)}
}

// Locker is a decoded lock file.
type Locker struct {
	packages    []Package
	contentHash string
}

// LockedRepository returns the packages of the requested dependency group.
// With dev=false, packages in the "dev" category are left out.
func (l *Locker) LockedRepository(dev bool) Repository {
	if dev {
		return NewRepository(l.packages)
	}
	main := make([]Package, 0, len(l.packages))
	for _, p := range l.packages {
		if !p.IsDev() {
			main = append(main, p)
		}
	}
	return &repository{packages: main}
}

// ContentHash returns the metadata.content-hash recorded in the lock.
func (l *Locker) ContentHash() string {
	return l.contentHash
}

// Len returns the number of locked packages across all groups.
func (l *Locker) Len() int {
	return len(l.packages)
}
