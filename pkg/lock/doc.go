// Package lock reads resolved dependency snapshots from Poetry lock files.
//
// A lock file pins every package of a project to an exact version and
// records where it came from: the default registry, a VCS checkout, a local
// directory or archive, or a custom ("legacy") package index. [Load] decodes
// a poetry.lock into a [Locker]; [Locker.LockedRepository] then hands out the
// packages for one dependency group.
//
// # Dependency Groups
//
// Packages marked with category "dev" belong to the development group. A
// repository requested with dev=false excludes them; dev=true returns every
// locked package. Lock files written by newer Poetry releases omit the
// category entirely, in which case every package counts as a main package.
//
// # Hashes
//
// Three lock layouts are understood, in order of precedence:
//
//	[metadata.hashes]            # name = ["<hex>", ...]
//	[[package]] files = [...]    # {file = "...", hash = "sha256:<hex>"}
//	[metadata.files]             # name = [{file = "...", hash = "sha256:<hex>"}]
//
// Only sha256 digests are kept, with the algorithm prefix removed. Order is
// preserved as written in the lock.
//
// # Validation
//
// Records are not validated against their source type. A git package
// without a reference is returned as-is with an empty [Package.SourceReference].
package lock
