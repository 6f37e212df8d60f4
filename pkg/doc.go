// Package pkg provides the libraries behind lockexport.
//
// # Overview
//
// lockexport turns a resolved Poetry lock snapshot into a requirements.txt
// that pip can install from. The pkg directory is organized into:
//
//  1. [lock] - Decoding poetry.lock files into locked packages per group
//  2. [export] - Rendering packages to an export format and delivering it
//  3. [errors] - Structured, coded errors shared by all packages
//  4. [buildinfo] - Version information injected at build time
//
// # Architecture
//
//	poetry.lock
//	     ↓
//	[lock] package (Locker.LockedRepository(dev))
//	     ↓
//	[export] package (Lookup → Renderer → Deliver)
//	     ↓
//	stdout or file
//
// # Quick Start
//
//	l, err := lock.Load("poetry.lock")
//	if err != nil {
//	    return err
//	}
//	return export.New(l).Export(export.FormatRequirementsTxt, ".",
//	    export.Stream{W: os.Stdout}, export.DefaultOptions())
//
// [lock]: github.com/matzehuels/lockexport/pkg/lock
// [export]: github.com/matzehuels/lockexport/pkg/export
// [errors]: github.com/matzehuels/lockexport/pkg/errors
// [buildinfo]: github.com/matzehuels/lockexport/pkg/buildinfo
package pkg
