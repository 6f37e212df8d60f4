// Package export renders locked packages into installer-consumable package
// lists and delivers the result to a stream or file.
//
// # Overview
//
// An export runs in three steps:
//
//  1. Resolve the requested [Format] to a [Renderer] with [Lookup]. Unknown
//     formats fail with an INVALID_FORMAT error before anything else happens.
//  2. Render the packages of the requested dependency group to text.
//  3. [Deliver] the text to a [Destination].
//
// [Exporter] ties the steps together on top of a lock repository:
//
//	l, err := lock.Load("poetry.lock")
//	if err != nil {
//	    return err
//	}
//	err = export.New(l).Export(export.FormatRequirementsTxt, cwd,
//	    export.Path("requirements.txt"), export.DefaultOptions())
//
// # requirements.txt
//
// [RenderRequirementsTxt] writes one block per package, sorted by name:
//
//	-e git+https://github.com/acme/toolkit.git@abcdef#egg=toolkit
//	-e ../internal
//	private==3.0 \
//	    --index-url https://pypi.acme.dev/simple
//	requests==2.22.0 \
//	    --hash=sha256:aaa \
//	    --hash=sha256:bbb
//
// Rendering is a pure function of its inputs. Records are not validated: a
// git package without a reference renders with an empty ref.
//
// # Concurrency
//
// Renderers hold no state and may run concurrently. [Deliver] performs no
// locking; concurrent exports to the same path race on the file.
package export
