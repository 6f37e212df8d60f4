package export

import "github.com/matzehuels/lockexport/pkg/lock"

// RepositoryProvider hands out the locked packages of one dependency group.
// [*lock.Locker] implements it.
type RepositoryProvider interface {
	LockedRepository(dev bool) lock.Repository
}

// Exporter renders a lock into one of the supported formats.
type Exporter struct {
	lock RepositoryProvider
}

// New returns an Exporter reading packages from p.
func New(p RepositoryProvider) *Exporter {
	return &Exporter{lock: p}
}

// Export renders the packages selected by opts.Dev in format f and delivers
// the text to dest. An unsupported format fails before the lock is read or
// anything is written.
func (e *Exporter) Export(f Format, workingDir string, dest Destination, opts Options) error {
	if _, err := Lookup(f); err != nil {
		return err
	}
	return ExportPackages(f, e.lock.LockedRepository(opts.Dev).Packages(), workingDir, dest, opts)
}

// ExportPackages renders an already selected package list in format f and
// delivers it to dest.
func ExportPackages(f Format, pkgs []lock.Package, workingDir string, dest Destination, opts Options) error {
	render, err := Lookup(f)
	if err != nil {
		return err
	}
	return Deliver(render(pkgs, opts), workingDir, dest)
}

// Render returns the export text without delivering it.
func (e *Exporter) Render(f Format, opts Options) (string, error) {
	render, err := Lookup(f)
	if err != nil {
		return "", err
	}
	pkgs := e.lock.LockedRepository(opts.Dev).Packages()
	return render(pkgs, opts), nil
}
