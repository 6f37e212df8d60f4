package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lockexport/pkg/errors"
	"github.com/matzehuels/lockexport/pkg/export"
	"github.com/matzehuels/lockexport/pkg/lock"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	v := newConfig()

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the lock file to another format",
		Long: `Export the locked packages of a Poetry project.

Packages are written sorted by name. Git dependencies become editable VCS
references, local path dependencies become paths, and packages from custom
indexes carry an --index-url line. Hashes are included unless
--without-hashes is given.

Every flag can also be set through the environment, e.g. LOCKEXPORT_DEV=true.

Examples:
  lockexport export                                  # requirements.txt to stdout
  lockexport export -o requirements.txt              # write to a file
  lockexport export --dev --without-hashes           # include dev packages, no hashes
  lockexport export --cwd ./service --lock prod.lock # export another project`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), loadConfig(v))
		},
	}

	bindFlags(cmd, v)

	return cmd
}

// runExport loads the lock file and writes the export described by cfg.
func (c *CLI) runExport(ctx context.Context, cfg exportConfig) error {
	logger := loggerFromContext(ctx)

	format := export.Format(cfg.Format)
	if _, err := export.Lookup(format); err != nil {
		return err
	}
	if err := errors.ValidateLockFilename(cfg.Lock); err != nil {
		return err
	}

	dest := export.Destination(export.Stream{W: c.out})
	if cfg.Output != "" {
		if err := errors.ValidatePath(cfg.Output); err != nil {
			return err
		}
		dest = export.Path(cfg.Output)
	}

	cwd, err := workingDir(cfg.Cwd)
	if err != nil {
		return err
	}

	lockPath := export.Path(cfg.Lock).Resolve(cwd)
	logger.Debugf("Reading %s", lockPath)

	prog := newProgress(logger)
	l, err := lock.Load(lockPath)
	if err != nil {
		return err
	}
	if name := lock.ProjectName(filepath.Dir(lockPath)); name != "" {
		logger.Debugf("Project %s (content-hash %s)", name, l.ContentHash())
	}

	return c.writeExport(ctx, prog, l, format, cwd, dest, cfg.options())
}

// lockedSource is the lock data an export reads. *lock.Locker implements it.
type lockedSource interface {
	export.RepositoryProvider
	Len() int
}

// writeExport selects the dependency group once, renders it, and delivers it.
func (c *CLI) writeExport(ctx context.Context, prog *progress, src lockedSource, format export.Format, cwd string, dest export.Destination, opts export.Options) error {
	logger := loggerFromContext(ctx)

	pkgs := src.LockedRepository(opts.Dev).Packages()
	logger.Debugf("Selected %d of %d locked packages (dev=%t, hashes=%t)", len(pkgs), src.Len(), opts.Dev, opts.WithHashes)
	for _, p := range pkgs {
		logger.Debug("Locked package",
			"name", p.Name,
			"version", p.Version,
			"source", string(p.SourceType),
			"optional", p.Optional,
			"description", p.Description,
		)
	}

	if err := export.ExportPackages(format, pkgs, cwd, dest, opts); err != nil {
		return err
	}

	if p, ok := dest.(export.Path); ok {
		prog.done(fmt.Sprintf("Exported %d packages to %s", len(pkgs), format))
		printSuccess(c.status, "Wrote %s", StyleHighlight.Render(string(format)))
		printFile(c.status, p.Resolve(cwd))
		if skipped := src.Len() - len(pkgs); skipped > 0 {
			printInfo(c.status, "Skipped %d development packages (use --dev to include them)", skipped)
		}
	}
	return nil
}

// formatsCommand lists the supported export formats.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported export formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range export.Formats() {
				printKeyValue(c.out, string(f), formatDescriptions[f])
			}
			return nil
		},
	}
}

var formatDescriptions = map[export.Format]string{
	export.FormatRequirementsTxt: "pip requirements file",
}

// workingDir returns dir, or the process working directory when dir is empty.
func workingDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "working directory")
	}
	return wd, nil
}
