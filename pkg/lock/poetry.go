package lock

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lockexport/pkg/errors"
)

const sha256Prefix = "sha256:"

// Load reads and decodes the poetry.lock file at path.
func Load(path string) (*Locker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "lock file not found")
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read lock file")
	}
	return Parse(data)
}

// Parse decodes an in-memory poetry.lock document.
func Parse(data []byte) (*Locker, error) {
	var lf lockFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLock, err, "decode lock")
	}

	pkgs := make([]Package, 0, len(lf.Packages))
	for _, lp := range lf.Packages {
		pkgs = append(pkgs, Package{
			Name:            lp.Name,
			Version:         lp.Version,
			Description:     lp.Description,
			Category:        lp.Category,
			Optional:        lp.Optional,
			Develop:         lp.Develop,
			SourceType:      SourceType(lp.Source.Type),
			SourceURL:       lp.Source.URL,
			SourceReference: lp.Source.Reference,
			Hashes:          lf.Metadata.hashesFor(lp),
		})
	}

	return &Locker{packages: pkgs, contentHash: lf.Metadata.ContentHash}, nil
}

// ProjectName returns the project name declared in dir/pyproject.toml, or
// an empty string when the file is missing or unnamed.
func ProjectName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return ""
	}
	var pyproject struct {
		Tool struct {
			Poetry struct {
				Name string `toml:"name"`
			} `toml:"poetry"`
		} `toml:"tool"`
		Project struct {
			Name string `toml:"name"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &pyproject); err != nil {
		return ""
	}
	if pyproject.Tool.Poetry.Name != "" {
		return pyproject.Tool.Poetry.Name
	}
	return pyproject.Project.Name
}

type lockFile struct {
	Packages []lockPackage `toml:"package"`
	Metadata lockMetadata  `toml:"metadata"`
}

type lockPackage struct {
	Name        string      `toml:"name"`
	Version     string      `toml:"version"`
	Description string      `toml:"description"`
	Category    string      `toml:"category"`
	Optional    bool        `toml:"optional"`
	Develop     bool        `toml:"develop"`
	Source      lockSource  `toml:"source"`
	Files       []lockAsset `toml:"files"`
}

type lockSource struct {
	Type      string `toml:"type"`
	URL       string `toml:"url"`
	Reference string `toml:"reference"`
}

type lockAsset struct {
	File string `toml:"file"`
	Hash string `toml:"hash"`
}

type lockMetadata struct {
	ContentHash string                 `toml:"content-hash"`
	Hashes      map[string][]string    `toml:"hashes"`
	Files       map[string][]lockAsset `toml:"files"`
}

// hashesFor picks the first hash layout that has entries for pkg.
func (m lockMetadata) hashesFor(pkg lockPackage) []string {
	if h, ok := m.Hashes[pkg.Name]; ok && len(h) > 0 {
		out := make([]string, 0, len(h))
		for _, v := range h {
			out = append(out, strings.TrimPrefix(v, sha256Prefix))
		}
		return out
	}
	if len(pkg.Files) > 0 {
		return assetHashes(pkg.Files)
	}
	return assetHashes(m.Files[pkg.Name])
}

func assetHashes(assets []lockAsset) []string {
	var out []string
	for _, a := range assets {
		algo, digest, ok := strings.Cut(a.Hash, ":")
		switch {
		case !ok && a.Hash != "":
			out = append(out, a.Hash)
		case ok && algo == "sha256":
			out = append(out, digest)
		}
	}
	return out
}
