package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/lockexport/pkg/export"
)

// Config keys. Each doubles as a flag name and, upper-cased with the
// LOCKEXPORT_ prefix, as an environment variable.
const (
	keyFormat        = "format"
	keyOutput        = "output"
	keyWithoutHashes = "without-hashes"
	keyDev           = "dev"
	keyLock          = "lock"
	keyCwd           = "cwd"
)

const defaultLockFile = "poetry.lock"

// exportConfig is the resolved configuration of one export run.
type exportConfig struct {
	Format        string
	Output        string
	WithoutHashes bool
	Dev           bool
	Lock          string
	Cwd           string
}

// options converts the config to renderer options.
func (c exportConfig) options() export.Options {
	return export.Options{WithHashes: !c.WithoutHashes, Dev: c.Dev}
}

// newConfig returns a viper instance reading LOCKEXPORT_* variables.
// Flags bound with bindFlags take precedence when set explicitly.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyFormat, string(export.FormatRequirementsTxt))
	v.SetDefault(keyLock, defaultLockFile)
	v.SetDefault(keyWithoutHashes, false)
	v.SetDefault(keyDev, false)
	return v
}

// bindFlags registers the export flags on cmd and binds them into v.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.Flags()
	f.StringP(keyFormat, "f", string(export.FormatRequirementsTxt), "export format")
	f.StringP(keyOutput, "o", "", "output file, relative to --cwd (stdout if empty)")
	f.Bool(keyWithoutHashes, false, "omit integrity hashes")
	f.Bool(keyDev, false, "include development dependencies")
	f.String(keyLock, defaultLockFile, "lock file, relative to --cwd (name must end in .lock)")
	f.String(keyCwd, "", "working directory (current directory if empty)")
	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(f)
}

// loadConfig reads the resolved values out of v.
func loadConfig(v *viper.Viper) exportConfig {
	return exportConfig{
		Format:        v.GetString(keyFormat),
		Output:        v.GetString(keyOutput),
		WithoutHashes: v.GetBool(keyWithoutHashes),
		Dev:           v.GetBool(keyDev),
		Lock:          v.GetString(keyLock),
		Cwd:           v.GetString(keyCwd),
	}
}
