package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxPathLength bounds user-supplied lock and output paths.
const maxPathLength = 4096

// ValidatePath validates a user-supplied file path before it is joined with a
// working directory. Absolute paths are allowed; they replace the working
// directory when resolved.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Path cannot name a directory root ("/", ".")
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	switch filepath.Clean(path) {
	case ".", string(filepath.Separator):
		return New(ErrCodeInvalidPath, "path must name a file: %q", path)
	}

	return nil
}

// ValidateLockFilename validates the base name of a lock file path.
// Only files ending in ".lock" are accepted.
func ValidateLockFilename(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".lock") || name == ".lock" {
		return New(ErrCodeInvalidLock, "not a lock file: %q", name)
	}

	return nil
}
