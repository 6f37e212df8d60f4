package export

import (
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/matzehuels/lockexport/pkg/errors"
)

// Destination is where rendered text is delivered: a [Stream] or a [Path].
type Destination interface {
	destination()
}

// Stream delivers to an already-open writer. The writer is not closed and
// must not be nil, including a nil pointer stored in the interface.
type Stream struct {
	W io.Writer
}

// Path delivers to a file, resolved against the working directory unless
// absolute. The file is created or truncated.
type Path string

func (Stream) destination() {}
func (Path) destination()   {}

// Deliver writes text to dest as UTF-8 bytes.
func Deliver(text, workingDir string, dest Destination) error {
	switch d := dest.(type) {
	case Stream:
		if isNilWriter(d.W) {
			return errors.New(errors.ErrCodeInvalidInput, "nil output stream")
		}
		if _, err := io.WriteString(d.W, text); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write output")
		}
		return nil
	case Path:
		return writeFile(d.Resolve(workingDir), text)
	default:
		return errors.New(errors.ErrCodeInternal, "unsupported destination %T", dest)
	}
}

// Resolve returns the file path p refers to from workingDir.
func (p Path) Resolve(workingDir string) string {
	if filepath.IsAbs(string(p)) {
		return string(p)
	}
	return filepath.Join(workingDir, string(p))
}

func writeFile(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close output")
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write output")
	}
	return nil
}

// isNilWriter reports whether w is nil or a typed nil of a nilable kind.
func isNilWriter(w io.Writer) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
