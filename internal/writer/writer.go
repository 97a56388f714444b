// Package writer writes generated files, leaving files that already hold the same content
// untouched so their modification times don't change.
package writer

import (
	"crypto/sha256"
	"io"
	"io/fs"
	"os"

	gfs "github.com/gopherfs/fs"
	osfs "github.com/gopherfs/fs/io/os"
	"github.com/gostdlib/base/context"
	"github.com/pkg/errors"
)

// FS is the filesystem a Writer needs.
type FS interface {
	fs.ReadFileFS
	gfs.Writer
}

// OpenFlags returns the OpenFile option of an FS implementation that sets the
// "os" package flags, such as osfs.WithFlags or memfs.Flags.
type OpenFlags func(flags int) gfs.OFOption

// Writer writes generated files to an FS.
type Writer struct {
	fs    FS
	flags OpenFlags
}

// Option is an optional argument to New.
type Option func(w *Writer)

// WithFS uses the fs passed to write files to.
func WithFS(fs FS) Option {
	return func(w *Writer) {
		w.fs = fs
	}
}

// WithOpenFlags sets how the Writer asks the FS to open an existing file for writing.
// This is needed when WriteFile on the FS refuses to replace a file. Defaults to osfs.WithFlags.
func WithOpenFlags(flags OpenFlags) Option {
	return func(w *Writer) {
		w.flags = flags
	}
}

// New creates a new Writer. By default it writes to the local filesystem.
func New(options ...Option) (*Writer, error) {
	w := &Writer{}
	for _, o := range options {
		o(w)
	}
	if w.fs == nil {
		fs, err := osfs.New()
		if err != nil {
			return nil, errors.Wrap(err, "could not create an osfs")
		}
		w.fs = fs
	}
	if w.flags == nil {
		w.flags = osfs.WithFlags
	}
	return w, nil
}

// Write writes content to path, replacing what is there. If path already holds content,
// nothing is written and wrote is false.
func (w *Writer) Write(ctx context.Context, path string, content []byte) (wrote bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	same, err := w.sameFile(path, content)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	err = w.fs.WriteFile(path, content, 0644)
	switch {
	case err == nil:
		return true, nil
	case !errors.Is(err, fs.ErrExist):
		return false, errors.Wrapf(err, "problem writing file(%s)", path)
	}

	// The FS will not replace files with WriteFile.
	if err := w.overwrite(path, content); err != nil {
		return false, errors.Wrapf(err, "problem overwriting file(%s)", path)
	}
	return true, nil
}

// overwrite truncates the existing file at path and writes content to it.
func (w *Writer) overwrite(path string, content []byte) error {
	f, err := w.fs.OpenFile(path, 0644, w.flags(os.O_WRONLY|os.O_TRUNC))
	if err != nil {
		return err
	}
	wr, ok := f.(io.Writer)
	if !ok {
		f.Close()
		return errors.Errorf("OpenFile returned %T, which is not an io.Writer", f)
	}
	if _, err := wr.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// sameFile determines if the file at path has the size and sha256 hash of content.
func (w *Writer) sameFile(path string, content []byte) (bool, error) {
	existing, err := w.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "problem reading existing file(%s)", path)
	}
	if len(existing) != len(content) {
		return false, nil
	}
	return sha256.Sum256(existing) == sha256.Sum256(content), nil
}
